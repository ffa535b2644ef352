package orderworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumn_ExactMatchWins(t *testing.T) {
	t.Parallel()

	available := []string{"payment_intent_id", "paymentIntentId"}

	got, ok := resolveColumn(available, []string{"paymentIntentId"})
	assert.True(t, ok)
	assert.Equal(t, "paymentIntentId", got)
}

func TestResolveColumn_CaseInsensitiveFallback(t *testing.T) {
	t.Parallel()

	got, ok := resolveColumn([]string{"Created_At"}, []string{"created_at"})
	assert.True(t, ok)
	assert.Equal(t, "Created_At", got)
}

func TestResolveColumn_PriorityOrder(t *testing.T) {
	t.Parallel()

	// Both candidates exist; the first in caller order wins.
	available := []string{"totalCents", "total_cents"}
	got, ok := resolveColumn(available, []string{"total_cents", "totalCents"})
	assert.True(t, ok)
	assert.Equal(t, "total_cents", got)
}

func TestResolveColumn_Absent(t *testing.T) {
	t.Parallel()

	_, ok := resolveColumn([]string{"id", "status"}, []string{"queue_position", "queuePosition"})
	assert.False(t, ok)
}

func TestResolveColumn_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	available := []string{"B", "a"}
	candidates := []string{"b", "A"}
	_, _ = resolveColumn(available, candidates)

	assert.Equal(t, []string{"B", "a"}, available)
	assert.Equal(t, []string{"b", "A"}, candidates)
}

func TestJobColumnMappings_AliasesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, len(jobColumnMappings))
	for _, mapping := range jobColumnMappings {
		assert.False(t, seen[mapping.Alias], "duplicate alias %q", mapping.Alias)
		seen[mapping.Alias] = true
	}
}
