package orderworks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// allColumns returns a snake_case column set covering every mapping.
func allColumns() []string {
	return []string{
		"id", "payment_intent_id", "total_cents", "currency", "line_items",
		"shipping", "metadata", "user_id", "customer_email",
		"makerworks_created_at", "makerworks_updated_at", "status", "notes",
		"payment_method", "payment_status", "fulfillment_status",
		"fulfilled_at", "queue_position", "created_at", "updated_at",
	}
}

func TestBuildJobsQuery_FullSchema(t *testing.T) {
	t.Parallel()

	query, err := buildJobsQuery(allColumns())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "SELECT "))
	assert.Contains(t, query, `"id" AS "id"`)
	assert.Contains(t, query, `"payment_intent_id" AS "paymentIntentId"`)
	assert.Contains(t, query, `"queue_position" AS "queuePosition"`)
	assert.Contains(t, query, `FROM "orderworks"."jobs"`)
	assert.Contains(t, query, `ORDER BY "makerworks_created_at" DESC, "created_at" DESC, "id" DESC`)
	assert.True(t, strings.HasSuffix(query, "LIMIT $1"))
	assert.NotContains(t, query, "NULL AS")
}

func TestBuildJobsQuery_OneColumnPerMapping(t *testing.T) {
	t.Parallel()

	query, err := buildJobsQuery(allColumns())
	require.NoError(t, err)

	for _, mapping := range jobColumnMappings {
		count := strings.Count(query, ` AS "`+mapping.Alias+`"`)
		assert.Equal(t, 1, count, "alias %q should appear exactly once", mapping.Alias)
	}
}

func TestBuildJobsQuery_IdentifierOnly(t *testing.T) {
	t.Parallel()

	query, err := buildJobsQuery([]string{"id"})
	require.NoError(t, err)

	assert.Contains(t, query, `"id" AS "id"`)
	assert.Contains(t, query, `NULL AS "paymentIntentId"`)
	assert.Contains(t, query, `NULL AS "updatedAt"`)
	// Every optional mapping is projected as NULL.
	assert.Equal(t, len(jobColumnMappings)-1, strings.Count(query, "NULL AS"))
	assert.Contains(t, query, `ORDER BY "id" DESC`)
}

func TestBuildJobsQuery_MissingRequiredColumn(t *testing.T) {
	t.Parallel()

	_, err := buildJobsQuery([]string{"status", "created_at"})
	require.Error(t, err)
	assert.True(t, errorsx.IsUnavailable(err))
	assert.Contains(t, err.Error(), "id")
}

func TestBuildJobsQuery_EmptySchema(t *testing.T) {
	t.Parallel()

	_, err := buildJobsQuery(nil)
	require.Error(t, err)
	assert.True(t, errorsx.IsUnavailable(err))
}

func TestBuildJobsQuery_CamelCaseSchema(t *testing.T) {
	t.Parallel()

	query, err := buildJobsQuery([]string{"id", "createdAt", "paymentStatus"})
	require.NoError(t, err)

	assert.Contains(t, query, `"createdAt" AS "createdAt"`)
	assert.Contains(t, query, `"paymentStatus" AS "paymentStatus"`)
	// No makerworks timestamp in this schema, so ordering falls back to
	// the generic created timestamp, then the identifier.
	assert.Contains(t, query, `ORDER BY "createdAt" DESC, "id" DESC`)
}

func TestQuoteIdentifier_EscapesEmbeddedQuotes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"we""ird"`, quoteIdentifier(`we"ird`))
	assert.Equal(t, `"order"`, quoteIdentifier("order"))
}

func TestQuoteTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"orderworks"."jobs"`, quoteTable("orderworks", "jobs"))
	assert.Equal(t, `"jobs"`, quoteTable("", "jobs"))
}
