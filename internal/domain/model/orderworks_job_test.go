package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOrderWorksJob_IDOnly(t *testing.T) {
	t.Parallel()

	job := NormalizeOrderWorksJob(map[string]any{"id": "job-1"})

	require.Len(t, job, len(OrderWorksJobAliases))
	assert.Equal(t, "job-1", job["id"])
	for _, alias := range OrderWorksJobAliases {
		_, ok := job[alias]
		assert.True(t, ok, "alias %q should be present", alias)
	}
	assert.Nil(t, job["customerEmail"])
	assert.Nil(t, job["queuePosition"])
}

func TestNormalizeOrderWorksJob_PreservesValuesAndExtras(t *testing.T) {
	t.Parallel()

	job := NormalizeOrderWorksJob(map[string]any{
		"id":         "job-2",
		"totalCents": int64(1250),
		"currency":   "usd",
		"extraField": "kept",
	})

	assert.Equal(t, int64(1250), job["totalCents"])
	assert.Equal(t, "usd", job["currency"])
	assert.Equal(t, "kept", job["extraField"])
	assert.Nil(t, job["status"])
}

func TestNormalizeOrderWorksJob_NilInput(t *testing.T) {
	t.Parallel()

	job := NormalizeOrderWorksJob(nil)
	require.Len(t, job, len(OrderWorksJobAliases))
	assert.Nil(t, job["id"])
}
