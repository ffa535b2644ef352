package model

// OrderWorksJobAliases is the fixed set of logical field names every
// OrderWorks job record carries, regardless of which channel sourced it or
// which columns the shared table currently has. "id" is mandatory; every
// other field may hold nil.
var OrderWorksJobAliases = []string{
	"id",
	"paymentIntentId",
	"totalCents",
	"currency",
	"lineItems",
	"shipping",
	"metadata",
	"userId",
	"customerEmail",
	"makerworksCreatedAt",
	"makerworksUpdatedAt",
	"status",
	"notes",
	"paymentMethod",
	"paymentStatus",
	"fulfillmentStatus",
	"fulfilledAt",
	"queuePosition",
	"createdAt",
	"updatedAt",
}

// OrderWorksJob is the uniform representation of one OrderWorks job record.
// Consumers can rely on every alias key being present; absent values are
// explicit nils, never missing keys.
type OrderWorksJob map[string]any

// NormalizeOrderWorksJob fills in any alias keys missing from a raw record so
// the output shape is stable across channels and schema drift. Unknown keys
// from the source are preserved.
func NormalizeOrderWorksJob(raw map[string]any) OrderWorksJob {
	job := make(OrderWorksJob, len(OrderWorksJobAliases))
	for k, v := range raw {
		job[k] = v
	}
	for _, alias := range OrderWorksJobAliases {
		if _, ok := job[alias]; !ok {
			job[alias] = nil
		}
	}
	return job
}

// OrderWorksJobsResult is the channel selector output: the job list plus the
// base URL of the system that served it (the display override for
// database-sourced rows).
type OrderWorksJobsResult struct {
	Jobs    []OrderWorksJob `json:"jobs"`
	BaseURL string          `json:"base_url"`
}
