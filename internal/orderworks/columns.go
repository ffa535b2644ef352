// Package orderworks implements the synchronization layer that reads OrderWorks
// job records either directly from the shared database or through the
// OrderWorks admin API as an authenticated fallback.
package orderworks

import "strings"

// ColumnMapping declares how one logical job field maps onto the shared
// table's columns. Names are acceptable source column variants in priority
// order; Alias is the logical output name; Required marks fields whose
// absence makes the table unusable.
type ColumnMapping struct {
	Names    []string
	Alias    string
	Required bool
}

// jobTable is the schema-qualified shared table holding OrderWorks jobs.
const jobTable = "orderworks.jobs"

// jobColumnMappings is the full projection, in declaration order. Each alias
// appears exactly once in the built query; optional mappings with no matching
// column are projected as NULL.
var jobColumnMappings = []ColumnMapping{
	{Names: []string{"id"}, Alias: "id", Required: true},
	{Names: []string{"payment_intent_id", "paymentIntentId"}, Alias: "paymentIntentId"},
	{Names: []string{"total_cents", "totalCents"}, Alias: "totalCents"},
	{Names: []string{"currency"}, Alias: "currency"},
	{Names: []string{"line_items", "lineItems"}, Alias: "lineItems"},
	{Names: []string{"shipping"}, Alias: "shipping"},
	{Names: []string{"metadata"}, Alias: "metadata"},
	{Names: []string{"user_id", "userId"}, Alias: "userId"},
	{Names: []string{"customer_email", "customerEmail"}, Alias: "customerEmail"},
	{Names: []string{"makerworks_created_at"}, Alias: "makerworksCreatedAt"},
	{Names: []string{"makerworks_updated_at"}, Alias: "makerworksUpdatedAt"},
	{Names: []string{"status"}, Alias: "status"},
	{Names: []string{"notes"}, Alias: "notes"},
	{Names: []string{"payment_method", "paymentMethod"}, Alias: "paymentMethod"},
	{Names: []string{"payment_status", "paymentStatus"}, Alias: "paymentStatus"},
	{Names: []string{"fulfillment_status", "fulfillmentStatus"}, Alias: "fulfillmentStatus"},
	{Names: []string{"fulfilled_at", "fulfilledAt"}, Alias: "fulfilledAt"},
	{Names: []string{"queue_position", "queuePosition"}, Alias: "queuePosition"},
	{Names: []string{"created_at", "createdAt"}, Alias: "createdAt"},
	{Names: []string{"updated_at", "updatedAt"}, Alias: "updatedAt"},
}

// matchColumn returns the actual column matching the candidate, preferring an
// exact match over a case-insensitive one.
func matchColumn(available []string, candidate string) (string, bool) {
	for _, existing := range available {
		if existing == candidate {
			return existing, true
		}
	}
	for _, existing := range available {
		if strings.EqualFold(existing, candidate) {
			return existing, true
		}
	}
	return "", false
}

// resolveColumn finds the actual column for the first candidate (in
// caller-supplied priority order) present in available. It does not mutate
// its inputs and performs no I/O.
func resolveColumn(available []string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if match, ok := matchColumn(available, candidate); ok {
			return match, true
		}
	}
	return "", false
}
