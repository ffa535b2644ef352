package model

import (
	"strings"
	"time"

	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// InventoryItem represents one spool (or partial spool) of a material held in stock.
type InventoryItem struct {
	ID               string    `json:"id"                           db:"id"`
	MaterialID       string    `json:"material_id"                  db:"material_id"`
	Location         string    `json:"location"                     db:"location"`
	QuantityGrams    float64   `json:"quantity_grams"               db:"quantity_grams"`
	ReorderLevel     float64   `json:"reorder_level"                db:"reorder_level"`
	SpoolSerial      *string   `json:"spool_serial,omitempty"       db:"spool_serial"`
	UnitCostOverride *float64  `json:"unit_cost_override,omitempty" db:"unit_cost_override"`
	CreatedAt        time.Time `json:"created_at"                   db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"                   db:"updated_at"`
}

// NeedsReorder reports whether the stock level is at or below the reorder threshold.
func (i *InventoryItem) NeedsReorder() bool {
	return i.QuantityGrams <= i.ReorderLevel
}

// CreateInventoryItemRequest represents parameters to create an InventoryItem.
type CreateInventoryItemRequest struct {
	MaterialID       string   `json:"material_id"`
	Location         string   `json:"location"`
	QuantityGrams    float64  `json:"quantity_grams"`
	ReorderLevel     float64  `json:"reorder_level"`
	SpoolSerial      *string  `json:"spool_serial,omitempty"`
	UnitCostOverride *float64 `json:"unit_cost_override,omitempty"`
}

// Validate checks the request for invalid values.
func (r *CreateInventoryItemRequest) Validate() error {
	if strings.TrimSpace(r.MaterialID) == "" {
		return errorsx.ValidationField("material_id", "material_id is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errorsx.ValidationField("location", "location is required")
	}
	if r.QuantityGrams < 0 {
		return errorsx.ValidationField("quantity_grams", "quantity cannot be negative")
	}
	if r.ReorderLevel < 0 {
		return errorsx.ValidationField("reorder_level", "reorder level cannot be negative")
	}
	if r.UnitCostOverride != nil && *r.UnitCostOverride < 0 {
		return errorsx.ValidationField("unit_cost_override", "unit cost override cannot be negative")
	}
	return nil
}

// UpdateInventoryItemRequest represents parameters to update an InventoryItem.
// Nil fields are left unchanged.
type UpdateInventoryItemRequest struct {
	MaterialID       *string  `json:"material_id,omitempty"`
	Location         *string  `json:"location,omitempty"`
	QuantityGrams    *float64 `json:"quantity_grams,omitempty"`
	ReorderLevel     *float64 `json:"reorder_level,omitempty"`
	SpoolSerial      *string  `json:"spool_serial,omitempty"`
	UnitCostOverride *float64 `json:"unit_cost_override,omitempty"`
}

// Validate checks the request for invalid values.
func (r *UpdateInventoryItemRequest) Validate() error {
	if r.MaterialID != nil && strings.TrimSpace(*r.MaterialID) == "" {
		return errorsx.ValidationField("material_id", "material_id cannot be empty")
	}
	if r.Location != nil && strings.TrimSpace(*r.Location) == "" {
		return errorsx.ValidationField("location", "location cannot be empty")
	}
	if r.QuantityGrams != nil && *r.QuantityGrams < 0 {
		return errorsx.ValidationField("quantity_grams", "quantity cannot be negative")
	}
	if r.ReorderLevel != nil && *r.ReorderLevel < 0 {
		return errorsx.ValidationField("reorder_level", "reorder level cannot be negative")
	}
	if r.UnitCostOverride != nil && *r.UnitCostOverride < 0 {
		return errorsx.ValidationField("unit_cost_override", "unit cost override cannot be negative")
	}
	return nil
}
