package model

import (
	"strings"
	"time"

	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// HardwareItem represents non-filament stock such as inserts, magnets, or screws.
type HardwareItem struct {
	ID                     string    `json:"id"                                 db:"id"`
	Name                   string    `json:"name"                               db:"name"`
	Category               *string   `json:"category,omitempty"                 db:"category"`
	Supplier               *string   `json:"supplier,omitempty"                 db:"supplier"`
	ManufacturerPartNumber *string   `json:"manufacturer_part_number,omitempty" db:"manufacturer_part_number"`
	UnitOfMeasure          string    `json:"unit_of_measure"                    db:"unit_of_measure"`
	UnitCost               float64   `json:"unit_cost"                          db:"unit_cost"`
	BinLocation            *string   `json:"bin_location,omitempty"             db:"bin_location"`
	ReorderLevel           float64   `json:"reorder_level"                      db:"reorder_level"`
	QuantityOnHand         float64   `json:"quantity_on_hand"                   db:"quantity_on_hand"`
	Notes                  *string   `json:"notes,omitempty"                    db:"notes"`
	CreatedAt              time.Time `json:"created_at"                         db:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"                         db:"updated_at"`
}

// CreateHardwareItemRequest represents parameters to create a HardwareItem.
type CreateHardwareItemRequest struct {
	Name                   string  `json:"name"`
	Category               *string `json:"category,omitempty"`
	Supplier               *string `json:"supplier,omitempty"`
	ManufacturerPartNumber *string `json:"manufacturer_part_number,omitempty"`
	UnitOfMeasure          string  `json:"unit_of_measure,omitempty"`
	UnitCost               float64 `json:"unit_cost"`
	BinLocation            *string `json:"bin_location,omitempty"`
	ReorderLevel           float64 `json:"reorder_level"`
	QuantityOnHand         float64 `json:"quantity_on_hand"`
	Notes                  *string `json:"notes,omitempty"`
}

// Validate checks the request for invalid values.
func (r *CreateHardwareItemRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errorsx.ValidationField("name", "name is required")
	}
	if r.UnitCost < 0 {
		return errorsx.ValidationField("unit_cost", "unit cost cannot be negative")
	}
	if r.ReorderLevel < 0 {
		return errorsx.ValidationField("reorder_level", "reorder level cannot be negative")
	}
	if r.QuantityOnHand < 0 {
		return errorsx.ValidationField("quantity_on_hand", "quantity cannot be negative")
	}
	return nil
}

// Normalize applies defaults that match the database schema.
func (r *CreateHardwareItemRequest) Normalize() {
	if strings.TrimSpace(r.UnitOfMeasure) == "" {
		r.UnitOfMeasure = "piece"
	}
}

// UpdateHardwareItemRequest represents parameters to update a HardwareItem.
// Nil fields are left unchanged.
type UpdateHardwareItemRequest struct {
	Name                   *string  `json:"name,omitempty"`
	Category               *string  `json:"category,omitempty"`
	Supplier               *string  `json:"supplier,omitempty"`
	ManufacturerPartNumber *string  `json:"manufacturer_part_number,omitempty"`
	UnitOfMeasure          *string  `json:"unit_of_measure,omitempty"`
	UnitCost               *float64 `json:"unit_cost,omitempty"`
	BinLocation            *string  `json:"bin_location,omitempty"`
	ReorderLevel           *float64 `json:"reorder_level,omitempty"`
	QuantityOnHand         *float64 `json:"quantity_on_hand,omitempty"`
	Notes                  *string  `json:"notes,omitempty"`
}

// Validate checks the request for invalid values.
func (r *UpdateHardwareItemRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errorsx.ValidationField("name", "name cannot be empty")
	}
	if r.UnitCost != nil && *r.UnitCost < 0 {
		return errorsx.ValidationField("unit_cost", "unit cost cannot be negative")
	}
	if r.ReorderLevel != nil && *r.ReorderLevel < 0 {
		return errorsx.ValidationField("reorder_level", "reorder level cannot be negative")
	}
	if r.QuantityOnHand != nil && *r.QuantityOnHand < 0 {
		return errorsx.ValidationField("quantity_on_hand", "quantity cannot be negative")
	}
	return nil
}

// HardwareMovement records one change to a hardware item's quantity on hand.
type HardwareMovement struct {
	ID             string       `json:"id"                  db:"id"`
	HardwareItemID string       `json:"hardware_item_id"    db:"hardware_item_id"`
	MovementType   MovementType `json:"movement_type"       db:"movement_type"`
	ChangeUnits    float64      `json:"change_units"        db:"change_units"`
	Reference      *string      `json:"reference,omitempty" db:"reference"`
	Note           *string      `json:"note,omitempty"      db:"note"`
	CreatedAt      time.Time    `json:"created_at"          db:"created_at"`
}

// CreateHardwareMovementRequest represents parameters to record a HardwareMovement.
type CreateHardwareMovementRequest struct {
	HardwareItemID string       `json:"hardware_item_id"`
	MovementType   MovementType `json:"movement_type"`
	ChangeUnits    float64      `json:"change_units"`
	Reference      *string      `json:"reference,omitempty"`
	Note           *string      `json:"note,omitempty"`
}

// Validate checks the request for invalid values.
func (r *CreateHardwareMovementRequest) Validate() error {
	if strings.TrimSpace(r.HardwareItemID) == "" {
		return errorsx.ValidationField("hardware_item_id", "hardware_item_id is required")
	}
	if !r.MovementType.Valid() {
		return errorsx.ValidationField("movement_type", "movement type must be incoming, outgoing, or adjustment")
	}
	if r.ChangeUnits == 0 {
		return errorsx.ValidationField("change_units", "change must be non-zero")
	}
	return nil
}
