package model

import (
	"strings"
	"time"

	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// MovementType classifies a stock or hardware movement.
type MovementType string

const (
	MovementTypeIncoming   MovementType = "incoming"
	MovementTypeOutgoing   MovementType = "outgoing"
	MovementTypeAdjustment MovementType = "adjustment"
)

// Valid reports whether the movement type is supported.
func (m MovementType) Valid() bool {
	switch m {
	case MovementTypeIncoming, MovementTypeOutgoing, MovementTypeAdjustment:
		return true
	default:
		return false
	}
}

// ParseMovementType normalizes a movement type string and reports whether it is supported.
func ParseMovementType(value string) (MovementType, bool) {
	mt := MovementType(strings.ToLower(strings.TrimSpace(value)))
	if mt.Valid() {
		return mt, true
	}
	return "", false
}

// StockMovement records one change to an inventory item's stock level.
type StockMovement struct {
	ID              string       `json:"id"                  db:"id"`
	InventoryItemID string       `json:"inventory_item_id"   db:"inventory_item_id"`
	MovementType    MovementType `json:"movement_type"       db:"movement_type"`
	ChangeGrams     float64      `json:"change_grams"        db:"change_grams"`
	Reference       *string      `json:"reference,omitempty" db:"reference"`
	Note            *string      `json:"note,omitempty"      db:"note"`
	CreatedAt       time.Time    `json:"created_at"          db:"created_at"`
}

// CreateStockMovementRequest represents parameters to record a StockMovement.
type CreateStockMovementRequest struct {
	InventoryItemID string       `json:"inventory_item_id"`
	MovementType    MovementType `json:"movement_type"`
	ChangeGrams     float64      `json:"change_grams"`
	Reference       *string      `json:"reference,omitempty"`
	Note            *string      `json:"note,omitempty"`
}

// Validate checks the request for invalid values.
func (r *CreateStockMovementRequest) Validate() error {
	if strings.TrimSpace(r.InventoryItemID) == "" {
		return errorsx.ValidationField("inventory_item_id", "inventory_item_id is required")
	}
	if !r.MovementType.Valid() {
		return errorsx.ValidationField("movement_type", "movement type must be incoming, outgoing, or adjustment")
	}
	if r.ChangeGrams == 0 {
		return errorsx.ValidationField("change_grams", "change must be non-zero")
	}
	return nil
}
