//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

const maxMaterialNameLen = 255

// Material represents one purchasable filament material.
type Material struct {
	ID               string    `json:"id"                  db:"id"`
	Name             string    `json:"name"                db:"name"`
	Brand            *string   `json:"brand,omitempty"     db:"brand"`
	FilamentType     string    `json:"filament_type"       db:"filament_type"`
	Category         *string   `json:"category,omitempty"  db:"category"`
	Color            string    `json:"color"               db:"color"`
	Supplier         *string   `json:"supplier,omitempty"  db:"supplier"`
	PricePerGram     float64   `json:"price_per_gram"      db:"price_per_gram"`
	SpoolWeightGrams int       `json:"spool_weight_grams"  db:"spool_weight_grams"`
	Barcode          *string   `json:"barcode,omitempty"   db:"barcode"`
	Notes            *string   `json:"notes,omitempty"     db:"notes"`
	CreatedAt        time.Time `json:"created_at"          db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"          db:"updated_at"`
}

// CreateMaterialRequest represents parameters to create a Material.
type CreateMaterialRequest struct {
	Name             string  `json:"name"`
	Brand            *string `json:"brand,omitempty"`
	FilamentType     string  `json:"filament_type"`
	Category         *string `json:"category,omitempty"`
	Color            string  `json:"color"`
	Supplier         *string `json:"supplier,omitempty"`
	PricePerGram     float64 `json:"price_per_gram"`
	SpoolWeightGrams int     `json:"spool_weight_grams"`
	Barcode          *string `json:"barcode,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// Validate checks the request for invalid values.
func (r *CreateMaterialRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errorsx.ValidationField("name", "name is required")
	}
	if len(r.Name) > maxMaterialNameLen {
		return errorsx.ValidationField("name", "name is too long")
	}
	if strings.TrimSpace(r.FilamentType) == "" {
		return errorsx.ValidationField("filament_type", "filament type is required")
	}
	if strings.TrimSpace(r.Color) == "" {
		return errorsx.ValidationField("color", "color is required")
	}
	if r.PricePerGram <= 0 {
		return errorsx.ValidationField("price_per_gram", "price per gram must be positive")
	}
	if r.SpoolWeightGrams <= 0 {
		return errorsx.ValidationField("spool_weight_grams", "spool weight must be positive")
	}
	return nil
}

// UpdateMaterialRequest represents parameters to update a Material.
// Nil fields are left unchanged.
type UpdateMaterialRequest struct {
	Name             *string  `json:"name,omitempty"`
	Brand            *string  `json:"brand,omitempty"`
	FilamentType     *string  `json:"filament_type,omitempty"`
	Category         *string  `json:"category,omitempty"`
	Color            *string  `json:"color,omitempty"`
	Supplier         *string  `json:"supplier,omitempty"`
	PricePerGram     *float64 `json:"price_per_gram,omitempty"`
	SpoolWeightGrams *int     `json:"spool_weight_grams,omitempty"`
	Barcode          *string  `json:"barcode,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// Validate checks the request for invalid values.
func (r *UpdateMaterialRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errorsx.ValidationField("name", "name cannot be empty")
	}
	if r.Name != nil && len(*r.Name) > maxMaterialNameLen {
		return errorsx.ValidationField("name", "name is too long")
	}
	if r.FilamentType != nil && strings.TrimSpace(*r.FilamentType) == "" {
		return errorsx.ValidationField("filament_type", "filament type cannot be empty")
	}
	if r.Color != nil && strings.TrimSpace(*r.Color) == "" {
		return errorsx.ValidationField("color", "color cannot be empty")
	}
	if r.PricePerGram != nil && *r.PricePerGram <= 0 {
		return errorsx.ValidationField("price_per_gram", "price per gram must be positive")
	}
	if r.SpoolWeightGrams != nil && *r.SpoolWeightGrams <= 0 {
		return errorsx.ValidationField("spool_weight_grams", "spool weight must be positive")
	}
	return nil
}
