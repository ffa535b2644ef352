package model

import (
	"strings"

	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// PricingRequest represents the inputs to a print-job quote.
type PricingRequest struct {
	MaterialID      string  `json:"material_id"`
	WeightGrams     float64 `json:"weight_grams"`
	PrintTimeHours  float64 `json:"print_time_hours"`
	MachineHourRate float64 `json:"machine_hour_rate"`
	LaborCost       float64 `json:"labor_cost"`
	MarginPct       float64 `json:"margin_pct"`
}

// Validate checks the request for invalid values.
func (r *PricingRequest) Validate() error {
	if strings.TrimSpace(r.MaterialID) == "" {
		return errorsx.ValidationField("material_id", "material_id is required")
	}
	if r.WeightGrams <= 0 {
		return errorsx.ValidationField("weight_grams", "weight must be positive")
	}
	if r.PrintTimeHours <= 0 {
		return errorsx.ValidationField("print_time_hours", "print time must be positive")
	}
	if r.MachineHourRate <= 0 {
		return errorsx.ValidationField("machine_hour_rate", "machine hour rate must be positive")
	}
	if r.LaborCost < 0 {
		return errorsx.ValidationField("labor_cost", "labor cost cannot be negative")
	}
	if r.MarginPct < 0 {
		return errorsx.ValidationField("margin_pct", "margin percentage cannot be negative")
	}
	return nil
}

// PricingBreakdown itemizes the cost components of a quote.
// All values are rounded to two decimal places.
type PricingBreakdown struct {
	MaterialCost float64 `json:"material_cost"`
	MachineCost  float64 `json:"machine_cost"`
	LaborCost    float64 `json:"labor_cost"`
	Subtotal     float64 `json:"subtotal"`
	MarginAmount float64 `json:"margin_amount"`
	TotalPrice   float64 `json:"total_price"`
}

// PricingResponse pairs a quote breakdown with a snapshot of the material used.
type PricingResponse struct {
	Pricing          PricingBreakdown `json:"pricing"`
	MaterialSnapshot *Material        `json:"material_snapshot"`
}
