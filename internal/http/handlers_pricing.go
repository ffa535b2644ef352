package httpx

import (
	"net/http"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	"github.com/stockworks/stockworks-api/internal/service"
)

// PricingHandlers provides HTTP handlers for quote calculations.
type PricingHandlers struct {
	Svc *service.PricingService
}

// Quote handles HTTP requests to price a print job from material weight,
// machine time, labor, and margin.
func (h *PricingHandlers) Quote(w http.ResponseWriter, r *http.Request) {
	var req model.PricingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.Quote(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
