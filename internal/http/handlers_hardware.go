package httpx

import (
	"errors"
	"net/http"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	"github.com/stockworks/stockworks-api/internal/service"
)

// HardwareHandlers provides HTTP handlers for hardware items and their
// movement ledger.
//
//nolint:dupl // mirrors InventoryHandlers; the resources evolve independently
type HardwareHandlers struct {
	Svc *service.HardwareService
}

// Create handles HTTP requests to create a new hardware item.
func (h *HardwareHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateHardwareItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, item)
}

// List handles HTTP requests to list all hardware items.
func (h *HardwareHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// ListLowStock handles HTTP requests to list hardware at or below its reorder threshold.
func (h *HardwareHandlers) ListLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListLowStock(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// GetByID handles HTTP requests to get a hardware item by ID.
func (h *HardwareHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("hardware item id is required")},
		)
		return
	}

	item, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// Update handles HTTP requests to update a hardware item.
func (h *HardwareHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("hardware item id is required")},
		)
		return
	}

	var req model.UpdateHardwareItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.Svc.Update(r.Context(), id, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// Delete handles HTTP requests to delete a hardware item.
func (h *HardwareHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("hardware item id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordMovement handles HTTP requests to record a hardware movement against an item.
func (h *HardwareHandlers) RecordMovement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("hardware item id is required")},
		)
		return
	}

	var req model.CreateHardwareMovementRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.HardwareItemID = id

	movement, err := h.Svc.RecordMovement(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, movement)
}

// ListMovements handles HTTP requests to list the movement ledger for a hardware item.
func (h *HardwareHandlers) ListMovements(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("hardware item id is required")},
		)
		return
	}

	movements, err := h.Svc.ListMovements(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"movements": movements})
}
