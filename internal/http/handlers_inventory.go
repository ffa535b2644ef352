package httpx

import (
	"errors"
	"net/http"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	"github.com/stockworks/stockworks-api/internal/service"
)

// InventoryHandlers provides HTTP handlers for inventory items and their
// stock movement ledger.
type InventoryHandlers struct {
	Svc *service.InventoryService
}

// Create handles HTTP requests to create a new inventory item.
func (h *InventoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInventoryItemRequest
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

// List handles HTTP requests to list all inventory items.
func (h *InventoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// ListLowStock handles HTTP requests to list items at or below their reorder threshold.
func (h *InventoryHandlers) ListLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListLowStock(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// GetByID handles HTTP requests to get an inventory item by ID.
func (h *InventoryHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("inventory item id is required")},
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

// Update handles HTTP requests to update an inventory item.
func (h *InventoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("inventory item id is required")},
		)
		return
	}

	var req model.UpdateInventoryItemRequest
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

// Delete handles HTTP requests to delete an inventory item.
func (h *InventoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("inventory item id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordMovement handles HTTP requests to record a stock movement against an item.
// The item quantity and the ledger row change in one transaction.
func (h *InventoryHandlers) RecordMovement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("inventory item id is required")},
		)
		return
	}

	var req model.CreateStockMovementRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.InventoryItemID = id

	movement, err := h.Svc.RecordMovement(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, movement)
}

// ListMovements handles HTTP requests to list the movement ledger for an item, newest first.
func (h *InventoryHandlers) ListMovements(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("inventory item id is required")},
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
