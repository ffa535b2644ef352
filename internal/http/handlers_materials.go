// Package httpx provides HTTP handlers and utilities for the StockWorks inventory API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	"github.com/stockworks/stockworks-api/internal/service"
)

// MaterialHandlers provides HTTP handlers for material-related operations.
type MaterialHandlers struct {
	Svc *service.MaterialService
}

// Create handles HTTP requests to create a new material.
func (h *MaterialHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMaterialRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	material, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, material)
}

// List handles HTTP requests to list all materials.
func (h *MaterialHandlers) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"materials": materials})
}

// GetByID handles HTTP requests to get a material by ID.
func (h *MaterialHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("material id is required")},
		)
		return
	}

	material, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, material)
}

// Update handles HTTP requests to update a material.
func (h *MaterialHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("material id is required")},
		)
		return
	}

	var req model.UpdateMaterialRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	material, err := h.Svc.Update(r.Context(), id, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, material)
}

// Delete handles HTTP requests to delete a material.
func (h *MaterialHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("material id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
