package service

import (
	"context"

	"github.com/stockworks/stockworks-api/internal/core"
	"github.com/stockworks/stockworks-api/internal/domain/model"
)

// HardwareServiceOptions groups dependencies for HardwareService.
type HardwareServiceOptions struct {
	HardwareRepo core.HardwareRepository
}

// HardwareService encapsulates business logic for hardware items and their movements.
type HardwareService struct {
	hardware core.HardwareRepository
}

// NewHardwareService constructs a new HardwareService.
func NewHardwareService(opts HardwareServiceOptions) *HardwareService {
	return &HardwareService{hardware: opts.HardwareRepo}
}

// Create creates a hardware item.
func (s *HardwareService) Create(ctx context.Context, req *model.CreateHardwareItemRequest) (*model.HardwareItem, error) {
	return s.hardware.Create(ctx, req)
}

// GetByID retrieves a hardware item by ID.
func (s *HardwareService) GetByID(ctx context.Context, id string) (*model.HardwareItem, error) {
	return s.hardware.GetByID(ctx, id)
}

// List returns all hardware items.
func (s *HardwareService) List(ctx context.Context) ([]*model.HardwareItem, error) {
	return s.hardware.List(ctx)
}

// ListLowStock returns hardware items at or below their reorder threshold.
func (s *HardwareService) ListLowStock(ctx context.Context) ([]*model.HardwareItem, error) {
	items, err := s.hardware.List(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]*model.HardwareItem, 0)
	for _, item := range items {
		if item.QuantityOnHand <= item.ReorderLevel {
			low = append(low, item)
		}
	}
	return low, nil
}

// Update updates a hardware item.
func (s *HardwareService) Update(ctx context.Context, id string, req *model.UpdateHardwareItemRequest) (*model.HardwareItem, error) {
	return s.hardware.Update(ctx, id, req)
}

// Delete deletes a hardware item.
func (s *HardwareService) Delete(ctx context.Context, id string) error {
	return s.hardware.Delete(ctx, id)
}

// RecordMovement records a hardware movement and adjusts the item's quantity atomically.
func (s *HardwareService) RecordMovement(ctx context.Context, req *model.CreateHardwareMovementRequest) (*model.HardwareMovement, error) {
	return s.hardware.RecordMovement(ctx, req)
}

// ListMovements returns the movement history for one hardware item.
func (s *HardwareService) ListMovements(ctx context.Context, hardwareItemID string) ([]*model.HardwareMovement, error) {
	return s.hardware.ListMovements(ctx, hardwareItemID)
}
