package service

import (
	"context"

	"github.com/stockworks/stockworks-api/internal/core"
	"github.com/stockworks/stockworks-api/internal/domain/model"
)

// InventoryServiceOptions groups dependencies for InventoryService.
type InventoryServiceOptions struct {
	InventoryRepo core.InventoryRepository
}

// InventoryService encapsulates business logic for inventory items and stock movements.
type InventoryService struct {
	inventory core.InventoryRepository
}

// NewInventoryService constructs a new InventoryService.
func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	return &InventoryService{inventory: opts.InventoryRepo}
}

// Create creates an inventory item.
func (s *InventoryService) Create(ctx context.Context, req *model.CreateInventoryItemRequest) (*model.InventoryItem, error) {
	return s.inventory.Create(ctx, req)
}

// GetByID retrieves an inventory item by ID.
func (s *InventoryService) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	return s.inventory.GetByID(ctx, id)
}

// List returns all inventory items.
func (s *InventoryService) List(ctx context.Context) ([]*model.InventoryItem, error) {
	return s.inventory.List(ctx)
}

// ListLowStock returns inventory items at or below their reorder threshold.
func (s *InventoryService) ListLowStock(ctx context.Context) ([]*model.InventoryItem, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]*model.InventoryItem, 0)
	for _, item := range items {
		if item.NeedsReorder() {
			low = append(low, item)
		}
	}
	return low, nil
}

// Update updates an inventory item.
func (s *InventoryService) Update(ctx context.Context, id string, req *model.UpdateInventoryItemRequest) (*model.InventoryItem, error) {
	return s.inventory.Update(ctx, id, req)
}

// Delete deletes an inventory item.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.inventory.Delete(ctx, id)
}

// RecordMovement records a stock movement and adjusts the item's quantity atomically.
func (s *InventoryService) RecordMovement(ctx context.Context, req *model.CreateStockMovementRequest) (*model.StockMovement, error) {
	return s.inventory.RecordMovement(ctx, req)
}

// ListMovements returns the movement history for one inventory item.
func (s *InventoryService) ListMovements(ctx context.Context, inventoryItemID string) ([]*model.StockMovement, error) {
	return s.inventory.ListMovements(ctx, inventoryItemID)
}
