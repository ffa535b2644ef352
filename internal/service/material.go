package service

import (
	"context"

	"github.com/stockworks/stockworks-api/internal/core"
	"github.com/stockworks/stockworks-api/internal/domain/model"
)

// MaterialServiceOptions groups dependencies for MaterialService.
type MaterialServiceOptions struct {
	MaterialRepo core.MaterialRepository
	Cache        core.CacheRepository
}

// MaterialService encapsulates business logic for materials. Writes
// invalidate the cached pricing snapshot for the affected material.
type MaterialService struct {
	materials core.MaterialRepository
	cache     core.CacheRepository
}

// NewMaterialService constructs a new MaterialService.
func NewMaterialService(opts MaterialServiceOptions) *MaterialService {
	return &MaterialService{materials: opts.MaterialRepo, cache: opts.Cache}
}

// Create creates a material.
func (s *MaterialService) Create(ctx context.Context, req *model.CreateMaterialRequest) (*model.Material, error) {
	return s.materials.Create(ctx, req)
}

// GetByID retrieves a material by ID.
func (s *MaterialService) GetByID(ctx context.Context, id string) (*model.Material, error) {
	return s.materials.GetByID(ctx, id)
}

// List returns all materials.
func (s *MaterialService) List(ctx context.Context) ([]*model.Material, error) {
	return s.materials.List(ctx)
}

// Update updates a material and drops its cached pricing snapshot.
func (s *MaterialService) Update(ctx context.Context, id string, req *model.UpdateMaterialRequest) (*model.Material, error) {
	material, err := s.materials.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx, id)
	return material, nil
}

// Delete deletes a material and drops its cached pricing snapshot.
func (s *MaterialService) Delete(ctx context.Context, id string) error {
	if err := s.materials.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx, id)
	return nil
}

func (s *MaterialService) invalidateSnapshot(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	// Cache invalidation is best-effort; the entry expires on its own TTL.
	_, _ = s.cache.Delete(ctx, materialSnapshotKey(id))
}
