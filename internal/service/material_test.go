package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	"github.com/stockworks/stockworks-api/internal/mocks"
)

func TestMaterialService_UpdateInvalidatesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	materialRepo := mocks.NewMockMaterialRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	name := "PETG"
	materialRepo.EXPECT().
		Update(gomock.Any(), "mat-1", gomock.Any()).
		Return(&model.Material{ID: "mat-1", Name: name}, nil)
	cache.EXPECT().Delete(gomock.Any(), "pricing:material:mat-1").Return(true, nil)

	svc := NewMaterialService(MaterialServiceOptions{MaterialRepo: materialRepo, Cache: cache})

	updated, err := svc.Update(context.Background(), "mat-1", &model.UpdateMaterialRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "PETG", updated.Name)
}

func TestMaterialService_DeleteInvalidatesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	materialRepo := mocks.NewMockMaterialRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	materialRepo.EXPECT().Delete(gomock.Any(), "mat-1").Return(nil)
	cache.EXPECT().Delete(gomock.Any(), "pricing:material:mat-1").Return(true, nil)

	svc := NewMaterialService(MaterialServiceOptions{MaterialRepo: materialRepo, Cache: cache})

	require.NoError(t, svc.Delete(context.Background(), "mat-1"))
}

func TestMaterialService_UpdateErrorSkipsInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	materialRepo := mocks.NewMockMaterialRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	name := "PETG"
	materialRepo.EXPECT().
		Update(gomock.Any(), "mat-1", gomock.Any()).
		Return(nil, assert.AnError)

	svc := NewMaterialService(MaterialServiceOptions{MaterialRepo: materialRepo, Cache: cache})

	_, err := svc.Update(context.Background(), "mat-1", &model.UpdateMaterialRequest{Name: &name})
	require.Error(t, err)
}

func TestInventoryService_ListLowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	inventoryRepo.EXPECT().List(gomock.Any()).Return([]*model.InventoryItem{
		{ID: "i1", QuantityGrams: 50, ReorderLevel: 100},
		{ID: "i2", QuantityGrams: 500, ReorderLevel: 100},
		{ID: "i3", QuantityGrams: 100, ReorderLevel: 100},
	}, nil)

	svc := NewInventoryService(InventoryServiceOptions{InventoryRepo: inventoryRepo})

	low, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "i1", low[0].ID)
	assert.Equal(t, "i3", low[1].ID)
}
