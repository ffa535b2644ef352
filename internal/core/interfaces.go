// Package core contains repository interface definitions (ports in hexagonal
// architecture). These interfaces define the contracts between the service
// layer and data layer. Service implementations should depend on these
// interfaces, not concrete implementations.
package core

import (
	"context"
	"net/url"
	"time"

	"github.com/stockworks/stockworks-api/internal/domain/model"
)

// MaterialRepository defines the interface for material data operations.
type MaterialRepository interface {
	Create(ctx context.Context, req *model.CreateMaterialRequest) (*model.Material, error)
	GetByID(ctx context.Context, id string) (*model.Material, error)
	List(ctx context.Context) ([]*model.Material, error)
	Update(ctx context.Context, id string, req *model.UpdateMaterialRequest) (*model.Material, error)
	Delete(ctx context.Context, id string) error
}

// InventoryRepository defines the interface for inventory item data operations.
type InventoryRepository interface {
	Create(ctx context.Context, req *model.CreateInventoryItemRequest) (*model.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*model.InventoryItem, error)
	List(ctx context.Context) ([]*model.InventoryItem, error)
	Update(ctx context.Context, id string, req *model.UpdateInventoryItemRequest) (*model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	// RecordMovement inserts a stock movement and adjusts the owning item's
	// quantity inside one transaction. A movement that would drive the stock
	// level negative is rejected.
	RecordMovement(ctx context.Context, req *model.CreateStockMovementRequest) (*model.StockMovement, error)
	ListMovements(ctx context.Context, inventoryItemID string) ([]*model.StockMovement, error)
}

// HardwareRepository defines the interface for hardware item data operations.
type HardwareRepository interface {
	Create(ctx context.Context, req *model.CreateHardwareItemRequest) (*model.HardwareItem, error)
	GetByID(ctx context.Context, id string) (*model.HardwareItem, error)
	List(ctx context.Context) ([]*model.HardwareItem, error)
	Update(ctx context.Context, id string, req *model.UpdateHardwareItemRequest) (*model.HardwareItem, error)
	Delete(ctx context.Context, id string) error
	RecordMovement(ctx context.Context, req *model.CreateHardwareMovementRequest) (*model.HardwareMovement, error)
	ListMovements(ctx context.Context, hardwareItemID string) ([]*model.HardwareMovement, error)
}

// CacheRepository defines the interface for cache operations.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}

// OrderWorksSource defines the interface for the channel-selecting job source.
type OrderWorksSource interface {
	GetJobs(ctx context.Context) (*model.OrderWorksJobsResult, error)
}

// RemoteJobLister defines the interface for the authenticated OrderWorks
// admin API client.
type RemoteJobLister interface {
	IsConfigured() bool
	BaseURL() string
	ListJobs(ctx context.Context, params url.Values) ([]model.OrderWorksJob, error)
}

// DatabaseJobReader defines the interface for the shared-database job channel.
type DatabaseJobReader interface {
	Fetch(ctx context.Context, limit int) ([]model.OrderWorksJob, error)
}
