// Package mocks provides mock implementations for testing the stockworks API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockMaterialRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(material, nil)
package mocks

// Generate mock for MaterialRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=material_repository_mock.go github.com/stockworks/stockworks-api/internal/core MaterialRepository

// Generate mock for InventoryRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=inventory_repository_mock.go github.com/stockworks/stockworks-api/internal/core InventoryRepository

// Generate mock for HardwareRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=hardware_repository_mock.go github.com/stockworks/stockworks-api/internal/core HardwareRepository

// Generate mock for CacheRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/stockworks/stockworks-api/internal/core CacheRepository

// Generate mock for OrderWorksSource interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=orderworks_source_mock.go github.com/stockworks/stockworks-api/internal/core OrderWorksSource
