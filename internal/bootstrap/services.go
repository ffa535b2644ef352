package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/stockworks/stockworks-api/config"
	"github.com/stockworks/stockworks-api/internal/core"
	"github.com/stockworks/stockworks-api/internal/data"
	"github.com/stockworks/stockworks-api/internal/observability/statsd"
	"github.com/stockworks/stockworks-api/internal/orderworks"
	"github.com/stockworks/stockworks-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Materials     *service.MaterialService
	Inventory     *service.InventoryService
	Hardware      *service.HardwareService
	Pricing       *service.PricingService
	OrderWorks    *service.OrderWorksService
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB            *sql.DB
	Redis         redis.UniversalClient
	MaterialRepo  *data.MaterialRepo
	InventoryRepo *data.InventoryRepo
	HardwareRepo  *data.HardwareRepo
	CacheRepo     *data.RedisCacheRepo
}

// buildObservability configures the metrics sink.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		metricsSink = statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.StatsdPrefix,
			Logger:  obsLogger,
		})
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		DB:            db,
		Redis:         redisClient,
		MaterialRepo:  data.NewMaterialRepo(db),
		InventoryRepo: data.NewInventoryRepo(db),
		HardwareRepo:  data.NewHardwareRepo(db),
	}
	if redisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// buildOrderWorksSource wires the two OrderWorks job channels: the shared
// database read path and the authenticated admin API fallback. Either channel
// may be absent; the source degrades accordingly.
func buildOrderWorksSource(deps *ServiceDeps, observability ObservabilityContainer) *orderworks.Source {
	logger := deps.Logger
	cfg := deps.Config.OrderWorks

	opts := orderworks.SourceOptions{
		DisplayBaseURL: cfg.DisplayBaseURL,
		RowLimit:       cfg.RowLimit,
		Logger:         logger,
	}
	if observability.MetricsSink != nil {
		opts.Metrics = observability.MetricsSink
	}
	if deps.DB != nil {
		opts.Reader = orderworks.NewDBReader(deps.DB, logger)
	}
	opts.Client = orderworks.NewClient(orderworks.ClientConfig{
		BaseURL:  cfg.BaseURL,
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Timeout:  cfg.Timeout,
		RateRPS:  cfg.RateRPS,
		Logger:   logger,
	})

	return orderworks.NewSource(opts)
}

// NewServices initializes all application services from shared infrastructure.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	observability := buildObservability(logger, deps.Config.Observability)
	repos := buildRepositories(deps.DB, deps.RedisClient)

	materials := service.NewMaterialService(service.MaterialServiceOptions{
		MaterialRepo: repos.MaterialRepo,
		Cache:        asCacheRepository(repos.CacheRepo),
	})
	inventory := service.NewInventoryService(service.InventoryServiceOptions{
		InventoryRepo: repos.InventoryRepo,
	})
	hardware := service.NewHardwareService(service.HardwareServiceOptions{
		HardwareRepo: repos.HardwareRepo,
	})
	pricing := service.NewPricingService(service.PricingServiceOptions{
		MaterialRepo: repos.MaterialRepo,
		Cache:        asCacheRepository(repos.CacheRepo),
		SnapshotTTL:  deps.Config.Cache.PricingTTL,
		Logger:       logger,
	})

	source := buildOrderWorksSource(deps, observability)
	orderWorksSvc := service.NewOrderWorksService(service.OrderWorksServiceOptions{
		Source: source,
	})

	return ServiceContainer{
		Materials:     materials,
		Inventory:     inventory,
		Hardware:      hardware,
		Pricing:       pricing,
		OrderWorks:    orderWorksSvc,
		Observability: observability,
	}
}

// asCacheRepository converts a possibly nil concrete repo into the cache port.
// A typed nil passed through the interface would defeat the services' nil checks.
//
//nolint:ireturn // services depend on the port, not the Redis adapter.
func asCacheRepository(repo *data.RedisCacheRepo) core.CacheRepository {
	if repo == nil {
		return nil
	}
	return repo
}
