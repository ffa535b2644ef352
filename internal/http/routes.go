package httpx

import (
	"log/slog"
	"net/http"

	"github.com/stockworks/stockworks-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Materials  *service.MaterialService
	Inventory  *service.InventoryService
	Hardware   *service.HardwareService
	Pricing    *service.PricingService
	OrderWorks *service.OrderWorksService
	Logger     *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	registerMaterialRoutes(mux, &MaterialHandlers{Svc: services.Materials})
	registerInventoryRoutes(mux, &InventoryHandlers{Svc: services.Inventory})
	registerHardwareRoutes(mux, &HardwareHandlers{Svc: services.Hardware})
	registerPricingRoutes(mux, &PricingHandlers{Svc: services.Pricing})
	if services.OrderWorks != nil {
		registerOrderWorksRoutes(mux, &OrderWorksHandlers{Svc: services.OrderWorks})
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerMaterialRoutes(mux *http.ServeMux, h *MaterialHandlers) {
	registerCRUD(mux, crudRoutes{
		Base:    "/api/materials",
		Create:  h.Create,
		List:    h.List,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
	})
}

func registerInventoryRoutes(mux *http.ServeMux, h *InventoryHandlers) {
	registerCRUD(mux, crudRoutes{
		Base:    "/api/inventory",
		Create:  h.Create,
		List:    h.List,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
	})
	mux.HandleFunc("GET /api/inventory/low-stock", h.ListLowStock)
	mux.HandleFunc("POST /api/inventory/{id}/movements", h.RecordMovement)
	mux.HandleFunc("GET /api/inventory/{id}/movements", h.ListMovements)
}

func registerHardwareRoutes(mux *http.ServeMux, h *HardwareHandlers) {
	registerCRUD(mux, crudRoutes{
		Base:    "/api/hardware",
		Create:  h.Create,
		List:    h.List,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
	})
	mux.HandleFunc("GET /api/hardware/low-stock", h.ListLowStock)
	mux.HandleFunc("POST /api/hardware/{id}/movements", h.RecordMovement)
	mux.HandleFunc("GET /api/hardware/{id}/movements", h.ListMovements)
}

func registerPricingRoutes(mux *http.ServeMux, h *PricingHandlers) {
	mux.HandleFunc("POST /api/pricing/quote", h.Quote)
}

func registerOrderWorksRoutes(mux *http.ServeMux, h *OrderWorksHandlers) {
	mux.HandleFunc("GET /api/orderworks/jobs", h.Jobs)
}

type crudRoutes struct {
	Base    string
	Create  http.HandlerFunc
	List    http.HandlerFunc
	GetByID http.HandlerFunc
	Update  http.HandlerFunc
	Delete  http.HandlerFunc
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	mux.HandleFunc("POST "+cfg.Base, cfg.Create)
	mux.HandleFunc("GET "+cfg.Base, cfg.List)
	mux.HandleFunc("GET "+cfg.Base+"/{id}", cfg.GetByID)
	mux.HandleFunc("PUT "+cfg.Base+"/{id}", cfg.Update)
	mux.HandleFunc("DELETE "+cfg.Base+"/{id}", cfg.Delete)
}
