package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	"github.com/stockworks/stockworks-api/internal/mocks"
	"github.com/stockworks/stockworks-api/internal/service"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockMaterialRepository, *mocks.MockInventoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	materialRepo := mocks.NewMockMaterialRepository(ctrl)
	inventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	hardwareRepo := mocks.NewMockHardwareRepository(ctrl)

	router := NewRouter(RouterServices{
		Materials: service.NewMaterialService(service.MaterialServiceOptions{MaterialRepo: materialRepo}),
		Inventory: service.NewInventoryService(service.InventoryServiceOptions{InventoryRepo: inventoryRepo}),
		Hardware:  service.NewHardwareService(service.HardwareServiceOptions{HardwareRepo: hardwareRepo}),
		Pricing:   service.NewPricingService(service.PricingServiceOptions{MaterialRepo: materialRepo}),
	})
	return router, materialRepo, inventoryRepo
}

func TestRouter_PathParamReachesHandler(t *testing.T) {
	router, materialRepo, _ := newTestRouter(t)

	materialRepo.EXPECT().
		GetByID(gomock.Any(), "mat-42").
		Return(&model.Material{ID: "mat-42", Name: "ASA"}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/materials/mat-42", nil)

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "mat-42", response.ID)
}

func TestRouter_LowStockNotShadowedByIDRoute(t *testing.T) {
	router, _, inventoryRepo := newTestRouter(t)

	inventoryRepo.EXPECT().List(gomock.Any()).Return([]*model.InventoryItem{}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/inventory/low-stock", nil)

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPatch, "/api/materials/mat-1", nil)

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_OrderWorksRoutesAreOptional(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orderworks/jobs", nil)

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Health(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
