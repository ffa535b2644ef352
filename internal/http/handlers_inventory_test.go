package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
	"github.com/stockworks/stockworks-api/internal/mocks"
	"github.com/stockworks/stockworks-api/internal/service"
)

func newInventoryHandlers(t *testing.T) (*InventoryHandlers, *mocks.MockInventoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInventoryRepository(ctrl)
	svc := service.NewInventoryService(service.InventoryServiceOptions{InventoryRepo: repo})
	return &InventoryHandlers{Svc: svc}, repo
}

func TestInventoryHandlers_RecordMovement(t *testing.T) {
	handlers, repo := newInventoryHandlers(t)

	repo.EXPECT().
		RecordMovement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *model.CreateStockMovementRequest) (*model.StockMovement, error) {
			// The item ID comes from the URL path, not the body.
			assert.Equal(t, "item-1", req.InventoryItemID)
			assert.Equal(t, model.MovementTypeOutgoing, req.MovementType)
			return &model.StockMovement{
				ID:              "mv-1",
				InventoryItemID: req.InventoryItemID,
				MovementType:    req.MovementType,
				ChangeGrams:     req.ChangeGrams,
			}, nil
		})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(
		http.MethodPost,
		"/api/inventory/item-1/movements",
		strings.NewReader(`{"movement_type":"outgoing","change_grams":250}`),
	)
	r.SetPathValue("id", "item-1")

	handlers.RecordMovement(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response model.StockMovement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "mv-1", response.ID)
	assert.Equal(t, "item-1", response.InventoryItemID)
}

func TestInventoryHandlers_RecordMovementNegativeStock(t *testing.T) {
	handlers, repo := newInventoryHandlers(t)

	repo.EXPECT().
		RecordMovement(gomock.Any(), gomock.Any()).
		Return(nil, errorsx.ValidationField("change_grams", "movement would drive stock negative (on hand: 100.00)"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(
		http.MethodPost,
		"/api/inventory/item-1/movements",
		strings.NewReader(`{"movement_type":"outgoing","change_grams":5000}`),
	)
	r.SetPathValue("id", "item-1")

	handlers.RecordMovement(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "change_grams", body["field"])
}

func TestInventoryHandlers_ListMovements(t *testing.T) {
	handlers, repo := newInventoryHandlers(t)

	repo.EXPECT().ListMovements(gomock.Any(), "item-1").Return([]*model.StockMovement{
		{ID: "mv-2", InventoryItemID: "item-1"},
		{ID: "mv-1", InventoryItemID: "item-1"},
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/inventory/item-1/movements", nil)
	r.SetPathValue("id", "item-1")

	handlers.ListMovements(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string][]model.StockMovement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response["movements"], 2)
	assert.Equal(t, "mv-2", response["movements"][0].ID)
}

func TestInventoryHandlers_ListLowStock(t *testing.T) {
	handlers, repo := newInventoryHandlers(t)

	repo.EXPECT().List(gomock.Any()).Return([]*model.InventoryItem{
		{ID: "i1", QuantityGrams: 10, ReorderLevel: 100},
		{ID: "i2", QuantityGrams: 900, ReorderLevel: 100},
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/inventory/low-stock", nil)

	handlers.ListLowStock(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string][]model.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response["items"], 1)
	assert.Equal(t, "i1", response["items"][0].ID)
}

func TestInventoryHandlers_UpdateMissingID(t *testing.T) {
	handlers, _ := newInventoryHandlers(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/inventory/", strings.NewReader(`{}`))

	handlers.Update(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_path", body["error"])
}
