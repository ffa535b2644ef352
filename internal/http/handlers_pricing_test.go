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
	"github.com/stockworks/stockworks-api/internal/mocks"
	"github.com/stockworks/stockworks-api/internal/service"
)

func newPricingHandlers(t *testing.T) (*PricingHandlers, *mocks.MockMaterialRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMaterialRepository(ctrl)
	svc := service.NewPricingService(service.PricingServiceOptions{MaterialRepo: repo})
	return &PricingHandlers{Svc: svc}, repo
}

func TestPricingHandlers_Quote(t *testing.T) {
	handlers, repo := newPricingHandlers(t)

	repo.EXPECT().
		GetByID(gomock.Any(), "mat-1").
		Return(&model.Material{ID: "mat-1", Name: "PLA", PricePerGram: 0.05}, nil)

	body := `{
		"material_id": "mat-1",
		"weight_grams": 100,
		"print_time_hours": 2,
		"machine_hour_rate": 1.5,
		"labor_cost": 5,
		"margin_pct": 20
	}`

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", strings.NewReader(body))

	handlers.Quote(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.PricingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.InDelta(t, 5.0, response.Pricing.MaterialCost, 0.001)
	assert.InDelta(t, 3.0, response.Pricing.MachineCost, 0.001)
	assert.InDelta(t, 13.0, response.Pricing.Subtotal, 0.001)
	assert.InDelta(t, 15.6, response.Pricing.TotalPrice, 0.001)
	require.NotNil(t, response.MaterialSnapshot)
	assert.Equal(t, "mat-1", response.MaterialSnapshot.ID)
}

func TestPricingHandlers_QuoteMissingMaterial(t *testing.T) {
	handlers, _ := newPricingHandlers(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", strings.NewReader(`{"weight_grams":100}`))

	handlers.Quote(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "material_id", body["field"])
}
