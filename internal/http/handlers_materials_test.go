package httpx

import (
	"bytes"
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

func newMaterialHandlers(t *testing.T) (*MaterialHandlers, *mocks.MockMaterialRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMaterialRepository(ctrl)
	svc := service.NewMaterialService(service.MaterialServiceOptions{MaterialRepo: repo})
	return &MaterialHandlers{Svc: svc}, repo
}

func TestMaterialHandlers_Create(t *testing.T) {
	handlers, repo := newMaterialHandlers(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&model.Material{ID: "mat-1", Name: "PLA", PricePerGram: 0.03}, nil)

	body, err := json.Marshal(model.CreateMaterialRequest{Name: "PLA", PricePerGram: 0.03})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/materials", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	handlers.Create(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response model.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "mat-1", response.ID)
	assert.Equal(t, "PLA", response.Name)
}

func TestMaterialHandlers_CreateRejectsUnknownFields(t *testing.T) {
	handlers, _ := newMaterialHandlers(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/materials", strings.NewReader(`{"name":"PLA","bogus":1}`))

	handlers.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_json", body["error"])
}

func TestMaterialHandlers_CreateValidationError(t *testing.T) {
	handlers, repo := newMaterialHandlers(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errorsx.ValidationField("price_per_gram", "price must be positive"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/materials", strings.NewReader(`{"name":"PLA"}`))

	handlers.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation", body["error"])
	assert.Equal(t, "price_per_gram", body["field"])
}

func TestMaterialHandlers_GetByID_NotFound(t *testing.T) {
	handlers, repo := newMaterialHandlers(t)

	repo.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, errorsx.NotFound("Material not found"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/materials/missing", nil)
	r.SetPathValue("id", "missing")

	handlers.GetByID(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMaterialHandlers_List(t *testing.T) {
	handlers, repo := newMaterialHandlers(t)

	repo.EXPECT().List(gomock.Any()).Return([]*model.Material{
		{ID: "mat-1", Name: "PLA"},
		{ID: "mat-2", Name: "PETG"},
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/materials", nil)

	handlers.List(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string][]model.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response["materials"], 2)
}

func TestMaterialHandlers_Delete(t *testing.T) {
	handlers, repo := newMaterialHandlers(t)

	repo.EXPECT().Delete(gomock.Any(), "mat-1").Return(nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/materials/mat-1", nil)
	r.SetPathValue("id", "mat-1")

	handlers.Delete(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestMaterialHandlers_DeleteConflict(t *testing.T) {
	handlers, repo := newMaterialHandlers(t)

	repo.EXPECT().
		Delete(gomock.Any(), "mat-1").
		Return(errorsx.ForeignKey("Cannot delete material: it is referenced by inventory items"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/materials/mat-1", nil)
	r.SetPathValue("id", "mat-1")

	handlers.Delete(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}
