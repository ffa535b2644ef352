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
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
	"github.com/stockworks/stockworks-api/internal/mocks"
	"github.com/stockworks/stockworks-api/internal/service"
)

func newOrderWorksHandlers(t *testing.T) (*OrderWorksHandlers, *mocks.MockOrderWorksSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockOrderWorksSource(ctrl)
	svc := service.NewOrderWorksService(service.OrderWorksServiceOptions{Source: source})
	return &OrderWorksHandlers{Svc: svc}, source
}

func orderWorksJobs(ids ...string) []model.OrderWorksJob {
	jobs := make([]model.OrderWorksJob, 0, len(ids))
	for _, id := range ids {
		jobs = append(jobs, model.NormalizeOrderWorksJob(model.OrderWorksJob{"id": id, "status": "queued"}))
	}
	return jobs
}

func TestOrderWorksHandlers_Jobs(t *testing.T) {
	handlers, source := newOrderWorksHandlers(t)

	source.EXPECT().GetJobs(gomock.Any()).Return(&model.OrderWorksJobsResult{
		Jobs:    orderWorksJobs("job-1", "job-2"),
		BaseURL: "https://orders.example.com",
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orderworks/jobs", nil)

	handlers.Jobs(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Jobs    []map[string]any `json:"jobs"`
		BaseURL string           `json:"base_url"`
		Count   int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, "https://orders.example.com", response.BaseURL)
	require.Len(t, response.Jobs, 2)
	assert.Equal(t, "job-1", response.Jobs[0]["id"])
}

func TestOrderWorksHandlers_JobsWithQuery(t *testing.T) {
	handlers, source := newOrderWorksHandlers(t)

	source.EXPECT().GetJobs(gomock.Any()).Return(&model.OrderWorksJobsResult{
		Jobs: orderWorksJobs("job-1", "job-2"),
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orderworks/jobs?query=%5B%5D.id", nil)

	handlers.Jobs(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Jobs  []any `json:"jobs"`
		Count int   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.ElementsMatch(t, []any{"job-1", "job-2"}, response.Jobs)
}

func TestOrderWorksHandlers_JobsInvalidQuery(t *testing.T) {
	handlers, source := newOrderWorksHandlers(t)

	source.EXPECT().GetJobs(gomock.Any()).Return(&model.OrderWorksJobsResult{
		Jobs: orderWorksJobs("job-1"),
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orderworks/jobs?query=%5B%5B", nil)

	handlers.Jobs(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation", body["error"])
	assert.Equal(t, "query", body["field"])
}

func TestOrderWorksHandlers_JobsUnavailable(t *testing.T) {
	handlers, source := newOrderWorksHandlers(t)

	source.EXPECT().
		GetJobs(gomock.Any()).
		Return(nil, errorsx.Unavailable("OrderWorks database is unavailable and the admin API is not configured"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orderworks/jobs", nil)

	handlers.Jobs(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unavailable", body["error"])
}

func TestOrderWorksHandlers_JobsUpstreamAuthFailure(t *testing.T) {
	handlers, source := newOrderWorksHandlers(t)

	source.EXPECT().
		GetJobs(gomock.Any()).
		Return(nil, errorsx.Authentication("OrderWorks login rejected"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orderworks/jobs", nil)

	handlers.Jobs(w, r)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
