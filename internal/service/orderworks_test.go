package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
	"github.com/stockworks/stockworks-api/internal/mocks"
)

type evalStub struct {
	validateErr error
	res         any
	evalErr     error
}

func (e evalStub) Validate(_ string) error               { return e.validateErr }
func (e evalStub) Evaluate(_ string, _ any) (any, error) { return e.res, e.evalErr }

func jobsResult(ids ...string) *model.OrderWorksJobsResult {
	jobs := make([]model.OrderWorksJob, len(ids))
	for i, id := range ids {
		jobs[i] = model.NormalizeOrderWorksJob(map[string]any{"id": id, "status": "queued"})
	}
	return &model.OrderWorksJobsResult{Jobs: jobs, BaseURL: "https://orders.example.com"}
}

func TestOrderWorksService_GetJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockOrderWorksSource(ctrl)
	source.EXPECT().GetJobs(gomock.Any()).Return(jobsResult("j1", "j2"), nil)

	svc := NewOrderWorksService(OrderWorksServiceOptions{Source: source})

	resp, err := svc.GetJobs(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "https://orders.example.com", resp.BaseURL)

	jobs, ok := resp.Jobs.([]model.OrderWorksJob)
	require.True(t, ok)
	assert.Equal(t, "j1", jobs[0]["id"])
}

func TestOrderWorksService_GetJobsWithQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockOrderWorksSource(ctrl)
	source.EXPECT().GetJobs(gomock.Any()).Return(jobsResult("j1", "j2"), nil)

	svc := NewOrderWorksService(OrderWorksServiceOptions{Source: source})

	resp, err := svc.GetJobs(context.Background(), "[?status=='queued'].id")
	require.NoError(t, err)

	projected, ok := resp.Jobs.([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"j1", "j2"}, projected)
	assert.Equal(t, 2, resp.Count)
}

func TestOrderWorksService_GetJobsInvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockOrderWorksSource(ctrl)
	source.EXPECT().GetJobs(gomock.Any()).Return(jobsResult("j1"), nil)

	svc := NewOrderWorksService(OrderWorksServiceOptions{Source: source, Evaluator: evalStub{validateErr: assert.AnError}})

	_, err := svc.GetJobs(context.Background(), "not a valid ][ expression")
	require.Error(t, err)
	assert.True(t, errorsx.IsValidation(err))
	assert.Equal(t, "query", errorsx.GetField(err))
}

func TestOrderWorksService_GetJobsSourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockOrderWorksSource(ctrl)
	source.EXPECT().GetJobs(gomock.Any()).Return(nil, errorsx.Unavailable("no channel"))

	svc := NewOrderWorksService(OrderWorksServiceOptions{Source: source})

	_, err := svc.GetJobs(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errorsx.IsUnavailable(err))
}
