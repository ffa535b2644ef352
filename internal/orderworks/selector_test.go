package orderworks

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

type fakeReader struct {
	jobs  []model.OrderWorksJob
	err   error
	calls int
}

func (f *fakeReader) Fetch(ctx context.Context, limit int) ([]model.OrderWorksJob, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

type fakeLister struct {
	configured bool
	baseURL    string
	jobs       []model.OrderWorksJob
	err        error
	calls      int
}

func (f *fakeLister) IsConfigured() bool { return f.configured }
func (f *fakeLister) BaseURL() string    { return f.baseURL }

func (f *fakeLister) ListJobs(ctx context.Context, params url.Values) ([]model.OrderWorksJob, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func sampleJobs(id string) []model.OrderWorksJob {
	return []model.OrderWorksJob{model.NormalizeOrderWorksJob(map[string]any{"id": id})}
}

func TestSourceGetJobsPrefersDatabase(t *testing.T) {
	reader := &fakeReader{jobs: sampleJobs("db-1")}
	client := &fakeLister{configured: true, baseURL: "https://orderworks.example.com", jobs: sampleJobs("remote-1")}
	src := NewSource(SourceOptions{Reader: reader, Client: client, DisplayBaseURL: "https://display.example.com"})

	result, err := src.GetJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "db-1", result.Jobs[0]["id"])
	assert.Equal(t, "https://display.example.com", result.BaseURL)
	assert.Zero(t, client.calls)
}

func TestSourceGetJobsFallsBackWhenUnavailable(t *testing.T) {
	reader := &fakeReader{err: errorsx.Unavailable("no tables")}
	client := &fakeLister{configured: true, baseURL: "https://orderworks.example.com", jobs: sampleJobs("remote-1")}
	src := NewSource(SourceOptions{Reader: reader, Client: client})

	result, err := src.GetJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "remote-1", result.Jobs[0]["id"])
	assert.Equal(t, "https://orderworks.example.com", result.BaseURL)
	assert.Equal(t, 1, reader.calls)
	assert.Equal(t, 1, client.calls)
}

func TestSourceGetJobsNoFallbackOnOtherErrors(t *testing.T) {
	reader := &fakeReader{err: errorsx.Internal("bad scan")}
	client := &fakeLister{configured: true, jobs: sampleJobs("remote-1")}
	src := NewSource(SourceOptions{Reader: reader, Client: client})

	_, err := src.GetJobs(context.Background())
	require.Error(t, err)
	assert.Equal(t, errorsx.ErrCodeInternal, errorsx.GetCode(err))
	assert.Zero(t, client.calls)
}

func TestSourceGetJobsUnavailableWhenRemoteUnconfigured(t *testing.T) {
	reader := &fakeReader{err: errorsx.Unavailable("no tables")}
	client := &fakeLister{configured: false}
	src := NewSource(SourceOptions{Reader: reader, Client: client})

	_, err := src.GetJobs(context.Background())
	require.Error(t, err)
	assert.True(t, errorsx.IsUnavailable(err))
	assert.Zero(t, client.calls)
}

func TestSourceGetJobsRemoteOnlyWhenNoReader(t *testing.T) {
	client := &fakeLister{configured: true, baseURL: "https://orderworks.example.com", jobs: sampleJobs("remote-1")}
	src := NewSource(SourceOptions{Client: client})

	result, err := src.GetJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "remote-1", result.Jobs[0]["id"])
	assert.Equal(t, "https://orderworks.example.com", result.BaseURL)
}

func TestSourceGetJobsNotConfiguredWhenNothingWired(t *testing.T) {
	src := NewSource(SourceOptions{})

	_, err := src.GetJobs(context.Background())
	require.Error(t, err)
	assert.True(t, errorsx.IsNotConfigured(err))
}

func TestSourceGetJobsRemoteErrorPropagates(t *testing.T) {
	reader := &fakeReader{err: errorsx.Unavailable("no tables")}
	client := &fakeLister{configured: true, err: errorsx.Authentication("login rejected")}
	src := NewSource(SourceOptions{Reader: reader, Client: client})

	_, err := src.GetJobs(context.Background())
	require.Error(t, err)
	assert.True(t, errorsx.IsAuthentication(err))
}
