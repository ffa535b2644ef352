package orderworks

import (
	"context"
	"log/slog"

	"github.com/stockworks/stockworks-api/internal/core"
	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
	"github.com/stockworks/stockworks-api/internal/observability/statsd"
)

// SourceOptions groups dependencies for Source.
type SourceOptions struct {
	// Reader is the shared-database channel. Nil when no storage handle is
	// available, which sends every fetch straight to the remote channel.
	Reader core.DatabaseJobReader
	// Client is the authenticated remote channel. May be unconfigured.
	Client core.RemoteJobLister
	// DisplayBaseURL is surfaced alongside database-sourced results.
	DisplayBaseURL string
	// RowLimit bounds database reads. Defaults to DefaultRowLimit.
	RowLimit int
	Logger   *slog.Logger
	Metrics  statsd.Sink
}

// Source is the consumer-facing entry point for OrderWorks jobs. It prefers
// the shared-database channel and degrades to the admin API only when the
// database channel is unavailable.
type Source struct {
	reader         core.DatabaseJobReader
	client         core.RemoteJobLister
	displayBaseURL string
	rowLimit       int
	logger         *slog.Logger
	metrics        statsd.Sink
}

// NewSource constructs a Source.
func NewSource(opts SourceOptions) *Source {
	limit := opts.RowLimit
	if limit <= 0 {
		limit = DefaultRowLimit
	}
	logger := opts.Logger
	if logger != nil {
		logger = logger.With("component", "orderworks_source")
	}
	return &Source{
		reader:         opts.Reader,
		client:         opts.Client,
		displayBaseURL: opts.DisplayBaseURL,
		rowLimit:       limit,
		logger:         logger,
		metrics:        opts.Metrics,
	}
}

// GetJobs returns the job list from the first available channel along with
// the base URL of the system that served it.
func (s *Source) GetJobs(ctx context.Context) (*model.OrderWorksJobsResult, error) {
	var dbCause error

	if s.reader != nil {
		jobs, err := s.reader.Fetch(ctx, s.rowLimit)
		if err == nil {
			s.count("orderworks.jobs.db")
			return &model.OrderWorksJobsResult{Jobs: jobs, BaseURL: s.displayBaseURL}, nil
		}
		if !errorsx.IsUnavailable(err) {
			return nil, err
		}
		dbCause = err
		if s.logger != nil {
			s.logger.WarnContext(ctx, "database channel unavailable, considering fallback", "error", err)
		}
	}

	if s.client == nil || !s.client.IsConfigured() {
		if dbCause != nil {
			return nil, errorsx.Wrap(dbCause, errorsx.ErrCodeUnavailable,
				"OrderWorks database is unavailable and the admin API is not configured")
		}
		return nil, errorsx.NotConfigured("OrderWorks integration is not configured.")
	}

	jobs, err := s.client.ListJobs(ctx, nil)
	if err != nil {
		return nil, err
	}

	if dbCause != nil {
		s.count("orderworks.jobs.fallback")
	} else {
		s.count("orderworks.jobs.remote")
	}
	return &model.OrderWorksJobsResult{Jobs: jobs, BaseURL: s.client.BaseURL()}, nil
}

func (s *Source) count(name string) {
	if s.metrics != nil {
		s.metrics.Count(name, 1)
	}
}
