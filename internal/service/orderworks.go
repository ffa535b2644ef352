package service

import (
	"context"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/stockworks/stockworks-api/internal/core"
	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// OrderWorksServiceOptions groups dependencies for OrderWorksService.
type OrderWorksServiceOptions struct {
	Source    core.OrderWorksSource
	Evaluator JMESPathEvaluator
}

// OrderWorksService exposes synchronized OrderWorks jobs to consumers, with
// an optional JMESPath projection over the uniform job records.
type OrderWorksService struct {
	source core.OrderWorksSource
	jems   JMESPathEvaluator
}

// NewOrderWorksService constructs a new OrderWorksService.
func NewOrderWorksService(opts OrderWorksServiceOptions) *OrderWorksService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &OrderWorksService{source: opts.Source, jems: jems}
}

// JobsResponse is the consumer-facing job listing.
type JobsResponse struct {
	Jobs    any    `json:"jobs"`
	BaseURL string `json:"base_url"`
	Count   int    `json:"count"`
}

// GetJobs returns the current job list. A non-empty query is applied as a
// JMESPath projection over the job records; an invalid expression is a
// validation error, not a channel failure.
func (s *OrderWorksService) GetJobs(ctx context.Context, query string) (*JobsResponse, error) {
	result, err := s.source.GetJobs(ctx)
	if err != nil {
		return nil, err
	}

	resp := &JobsResponse{
		Jobs:    result.Jobs,
		BaseURL: result.BaseURL,
		Count:   len(result.Jobs),
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return resp, nil
	}

	if err := s.jems.Validate(query); err != nil {
		return nil, errorsx.ValidationField("query", "query is not a valid JMESPath expression")
	}

	projected, err := s.jems.Evaluate(query, toPlain(result.Jobs))
	if err != nil {
		return nil, errorsx.ValidationField("query", "query could not be evaluated against the job records")
	}
	resp.Jobs = projected
	if list, ok := projected.([]any); ok {
		resp.Count = len(list)
	}
	return resp, nil
}

// toPlain converts job records to plain maps so the JMESPath engine sees
// native JSON-like types.
func toPlain(jobs []model.OrderWorksJob) []any {
	out := make([]any, len(jobs))
	for i, job := range jobs {
		out[i] = map[string]any(job)
	}
	return out
}
