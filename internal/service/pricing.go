package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"github.com/stockworks/stockworks-api/internal/core"
	"github.com/stockworks/stockworks-api/internal/domain/model"
)

const defaultPricingSnapshotTTL = 10 * time.Minute

// PricingServiceOptions groups dependencies for PricingService.
type PricingServiceOptions struct {
	MaterialRepo core.MaterialRepository
	Cache        core.CacheRepository
	// SnapshotTTL bounds how long a cached material snapshot is trusted.
	SnapshotTTL time.Duration
	Logger      *slog.Logger
}

// PricingService computes print-job quotes from material data. Material
// lookups go through the cache when one is wired; a stale or missing cache
// never fails a quote, it only costs a database read.
type PricingService struct {
	materials core.MaterialRepository
	cache     core.CacheRepository
	ttl       time.Duration
	logger    *slog.Logger
}

// NewPricingService constructs a new PricingService.
func NewPricingService(opts PricingServiceOptions) *PricingService {
	ttl := opts.SnapshotTTL
	if ttl <= 0 {
		ttl = defaultPricingSnapshotTTL
	}
	logger := opts.Logger
	if logger != nil {
		logger = logger.With("component", "pricing_service")
	}
	return &PricingService{
		materials: opts.MaterialRepo,
		cache:     opts.Cache,
		ttl:       ttl,
		logger:    logger,
	}
}

// Quote computes a price quote for a print job.
func (s *PricingService) Quote(ctx context.Context, req *model.PricingRequest) (*model.PricingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	material, err := s.lookupMaterial(ctx, req.MaterialID)
	if err != nil {
		return nil, err
	}

	materialCost := round2(req.WeightGrams * material.PricePerGram)
	machineCost := round2(req.PrintTimeHours * req.MachineHourRate)
	laborCost := round2(req.LaborCost)
	subtotal := round2(materialCost + machineCost + laborCost)
	marginAmount := round2(subtotal * req.MarginPct / 100)
	total := round2(subtotal + marginAmount)

	return &model.PricingResponse{
		Pricing: model.PricingBreakdown{
			MaterialCost: materialCost,
			MachineCost:  machineCost,
			LaborCost:    laborCost,
			Subtotal:     subtotal,
			MarginAmount: marginAmount,
			TotalPrice:   total,
		},
		MaterialSnapshot: material,
	}, nil
}

// lookupMaterial returns the material snapshot through the cache when present.
func (s *PricingService) lookupMaterial(ctx context.Context, id string) (*model.Material, error) {
	key := materialSnapshotKey(id)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
			var material model.Material
			if unmarshalErr := json.Unmarshal(cached, &material); unmarshalErr == nil {
				return &material, nil
			}
			// Corrupt entry; fall through to the database and overwrite it.
		} else if err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "pricing snapshot cache read failed", "error", err)
		}
	}

	material, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, marshalErr := json.Marshal(material); marshalErr == nil {
			if setErr := s.cache.Set(ctx, key, encoded, s.ttl); setErr != nil && s.logger != nil {
				s.logger.WarnContext(ctx, "pricing snapshot cache write failed", "error", setErr)
			}
		}
	}
	return material, nil
}

func materialSnapshotKey(id string) string {
	return "pricing:material:" + id
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
