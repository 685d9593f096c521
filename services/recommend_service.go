package services

import (
	"context"
	"errors"

	"github.com/yukti-cloud/gpu-advisor/llm"
	"github.com/yukti-cloud/gpu-advisor/logging"
	"github.com/yukti-cloud/gpu-advisor/models"
	"go.uber.org/zap"
)

// ErrNoMatch signals that the constraint funnel came up empty. It is a
// normal outcome, returned together with the filter trace so the caller
// can show the user where their criteria ran dry.
var ErrNoMatch = errors.New("no GPUs found matching your criteria")

type RecommendService struct {
	Pricing PricingAPI
	LLM     CompletionAPI
}

func NewRecommendService(pricing PricingAPI, completion CompletionAPI) *RecommendService {
	return &RecommendService{Pricing: pricing, LLM: completion}
}

// Recommend runs the full pipeline: fetch the catalog for the requested
// region, apply the constraint funnel, hand the survivors to the LLM
// and parse its pick. On ErrNoMatch the trace is still valid; no LLM
// call is made in that case.
func (s *RecommendService) Recommend(ctx context.Context, criteria models.Criteria) (models.Recommendation, models.FilterTrace, error) {
	options, err := s.Pricing.FetchOptions(ctx, criteria.Region)
	if err != nil {
		return models.Recommendation{}, models.FilterTrace{}, err
	}

	survivors, trace := FilterOptions(options, criteria)
	logging.Log.Debug("filter funnel",
		zap.Int("total", trace.TotalOptions),
		zap.Int("after_os", trace.AfterOSFilter),
		zap.Int("after_region", trace.AfterRegionFilter),
		zap.Int("after_specs", trace.AfterSpecsFilter),
		zap.Int("after_budget", trace.AfterBudgetFilter),
	)
	if len(survivors) == 0 {
		return models.Recommendation{}, trace, ErrNoMatch
	}

	prompt := BuildRecommendationPrompt(survivors, criteria)
	reply, err := s.LLM.Complete(ctx, []llm.Message{
		{Role: "system", Content: RecommenderPersona},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return models.Recommendation{}, trace, err
	}

	rec, err := ParseRecommendation(reply)
	if err != nil {
		logging.Log.Warn("unparseable LLM reply", zap.Error(err))
		return models.Recommendation{}, trace, err
	}

	return rec, trace, nil
}
