package check

import (
	"context"
	"strings"
	"time"

	"github.com/kprsnt/brandscore/internal/domain"
	"github.com/kprsnt/brandscore/internal/prompt"
	"github.com/kprsnt/brandscore/internal/scoring"
)

// Mode selects which prompt a check sends upstream.
type Mode int

const (
	// ModeAnalysis asks each model what it knows about the brand.
	ModeAnalysis Mode = iota

	// ModeRecommendation asks each model for top brands in the category,
	// to see whether the brand comes up unprompted.
	ModeRecommendation
)

// Request describes one brand check. Brand and Category are assumed to be
// validated already.
type Request struct {
	Brand    string
	Category string
	Mode     Mode
}

// Result is the complete outcome of a brand check.
type Result struct {
	Brand         string                 `json:"brand"`
	Category      string                 `json:"category"`
	Score         int                    `json:"score"`
	Breakdown     domain.Breakdown       `json:"breakdown"`
	Responses     []domain.ModelResponse `json:"responses"`
	Tips          []string               `json:"tips"`
	ModelsQueried int                    `json:"modelsQueried"`
	Timestamp     time.Time              `json:"timestamp"`
}

// Service runs brand checks end to end: fan out, analyze, score, advise.
type Service struct {
	orchestrator *Orchestrator
	now          func() time.Time
}

// NewService wires a Service over an orchestrator.
func NewService(orchestrator *Orchestrator) *Service {
	return &Service{
		orchestrator: orchestrator,
		now:          time.Now,
	}
}

// Check queries all providers and aggregates their answers into a scored
// result. Per-provider failures degrade the result; Check itself fails only
// when the orchestrator does.
func (s *Service) Check(ctx context.Context, req Request) (Result, error) {
	p := prompt.BrandAnalysis(req.Brand, req.Category)
	if req.Mode == ModeRecommendation {
		p = prompt.Recommendation(req.Brand, req.Category)
	}

	responses, err := s.orchestrator.Run(ctx, p)
	if err != nil {
		return Result{}, err
	}

	inputs := make([]domain.ScoringInput, 0, len(responses))
	modelResponses := make([]domain.ModelResponse, 0, len(responses))
	for _, r := range responses {
		inputs = append(inputs, domain.ScoringInput{
			Text:  r.Text,
			Brand: req.Brand,
		})
		modelResponses = append(modelResponses, domain.ModelResponse{
			Model:         r.Model,
			ModelType:     r.ModelType,
			Text:          r.Text,
			Sentiment:     scoring.AnalyzeSentiment(r.Text),
			MentionsCount: scoring.CountBrandMentions(r.Text, req.Brand),
		})
	}

	score := scoring.CalculateScore(inputs)

	return Result{
		Brand:         req.Brand,
		Category:      req.Category,
		Score:         score.Score,
		Breakdown:     score.Breakdown,
		Responses:     modelResponses,
		Tips:          scoring.GenerateTips(score.Score, score.Breakdown, req.Brand),
		ModelsQueried: len(responses),
		Timestamp:     s.now().UTC(),
	}, nil
}

// CacheKey returns the canonical result-cache key for a brand. Lookups are
// case-insensitive so "Tesla" and "tesla" share one entry.
func CacheKey(brand string) string {
	return "brand:" + strings.ToLower(strings.TrimSpace(brand))
}
