// Package scoring converts free-text LLM responses about a brand into a
// bounded 0-100 visibility score. Every function here is pure and
// deterministic: the same (text, brand) inputs always yield the same score.
package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/kprsnt/brandscore/internal/domain"
)

// Sub-score maxima. They sum to 100.
const (
	MaxRecommendation = 40
	MaxSentiment      = 30
	MaxProminence     = 20
	MaxAccuracy       = 10
)

// RecommendationKeywords signal that a response is recommending something.
// Matched case-insensitively as substrings.
var RecommendationKeywords = []string{
	"best",
	"recommend",
	"top",
	"leading",
	"excellent",
	"great choice",
}

// scorePositiveWords and scoreNegativeWords drive the sentiment sub-score.
// They are intentionally shorter than the classification lists below: the
// sub-score counts hits, while classification only thresholds them.
var scorePositiveWords = []string{
	"excellent",
	"great",
	"outstanding",
	"innovative",
	"trusted",
	"quality",
	"popular",
	"successful",
}

var scoreNegativeWords = []string{
	"poor",
	"bad",
	"controversial",
	"struggling",
	"failing",
	"criticized",
}

// classifyPositiveWords and classifyNegativeWords drive AnalyzeSentiment.
var classifyPositiveWords = []string{
	"excellent",
	"great",
	"outstanding",
	"innovative",
	"trusted",
	"quality",
	"popular",
	"leading",
	"best",
	"recommend",
}

var classifyNegativeWords = []string{
	"poor",
	"bad",
	"controversial",
	"struggling",
	"failing",
	"criticized",
	"problem",
	"issue",
	"concern",
}

// specificitySignals mark a response as knowledgeable about the brand.
var specificitySignals = []string{
	"founded",
	"headquarter",
	"products",
	"services",
}

// yearPattern matches any four consecutive digits, typically a year.
var yearPattern = regexp.MustCompile(`\d{4}`)

// prominenceWindow is how far into the text a brand mention still counts
// as prominent placement.
const prominenceWindow = 500

// AnalyzeSentiment classifies text as positive, neutral, or negative by
// counting occurrences of fixed word sets. A classification requires the
// winning side to lead by more than one hit; otherwise the text is neutral.
func AnalyzeSentiment(text string) domain.Sentiment {
	lower := strings.ToLower(text)

	positive := countHits(lower, classifyPositiveWords)
	negative := countHits(lower, classifyNegativeWords)

	switch {
	case positive > negative+1:
		return domain.SentimentPositive
	case negative > positive+1:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// CountBrandMentions counts case-insensitive, non-overlapping literal
// occurrences of brand in text.
func CountBrandMentions(text, brand string) int {
	if brand == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(brand))
}

// CalculateScore computes the aggregate visibility score for a set of
// responses. Each breakdown field is the rounded mean of the per-response
// sub-scores; the total is capped at 100. An empty input yields a zero
// result, which is a defined outcome rather than an error.
func CalculateScore(responses []domain.ScoringInput) domain.ScoreResult {
	if len(responses) == 0 {
		return domain.ScoreResult{}
	}

	var totalRecommendation, totalSentiment, totalProminence, totalAccuracy int

	for _, input := range responses {
		lowerText := strings.ToLower(input.Text)
		lowerBrand := strings.ToLower(input.Brand)

		totalRecommendation += recommendationScore(lowerText, lowerBrand)
		totalSentiment += sentimentScore(lowerText)
		totalProminence += prominenceScore(lowerText, lowerBrand)
		totalAccuracy += accuracyScore(input.Text, lowerText)
	}

	count := len(responses)
	breakdown := domain.Breakdown{
		Recommendation: roundedMean(totalRecommendation, count),
		Sentiment:      roundedMean(totalSentiment, count),
		Prominence:     roundedMean(totalProminence, count),
		Accuracy:       roundedMean(totalAccuracy, count),
	}

	score := breakdown.Sum()
	if score > 100 {
		score = 100
	}

	return domain.ScoreResult{Score: score, Breakdown: breakdown}
}

// recommendationScore awards 40 when a recommendation keyword appears
// alongside the brand, 20 for a keyword alone, and a baseline 10 otherwise.
func recommendationScore(lowerText, lowerBrand string) int {
	hasKeyword := false
	for _, kw := range RecommendationKeywords {
		if strings.Contains(lowerText, kw) {
			hasKeyword = true
			break
		}
	}

	switch {
	case hasKeyword && strings.Contains(lowerText, lowerBrand):
		return MaxRecommendation
	case hasKeyword:
		return 20
	default:
		return 10
	}
}

// sentimentScore starts at the neutral midpoint of 15 and moves 5 points
// per net positive or negative word hit, clamped to [0, 30].
func sentimentScore(lowerText string) int {
	ratio := countHits(lowerText, scorePositiveWords) - countHits(lowerText, scoreNegativeWords)
	return clamp(15+ratio*5, 0, MaxSentiment)
}

// prominenceScore rewards mention frequency plus an early-mention bonus.
func prominenceScore(lowerText, lowerBrand string) int {
	mentions := 0
	if lowerBrand != "" {
		mentions = strings.Count(lowerText, lowerBrand)
	}

	window := lowerText
	if len(window) > prominenceWindow {
		window = window[:prominenceWindow]
	}

	bonus := 0
	if lowerBrand != "" && strings.Contains(window, lowerBrand) {
		bonus = 8
	}

	return clamp(mentions*3+bonus, 0, MaxProminence)
}

// accuracyScore gives full marks when the response carries a specificity
// signal (founding facts, product detail, or a four-digit year), half otherwise.
func accuracyScore(text, lowerText string) int {
	for _, signal := range specificitySignals {
		if strings.Contains(lowerText, signal) {
			return MaxAccuracy
		}
	}
	if yearPattern.MatchString(text) {
		return MaxAccuracy
	}
	return 5
}

// countHits counts how many words from the set occur in lower at least once.
func countHits(lower string, words []string) int {
	hits := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			hits++
		}
	}
	return hits
}

func roundedMean(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
