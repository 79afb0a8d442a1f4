package domain

// ModelType distinguishes free-tier models from paid ones.
type ModelType string

const (
	ModelTypeFree ModelType = "free"
	ModelTypePro  ModelType = "pro"
)

// Sentiment is the three-way classification of a provider response.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ProviderResponse is the common shape every provider adapter produces.
// When Err is set, Text still carries a human-readable fallback message so
// downstream code can treat failed and successful responses uniformly.
type ProviderResponse struct {
	Text      string    `json:"text"`
	Model     string    `json:"model"`
	ModelType ModelType `json:"modelType"`
	Err       error     `json:"-"`
}

// Failed reports whether the response came from a failed provider call.
func (r ProviderResponse) Failed() bool {
	return r.Err != nil
}

// Usable reports whether the response should participate in scoring.
// A failed call with a non-empty fallback text still counts as usable;
// only error-and-empty-text responses are discarded.
func (r ProviderResponse) Usable() bool {
	return r.Err == nil || r.Text != ""
}

// ScoringInput is one (text, brand) pair fed to the scoring engine.
type ScoringInput struct {
	Text  string
	Brand string
}

// Breakdown holds the four weighted sub-scores. The field maxima sum to 100.
type Breakdown struct {
	Recommendation int `json:"recommendation"` // 0-40
	Sentiment      int `json:"sentiment"`      // 0-30
	Prominence     int `json:"prominence"`     // 0-20
	Accuracy       int `json:"accuracy"`       // 0-10
}

// Sum returns the total of the four sub-scores.
func (b Breakdown) Sum() int {
	return b.Recommendation + b.Sentiment + b.Prominence + b.Accuracy
}

// ScoreResult is the aggregate visibility score with its breakdown.
type ScoreResult struct {
	Score     int       `json:"score"` // 0-100
	Breakdown Breakdown `json:"breakdown"`
}

// ModelResponse is the per-provider entry returned to API clients.
type ModelResponse struct {
	Model         string    `json:"model"`
	ModelType     ModelType `json:"modelType"`
	Text          string    `json:"text"`
	Sentiment     Sentiment `json:"sentiment"`
	MentionsCount int       `json:"mentionsCount"`
}
