package scoring_test

import (
	"testing"

	"github.com/kprsnt/brandscore/internal/domain"
	"github.com/kprsnt/brandscore/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTips_NeverExceedsFour(t *testing.T) {
	// Every field below its threshold fires a tip; the closing tip would be
	// the fifth entry and must be truncated away.
	tips := scoring.GenerateTips(10, domain.Breakdown{
		Recommendation: 10,
		Sentiment:      5,
		Prominence:     3,
		Accuracy:       5,
	}, "Acme")

	require.Len(t, tips, 4)
	assert.Contains(t, tips[0], "Acme")
	assert.Contains(t, tips[1], "positive reviews")
	assert.Contains(t, tips[2], "visibility")
	assert.Contains(t, tips[3], "founding date")
}

func TestGenerateTips_ClosingTipByScoreBand(t *testing.T) {
	strong := domain.Breakdown{Recommendation: 40, Sentiment: 30, Prominence: 20, Accuracy: 10}

	tests := []struct {
		name  string
		score int
		want  string
	}{
		{name: "excellent band", score: 85, want: "Great AI visibility! Acme is well-represented across AI models."},
		{name: "good band", score: 65, want: "Good foundation. Focus on the areas above to improve further."},
		{name: "moderate band", score: 45, want: "Moderate visibility. Consider a content strategy focused on AI training data presence."},
		{name: "low band", score: 20, want: "Low AI visibility. Your brand may need more online presence and structured content."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tips := scoring.GenerateTips(tt.score, strong, "Acme")

			require.Len(t, tips, 1, "a strong breakdown fires no improvement tips")
			assert.Equal(t, tt.want, tips[0])
		})
	}
}

func TestGenerateTips_ClosingTipFollowsImprovementTips(t *testing.T) {
	// Three improvement tips leave a slot for the closing tip.
	tips := scoring.GenerateTips(50, domain.Breakdown{
		Recommendation: 10,
		Sentiment:      10,
		Prominence:     20,
		Accuracy:       5,
	}, "Acme")

	require.Len(t, tips, 4)
	assert.Contains(t, tips[3], "Moderate visibility")
}

func TestGenerateTips_ThresholdBoundaries(t *testing.T) {
	// Fields exactly at their thresholds do not fire tips.
	tips := scoring.GenerateTips(64, domain.Breakdown{
		Recommendation: 25,
		Sentiment:      20,
		Prominence:     12,
		Accuracy:       7,
	}, "Acme")

	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "Good foundation")
}
