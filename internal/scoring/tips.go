package scoring

import (
	"fmt"

	"github.com/kprsnt/brandscore/internal/domain"
)

// Thresholds below which a breakdown field earns an improvement tip.
const (
	recommendationTipThreshold = 25
	sentimentTipThreshold      = 20
	prominenceTipThreshold     = 12
	accuracyTipThreshold       = 7
)

// maxTips caps the number of tips returned to API clients.
const maxTips = 4

// GenerateTips produces an ordered list of at most four actionable tips.
// Improvement tips for weak breakdown fields come first in a fixed order,
// followed by a single closing tip chosen by score band. When four
// improvement tips already fired, the closing tip is the one truncated away.
func GenerateTips(score int, breakdown domain.Breakdown, brand string) []string {
	tips := make([]string, 0, maxTips+1)

	if breakdown.Recommendation < recommendationTipThreshold {
		tips = append(tips, fmt.Sprintf("Create more content that positions %s as a top recommendation in your category.", brand))
	}
	if breakdown.Sentiment < sentimentTipThreshold {
		tips = append(tips, "Focus on highlighting positive reviews and success stories in your marketing content.")
	}
	if breakdown.Prominence < prominenceTipThreshold {
		tips = append(tips, "Increase brand visibility by being mentioned first in comparative content.")
	}
	if breakdown.Accuracy < accuracyTipThreshold {
		tips = append(tips, "Ensure your brand information (founding date, key facts) is widely available online.")
	}

	switch {
	case score >= 80:
		tips = append(tips, fmt.Sprintf("Great AI visibility! %s is well-represented across AI models.", brand))
	case score >= 60:
		tips = append(tips, "Good foundation. Focus on the areas above to improve further.")
	case score >= 40:
		tips = append(tips, "Moderate visibility. Consider a content strategy focused on AI training data presence.")
	default:
		tips = append(tips, "Low AI visibility. Your brand may need more online presence and structured content.")
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
