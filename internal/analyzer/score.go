package analyzer

import (
	"math"

	"news_analyzer/internal/models"
)

const (
	trustedThreshold      = 70
	questionableThreshold = 40
)

// TrustScore aggregates the weighted indicators into a 0-100 score. The
// function is weight-agnostic: any positive weight set works, not just the
// default that sums to 100. The quotient is rounded half away from zero.
func TrustScore(indicators []models.AnalysisIndicator) (int, error) {
	totalWeight, earnedWeight := 0, 0
	for _, ind := range indicators {
		totalWeight += ind.Weight
		if ind.Present {
			earnedWeight += ind.Weight
		}
	}

	if totalWeight == 0 {
		return 0, ErrNoIndicators
	}

	return int(math.Round(float64(earnedWeight) / float64(totalWeight) * 100)), nil
}

// TrustLevelFor maps a score to its level. Bands are inclusive on the lower
// bound: >= 70 trusted, >= 40 questionable, below that suspicious.
func TrustLevelFor(score int) string {
	switch {
	case score >= trustedThreshold:
		return models.TrustLevelTrusted
	case score >= questionableThreshold:
		return models.TrustLevelQuestionable
	default:
		return models.TrustLevelSuspicious
	}
}
