package scoring

import (
	"math"

	"sagicheck/internal/domain"
)

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// each term is clamped to its own sub-range; only the sum gets the final
// [0,100] clamp
func sakuraScore(sig domain.AnalysisSignals) int {
	s := 0.0
	s += clamp(sig.Short5Ratio*100, 0, 40)
	s += clamp(sig.Burst7DayRatio*100, 0, 25)
	if sig.RatingDiff != nil && *sig.RatingDiff > 0 {
		s += clamp(*sig.RatingDiff*15, 0, 20)
	}
	if sig.TabelogMissing {
		s += 5
	}
	if sig.NameSimilarity != nil {
		s += clamp((1-*sig.NameSimilarity)*20, 0, 15)
	}
	// unnaturally clean rating history at scale
	if sig.TotalReviews >= 20 && sig.LowStarRatio < 0.1 {
		s += 10
	}
	return finalScore(s)
}

func fraudScore(sig domain.AnalysisSignals) int {
	f := clamp(sig.FraudKeywordRatio*200, 0, 90)
	if sig.TotalReviews >= 10 && sig.LowStarRatio >= 0.3 {
		f += 10
	}
	return finalScore(f)
}

func finalScore(s float64) int {
	return int(clamp(math.Round(s), 0, 100))
}

func riskLabel(sakura, fraud int) domain.RiskLabel {
	switch {
	case sakura >= 70 || fraud >= 70:
		return domain.RiskHigh
	case sakura >= 40 || fraud >= 40:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
