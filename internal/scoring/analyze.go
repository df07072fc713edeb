// Package scoring turns one place snapshot plus optional cross-source metadata
// into bounded fake-review ("sakura") and fraud risk scores. Every function in
// the pipeline is pure and total: absent optional inputs degrade to nil or
// zero, never to an error.
package scoring

import "sagicheck/internal/domain"

// AnalyzePlace runs the full pipeline: signal extraction, score composition,
// risk classification, and comment generation. Deterministic: equal inputs
// produce equal responses.
func AnalyzePlace(place domain.PlaceData, req domain.AnalyzeRequest) domain.AnalysisResponse {
	reviews := place.Reviews
	total := len(reviews)

	fraudRatio, fraudCounts := fraudStats(reviews, total)
	sig := domain.AnalysisSignals{
		TotalReviews:      total,
		Short5Ratio:       shortFiveRatio(reviews, total),
		Burst7DayRatio:    burstRatio(reviews, total),
		RatingDiff:        ratingDiff(place.Rating, req.TabelogRating),
		TabelogMissing:    req.TabelogRating == nil && req.TabelogReviewCount == nil,
		NameSimilarity:    nameSimilarity(place.Name, req.TabelogName),
		LowStarRatio:      lowStarRatio(reviews, total),
		FraudKeywordRatio: fraudRatio,
	}

	sakura := sakuraScore(sig)
	fraud := fraudScore(sig)

	return domain.AnalysisResponse{
		SakuraScore:   sakura,
		FraudScore:    fraud,
		RiskLabel:     riskLabel(sakura, fraud),
		Signals:       sig,
		FraudKeywords: fraudCounts,
		Comments:      buildComments(sig),
	}
}
