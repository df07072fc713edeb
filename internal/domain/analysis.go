package domain

type RiskLabel string

const (
	RiskLow    RiskLabel = "low"
	RiskMedium RiskLabel = "medium"
	RiskHigh   RiskLabel = "high"
)

// AnalyzeRequest carries the user-supplied cross-reference data. Every tabelog
// field is independently optional; partial data is valid.
type AnalyzeRequest struct {
	GoogleMapsURL      string   `json:"google_maps_url"`
	TabelogRating      *float64 `json:"tabelog_rating"`
	TabelogReviewCount *int     `json:"tabelog_review_count"`
	TabelogName        *string  `json:"tabelog_name"`
}

// AnalysisSignals holds the raw extractor outputs. Ratio signals are always in
// [0,1]; the pointer fields are nil exactly when their inputs were absent.
type AnalysisSignals struct {
	TotalReviews      int      `json:"total_reviews"`
	Short5Ratio       float64  `json:"short_5_ratio"`
	Burst7DayRatio    float64  `json:"burst_7day_ratio"`
	RatingDiff        *float64 `json:"rating_diff_google_minus_tabelog"`
	TabelogMissing    bool     `json:"tabelog_missing"`
	NameSimilarity    *float64 `json:"name_similarity_google_vs_tabelog"`
	LowStarRatio      float64  `json:"low_star_ratio"`
	FraudKeywordRatio float64  `json:"fraud_keyword_ratio"`
}

type FraudKeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// AnalysisResponse is fully determined by (PlaceData, AnalyzeRequest).
type AnalysisResponse struct {
	SakuraScore   int                 `json:"sakura_score"`
	FraudScore    int                 `json:"fraud_score"`
	RiskLabel     RiskLabel           `json:"risk_label"`
	Signals       AnalysisSignals     `json:"signals"`
	FraudKeywords []FraudKeywordCount `json:"fraud_keywords"`
	Comments      []string            `json:"comments_ja"`
}
