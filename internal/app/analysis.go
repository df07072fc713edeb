package app

import (
	"context"
	"fmt"

	"sagicheck/internal/domain"
	"sagicheck/internal/scoring"
)

// AnalysisService glues the places port to the scoring core. It never retries;
// retry policy belongs to the client behind the port.
type AnalysisService struct {
	places     domain.PlacesClient
	maxReviews int
}

func NewAnalysisService(places domain.PlacesClient, maxReviews int) *AnalysisService {
	if maxReviews <= 0 {
		maxReviews = 100
	}
	return &AnalysisService{places: places, maxReviews: maxReviews}
}

// AnalyzePlace fetches one place snapshot and scores it. Any error is an
// upstream fetch failure; scoring itself cannot fail.
func (s *AnalysisService) AnalyzePlace(ctx context.Context, placeID string, req domain.AnalyzeRequest) (domain.AnalysisResponse, error) {
	place, err := s.places.FetchPlace(ctx, placeID, s.maxReviews)
	if err != nil {
		return domain.AnalysisResponse{}, fmt.Errorf("fetch place %s: %w", placeID, err)
	}
	return scoring.AnalyzePlace(place, req), nil
}
