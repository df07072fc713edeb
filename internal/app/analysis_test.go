package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sagicheck/internal/app"
	"sagicheck/internal/domain"
)

// ---- fakes ----

type fakePlaces struct {
	place      domain.PlaceData
	err        error
	gotID      string
	gotMaxRevs int
}

func (f *fakePlaces) FetchPlace(ctx context.Context, placeID string, maxReviews int) (domain.PlaceData, error) {
	f.gotID = placeID
	f.gotMaxRevs = maxReviews
	if f.err != nil {
		return domain.PlaceData{}, f.err
	}
	return f.place, nil
}

// ---- tests ----

func TestAnalyzePlaceScoresFetchedSnapshot(t *testing.T) {
	rating := 4.8
	var reviews []domain.Review
	for i := 0; i < 25; i++ {
		reviews = append(reviews, domain.Review{
			Rating:    5,
			Text:      "最高",
			CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		})
	}
	fake := &fakePlaces{place: domain.PlaceData{
		PlaceID: "ChIJ123", Name: "焼肉きらびやか", Rating: &rating, Reviews: reviews,
	}}
	svc := app.NewAnalysisService(fake, 100)

	res, err := svc.AnalyzePlace(context.Background(), "ChIJ123", domain.AnalyzeRequest{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if fake.gotID != "ChIJ123" || fake.gotMaxRevs != 100 {
		t.Fatalf("client called with (%q,%d)", fake.gotID, fake.gotMaxRevs)
	}
	if res.SakuraScore < 70 || res.RiskLabel != domain.RiskHigh {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAnalyzePlacePropagatesFetchError(t *testing.T) {
	boom := errors.New("upstream down")
	svc := app.NewAnalysisService(&fakePlaces{err: boom}, 100)

	_, err := svc.AnalyzePlace(context.Background(), "ChIJ123", domain.AnalyzeRequest{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestNewAnalysisServiceDefaultsMaxReviews(t *testing.T) {
	fake := &fakePlaces{}
	svc := app.NewAnalysisService(fake, 0)
	_, _ = svc.AnalyzePlace(context.Background(), "x", domain.AnalyzeRequest{})
	if fake.gotMaxRevs != 100 {
		t.Fatalf("max reviews default: got %d", fake.gotMaxRevs)
	}
}
