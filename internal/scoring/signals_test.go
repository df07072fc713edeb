package scoring

import (
	"math"
	"testing"
	"time"

	"sagicheck/internal/domain"
)

var testBase = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func rv(rating int, text string, at time.Time) domain.Review {
	return domain.Review{Rating: rating, Text: text, CreatedAt: at}
}

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestShortFiveRatio(t *testing.T) {
	if got := shortFiveRatio(nil, 0); got != 0 {
		t.Fatalf("empty: got %v", got)
	}
	reviews := []domain.Review{
		rv(5, "最高", testBase),
		rv(5, "とても素晴らしい体験でした。また必ず行きたいです", testBase),
		rv(4, "短い", testBase),
		rv(5, "", testBase),
	}
	// two 5-star reviews with <=15 runes (one of them blank), over four total
	approx(t, shortFiveRatio(reviews, len(reviews)), 0.5)
}

func TestShortFiveRatioCountsRunesAfterNormalization(t *testing.T) {
	// 15 full-width chars fold to 15 runes, still short
	reviews := []domain.Review{rv(5, "ＡＢＣＤＥＦＧＨＩＪＫＬＭＮＯ", testBase)}
	approx(t, shortFiveRatio(reviews, 1), 1)
}

func TestBurstRatioNeedsFiveReviews(t *testing.T) {
	reviews := []domain.Review{
		rv(5, "", testBase), rv(5, "", testBase), rv(5, "", testBase), rv(5, "", testBase),
	}
	if got := burstRatio(reviews, len(reviews)); got != 0 {
		t.Fatalf("under 5 reviews: got %v, want 0", got)
	}
}

func TestBurstRatioSlidingWindow(t *testing.T) {
	var reviews []domain.Review
	// six reviews inside one day
	for i := 0; i < 6; i++ {
		reviews = append(reviews, rv(5, "", testBase.Add(time.Duration(i)*time.Hour)))
	}
	// four spread far apart
	for _, d := range []int{30, 60, 90, 120} {
		reviews = append(reviews, rv(4, "", testBase.AddDate(0, 0, -d)))
	}
	approx(t, burstRatio(reviews, len(reviews)), 0.6)
}

func TestBurstRatioWindowIsInclusive(t *testing.T) {
	// exactly 7 days apart still shares a window
	reviews := []domain.Review{
		rv(5, "", testBase),
		rv(5, "", testBase.Add(7*24*time.Hour)),
		rv(3, "", testBase.AddDate(0, 0, -100)),
		rv(3, "", testBase.AddDate(0, 0, -200)),
		rv(3, "", testBase.AddDate(0, 0, -300)),
	}
	approx(t, burstRatio(reviews, len(reviews)), 0.4)
}

func TestBurstRatioSkipsMissingTimestamps(t *testing.T) {
	reviews := []domain.Review{
		rv(5, "", testBase),
		rv(5, "", testBase.Add(time.Hour)),
		rv(5, "", testBase.Add(2*time.Hour)),
		{Rating: 5}, // zero timestamp
		{Rating: 5},
	}
	approx(t, burstRatio(reviews, len(reviews)), 0.6)
}

func TestRatingDiff(t *testing.T) {
	g, tb := 4.8, 3.2
	if d := ratingDiff(nil, &tb); d != nil {
		t.Fatalf("nil google rating: got %v", *d)
	}
	if d := ratingDiff(&g, nil); d != nil {
		t.Fatalf("nil tabelog rating: got %v", *d)
	}
	d := ratingDiff(&g, &tb)
	if d == nil {
		t.Fatal("expected a diff")
	}
	approx(t, *d, 1.6)
}

func TestNameSimilarity(t *testing.T) {
	if s := nameSimilarity("焼肉きらびやか", nil); s != nil {
		t.Fatalf("absent name: got %v", *s)
	}
	empty := ""
	if s := nameSimilarity("焼肉きらびやか", &empty); s != nil {
		t.Fatalf("empty name: got %v", *s)
	}
	// both names normalize to empty -> not comparable
	suffixOnly := "（株）"
	if s := nameSimilarity("株式会社", &suffixOnly); s != nil {
		t.Fatalf("suffix-only names: got %v", *s)
	}

	same := "株式会社 焼肉きらびやか"
	s := nameSimilarity("焼肉きらびやか", &same)
	if s == nil {
		t.Fatal("expected similarity")
	}
	approx(t, *s, 1)

	other := "ラーメン大勝軒"
	s = nameSimilarity("焼肉きらびやか", &other)
	if s == nil || *s >= 1 || *s < 0 {
		t.Fatalf("different names: got %v", s)
	}
}

func TestLowStarRatio(t *testing.T) {
	if got := lowStarRatio(nil, 0); got != 0 {
		t.Fatalf("empty: got %v", got)
	}
	reviews := []domain.Review{
		rv(1, "", testBase), rv(2, "", testBase), rv(3, "", testBase), rv(5, "", testBase),
	}
	approx(t, lowStarRatio(reviews, len(reviews)), 0.5)
}

func TestFraudStats(t *testing.T) {
	ratio, counts := fraudStats(nil, 0)
	if ratio != 0 || len(counts) != 0 {
		t.Fatalf("empty: got %v %v", ratio, counts)
	}

	reviews := []domain.Review{
		rv(1, "完全に詐欺でした", testBase),
		rv(1, "詐欺に近いぼったくり", testBase), // two keywords, one hit
		rv(2, "Total Rip-Off experience", testBase),
		rv(4, "おいしかった", testBase),
	}
	ratio, counts = fraudStats(reviews, len(reviews))
	approx(t, ratio, 0.75)

	want := map[string]int{"詐欺": 2, "ぼったくり": 1, "rip-off": 1}
	if len(counts) != len(want) {
		t.Fatalf("counts: got %+v", counts)
	}
	for _, c := range counts {
		if want[c.Keyword] != c.Count {
			t.Errorf("keyword %q: got %d, want %d", c.Keyword, c.Count, want[c.Keyword])
		}
	}
	// emission order follows the keyword list
	if counts[0].Keyword != "詐欺" || counts[1].Keyword != "ぼったくり" || counts[2].Keyword != "rip-off" {
		t.Fatalf("order: got %+v", counts)
	}
}
