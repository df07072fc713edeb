package google

import (
	"testing"
	"time"
)

func TestMapV1Review(t *testing.T) {
	r, ok := mapV1Review(map[string]any{
		"rating":       5.0,
		"originalText": map[string]any{"text": "原文"},
		"text":         map[string]any{"text": "translated"},
		"publishTime":  "2024-05-01T10:00:00Z",
	})
	if !ok {
		t.Fatal("expected review")
	}
	if r.Rating != 5 || r.Text != "原文" {
		t.Fatalf("review: %+v", r)
	}
	if !r.CreatedAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("created at: %v", r.CreatedAt)
	}
}

func TestMapV1ReviewFallsBackToTranslatedText(t *testing.T) {
	r, ok := mapV1Review(map[string]any{
		"rating": 3.0,
		"text":   map[string]any{"text": "translated only"},
	})
	if !ok || r.Text != "translated only" {
		t.Fatalf("review: %+v ok=%v", r, ok)
	}
	// missing publishTime falls back to roughly now
	if time.Since(r.CreatedAt) > time.Minute {
		t.Fatalf("created at: %v", r.CreatedAt)
	}
}

func TestMapV1ReviewRejectsBadRatings(t *testing.T) {
	if _, ok := mapV1Review(map[string]any{"text": map[string]any{"text": "no rating"}}); ok {
		t.Fatal("missing rating should be dropped")
	}
	if _, ok := mapV1Review(map[string]any{"rating": 0.0}); ok {
		t.Fatal("rating 0 should be dropped")
	}
	if _, ok := mapV1Review(map[string]any{"rating": 6.0}); ok {
		t.Fatal("rating 6 should be dropped")
	}
}

func TestMapDetailsReviews(t *testing.T) {
	details := map[string]any{
		"reviews": []any{
			map[string]any{"rating": 4.0, "text": "良い", "time": 1704067200.0},
			map[string]any{"text": "no rating"},
			"not a map",
		},
	}
	out := mapDetailsReviews(details)
	if len(out) != 1 {
		t.Fatalf("reviews: %+v", out)
	}
	if out[0].Rating != 4 || out[0].Text != "良い" {
		t.Fatalf("review: %+v", out[0])
	}
}

func TestLookupHelpers(t *testing.T) {
	m := map[string]any{
		"a": map[string]any{"b": "deep"},
		"n": "4.5",
		"i": 7.0,
	}
	if got := lookupStr(m, "a.b"); got != "deep" {
		t.Fatalf("lookupStr: %q", got)
	}
	if got := lookupStr(m, "a.missing"); got != "" {
		t.Fatalf("lookupStr missing: %q", got)
	}
	if f := floatAt(m, "n"); f == nil || *f != 4.5 {
		t.Fatalf("floatAt: %v", f)
	}
	if n := intAt(m, "i"); n == nil || *n != 7 {
		t.Fatalf("intAt: %v", n)
	}
	if n := intAt(m, "nope"); n != nil {
		t.Fatalf("intAt missing: %v", n)
	}
}
