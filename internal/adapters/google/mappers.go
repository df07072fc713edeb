package google

import (
	"strconv"
	"strings"
	"time"

	"sagicheck/internal/domain"
)

/********** payload -> domain mapping **********/

func mapPlace(placeID string, details map[string]any, reviews []domain.Review) domain.PlaceData {
	return domain.PlaceData{
		PlaceID:          placeID,
		Name:             lookupStr(details, "name"),
		Rating:           floatAt(details, "rating"),
		UserRatingsTotal: intAt(details, "user_ratings_total"),
		Reviews:          reviews,
	}
}

// mapV1Review converts one Places v1 review. Rating is mandatory and must be a
// star value; anything else is dropped before it can reach the scoring core.
func mapV1Review(raw map[string]any) (domain.Review, bool) {
	rating, ok := starRating(floatAt(raw, "rating"))
	if !ok {
		return domain.Review{}, false
	}
	text := lookupStr(raw, "originalText.text")
	if text == "" {
		text = lookupStr(raw, "text.text")
	}
	createdAt := time.Now().UTC()
	if pt := lookupStr(raw, "publishTime"); pt != "" {
		if t, err := time.Parse(time.RFC3339, pt); err == nil {
			createdAt = t
		}
	}
	return domain.Review{Rating: rating, Text: text, CreatedAt: createdAt}, true
}

// mapDetailsReviews converts the handful of reviews embedded in a legacy
// details payload (used when the v1 endpoint has none).
func mapDetailsReviews(details map[string]any) []domain.Review {
	raw, ok := lookupAny(details, "reviews").([]any)
	if !ok {
		return nil
	}
	out := make([]domain.Review, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rating, ok := starRating(floatAt(m, "rating"))
		if !ok {
			continue
		}
		createdAt := time.Now().UTC()
		if ts := intAt(m, "time"); ts != nil {
			createdAt = time.Unix(int64(*ts), 0).UTC()
		}
		out = append(out, domain.Review{
			Rating:    rating,
			Text:      lookupStr(m, "text"),
			CreatedAt: createdAt,
		})
	}
	return out
}

// starRating accepts only 1..5; out-of-range ratings are boundary-rejected.
func starRating(f *float64) (int, bool) {
	if f == nil {
		return 0, false
	}
	n := int(*f)
	if n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns the string at path or "".
func lookupStr(m map[string]any, path string) string {
	if s, ok := lookupAny(m, path).(string); ok {
		return s
	}
	return ""
}

// floatAt: number at path (float64/int/numeric string).
func floatAt(m map[string]any, path string) *float64 {
	switch v := lookupAny(m, path).(type) {
	case float64:
		f := v
		return &f
	case int:
		f := float64(v)
		return &f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

// intAt: integer at path (float64/int/numeric string).
func intAt(m map[string]any, path string) *int {
	switch v := lookupAny(m, path).(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return &n
		}
	}
	return nil
}
