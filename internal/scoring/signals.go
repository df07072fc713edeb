package scoring

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"sagicheck/internal/domain"
)

const (
	shortTextMaxRunes = 15
	burstWindow       = 7 * 24 * time.Hour
	burstMinReviews   = 5
)

// fraudKeywords is matched as lowercase substrings against normalized review
// text. Order is the emission order of the per-keyword counts.
var fraudKeywords = []string{
	"詐欺",
	"ぼったくり",
	"騙された",
	"騙し",
	"不正請求",
	"法外",
	"高すぎる",
	"scam",
	"rip-off",
	"rip off",
	"fraud",
}

// shortFiveRatio: 5-star reviews whose normalized text is at most 15 runes,
// over all reviews.
func shortFiveRatio(reviews []domain.Review, total int) float64 {
	if total == 0 {
		return 0
	}
	short := 0
	for _, r := range reviews {
		if r.Rating == 5 && utf8.RuneCountInString(NormalizeText(r.Text)) <= shortTextMaxRunes {
			short++
		}
	}
	return float64(short) / float64(total)
}

// burstRatio: largest number of reviews inside any 7-day sliding window, over
// all reviews. Under burstMinReviews the sample is too small to mean anything.
func burstRatio(reviews []domain.Review, total int) float64 {
	if total < burstMinReviews {
		return 0
	}
	times := make([]time.Time, 0, total)
	for _, r := range reviews {
		if !r.CreatedAt.IsZero() {
			times = append(times, r.CreatedAt)
		}
	}
	if len(times) == 0 {
		return 0
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	// two-pointer sweep: lo trails hi, evicting timestamps older than 7 days
	maxInWindow, lo := 0, 0
	for hi, ts := range times {
		cutoff := ts.Add(-burstWindow)
		for times[lo].Before(cutoff) {
			lo++
		}
		if n := hi - lo + 1; n > maxInWindow {
			maxInWindow = n
		}
	}
	return float64(maxInWindow) / float64(total)
}

func ratingDiff(googleRating, tabelogRating *float64) *float64 {
	if googleRating == nil || tabelogRating == nil {
		return nil
	}
	d := *googleRating - *tabelogRating
	return &d
}

// nameSimilarity compares normalized names with difflib's longest-matching-block
// ratio over rune sequences: 1 means identical, nil means not comparable.
func nameSimilarity(googleName string, tabelogName *string) *float64 {
	if tabelogName == nil || *tabelogName == "" {
		return nil
	}
	g := normalizeName(googleName)
	t := normalizeName(*tabelogName)
	if g == "" || t == "" {
		return nil
	}
	r := difflib.NewMatcher(strings.Split(g, ""), strings.Split(t, "")).Ratio()
	return &r
}

func lowStarRatio(reviews []domain.Review, total int) float64 {
	if total == 0 {
		return 0
	}
	low := 0
	for _, r := range reviews {
		if r.Rating == 1 || r.Rating == 2 {
			low++
		}
	}
	return float64(low) / float64(total)
}

// fraudStats counts, per keyword, how many reviews contain it, and returns the
// fraction of reviews with at least one match. A review counts once per keyword
// it contains, but only once toward the hit fraction.
func fraudStats(reviews []domain.Review, total int) (float64, []domain.FraudKeywordCount) {
	counts := []domain.FraudKeywordCount{}
	if total == 0 {
		return 0, counts
	}
	perKeyword := make(map[string]int, len(fraudKeywords))
	hits := 0
	for _, r := range reviews {
		text := strings.ToLower(NormalizeText(r.Text))
		matched := false
		for _, kw := range fraudKeywords {
			if strings.Contains(text, kw) {
				perKeyword[kw]++
				matched = true
			}
		}
		if matched {
			hits++
		}
	}
	for _, kw := range fraudKeywords {
		if c := perKeyword[kw]; c > 0 {
			counts = append(counts, domain.FraudKeywordCount{Keyword: kw, Count: c})
		}
	}
	return float64(hits) / float64(total), counts
}
