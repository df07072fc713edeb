// Package google talks to the two Google Places REST APIs the analyzer needs:
// the legacy Place Details endpoint and the v1 place reviews endpoint. All raw
// payloads are mapped into domain records here; nothing downstream sees
// untyped JSON.
package google

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"sagicheck/internal/adapters/observability"
	"sagicheck/internal/domain"
)

var (
	ErrNotFound     = errors.New("google: not found")
	ErrUnauthorized = errors.New("google: unauthorized")
	ErrForbidden    = errors.New("google: forbidden")
)

const (
	detailsFields  = "place_id,name,rating,user_ratings_total,reviews"
	reviewsMask    = "reviews.rating,reviews.text,reviews.originalText,reviews.publishTime"
	reviewPageSize = 10
	maxAttempts    = 4
)

type Client struct {
	detailsURL string
	v1Base     string
	key        string
	hc         *http.Client
	rl         *rate.Limiter
}

// New builds a client with an explicit key and timeout. The key is required:
// a misconfigured service should fail at construction, not on first request.
func New(detailsURL, v1Base, key string, rps int, timeout time.Duration) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("google: API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		detailsURL: strings.TrimRight(detailsURL, "/"),
		v1Base:     strings.TrimRight(v1Base, "/"),
		key:        key,
		hc:         &http.Client{Timeout: timeout},
		rl:         rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// Close releases pooled connections. Safe to call once at shutdown.
func (c *Client) Close() { c.hc.CloseIdleConnections() }

// FetchPlace fetches details and up to maxReviews reviews concurrently and
// returns the mapped snapshot. When the v1 reviews endpoint has nothing, the
// handful of reviews embedded in the details payload is used instead.
func (c *Client) FetchPlace(ctx context.Context, placeID string, maxReviews int) (domain.PlaceData, error) {
	var (
		details map[string]any
		reviews []domain.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := c.fetchDetails(gctx, placeID)
		if err != nil {
			return err
		}
		details = d
		return nil
	})
	g.Go(func() error {
		rs, err := c.fetchReviews(gctx, placeID, maxReviews)
		if err != nil {
			return err
		}
		reviews = rs
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.PlaceData{}, err
	}
	if len(reviews) == 0 {
		reviews = mapDetailsReviews(details)
	}
	return mapPlace(placeID, details, reviews), nil
}

func (c *Client) fetchDetails(ctx context.Context, placeID string) (map[string]any, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("key", c.key)
	q.Set("fields", detailsFields)
	q.Set("reviews_no_translations", "true")
	q.Set("reviews_sort", "newest")

	var envelope struct {
		Status       string         `json:"status"`
		ErrorMessage string         `json:"error_message"`
		Result       map[string]any `json:"result"`
	}
	if err := c.getJSON(ctx, "details", c.detailsURL+"?"+q.Encode(), nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Status != "OK" {
		msg := envelope.ErrorMessage
		if msg == "" {
			msg = envelope.Status
		}
		if msg == "" {
			msg = "UNKNOWN_ERROR"
		}
		return nil, fmt.Errorf("google: details error: %s", msg)
	}
	return envelope.Result, nil
}

// fetchReviews pages through the v1 reviews endpoint, newest first, until
// maxReviews are collected or the pages run out. A 404 means the place has no
// v1 review resource; that is not an error.
func (c *Client) fetchReviews(ctx context.Context, placeID string, maxReviews int) ([]domain.Review, error) {
	if maxReviews <= 0 {
		return nil, nil
	}
	endpoint := fmt.Sprintf("%s/places/%s/reviews", c.v1Base, url.PathEscape(placeID))
	headers := map[string]string{
		"X-Goog-Api-Key":   c.key,
		"X-Goog-FieldMask": reviewsMask,
	}

	collected := make([]domain.Review, 0, maxReviews)
	pageToken := ""
	// page cap keeps a token-looping upstream from holding the request open
	maxPages := maxReviews/reviewPageSize + 1
	for page := 0; page < maxPages && len(collected) < maxReviews; page++ {
		q := url.Values{}
		q.Set("pageSize", strconv.Itoa(reviewPageSize))
		q.Set("orderBy", "NEWEST")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var payload struct {
			Reviews       []map[string]any `json:"reviews"`
			NextPageToken string           `json:"nextPageToken"`
		}
		err := c.getJSON(ctx, "reviews", endpoint+"?"+q.Encode(), headers, &payload)
		if errors.Is(err, ErrNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, raw := range payload.Reviews {
			r, ok := mapV1Review(raw)
			if !ok {
				continue
			}
			collected = append(collected, r)
			if len(collected) >= maxReviews {
				break
			}
		}
		if payload.NextPageToken == "" {
			break
		}
		pageToken = payload.NextPageToken
	}
	return collected, nil
}

// getJSON performs a GET with client-side rate limiting and retries on 429 and
// transient 5xx, honoring Retry-After when provided. Outbound calls are
// observed under the given endpoint label.
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, headers map[string]string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "sagicheck/1.0")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal("google", endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if attempt < maxAttempts-1 && sleepCtx(ctx, backoff(attempt)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("google", endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(attempt)
			}
			lastErr = fmt.Errorf("google: remote status %d", resp.StatusCode)
			if attempt < maxAttempts-1 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("google: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return lastErr
}

// sleepCtx waits for d or returns false if ctx finishes first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses a Retry-After header (seconds or HTTP-date). 0 when absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles per attempt (200ms, 400ms, 800ms...) with up to +50% jitter.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<attempt) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
