package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	GoogleAPIKey    string
	DetailsBaseURL  string
	PlacesV1BaseURL string
	MaxReviews      int
	UpstreamRPS     int
	UpstreamTimeout time.Duration
	RequestTimeout  time.Duration
}

func Load() Config {
	// a local .env is convenient in dev; missing file is fine
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		GoogleAPIKey:    env("GOOGLE_MAPS_API_KEY", ""),
		DetailsBaseURL:  env("GOOGLE_DETAILS_BASE_URL", "https://maps.googleapis.com/maps/api/place/details/json"),
		PlacesV1BaseURL: env("GOOGLE_PLACES_V1_BASE_URL", "https://places.googleapis.com/v1"),
		MaxReviews:      atoi("MAX_REVIEWS", 100),
		UpstreamRPS:     atoi("UPSTREAM_RPS", 5),
		UpstreamTimeout: time.Duration(atoi("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		RequestTimeout:  time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
	}
	if c.GoogleAPIKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
