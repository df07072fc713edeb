package domain

import "time"

// Review is one upstream review after boundary validation. Rating is always 1..5;
// reviews without a rating never reach the core.
type Review struct {
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PlaceData is one business's aggregate state as fetched for a single analysis.
// Reviews keep fetch order, which is not guaranteed chronological.
type PlaceData struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal *int     `json:"user_ratings_total"`
	Reviews          []Review `json:"reviews"`
}
