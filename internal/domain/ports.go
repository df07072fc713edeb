package domain

import "context"

// PlacesClient fetches a place snapshot (details + up to maxReviews reviews)
// from the upstream maps API. Implementations handle pagination and retries;
// callers get either a fully mapped PlaceData or an error.
type PlacesClient interface {
	FetchPlace(ctx context.Context, placeID string, maxReviews int) (PlaceData, error)
}
