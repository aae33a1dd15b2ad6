package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider resolves addresses through the Google Maps Geocoding API.
type GoogleProvider struct {
	client GoogleAPIClient
	log    *slog.Logger
}

// GoogleAPIClient is the subset of *maps.Client used by GoogleProvider.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleProvider wraps an already configured Google Maps client.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode returns the location of the first result Google reports for address.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "address", address)

	results, err := gp.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEmptyResponse
	}

	location := results[0].Geometry.Location
	if len(results) > 1 {
		gp.log.DebugContext(ctx, "Google returned several candidates, using the first",
			"address", address, "candidates", len(results))
	}

	return &models.Coordinates{Latitude: location.Lat, Longitude: location.Lng}, nil
}
