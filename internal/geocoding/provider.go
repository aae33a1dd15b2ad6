package geocoding

import (
	"context"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// Provider resolves a free-form address to geographic coordinates.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
