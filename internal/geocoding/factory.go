package geocoding

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeGoogle represents Google Maps geocoding provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents OpenStreetMap Nominatim geocoding provider.
	ProviderTypeNominatim ProviderType = "nominatim"
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type      ProviderType // Type of provider to create
	APIKey    string       // API key (Google only)
	RateLimit int          // Requests per second; 0 keeps the provider default
	Logger    *slog.Logger // Logger for the provider
}

// NewProvider creates the geocoding provider selected by config.Type.
// It returns an error for unknown types or when a required API key is missing.
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeNominatim:
		return newNominatimProvider(config), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{maps.WithAPIKey(config.APIKey)}
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Logger), nil
}

func newNominatimProvider(config ProviderConfig) Provider {
	if config.RateLimit <= 0 {
		return NewNominatimProvider(config.Logger)
	}

	return NewNominatimProviderWithClient(
		&http.Client{Timeout: nominatimTimeout}, NominatimBaseURL, config.RateLimit, config.Logger,
	)
}
