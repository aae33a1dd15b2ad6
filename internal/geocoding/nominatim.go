package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/meridian/internal/models"
	"golang.org/x/time/rate"
)

// NominatimBaseURL is the public OpenStreetMap search endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// nominatimUserAgent must identify the application per the Nominatim usage policy.
const nominatimUserAgent = "Meridian-Route-Service/1.0 (https://github.com/UnknownOlympus/meridian)"

const nominatimTimeout = 10 * time.Second

// NominatimProvider resolves addresses through OpenStreetMap's Nominatim API.
// The public instance allows one request per second, enforced by limiter.
type NominatimProvider struct {
	client  HTTPClient
	baseURL string
	log     *slog.Logger
	limiter *rate.Limiter
}

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Common errors for Nominatim provider.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NewNominatimProvider creates a provider for the public Nominatim instance.
func NewNominatimProvider(log *slog.Logger) *NominatimProvider {
	return NewNominatimProviderWithClient(&http.Client{Timeout: nominatimTimeout}, NominatimBaseURL, 1, log)
}

// NewNominatimProviderWithClient creates a provider with a custom HTTP client, endpoint
// and request rate. A non-positive rps disables rate limiting.
func NewNominatimProviderWithClient(client HTTPClient, baseURL string, rps int, log *slog.Logger) *NominatimProvider {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}

	return &NominatimProvider{
		client:  client,
		baseURL: baseURL,
		log:     log,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Geocode returns the coordinates of the best Nominatim match for address.
//
// Addresses that yield no match are retried with progressively shorter variants,
// dropping trailing comma-separated parts ("Town, Street, 12" -> "Town, Street" ->
// "Town"). Any error other than an empty result stops the search. Every attempt
// waits on the rate limiter.
func (np *NominatimProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	variations := addressFallbacks(address)

	for idx, variation := range variations {
		coords, err := np.geocodeSingleAddress(ctx, variation)
		if err == nil {
			if idx > 0 {
				np.log.InfoContext(ctx, "Geocoded using fallback address",
					"original", address, "fallback", variation, "fallback_level", idx)
			}
			return coords, nil
		}
		if !errors.Is(err, ErrNominatimEmptyResponse) {
			return nil, err
		}

		np.log.DebugContext(ctx, "Address variation returned no results", "variation", variation, "fallback_level", idx)
	}

	np.log.WarnContext(ctx, "All address fallbacks exhausted", "address", address, "variations_tried", len(variations))
	return nil, ErrNominatimEmptyResponse
}

// addressFallbacks lists the full address followed by shorter, de-duplicated variants.
func addressFallbacks(address string) []string {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	seen := make(map[string]bool)
	variations := []string{address}
	seen[address] = true

	for n := len(parts) - 1; n >= 1; n-- {
		variation := strings.Join(parts[:n], ", ")
		if variation == "" || seen[variation] {
			continue
		}
		seen[variation] = true
		variations = append(variations, variation)
	}

	return variations
}

// geocodeSingleAddress performs one rate-limited request without fallback.
func (np *NominatimProvider) geocodeSingleAddress(ctx context.Context, address string) (*models.Coordinates, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	query := reqURL.Query()
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	reqURL.RawQuery = query.Encode()

	np.log.DebugContext(ctx, "Geocoding using Nominatim", "address", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	var places []nominatimPlace
	if err = json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNominatimInvalidCoords, places[0].Lat)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNominatimInvalidCoords, places[0].Lon)
	}

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
