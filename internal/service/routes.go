package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/meridian/internal/geo"
	"github.com/UnknownOlympus/meridian/internal/geocoding"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/repository"
)

// routeBatchLimit caps the number of routes fetched per polling round.
const routeBatchLimit = 100

// ErrMissingEndpoint is returned for a route endpoint with neither coordinates nor an address.
var ErrMissingEndpoint = errors.New("route endpoint has neither coordinates nor address")

// RouteService measures the great-circle length of stored routes. Endpoints that
// only have an address are geocoded first.
type RouteService struct {
	log           *slog.Logger         // Logger for logging service activities
	repo          repository.Interface // Route storage
	provider      geocoding.Provider   // Geocoding provider for address-only endpoints
	providerName  string               // Name of the provider for metrics labeling
	metrics       *metrics.Metrics     // Metrics for tracking service performance
	numWorkers    int                  // Number of concurrent workers for processing
	pollInterval  time.Duration        // Interval between polling rounds
	addressPrefix string               // Prefix for more accurate geocoding (country, city, etc.)
}

// NewRouteService creates a new instance of RouteService.
func NewRouteService(
	log *slog.Logger,
	repo repository.Interface,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
	addressPrefix string,
) *RouteService {
	return &RouteService{
		log:           log,
		repo:          repo,
		provider:      provider,
		providerName:  providerName,
		metrics:       metrics,
		numWorkers:    numWorkers,
		pollInterval:  pollInterval,
		addressPrefix: addressPrefix,
	}
}

// Run periodically polls for unmeasured routes until ctx is canceled.
func (rs *RouteService) Run(ctx context.Context) {
	ticker := time.NewTicker(rs.pollInterval)
	defer ticker.Stop()

	rs.log.InfoContext(ctx, "Route service started...")

	for {
		select {
		case <-ctx.Done():
			rs.log.InfoContext(ctx, "Route service stopped.")
			return
		case <-ticker.C:
			rs.log.InfoContext(ctx, "Polling for unmeasured routes...")
			rs.processRoutes(ctx)
		}
	}
}

// processRoutes fetches one batch of routes and measures them with a pool of workers.
// It returns once every route of the batch has been handled.
func (rs *RouteService) processRoutes(ctx context.Context) {
	routes, err := rs.repo.FetchRoutesForMeasurement(ctx, routeBatchLimit)
	if err != nil {
		rs.log.ErrorContext(ctx, "Failed to fetch routes", "error", err)
		return
	}
	if len(routes) == 0 {
		rs.log.InfoContext(ctx, "No routes to process.")
		return
	}

	rs.log.InfoContext(ctx, "Found routes to process. Starting worker pool.",
		"jobs", len(routes), "num_workers", rs.numWorkers)

	jobs := make(chan models.Route, len(routes))
	var wgr sync.WaitGroup

	for i := 1; i <= rs.numWorkers; i++ {
		wgr.Add(1)
		go rs.worker(ctx, i, &wgr, jobs)
	}

	for _, route := range routes {
		jobs <- route
	}
	close(jobs)

	wgr.Wait()
	rs.log.InfoContext(ctx, "Processing batch finished")
}

func (rs *RouteService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Route) {
	defer wg.Done()
	for route := range jobs {
		rs.metrics.ActiveWorkers.Inc()
		rs.measure(ctx, idx, route)
		rs.metrics.ActiveWorkers.Dec()
	}
}

// measure resolves both endpoints of a route, computes the distance and stores it.
// A resolve failure is recorded against the route instead.
func (rs *RouteService) measure(ctx context.Context, idx int, route models.Route) {
	rs.log.DebugContext(ctx, "Processing route", "worker", idx, "route", route.ID)

	origin, err := rs.resolve(ctx, route.Origin, route.OriginAddress)
	if err == nil {
		var destination models.Coordinates
		destination, err = rs.resolve(ctx, route.Destination, route.DestinationAddress)
		if err == nil {
			rs.store(ctx, idx, route.ID, origin, destination)
			return
		}
	}

	rs.log.ErrorContext(ctx, "Failed to resolve route endpoints", "worker", idx, "route", route.ID, "error", err)
	rs.metrics.RoutesProcessed.WithLabelValues("failure").Inc()

	if err = rs.repo.IncrementFailureCount(ctx, route.ID, err.Error()); err != nil {
		rs.log.ErrorContext(ctx, "Could not update failure count for route",
			"worker", idx, "route", route.ID, "error", err)
	}
}

func (rs *RouteService) store(ctx context.Context, idx, routeID int, origin, destination models.Coordinates) {
	meters := geo.Between(origin, destination)
	rs.metrics.RouteMeters.Observe(meters)
	rs.metrics.RoutesProcessed.WithLabelValues("success").Inc()

	if err := rs.repo.UpdateRouteDistance(ctx, routeID, origin, destination, meters); err != nil {
		rs.log.ErrorContext(ctx, "Failed to store distance for route",
			"worker", idx, "route", routeID, "error", err)
		return
	}

	rs.log.DebugContext(ctx, "Worker successfully measured the route",
		"worker", idx, "route", routeID, "meters", meters)
}

// resolve returns known coordinates as is and geocodes the address otherwise.
func (rs *RouteService) resolve(ctx context.Context, known *models.Coordinates, address string) (models.Coordinates, error) {
	if known != nil {
		return *known, nil
	}
	if address == "" {
		return models.Coordinates{}, ErrMissingEndpoint
	}

	startTime := time.Now()
	coords, err := rs.provider.Geocode(ctx, rs.addressPrefix+address)
	rs.metrics.RequestSeconds.WithLabelValues(rs.providerName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		rs.metrics.APIErrors.Inc()
		return models.Coordinates{}, fmt.Errorf("failed to geocode %q: %w", address, err)
	}
	if coords == nil {
		rs.metrics.APIErrors.Inc()
		return models.Coordinates{}, fmt.Errorf("failed to geocode %q: %w", address, geocoding.ErrEmptyResponse)
	}

	return *coords, nil
}
