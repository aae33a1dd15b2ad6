package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// maxAttempts is the number of failed measurements after which a route is skipped.
const maxAttempts = 5

// FetchRoutesForMeasurement retrieves routes whose distance has not been measured yet
// and that failed fewer than maxAttempts times, oldest first.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of routes to retrieve.
//
// Returns:
// - A slice of models.Route; endpoints without stored coordinates are nil.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchRoutesForMeasurement(ctx context.Context, limit int) ([]models.Route, error) {
	var routes []models.Route
	query := `
		SELECT
			route_id,
			COALESCE(origin_address, ''),
			COALESCE(destination_address, ''),
			origin_lat IS NOT NULL AND origin_lon IS NOT NULL,
			COALESCE(origin_lat, 0),
			COALESCE(origin_lon, 0),
			destination_lat IS NOT NULL AND destination_lon IS NOT NULL,
			COALESCE(destination_lat, 0),
			COALESCE(destination_lon, 0)
		FROM routes
		WHERE
			distance_m IS NULL
			AND attempts < $1
		ORDER BY created_at ASC, route_id ASC
		LIMIT $2;
	`

	rows, err := r.db.Query(ctx, query, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unmeasured routes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			route               models.Route
			hasOrigin, hasDest  bool
			origin, destination models.Coordinates
		)
		if errScan := rows.Scan(
			&route.ID, &route.OriginAddress, &route.DestinationAddress,
			&hasOrigin, &origin.Latitude, &origin.Longitude,
			&hasDest, &destination.Latitude, &destination.Longitude,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan unmeasured route: %w", errScan)
		}

		if hasOrigin {
			route.Origin = &origin
		}
		if hasDest {
			route.Destination = &destination
		}

		r.log.DebugContext(ctx, "A new unmeasured route has been received.", "ID", route.ID)
		routes = append(routes, route)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return routes, nil
}

// UpdateRouteDistance stores the resolved endpoints and the measured distance of a route
// and clears its last error.
func (r *Repository) UpdateRouteDistance(
	ctx context.Context,
	routeID int,
	origin, destination models.Coordinates,
	meters float64,
) error {
	query := `
		UPDATE routes
		SET
			origin_lat = $1,
			origin_lon = $2,
			destination_lat = $3,
			destination_lon = $4,
			distance_m = $5,
			last_error = NULL,
			measured_at = now()
		WHERE
			route_id = $6;
	`

	_, err := r.db.Exec(ctx, query,
		origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude, meters, routeID)
	if err != nil {
		return fmt.Errorf("failed to update route distance: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the attempt counter of a route and records the error message.
func (r *Repository) IncrementFailureCount(ctx context.Context, routeID int, errMsg string) error {
	query := `
		UPDATE routes
		SET
			attempts = attempts + 1,
			last_error = $1
		WHERE route_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, routeID)
	if err != nil {
		return fmt.Errorf("failed to update route error and number of attempts: %w", err)
	}

	return nil
}
