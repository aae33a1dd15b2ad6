package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/models"
)

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchRoutesForMeasurement(ctx context.Context, limit int) ([]models.Route, error)
	UpdateRouteDistance(
		ctx context.Context, routeID int, origin, destination models.Coordinates, meters float64,
	) error
	IncrementFailureCount(ctx context.Context, routeID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
