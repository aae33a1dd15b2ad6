package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/meridian/internal/sqlgen"
)

// routeColumns describes the routes table. Types outside the sqlgen aliases are
// written as PostgreSQL expects them and pass through untouched.
var routeColumns = []sqlgen.Column{
	{Name: "route_id", Type: "SERIAL PRIMARY KEY"},
	{Name: "origin_address", Type: "string"},
	{Name: "destination_address", Type: "string"},
	{Name: "origin_lat", Type: "DOUBLE PRECISION"},
	{Name: "origin_lon", Type: "DOUBLE PRECISION"},
	{Name: "destination_lat", Type: "DOUBLE PRECISION"},
	{Name: "destination_lon", Type: "DOUBLE PRECISION"},
	{Name: "distance_m", Type: "DOUBLE PRECISION"},
	{Name: "attempts", Type: "int NOT NULL DEFAULT 0"},
	{Name: "last_error", Type: "TEXT"},
	{Name: "created_at", Type: "TIMESTAMPTZ NOT NULL DEFAULT now()"},
	{Name: "measured_at", Type: "TIMESTAMPTZ"},
}

// SchemaSQL returns the DDL for the routes table.
func SchemaSQL() (string, error) {
	return sqlgen.CreateTable("routes", routeColumns, true)
}

// EnsureSchema creates the routes table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	ddl, err := SchemaSQL()
	if err != nil {
		return fmt.Errorf("failed to build routes schema: %w", err)
	}

	if _, err = r.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create routes table: %w", err)
	}
	r.log.InfoContext(ctx, "Routes table is ready")

	return nil
}
