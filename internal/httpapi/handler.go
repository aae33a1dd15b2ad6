// Package httpapi exposes the distance calculator and the DDL builder over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/meridian/internal/geo"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/sqlgen"
)

// maxBodyBytes limits the size of accepted request bodies.
const maxBodyBytes = 1 << 20

// Handler serves the public API endpoints.
type Handler struct {
	log     *slog.Logger
	metrics *metrics.Metrics
}

type distanceResponse struct {
	Meters float64 `json:"meters"`
}

type ddlRequest struct {
	Table       string          `json:"table"`
	Columns     []sqlgen.Column `json:"columns"`
	IfNotExists bool            `json:"if_not_exists"`
}

type ddlResponse struct {
	SQL string `json:"sql"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a Handler. metrics may be nil.
func NewHandler(log *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{log: log, metrics: metrics}
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/distance", h.distance)
	mux.HandleFunc("POST /v1/ddl", h.ddl)
}

func (h *Handler) distance(writer http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	var args [4]float64
	for i, name := range []string{"lat1", "lon1", "lat2", "lon2"} {
		raw := query.Get(name)
		if raw == "" {
			h.fail(writer, req, "distance", http.StatusBadRequest, fmt.Errorf("missing query parameter %q", name))
			return
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.fail(writer, req, "distance", http.StatusBadRequest, fmt.Errorf("invalid query parameter %q: %w", name, err))
			return
		}
		args[i] = value
	}

	meters := geo.Distance(args[0], args[1], args[2], args[3])
	if math.IsNaN(meters) || math.IsInf(meters, 0) {
		h.fail(writer, req, "distance", http.StatusUnprocessableEntity, errors.New("distance is not a finite number"))
		return
	}

	h.reply(writer, req, "distance", http.StatusOK, distanceResponse{Meters: meters})
}

func (h *Handler) ddl(writer http.ResponseWriter, req *http.Request) {
	var body ddlRequest

	decoder := json.NewDecoder(http.MaxBytesReader(writer, req.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		h.fail(writer, req, "ddl", http.StatusBadRequest, fmt.Errorf("failed to decode request: %w", err))
		return
	}
	if body.Table == "" || len(body.Columns) == 0 {
		h.fail(writer, req, "ddl", http.StatusBadRequest, errors.New("table and columns are required"))
		return
	}

	sql, err := sqlgen.CreateTable(body.Table, body.Columns, body.IfNotExists)
	if err != nil {
		h.fail(writer, req, "ddl", http.StatusBadRequest, err)
		return
	}

	h.reply(writer, req, "ddl", http.StatusOK, ddlResponse{SQL: sql})
}

func (h *Handler) fail(writer http.ResponseWriter, req *http.Request, handler string, status int, err error) {
	h.log.DebugContext(req.Context(), "Rejected API request", "handler", handler, "status", status, "error", err)
	h.reply(writer, req, handler, status, errorResponse{Error: err.Error()})
}

func (h *Handler) reply(writer http.ResponseWriter, req *http.Request, handler string, status int, payload any) {
	if h.metrics != nil {
		h.metrics.HTTPRequests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		h.log.ErrorContext(req.Context(), "failed to write reply", "error", err)
	}
}
