// Package geo computes great-circle distances on a spherical Earth.
package geo

import (
	"math"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance in meters between two points given
// in decimal degrees, using the Haversine formula.
//
// Inputs are not range checked. NaN or infinite inputs yield NaN or infinite
// results. Identical points always return exactly 0.
//
// Exactly antipodal points may yield NaN: rounding can push the haversine term
// above 1. Distinct points closer than the float64 underflow threshold, such as
// Distance(0, 0, 0, 1e-320), return 0.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	deltaPhi := radians(lat2 - lat1)
	deltaLambda := radians(lon2 - lon1)

	sinPhi := math.Sin(deltaPhi / 2)
	sinLambda := math.Sin(deltaLambda / 2)

	// 1-a is left unclamped; a can only exceed 1 through rounding on antipodal input.
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Between is Distance over two Coordinates.
func Between(from, to models.Coordinates) float64 {
	return Distance(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}
