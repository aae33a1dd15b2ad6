package geo_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/geo"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePoints = []models.Coordinates{
	{Latitude: 52.2296756, Longitude: 21.0122287}, // Warsaw
	{Latitude: 41.8919300, Longitude: 12.5113300}, // Rome
	{Latitude: 40.7128, Longitude: -74.0060},      // New York
	{Latitude: 51.5074, Longitude: -0.1278},       // London
	{Latitude: 50.4501, Longitude: 30.5234},       // Kyiv
	{Latitude: -33.8688, Longitude: 151.2093},     // Sydney
	{Latitude: 0, Longitude: 0},
	{Latitude: 89.9999, Longitude: 179.9999},
	{Latitude: -90, Longitude: -180},
}

func TestDistance_KnownValues(t *testing.T) {
	t.Run("warsaw to rome", func(t *testing.T) {
		got := geo.Distance(52.2296756, 21.0122287, 41.8919300, 12.5113300)

		assert.InDelta(t, 1315510.16, got, 1)
	})

	t.Run("new york to london", func(t *testing.T) {
		got := geo.Distance(40.7128, -74.0060, 51.5074, -0.1278)

		assert.InDelta(t, 5570.48*1000, got, 1000)
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		got := geo.Distance(0, 0, 0, 1)

		assert.InDelta(t, geo.EarthRadiusMeters*math.Pi/180, got, 1e-6)
	})

	t.Run("pole to pole", func(t *testing.T) {
		got := geo.Distance(90, 0, -90, 0)

		assert.InDelta(t, geo.EarthRadiusMeters*math.Pi, got, 1e-3)
	})
}

func TestDistance_ZeroDistance(t *testing.T) {
	lat, lon := 52.2296756, 21.0122287

	assert.Zero(t, geo.Distance(lat, lon, lat, lon))

	for _, p := range samplePoints {
		require.Zero(t, geo.Distance(p.Latitude, p.Longitude, p.Latitude, p.Longitude), "point %+v", p)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			ab := geo.Between(a, b)
			ba := geo.Between(b, a)

			if ab == 0 {
				assert.Zero(t, ba, "%+v -> %+v", a, b)
				continue
			}
			assert.InEpsilon(t, ab, ba, 1e-9, "%+v -> %+v", a, b)
		}
	}
}

func TestDistance_PositiveForDistinctPoints(t *testing.T) {
	for i, a := range samplePoints {
		for j, b := range samplePoints {
			if i == j {
				continue
			}
			assert.Positive(t, geo.Between(a, b), "%+v -> %+v", a, b)
		}
	}
}

func TestDistance_OutOfRangeInputsAreAccepted(t *testing.T) {
	got := geo.Distance(120, 400, -95, -200)

	assert.False(t, math.IsNaN(got))
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestDistance_NonFiniteInputsPropagate(t *testing.T) {
	assert.True(t, math.IsNaN(geo.Distance(math.NaN(), 0, 0, 0)))
	assert.True(t, math.IsNaN(geo.Distance(0, 0, 0, math.Inf(1))))
}

func TestDistance_Antipodes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	halfCircumference := geo.EarthRadiusMeters * math.Pi

	for range 10000 {
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180

		got := geo.Distance(lat, lon, -lat, lon+180)

		// Rounding may push the haversine term past 1, which is left unclamped.
		if math.IsNaN(got) {
			continue
		}
		require.InDelta(t, halfCircumference, got, 1, "antipode of (%v, %v)", lat, lon)
	}
}

func TestDistance_Underflow(t *testing.T) {
	assert.Zero(t, geo.Distance(0, 0, 0, 1e-320))
	assert.Positive(t, geo.Distance(0, 0, 0, 1e-9))
}

func TestBetween(t *testing.T) {
	from := models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	to := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}

	assert.Equal(t, geo.Distance(40.7128, -74.0060, 51.5074, -0.1278), geo.Between(from, to))
}

func BenchmarkDistance(b *testing.B) {
	for b.Loop() {
		geo.Distance(52.2296756, 21.0122287, 41.8919300, 12.5113300)
	}
}
