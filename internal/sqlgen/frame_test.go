package sqlgen_test

import (
	"testing"

	"github.com/UnknownOlympus/meridian/internal/sqlgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	RouteID   int64
	Label     string `db:"route_label"`
	Distance  *float64
	Secret    string `db:"-"`
	HTTPCode  int32
	unexposed bool
}

func TestInferFrame(t *testing.T) {
	t.Run("struct value", func(t *testing.T) {
		frame, err := sqlgen.InferFrame(sample{})

		require.NoError(t, err)
		assert.Equal(t, []string{"route_id", "route_label", "distance", "http_code"}, frame.Columns())
		assert.Equal(t, []string{"int64", "string", "float64", "int32"}, frame.DTypes())
	})

	t.Run("pointer to struct renders a statement", func(t *testing.T) {
		frame, err := sqlgen.InferFrame(&sample{})
		require.NoError(t, err)

		sql, err := sqlgen.CreateTable("samples", frame, true)

		require.NoError(t, err)
		assert.Equal(t,
			"CREATE TABLE IF NOT EXISTS samples (route_id INT, route_label VARCHAR, distance float64, http_code INT);",
			sql)
	})

	t.Run("non struct", func(t *testing.T) {
		frame, err := sqlgen.InferFrame(42)

		require.ErrorIs(t, err, sqlgen.ErrInvalidSchema)
		assert.Nil(t, frame)
	})

	t.Run("nil", func(t *testing.T) {
		frame, err := sqlgen.InferFrame(nil)

		require.ErrorIs(t, err, sqlgen.ErrInvalidSchema)
		assert.Nil(t, frame)
	})
}
