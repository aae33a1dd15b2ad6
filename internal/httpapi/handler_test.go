package httpapi_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/httpapi"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	mux := http.NewServeMux()
	httpapi.NewHandler(slog.Default(), appMetrics).Register(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, appMetrics
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestDistanceEndpoint(t *testing.T) {
	server, appMetrics := newServer(t)

	t.Run("known distance", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/distance?lat1=52.2296756&lon1=21.0122287&lat2=41.89193&lon2=12.51133")
		require.NoError(t, err)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		body := decode(t, resp)
		assert.InDelta(t, 1315510.16, body["meters"], 1)
	})

	t.Run("same point", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/distance?lat1=10&lon1=20&lat2=10&lon2=20")
		require.NoError(t, err)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Zero(t, decode(t, resp)["meters"])
	})

	t.Run("missing parameter", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/distance?lat1=10&lon1=20&lat2=10")
		require.NoError(t, err)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode(t, resp)["error"], `missing query parameter "lon2"`)
	})

	t.Run("invalid parameter", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/distance?lat1=north&lon1=20&lat2=10&lon2=20")
		require.NoError(t, err)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode(t, resp)["error"], `invalid query parameter "lat1"`)
	})

	t.Run("non finite result", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/distance?lat1=NaN&lon1=20&lat2=10&lon2=20")
		require.NoError(t, err)

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "distance is not a finite number", decode(t, resp)["error"])
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/v1/distance", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("requests are counted", func(t *testing.T) {
		assert.InDelta(t, 2.0, testutil.ToFloat64(appMetrics.HTTPRequests.WithLabelValues("distance", "200")), 0)
		assert.InDelta(t, 2.0, testutil.ToFloat64(appMetrics.HTTPRequests.WithLabelValues("distance", "400")), 0)
	})
}

func TestDDLEndpoint(t *testing.T) {
	server, _ := newServer(t)

	post := func(t *testing.T, body string) *http.Response {
		t.Helper()
		resp, err := http.Post(server.URL+"/v1/ddl", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		return resp
	}

	t.Run("create table", func(t *testing.T) {
		resp := post(t, `{"table":"users","columns":[{"name":"id","type":"int64"},{"name":"email","type":"string"}]}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "CREATE TABLE users (id INT, email VARCHAR);", decode(t, resp)["sql"])
	})

	t.Run("create table if not exists", func(t *testing.T) {
		resp := post(t, `{"table":"users","columns":[{"name":"id","type":"int"}],"if_not_exists":true}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "CREATE TABLE IF NOT EXISTS users (id INT);", decode(t, resp)["sql"])
	})

	t.Run("no columns", func(t *testing.T) {
		resp := post(t, `{"table":"users","columns":[]}`)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "table and columns are required", decode(t, resp)["error"])
	})

	t.Run("malformed json", func(t *testing.T) {
		resp := post(t, `{"table":`)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode(t, resp)["error"], "failed to decode request")
	})

	t.Run("unknown field", func(t *testing.T) {
		resp := post(t, `{"table":"users","schema":"id int"}`)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode(t, resp)["error"], "unknown field")
	})
}
