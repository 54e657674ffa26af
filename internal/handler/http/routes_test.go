package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-reward-keeper/internal/config"
	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/metrics"
	"github.com/MKhiriev/go-reward-keeper/internal/service"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/MKhiriev/go-reward-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routesNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, m *metrics.Metrics) *httptest.Server {
	t.Helper()

	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0-test"}}
	services, err := service.NewServices(cfg, utils.NewFixedClock(routesNow), m, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, m, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return srv
}

func post(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(srv.URL+calculateRewardRoute, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func readErrorBody(t *testing.T, resp *http.Response) []string {
	t.Helper()

	var body []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.NotEmpty(t, body[1])

	return body
}

func TestRoutes_CalculateReward(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := post(t, srv, `[
		{"cost": 120, "time": "2026-09-03T10:00:00Z"},
		{"cost": "120", "time": "2026-09-20T10:00:00Z"},
		{"cost": 99.99, "time": "2026-10-01T10:00:00Z"},
		{"cost": 45, "time": "2026-08-01T10:00:00Z"}
	]`)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.RewardResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, []models.MonthlyReward{
		{Year: 2026, Month: 9, Points: 180},
		{Year: 2026, Month: 10, Points: 49},
		{Year: 2026, Month: 8, Points: 0},
	}, result.MonthlyRewards)
	assert.Equal(t, 229, result.TotalPoints)
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}

func TestRoutes_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty list", `[]`, "List of transactions is empty."},
		{"missing cost", `[{"time": "2026-10-01T00:00:00Z"}]`, "Cost or Date is missing."},
		{"missing time", `[{"cost": 10}]`, "Cost or Date is missing."},
		{"blank time", `[{"cost": 10, "time": ""}]`, "Cost or Date is missing."},
		{"negative cost", `[{"cost": -5, "time": "2026-10-01T00:00:00Z"}]`, "Cost can not be negative."},
		{"too old", `[{"cost": 5, "time": "2026-07-18T23:59:59Z"}]`, "Transaction is older than 3 months."},
		{
			name:    "first violation wins",
			body:    `[{"cost": 5, "time": "2020-01-01T00:00:00Z"}, {"cost": -1, "time": "2026-10-01T00:00:00Z"}]`,
			message: "Transaction is older than 3 months.",
		},
	}

	srv := newTestServer(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.Equal(t, tt.message, readErrorBody(t, resp)[0])
		})
	}
}

func TestRoutes_BoundaryOfThreeMonthsIsAccepted(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := post(t, srv, `[{"cost": 120, "time": "2026-07-19T12:00:00Z"}]`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_InvalidJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := post(t, srv, `[{"cost":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, msgInvalidJSON, readErrorBody(t, resp)[0])
}

func TestRoutes_TrailingDataAfterList(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"garbage", `[{"cost": 120, "time": "2026-10-01T00:00:00Z"}] garbage`, http.StatusBadRequest},
		{"second value", `[] []`, http.StatusBadRequest},
		{"trailing whitespace", "[{\"cost\": 120, \"time\": \"2026-10-01T00:00:00Z\"}]\n  \n", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.body)

			require.Equal(t, tt.want, resp.StatusCode)
			if tt.want == http.StatusBadRequest {
				assert.Equal(t, msgInvalidJSON, readErrorBody(t, resp)[0])
			}
		})
	}
}

func TestRoutes_HugeCostIsInternalError(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"max int64", `[{"cost": 9223372036854775807, "time": "2026-10-01T00:00:00Z"}]`},
		{"beyond int64", `[{"cost": "1e20", "time": "2026-10-01T00:00:00Z"}]`},
		{
			name: "sum overflows",
			body: `[{"cost": 2305843009213693951, "time": "2026-10-01T00:00:00Z"},
				{"cost": 2305843009213693951, "time": "2026-10-02T00:00:00Z"},
				{"cost": 2305843009213693951, "time": "2026-10-03T00:00:00Z"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.body)

			require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, msgInternalError, readErrorBody(t, resp)[0])
		})
	}
}

func TestRoutes_GzipRoundTrip(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`[{"cost": 220, "time": "2026-10-02T00:00:00Z"}]`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+calculateRewardRoute, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	// a Transport with compression disabled keeps the response gzipped
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	assert.JSONEq(t, `{"monthlyRewards":[{"year":2026,"month":10,"points":290}],"totalPoints":290}`, string(body))
}

func TestRoutes_Version(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + versionRoute)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.0.0-test", string(body))
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + calculateRewardRoute)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_MetricsDisabled(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + metricsRoute)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_MetricsEnabled(t *testing.T) {
	srv := newTestServer(t, metrics.New())

	post(t, srv, `[{"cost": 120, "time": "2026-10-01T00:00:00Z"}]`)
	post(t, srv, `[]`)

	resp, err := http.Get(srv.URL + metricsRoute)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := string(body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, out, `reward_keeper_rewards_calculations_total{outcome="success"} 1`)
	assert.Contains(t, out, `reward_keeper_rewards_calculations_total{outcome="EmptyList"} 1`)
	assert.Contains(t, out, `reward_keeper_http_requests_total{method="POST",route="/api/calculate-reward",status="422"} 1`)
	assert.Contains(t, out, `reward_keeper_http_requests_total{method="POST",route="/api/calculate-reward",status="200"} 1`)
}
