package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Egor213/LogiDash/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCounter_Inc(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewPrometheusCounter(reg, "test_events_total", "test", []string{"kind"})

	c.Inc("a")
	c.Inc("a")
	c.Inc("b")

	count, err := testutil.GatherAndCount(reg, "logidash_test_events_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP logidash_test_events_total test
# TYPE logidash_test_events_total counter
logidash_test_events_total{kind="a"} 2
logidash_test_events_total{kind="b"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "logidash_test_events_total"))
}

func TestNewTestCounters_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewTestCounters()
		metrics.NewTestCounters()
	})
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{
		200: "2xx",
		304: "3xx",
		400: "4xx",
		599: "5xx",
		0:   "unknown",
		600: "unknown",
	}
	for code, want := range tests {
		assert.Equal(t, want, metrics.StatusClass(code), "code %d", code)
	}
}

func TestConfigureRouter(t *testing.T) {
	e := echo.New()
	metrics.ConfigureRouter(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
