package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := NewMetrics(config.GetDefaultConfig())

	m.Observe("employee.get", OutcomeSuccess, 3*time.Millisecond)
	m.Observe("employee.get", OutcomeSuccess, 5*time.Millisecond)
	m.Observe("employee.get", OutcomeFailure, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.calls.WithLabelValues("employee.get", "mock", OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.calls.WithLabelValues("employee.get", "mock", OutcomeFailure)))

	n, err := testutil.GatherAndCount(m.Registry(), "staffdesk_service_call_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDisabled(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Metrics.Enabled = false
	m := NewMetrics(cfg)

	m.Observe("employee.get", OutcomeSuccess, time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), "staffdesk_service_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.Observe("employee.get", OutcomeSuccess, time.Millisecond) })
}

func TestHandler(t *testing.T) {
	m := NewMetrics(config.GetDefaultConfig())
	m.Observe("job.publish", OutcomeInternal, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `staffdesk_service_calls_total{backend="mock",operation="job.publish",outcome="internal"} 1`), body)
}
