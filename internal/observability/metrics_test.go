package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	return rec.Body.String()
}

func TestRecordEstimate(t *testing.T) {
	m := NewMetrics("test")
	m.RecordEstimate("profit", "local", 1200)
	m.RecordEstimate("profit", "local", 900)
	m.RecordEstimate("loss", "national", -50)

	body := scrape(t, m)
	assert.Contains(t, body, `test_estimate_computed_total{status="profit"} 2`)
	assert.Contains(t, body, `test_estimate_computed_total{status="loss"} 1`)
	assert.Contains(t, body, `test_estimate_last_profit_dollars{commentator="local"} 900`)
	assert.Contains(t, body, `test_estimate_last_profit_dollars{commentator="national"} -50`)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics("")
	m.RecordRejected("invalid_parameters")
	m.ObserveRequest("/v1/estimates", "200", 0.01)

	body := scrape(t, m)
	assert.Contains(t, body, `boxoffice_estimate_rejected_total{code="invalid_parameters"} 1`)
	assert.Contains(t, body, "boxoffice_http_request_duration_seconds_count")
}
