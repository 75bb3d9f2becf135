package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBooking(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.RecordBooking(OutcomeCreated)
	m.RecordBooking(OutcomeCreated)
	m.RecordBooking(OutcomePromoted)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues(OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues(OutcomePromoted)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues(OutcomeRejected)))
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.RecordHTTPRequest("GET", "/api/bookings", "200", 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/bookings", "200")))
}

func TestRecordDBQuery_Status(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("test", reg)

	m.RecordDBQuery("query", nil, 0.001)
	m.RecordDBQuery("exec", errors.New("boom"), 0.002)

	assert.Equal(t, 2, testutil.CollectAndCount(m.DBQueryDuration))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordBooking(OutcomeCreated)
		m.RecordQuote()
		m.RecordHTTPRequest("GET", "/", "200", 0)
		m.RecordDBQuery("query", nil, 0)
	})
}
