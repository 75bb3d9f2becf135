package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Booking outcomes
const (
	OutcomeCreated    = "created"
	OutcomeWaitlisted = "waitlisted"
	OutcomeRejected   = "rejected"
	OutcomeCancelled  = "cancelled"
	OutcomePromoted   = "promoted"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsTotal       *prometheus.CounterVec
	QuotesTotal         prometheus.Counter
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"method", "path"},
		),
		BookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "court_bookings_total",
				Help:        "Booking engine outcomes",
				ConstLabels: labels,
			},
			[]string{"outcome"},
		),
		QuotesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "court_booking_quotes_total",
				Help:        "Total number of price quotes",
				ConstLabels: labels,
			},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"operation", "status"},
		),
		DBOpenConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_open_connections",
				Help:        "Open connections in the pool",
				ConstLabels: labels,
			},
		),
		DBInUseConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_in_use_connections",
				Help:        "Connections currently in use",
				ConstLabels: labels,
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
		m.QuotesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
	)

	return m
}

// RecordHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordBooking учитывает исход операции движка бронирований.
// Безопасно вызывать на nil (метрики выключены).
func (m *Metrics) RecordBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

// RecordQuote учитывает расчет цены без бронирования
func (m *Metrics) RecordQuote() {
	if m == nil {
		return
	}
	m.QuotesTotal.Inc()
}

// RecordDBQuery учитывает длительность SQL запроса
func (m *Metrics) RecordDBQuery(operation string, err error, seconds float64) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(seconds)
}
