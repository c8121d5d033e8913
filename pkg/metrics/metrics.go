package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя, поэтому при выключенных метриках можно передавать nil
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge

	bookingsCreated    prometheus.Counter
	quotesCalculated   prometheus.Counter
	unknownServiceRefs prometheus.Counter
	wizardActions      *prometheus.CounterVec
	documentsGenerated *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: labels,
		}),
		quotesCalculated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "quotes_calculated_total",
			Help:        "Total number of price breakdowns computed",
			ConstLabels: labels,
		}),
		unknownServiceRefs: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "pricing_unknown_service_refs_total",
			Help:        "Selected service ids that were missing from the catalog during pricing",
			ConstLabels: labels,
		}),
		wizardActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_actions_total",
			Help:        "Booking wizard actions by type and outcome",
			ConstLabels: labels,
		}, []string{"action", "outcome"}),
		documentsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "documents_generated_total",
			Help:        "Rendered booking documents by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.bookingsCreated,
		m.quotesCalculated,
		m.unknownServiceRefs,
		m.wizardActions,
		m.documentsGenerated,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats публикует состояние connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	m.dbIdleConns.Set(float64(stats.Idle))
}

func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

func (m *Metrics) IncQuotesCalculated() {
	if m == nil {
		return
	}
	m.quotesCalculated.Inc()
}

// AddUnknownServiceRefs учитывает id услуг, которых не оказалось в каталоге при расчёте цены
func (m *Metrics) AddUnknownServiceRefs(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.unknownServiceRefs.Add(float64(n))
}

func (m *Metrics) IncWizardAction(action, outcome string) {
	if m == nil {
		return
	}
	m.wizardActions.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) IncDocumentsGenerated(kind string) {
	if m == nil {
		return
	}
	m.documentsGenerated.WithLabelValues(kind).Inc()
}
