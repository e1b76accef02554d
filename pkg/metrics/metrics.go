package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	// Бизнес-метрики
	AppointmentsCreated *prometheus.CounterVec
	SlotConflicts       *prometheus.CounterVec
	TripsCreated        *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		AppointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of created pickup appointments",
			ConstLabels: constLabels,
		}, []string{"weekday"}),

		SlotConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_slot_conflicts_total",
			Help:        "Total number of appointment writes rejected because the slot was taken",
			ConstLabels: constLabels,
		}, []string{"stage"}),

		TripsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "trips_created_total",
			Help:        "Total number of created inter-branch trips",
			ConstLabels: constLabels,
		}, []string{"destination"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.AppointmentsCreated,
		m.SlotConflicts,
		m.TripsCreated,
	)

	return m
}

// IncAppointmentCreated увеличивает счетчик созданных записей (nil-safe)
func (m *Metrics) IncAppointmentCreated(weekday string) {
	if m == nil {
		return
	}
	m.AppointmentsCreated.WithLabelValues(weekday).Inc()
}

// IncSlotConflict увеличивает счетчик конфликтов слота (nil-safe).
// stage: "precheck" - слот уже занят при проверке, "insert" - отказ уникального индекса,
// "serialization" - транзакция отменена PostgreSQL после повторной попытки
func (m *Metrics) IncSlotConflict(stage string) {
	if m == nil {
		return
	}
	m.SlotConflicts.WithLabelValues(stage).Inc()
}

// IncTripCreated увеличивает счетчик созданных поездок (nil-safe)
func (m *Metrics) IncTripCreated(destination string) {
	if m == nil {
		return
	}
	m.TripsCreated.WithLabelValues(destination).Inc()
}
