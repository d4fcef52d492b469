package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: без метрик вызовы ничего не делают
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBConnections     *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec
	DBWaitDurationSec *prometheus.GaugeVec

	BookingsCreated    *prometheus.CounterVec
	BookingConflicts   *prometheus.CounterVec
	NotificationsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database pool connections by state",
		}, []string{"service", "state"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
		DBWaitDurationSec: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_wait_duration_seconds",
			Help: "Total time blocked waiting for a new connection",
		}, []string{"service"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of created bookings",
		}, []string{"service"}),
		BookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Booking attempts rejected because the slot is taken",
		}, []string{"service", "stage"}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Telegram notifications by kind and result",
		}, []string{"service", "kind", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.DBWaitCount,
		m.DBWaitDurationSec,
		m.BookingsCreated,
		m.BookingConflicts,
		m.NotificationsTotal,
	)

	return m
}

// ServiceName имя сервиса в метках
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(seconds)
}

// ObserveDBQuery учитывает запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
	if err != nil {
		m.DBQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// IncBookingCreated учитывает созданное бронирование
func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(m.serviceName).Inc()
}

// IncBookingConflict учитывает отказ из-за занятого слота
// stage: precheck - найдено проверкой, constraint - отсечено уникальным индексом
func (m *Metrics) IncBookingConflict(stage string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(m.serviceName, stage).Inc()
}

// IncNotification учитывает попытку отправки уведомления
func (m *Metrics) IncNotification(kind string, err error) {
	if m == nil {
		return
	}
	result := "sent"
	if err != nil {
		result = "failed"
	}
	m.NotificationsTotal.WithLabelValues(m.serviceName, kind, result).Inc()
}
