package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mergington"

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Domain metrics
	Signups         *prometheus.CounterVec
	Unregistrations *prometheus.CounterVec
	Logins          *prometheus.CounterVec
	SessionsActive  prometheus.Gauge
}

// NewRegistry creates the metrics registry with Go runtime and process
// collectors already registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Signup attempts by result.",
		}, []string{"result"}),
		Unregistrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unregistrations_total",
			Help:      "Unregister attempts by result.",
		}, []string{"result"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Teacher login attempts by result.",
		}, []string{"result"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Teacher sessions currently held by the server.",
		}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.RequestsTotal,
		r.RequestDuration,
		r.Signups,
		r.Unregistrations,
		r.Logins,
		r.SessionsActive,
	)
	return r
}

// MustRegister registers additional collectors.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.reg.MustRegister(cs...)
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// ObserveRequest records one served HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordLogin counts a login attempt.
func (r *Registry) RecordLogin(result string) {
	r.Logins.WithLabelValues(result).Inc()
}

// RecordSignup counts a signup attempt.
func (r *Registry) RecordSignup(result string) {
	r.Signups.WithLabelValues(result).Inc()
}

// RecordUnregister counts an unregister attempt.
func (r *Registry) RecordUnregister(result string) {
	r.Unregistrations.WithLabelValues(result).Inc()
}

// SetActiveSessions sets the live session gauge.
func (r *Registry) SetActiveSessions(n int) {
	r.SessionsActive.Set(float64(n))
}
