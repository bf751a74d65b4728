// Package metric provides Prometheus metrics for beagle-cli.
package metric

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry holds all CLI metrics backed by a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authEvents      *prometheus.CounterVec
}

// Auth event names recorded via AuthEvent.
const (
	AuthVerifyOK    = "verify_ok"
	AuthRefreshOK   = "refresh_ok"
	AuthLoginOK     = "login_ok"
	AuthLoginFailed = "login_failed"
)

// NewRegistry creates a new metrics registry.
func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()

	r := &Registry{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beagle",
			Subsystem: "cli",
			Name:      "requests_total",
			Help:      "HTTP requests issued, by method, endpoint and status code.",
		}, []string{"method", "endpoint", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "beagle",
			Subsystem: "cli",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by method and endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beagle",
			Subsystem: "cli",
			Name:      "auth_events_total",
			Help:      "Authentication state-machine events.",
		}, []string{"event"}),
	}

	registry.MustRegister(r.requestsTotal, r.requestDuration, r.authEvents)
	return r
}

// ObserveRequest records one dispatched HTTP request. A status of 0 means
// the transport failed before any response arrived.
func (r *Registry) ObserveRequest(method, endpoint string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	r.requestsTotal.WithLabelValues(method, endpoint, code).Inc()
	r.requestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// AuthEvent records one authentication state-machine event.
func (r *Registry) AuthEvent(event string) {
	r.authEvents.WithLabelValues(event).Inc()
}

// Dump writes all collected metrics to w in the Prometheus text
// exposition format.
func (r *Registry) Dump(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metric: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metric: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
