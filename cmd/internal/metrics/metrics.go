package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registry API.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreErrors     *prometheus.CounterVec
	Mutations       *prometheus.CounterVec
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brainagro_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brainagro_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brainagro_store_errors_total",
			Help: "Store errors by classification (conflict, in_use, reference, internal)",
		}, []string{"class"}),
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brainagro_mutations_total",
			Help: "Successful create/update/delete operations by entity kind",
		}, []string{"kind", "action"}),
	}
}

// ObserveRequest records a finished request. Call with time.Now() taken at its start.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementStoreError(class string) {
	if m == nil {
		return
	}
	m.StoreErrors.WithLabelValues(class).Inc()
}

func (m *Metrics) IncrementMutation(kind, action string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(kind, action).Inc()
}
