package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusEmitter counts events by namespace and name. Dimensions are not
// turned into labels: they carry per-user values.
type PrometheusEmitter struct {
	events    *prometheus.CounterVec
	namespace string
}

var _ Emitter = (*PrometheusEmitter)(nil)

// NewPrometheusEmitter registers its collector on reg. Passing
// prometheus.DefaultRegisterer exposes it on the default /metrics handler.
func NewPrometheusEmitter(reg prometheus.Registerer, namespace string) *PrometheusEmitter {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &PrometheusEmitter{
		events: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "userapp_login_events_total",
				Help: "Total number of login outcome events by namespace and event name.",
			},
			[]string{"namespace", "event"},
		),
		namespace: namespace,
	}
}

func (e *PrometheusEmitter) Emit(_ context.Context, event Event) {
	if event.Value < 0 {
		// Counters only go up.
		return
	}
	namespace := event.Namespace
	if namespace == "" {
		namespace = e.namespace
	}
	e.events.WithLabelValues(namespace, event.Name).Add(event.Value)
}
