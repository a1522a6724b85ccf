package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder exports request counts and latencies.
type PrometheusRecorder struct {
	counters  *prometheus.CounterVec
	histogram *prometheus.HistogramVec
}

// NewPrometheusRecorder registers its collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default handler.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	counters := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stripe",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Stripe API calls by method and outcome",
		},
		[]string{"event", LabelMethod, LabelOutcome},
	)

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stripe",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Stripe API round trip latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", LabelMethod, LabelOutcome},
	)

	reg.MustRegister(counters, histogram)

	return &PrometheusRecorder{
		counters:  counters,
		histogram: histogram,
	}
}

func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.counters.With(prometheus.Labels{
		"event":      name,
		LabelMethod:  labels[LabelMethod],
		LabelOutcome: labels[LabelOutcome],
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.histogram.With(prometheus.Labels{
		"operation":  name,
		LabelMethod:  labels[LabelMethod],
		LabelOutcome: labels[LabelOutcome],
	}).Observe(d.Seconds())
}
