// Package prometheus records input session events as Prometheus metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/readinput/pkg/domain"
)

// Collector holds the metrics fed by session hooks.
type Collector struct {
	attempts *prometheus.CounterVec
	rejects  *prometheus.CounterVec
	accepts  *prometheus.CounterVec
	tries    *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// skips registration.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_attempts_total",
			Help:      "Total number of lines read by input sessions",
		}, []string{"question"}),
		rejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_rejects_total",
			Help:      "Total number of rejected lines by reason",
		}, []string{"question", "reason"}),
		accepts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_accepts_total",
			Help:      "Total number of values produced, by origin",
		}, []string{"question", "origin"}),
		tries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "input_attempts_per_value",
			Help:      "Lines read before a value was produced",
			Buckets:   []float64{1, 2, 3, 5, 8, 13},
		}, []string{"question"}),
	}

	if reg != nil {
		for _, m := range []prometheus.Collector{c.attempts, c.rejects, c.accepts, c.tries} {
			if err := reg.Register(m); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Hooks returns session hooks labelled with question.
func (c *Collector) Hooks(question string) domain.Hooks {
	return domain.Hooks{
		OnAttempt: func(*domain.AttemptEvent) {
			c.attempts.WithLabelValues(question).Inc()
		},
		OnReject: func(e *domain.RejectEvent) {
			c.rejects.WithLabelValues(question, string(e.Reason)).Inc()
		},
		OnAccept: func(e *domain.AcceptEvent) {
			origin := "parsed"
			if e.Defaulted {
				origin = "default"
			}
			c.accepts.WithLabelValues(question, origin).Inc()
			c.tries.WithLabelValues(question).Observe(float64(e.Attempt))
		},
	}
}
