package whirlpool

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	quoteKindFees    = "fees"
	quoteKindRewards = "rewards"
)

type metrics struct {
	quotes   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whirlpool",
			Name:      "quotes_total",
			Help:      "Position quotes computed, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "whirlpool",
			Name:      "quote_duration_seconds",
			Help:      "Time spent loading accounts and computing a quote.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	if reg == nil {
		return m
	}
	m.quotes = registerOrReuse(reg, m.quotes)
	m.duration = registerOrReuse(reg, m.duration)
	return m
}

func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

func (m *metrics) observe(kind string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.quotes.WithLabelValues(kind, outcome).Inc()
	m.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
