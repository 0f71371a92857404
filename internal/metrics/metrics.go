package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hdderive"

// Metrics collects derivation counters in a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	accountsDerived prometheus.Counter
	batchesFailed   prometheus.Counter
	batchDuration   prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		accountsDerived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_derived_total",
			Help:      "Number of accounts derived by successful batches.",
		}),
		batchesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_failed_total",
			Help:      "Number of batches aborted by an error.",
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of a batch, including seed stretching.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), //nolint:mnd // 1ms .. ~4.4min
		}),
	}

	m.registry.MustRegister(m.accountsDerived, m.batchesFailed, m.batchDuration)
	return m
}

// ObserveBatch records the outcome of one batch.
func (m *Metrics) ObserveBatch(accounts int, duration time.Duration, err error) {
	m.batchDuration.Observe(duration.Seconds())
	if err != nil {
		m.batchesFailed.Inc()
		return
	}

	m.accountsDerived.Add(float64(accounts))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in the text exposition format, e.g. for the
// node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrap(err, "failed to write metrics textfile")
	}

	return nil
}
