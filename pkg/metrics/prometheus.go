package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusSink implements Sink on a dedicated Prometheus registry.
type PrometheusSink struct {
	registry *prometheus.Registry

	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
	gauges     map[string]*prometheus.GaugeVec
}

// Label sets per instrument. Instruments without an entry are unlabelled.
var instrumentLabels = map[string][]string{
	WorkflowsCompleted: {"complexity"},
	WorkflowsFailed:    {"complexity"},
	TaskRetriesTotal:   {"error_kind"},
}

// NewPrometheusSink registers the fixed instrument set on a fresh registry.
func NewPrometheusSink() *PrometheusSink {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	s := &PrometheusSink{
		registry:   reg,
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}

	for _, name := range []string{WorkflowsCompleted, WorkflowsFailed, TaskRetriesTotal, ConflictsDetected, ConflictsResolved, TokensUsed} {
		s.counters[name] = factory.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: "crewforge counter " + name,
		}, instrumentLabels[name])
	}

	for name, buckets := range map[string][]float64{
		WorkflowDurationSeconds: prometheus.ExponentialBuckets(1, 2, 12),
		StackConfidence:         prometheus.LinearBuckets(0, 0.1, 11),
		ConflictSimilarity:      prometheus.LinearBuckets(0, 0.1, 11),
		VisualDiffScore:         prometheus.LinearBuckets(0, 1, 21),
	} {
		s.histograms[name] = factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    "crewforge histogram " + name,
			Buckets: buckets,
		}, instrumentLabels[name])
	}

	s.gauges[ActiveFileLocks] = factory.NewGaugeVec(prometheus.GaugeOpts{
		Name: ActiveFileLocks,
		Help: "crewforge gauge " + ActiveFileLocks,
	}, nil)

	return s
}

// Handler returns the /metrics HTTP handler for this sink's registry.
func (s *PrometheusSink) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// IncCounter implements Sink.
func (s *PrometheusSink) IncCounter(name string, labels ...string) {
	s.AddCounter(name, 1, labels...)
}

// AddCounter implements Sink.
func (s *PrometheusSink) AddCounter(name string, value float64, labels ...string) {
	c, ok := s.counters[name]
	if !ok {
		slog.Warn("Unknown counter", "name", name)
		return
	}
	c.WithLabelValues(labels...).Add(value)
}

// ObserveHistogram implements Sink.
func (s *PrometheusSink) ObserveHistogram(name string, value float64, labels ...string) {
	h, ok := s.histograms[name]
	if !ok {
		slog.Warn("Unknown histogram", "name", name)
		return
	}
	h.WithLabelValues(labels...).Observe(value)
}

// SetGauge implements Sink.
func (s *PrometheusSink) SetGauge(name string, value float64, labels ...string) {
	g, ok := s.gauges[name]
	if !ok {
		slog.Warn("Unknown gauge", "name", name)
		return
	}
	g.WithLabelValues(labels...).Set(value)
}
