// Package telemetry instruments a Renderer with Prometheus metrics and
// OpenTelemetry tracing, following the functional-options shape the teacher
// repo uses for its own middleware (pkg/middleware/metrics.go, otel.go).
package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "renderkit").
	Namespace string
	// Subsystem is the metrics subsystem (default: "").
	Subsystem string
	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels
	// Buckets are the histogram buckets for render-pass duration.
	// Default: prometheus.DefBuckets
	Buckets []float64
	// Registry is the Prometheus registry to use. Default:
	// prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the render-duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "renderkit",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the counters/histograms/gauges a Renderer reports through.
type Metrics struct {
	renderPasses    *prometheus.CounterVec
	renderDuration  prometheus.Histogram
	hostMutations   *prometheus.CounterVec
	mountedSubtrees prometheus.Gauge
	keyedMoves      prometheus.Counter
}

var (
	global   *Metrics
	globalMu sync.Mutex
)

func newMetrics(config MetricsConfig) *Metrics {
	factory := promauto.With(config.Registry)

	return &Metrics{
		renderPasses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_passes_total",
			Help:        "Total number of component render-effect runs, by mount/update.",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_pass_duration_seconds",
			Help:        "Wall-clock time spent inside a single patch() call.",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		hostMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "host_mutations_total",
			Help:        "Total host adapter calls issued, by operation.",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		mountedSubtrees: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounted_subtrees",
			Help:        "Number of containers with a currently-mounted tree.",
			ConstLabels: config.ConstLabels,
		}),

		keyedMoves: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "keyed_child_moves_total",
			Help:        "Total host node moves issued by the keyed children fast-diff.",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Install initializes (once) and returns the process-wide Metrics instance.
//
// Example:
//
//	m := telemetry.Install(telemetry.WithNamespace("myapp"))
//	renderer := renderkit.CreateRenderer(telemetry.Wrap(adapter, m))
func Install(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = newMetrics(config)
	}
	return global
}

// RecordRenderPass records the duration of one patch() invocation, tagged
// "mount" or "update".
func (m *Metrics) RecordRenderPass(kind string, duration time.Duration) {
	if m == nil {
		return
	}
	m.renderPasses.WithLabelValues(kind).Inc()
	m.renderDuration.Observe(duration.Seconds())
}

// RecordHostMutation increments the counter for a single host adapter call.
func (m *Metrics) RecordHostMutation(op string) {
	if m == nil {
		return
	}
	m.hostMutations.WithLabelValues(op).Inc()
}

// RecordMount adjusts the mounted-subtree gauge when a container gains (delta
// > 0) or loses (delta < 0) a tracked tree.
func (m *Metrics) RecordMount(delta float64) {
	if m == nil {
		return
	}
	m.mountedSubtrees.Add(delta)
}

// RecordKeyedMoves adds count to the keyed-diff move counter.
func (m *Metrics) RecordKeyedMoves(count int) {
	if m == nil || count == 0 {
		return
	}
	m.keyedMoves.Add(float64(count))
}
