package accept

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRecorder observes negotiation outcomes in the middleware.
type MetricsRecorder interface {
	// IncNegotiated records a successful negotiation, by chosen content type.
	IncNegotiated(contentType string)
	// IncNotAcceptable records a request no offer could satisfy.
	IncNotAcceptable()
	// IncParseFailure records a malformed Accept header.
	IncParseFailure()
}

// InMemoryMetricsRecorder is a dependency-free in-memory implementation,
// useful for test assertions.
type InMemoryMetricsRecorder struct {
	mu            sync.Mutex
	Negotiated    map[string]int
	NotAcceptable int
	ParseFailures int
}

func NewInMemoryMetricsRecorder() *InMemoryMetricsRecorder {
	return &InMemoryMetricsRecorder{
		Negotiated: map[string]int{},
	}
}

func (m *InMemoryMetricsRecorder) IncNegotiated(contentType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Negotiated[contentType]++
}

func (m *InMemoryMetricsRecorder) IncNotAcceptable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotAcceptable++
}

func (m *InMemoryMetricsRecorder) IncParseFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ParseFailures++
}

// NegotiatedCount returns the recorded count for one content type.
func (m *InMemoryMetricsRecorder) NegotiatedCount(contentType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Negotiated[contentType]
}

// PromRecorderConfig configures the prometheus-backed recorder.
type PromRecorderConfig struct {
	Namespace string
	Subsystem string
}

func DefaultPromRecorderConfig() *PromRecorderConfig {
	return &PromRecorderConfig{
		Namespace: "accept",
		Subsystem: "negotiation",
	}
}

type PromRecorderOption func(*PromRecorderConfig)

func WithNamespace(ns string) PromRecorderOption {
	return func(cfg *PromRecorderConfig) {
		cfg.Namespace = ns
	}
}

func WithSubsystem(subsystem string) PromRecorderOption {
	return func(cfg *PromRecorderConfig) {
		cfg.Subsystem = subsystem
	}
}

// PrometheusMetricsRecorder records negotiation outcomes as prometheus
// counters.
type PrometheusMetricsRecorder struct {
	negotiated    *prometheus.CounterVec
	notAcceptable prometheus.Counter
	parseFailures prometheus.Counter
}

// NewPrometheusMetricsRecorder builds and registers the counters on the
// default registry. Re-registering the same counters is tolerated so several
// middlewares can share one recorder configuration.
func NewPrometheusMetricsRecorder(opts ...PromRecorderOption) (*PrometheusMetricsRecorder, error) {
	cfg := DefaultPromRecorderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	negotiated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      "negotiated_total",
		Help:      "Total successfully negotiated responses, by content type",
	}, []string{"content_type"})

	notAcceptable := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      "not_acceptable_total",
		Help:      "Total requests no offered content type could satisfy",
	})

	parseFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      "parse_failures_total",
		Help:      "Total malformed Accept headers",
	})

	for _, c := range []prometheus.Collector{negotiated, notAcceptable, parseFailures} {
		if err := prometheus.Register(c); err != nil {
			var alreadyRegisteredError prometheus.AlreadyRegisteredError
			if errors.As(err, &alreadyRegisteredError) {
				continue
			}
			return nil, err
		}
	}

	return &PrometheusMetricsRecorder{
		negotiated:    negotiated,
		notAcceptable: notAcceptable,
		parseFailures: parseFailures,
	}, nil
}

func (p *PrometheusMetricsRecorder) IncNegotiated(contentType string) {
	p.negotiated.WithLabelValues(contentType).Inc()
}

func (p *PrometheusMetricsRecorder) IncNotAcceptable() {
	p.notAcceptable.Inc()
}

func (p *PrometheusMetricsRecorder) IncParseFailure() {
	p.parseFailures.Inc()
}

func (p *PrometheusMetricsRecorder) NegotiatedCollector() prometheus.Collector {
	return p.negotiated
}
