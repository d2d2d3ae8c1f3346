package telemetry

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const defaultServiceName = "eudoxus"

// Config configures a Provider.
type Config struct {
	// ServiceName is the name of the service for telemetry.
	ServiceName string

	// ServiceVersion is the version of the service.
	ServiceVersion string

	// Environment (e.g., "production", "staging", "development").
	Environment string

	// EnableTracing enables span creation around Compile/Execute.
	EnableTracing bool

	// EnableMetrics enables both the Prometheus and OTel metrics pipelines.
	EnableMetrics bool
}

// DefaultConfig returns a Config with both pipelines enabled.
func DefaultConfig() Config {
	return Config{
		ServiceName:    defaultServiceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// Provider holds every instrument telemetry records against. It is safe
// for concurrent use: the OTel and Prometheus instruments it wraps are
// themselves safe for concurrent use, and Provider never mutates its own
// fields after NewProvider returns.
type Provider struct {
	mu sync.RWMutex

	tracer trace.Tracer
	meter  metric.Meter

	registry *prometheus.Registry

	compileDuration prometheus.Histogram
	compileSize     prometheus.Histogram
	compileFailures prometheus.Counter
	nodeKinds       *prometheus.CounterVec
	engineSteps     prometheus.Counter
	engineOutputs   prometheus.Counter
	engineStops     prometheus.Counter

	otelCompileDuration metric.Float64Histogram
	otelCompileSize     metric.Int64Histogram
	otelCompileFailures metric.Int64Counter
	otelNodeKinds       metric.Int64Counter
	otelEngineSteps     metric.Int64Counter
	otelEngineOutputs   metric.Int64Counter
	otelEngineStops     metric.Int64Counter
}

// NewProvider builds a Provider per config. Passing EnableTracing and
// EnableMetrics both false returns a Provider whose every record/span
// method is a no-op.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	if config.ServiceName == "" {
		config.ServiceName = defaultServiceName
	}
	p := &Provider{}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", config.ServiceName),
		attribute.String("service.version", config.ServiceVersion),
		attribute.String("environment", config.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("telemetry: building resource: %w", err)
	}

	if config.EnableTracing {
		tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
		p.tracer = tp.Tracer(config.ServiceName)
	}

	if config.EnableMetrics {
		if err := p.initPrometheus(); err != nil {
			return nil, fmt.Errorf("telemetry: registering prometheus collectors: %w", err)
		}
		if err := p.initOTelMetrics(res, config.ServiceName); err != nil {
			return nil, fmt.Errorf("telemetry: building otel meter: %w", err)
		}
	}

	return p, nil
}

func (p *Provider) initPrometheus() error {
	p.registry = prometheus.NewRegistry()

	p.compileDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "eudoxus_compile_duration_seconds",
		Help: "Time spent compiling an automaton into a Eudoxus image.",
	})
	p.compileSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "eudoxus_compile_image_bytes",
		Help:    "Size in bytes of the compiled image.",
		Buckets: prometheus.ExponentialBuckets(64, 4, 12),
	})
	p.compileFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eudoxus_compile_failures_total",
		Help: "Number of Compile calls that returned an error.",
	})
	p.nodeKinds = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eudoxus_compile_node_kind_total",
		Help: "Number of nodes emitted, by kind, across all compiles.",
	}, []string{"kind"})
	p.engineSteps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eudoxus_engine_steps_total",
		Help: "Number of input bytes fed through State.Execute.",
	})
	p.engineOutputs = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eudoxus_engine_outputs_total",
		Help: "Number of outputs reported by State.Execute callbacks.",
	})
	p.engineStops = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eudoxus_engine_early_stops_total",
		Help: "Number of Execute calls a callback halted with SignalStop.",
	})

	for _, c := range []prometheus.Collector{
		p.compileDuration, p.compileSize, p.compileFailures,
		p.nodeKinds, p.engineSteps, p.engineOutputs, p.engineStops,
	} {
		if err := p.registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) initOTelMetrics(res *resource.Resource, serviceName string) error {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithResource(res), sdkmetric.WithReader(reader))
	p.meter = mp.Meter(serviceName)

	var err error
	p.otelCompileDuration, err = p.meter.Float64Histogram(
		"eudoxus.compile.duration",
		metric.WithDescription("Time spent compiling an automaton into a Eudoxus image."),
		metric.WithUnit("s"))
	if err != nil {
		return err
	}
	p.otelCompileSize, err = p.meter.Int64Histogram(
		"eudoxus.compile.image_size",
		metric.WithDescription("Size in bytes of the compiled image."),
		metric.WithUnit("By"))
	if err != nil {
		return err
	}
	p.otelCompileFailures, err = p.meter.Int64Counter(
		"eudoxus.compile.failures",
		metric.WithDescription("Number of Compile calls that returned an error."))
	if err != nil {
		return err
	}
	p.otelNodeKinds, err = p.meter.Int64Counter(
		"eudoxus.compile.node_kinds",
		metric.WithDescription("Number of nodes emitted, by kind, across all compiles."))
	if err != nil {
		return err
	}
	p.otelEngineSteps, err = p.meter.Int64Counter(
		"eudoxus.engine.steps",
		metric.WithDescription("Number of input bytes fed through State.Execute."))
	if err != nil {
		return err
	}
	p.otelEngineOutputs, err = p.meter.Int64Counter(
		"eudoxus.engine.outputs",
		metric.WithDescription("Number of outputs reported by State.Execute callbacks."))
	if err != nil {
		return err
	}
	p.otelEngineStops, err = p.meter.Int64Counter(
		"eudoxus.engine.early_stops",
		metric.WithDescription("Number of Execute calls a callback halted with SignalStop."))
	return err
}

// Tracer returns the tracer spans are started from, or nil if tracing is
// disabled.
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the OTel meter instruments are recorded against, or nil
// if metrics are disabled.
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// metricAttr builds a single-attribute metric.AddOption, shared by every
// otel counter that breaks down by a string label.
func metricAttr(key, value string) metric.AddOption {
	return metric.WithAttributes(attribute.String(key, value))
}

// Registry returns the Prometheus registry metrics are registered
// against, or nil if metrics are disabled. Callers expose it via
// promhttp.HandlerFor in their own server setup.
func (p *Provider) Registry() *prometheus.Registry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.registry
}
