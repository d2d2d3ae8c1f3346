package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ironautomata/eudoxus/compiler"
)

// WrapCompile runs compile inside a span (if tracing is enabled) and
// records duration, image size, per-kind node counts, and failures to
// both metrics pipelines (if metrics are enabled). p may be nil, in which
// case WrapCompile simply calls compile and returns its result untouched.
func WrapCompile(ctx context.Context, p *Provider, compile func() (*compiler.Result, error)) (*compiler.Result, error) {
	if p == nil {
		return compile()
	}

	var span trace.Span
	if p.Tracer() != nil {
		ctx, span = p.Tracer().Start(ctx, "eudoxus.compile")
		defer span.End()
	}

	start := time.Now()
	res, err := compile()
	duration := time.Since(start)

	if err != nil {
		p.recordCompileFailure(ctx)
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return res, err
	}

	p.recordCompile(ctx, duration, res)
	if span != nil {
		span.SetAttributes(
			attribute.Int("eudoxus.compile.image_bytes", len(res.Image)),
			attribute.Int("eudoxus.compile.nodes.low", res.NodeKinds.Low),
			attribute.Int("eudoxus.compile.nodes.high", res.NodeKinds.High),
			attribute.Int("eudoxus.compile.nodes.pc", res.NodeKinds.PC),
		)
		span.SetStatus(codes.Ok, "")
	}
	return res, nil
}

func (p *Provider) recordCompileFailure(ctx context.Context) {
	if p.compileFailures != nil {
		p.compileFailures.Inc()
	}
	if p.otelCompileFailures != nil {
		p.otelCompileFailures.Add(ctx, 1)
	}
}

func (p *Provider) recordCompile(ctx context.Context, duration time.Duration, res *compiler.Result) {
	if p.compileDuration != nil {
		p.compileDuration.Observe(duration.Seconds())
		p.compileSize.Observe(float64(len(res.Image)))
		p.nodeKinds.WithLabelValues("low").Add(float64(res.NodeKinds.Low))
		p.nodeKinds.WithLabelValues("high").Add(float64(res.NodeKinds.High))
		p.nodeKinds.WithLabelValues("pc").Add(float64(res.NodeKinds.PC))
	}
	if p.otelCompileDuration != nil {
		p.otelCompileDuration.Record(ctx, duration.Seconds())
		p.otelCompileSize.Record(ctx, int64(len(res.Image)))
		p.otelNodeKinds.Add(ctx, int64(res.NodeKinds.Low), metricAttr("kind", "low"))
		p.otelNodeKinds.Add(ctx, int64(res.NodeKinds.High), metricAttr("kind", "high"))
		p.otelNodeKinds.Add(ctx, int64(res.NodeKinds.PC), metricAttr("kind", "pc"))
	}
}
