package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ironautomata/eudoxus/engine"
)

// WrapExecute runs st.Execute inside a span (if tracing is enabled),
// counting every byte consumed and every output and stop reported, and
// records those counts to both metrics pipelines (if metrics are
// enabled). p may be nil, in which case WrapExecute simply calls
// st.Execute with cb untouched.
func WrapExecute(ctx context.Context, p *Provider, st *engine.State, input []byte, cb engine.Callback) (engine.Result, int, error) {
	if p == nil {
		return st.Execute(input, cb)
	}

	var span trace.Span
	if p.Tracer() != nil {
		ctx, span = p.Tracer().Start(ctx, "eudoxus.execute")
		defer span.End()
	}

	outputs := 0
	counting := func(content []byte) engine.Signal {
		outputs++
		return cb(content)
	}

	result, n, err := st.Execute(input, counting)
	p.recordExecute(ctx, n, outputs, result)

	if span != nil {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}
	return result, n, err
}

func (p *Provider) recordExecute(ctx context.Context, bytesConsumed, outputs int, result engine.Result) {
	if p.engineSteps != nil {
		p.engineSteps.Add(float64(bytesConsumed))
		p.engineOutputs.Add(float64(outputs))
		if result == engine.ResultStop {
			p.engineStops.Inc()
		}
	}
	if p.otelEngineSteps != nil {
		p.otelEngineSteps.Add(ctx, int64(bytesConsumed))
		p.otelEngineOutputs.Add(ctx, int64(outputs))
		if result == engine.ResultStop {
			p.otelEngineStops.Add(ctx, 1)
		}
	}
}
