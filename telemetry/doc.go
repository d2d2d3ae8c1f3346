// Package telemetry provides OpenTelemetry and Prometheus instrumentation
// for compiler.Compile and engine.Execute.
//
// What: Provider owns two parallel metrics pipelines recording the same
// facts — compile duration and image size, node-kind counts, and engine
// step/output counts — once to a prometheus.Registry via direct
// client_golang instruments, and once to an OTel meter. A Tracer wraps
// individual compile and execute calls with spans. Both pipelines are
// additive: nothing in compiler or engine depends on telemetry, and a
// Provider built with EnableTracing/EnableMetrics false degrades to
// pure no-ops.
//
// Why: compiler.Compile and engine.Execute are hot, synchronous calls that
// must stay instrumentation-free at the call site; WrapCompile takes the
// call as a closure and WrapExecute takes the State with its input and
// callback, instead of threading a Provider through Compile's
// or Execute's own signature, the way the teacher package wraps workflow
// and node execution around an observer.Event rather than changing node
// execution itself.
//
// Usage:
//
//	p, err := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
//	res, err := telemetry.WrapCompile(ctx, p, func() (*compiler.Result, error) {
//		return compiler.Compile(a)
//	})
//
// Errors: NewProvider returns an error only if building the underlying
// OTel resource or registering a Prometheus collector fails; WrapCompile/
// WrapExecute never fail on their own and simply propagate the wrapped
// call's error untouched.
package telemetry
