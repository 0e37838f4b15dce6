package trace

import "context"

// SpanContext names the span that new child spans should attach to.
type SpanContext struct {
	SpanID uint64
}

// carrier is stored under a single key; deriving a span context keeps the
// tracer and the other way round.
type carrier struct {
	tracer Tracer
	span   SpanContext
}

type carrierKey struct{}

func carrierOf(ctx context.Context) carrier {
	if ctx != nil {
		if c, ok := ctx.Value(carrierKey{}).(carrier); ok {
			return c
		}
	}
	return carrier{tracer: Nop}
}

// FromContext returns the run's tracer, or Nop.
func FromContext(ctx context.Context) Tracer {
	return carrierOf(ctx).tracer
}

// WithTracer installs t for the run; a nil t disables tracing.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	c := carrierOf(ctx)
	c.tracer = t
	return context.WithValue(ctx, carrierKey{}, c)
}

// CurrentSpan is the innermost span set with WithSpanContext.
func CurrentSpan(ctx context.Context) SpanContext {
	return carrierOf(ctx).span
}

// WithSpanContext makes sc the parent of spans opened under ctx.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	c := carrierOf(ctx)
	c.span = sc
	return context.WithValue(ctx, carrierKey{}, c)
}
