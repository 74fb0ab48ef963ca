package calltrace

import "context"

// ctxKey is the key type for storing a Tracer in context.
type ctxKey struct{}

// WithTracer attaches a Tracer to the context so traced code deep in a
// call tree can reach the active tracer (and its Output sink) without
// threading it through every signature.
func WithTracer(ctx context.Context, t *Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext extracts the Tracer from context, falling back to Nop.
func FromContext(ctx context.Context) *Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(*Tracer); ok {
		return t
	}
	return Nop
}
