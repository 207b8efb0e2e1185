package diag

import "context"

// ctxKey is the key type for storing Reporter in context.
type ctxKey struct{}

// FromContext extracts the Reporter from context.
// If not found, returns Nop.
func FromContext(ctx context.Context) *Reporter {
	if ctx == nil {
		return Nop
	}
	if r, ok := ctx.Value(ctxKey{}).(*Reporter); ok && r != nil {
		return r
	}
	return Nop
}

// WithReporter attaches a Reporter to context.
func WithReporter(ctx context.Context, r *Reporter) context.Context {
	if r == nil {
		r = Nop
	}
	return context.WithValue(ctx, ctxKey{}, r)
}
