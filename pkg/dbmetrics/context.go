package dbmetrics

import "context"

type executorCtxKey struct{}

// WithExecutor stores an active transaction executor in the context.
// Used by the transaction managers so repositories pick up the transaction
// transparently.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, exec)
}

// GetExecutor returns the transaction executor from the context when one is
// active, otherwise the fallback (usually the repository's own connection).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorCtxKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}
