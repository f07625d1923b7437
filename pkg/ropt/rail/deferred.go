package rail

import (
	"context"

	"github.com/ib-77/ropt/pkg/ropt"
)

// Deferred is an assembled but not yet evaluated chain. Side effects inside
// it fire only when the chain is run.
type Deferred[T any] func(ctx context.Context) ropt.Result[T]

func Delay[T any](thunk func(ctx context.Context) ropt.Result[T]) Deferred[T] {
	return thunk
}

// Run forces a deferred chain, evaluating it exactly once per call.
func Run[T any](ctx context.Context, d Deferred[T]) ropt.Result[T] {
	return d(ctx)
}

// Then composes a deferred chain with a continuation without forcing it.
func Then[In any, Out any](d Deferred[In],
	onSuccess func(ctx context.Context, r In) ropt.Result[Out]) Deferred[Out] {

	return func(ctx context.Context) ropt.Result[Out] {
		return Switch(ctx, d(ctx), onSuccess)
	}
}
