package chain

import (
	"context"

	"braces.dev/errtrace"

	"github.com/ib-77/ropt/pkg/ropt"
	"github.com/ib-77/ropt/pkg/ropt/rail"
)

type Chain[T any] struct {
	ctx context.Context
	res ropt.Result[T]
}

func Start[T any](ctx context.Context, r ropt.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, ropt.Success(v))
}

func (c Chain[T]) Result() ropt.Result[T] {
	return c.res
}

// Then composes functions that already return ropt.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) ropt.Result[T]) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

// ThenTry composes functions that return (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}

	u, err := try(c.ctx, c.res.Result())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: ropt.Fail[T](errtrace.Wrap(err))}
	}
	return Chain[T]{ctx: c.ctx, res: ropt.Success(u)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}

	return Chain[T]{ctx: c.ctx, res: ropt.Success(onSuccess(c.ctx, c.res.Result()))}
}

// Or returns the chain unchanged on success; otherwise it evaluates the
// alternative exactly once and continues with its result.
func (c Chain[T]) Or(alternative func(ctx context.Context) ropt.Result[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: alternative(c.ctx)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T),
	onFailure func(context.Context, error)) Chain[T] {

	if c.res.IsSuccess() {
		if onSuccess != nil {
			onSuccess(c.ctx, c.res.Result())
		}
		return c
	}

	if onFailure != nil {
		onFailure(c.ctx, c.res.Err())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to rail.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return rail.Finally(c.ctx, c.res, onSuccess, onFailure)
}
