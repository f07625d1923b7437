package rail

import (
	"context"
	"errors"

	"braces.dev/errtrace"

	"github.com/ib-77/ropt/pkg/ropt"
)

func Succeed[T any](input T) ropt.Result[T] {
	return ropt.Success(input)
}

func Fail[T any](err error) ropt.Result[T] {
	return ropt.Fail[T](err)
}

// Zero is the neutral outcome of a chain that produced nothing.
func Zero[T any]() ropt.Result[T] {
	return ropt.Empty[T]()
}

// From lazily invokes thunk and uses its result as the chain's result.
func From[T any](ctx context.Context,
	thunk func(ctx context.Context) ropt.Result[T]) ropt.Result[T] {
	return thunk(ctx)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) ropt.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input ropt.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) ropt.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return ropt.Success(input.Result())
		} else {
			return ropt.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input ropt.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in ropt.Result[T]) ropt.Result[T]) ropt.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current ropt.Result[T]) ropt.Result[T] {

			if current.IsFailure() {
				e := ropt.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if ropt.IsNil(err) {
				return current
			}

			return ropt.Fail[T](err)
		},
		inputsF...,
	)
}

// Switch continues with onSuccess on a successful input and carries any
// other outcome through unchanged.
func Switch[In any, Out any](ctx context.Context,
	input ropt.Result[In],
	onSuccess func(ctx context.Context, r In) ropt.Result[Out]) ropt.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return ropt.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input ropt.Result[In],
	onSuccess func(ctx context.Context, r In) Out) ropt.Result[Out] {

	if input.IsSuccess() {
		return ropt.Success(onSuccess(ctx, input.Result()))
	}
	return ropt.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input ropt.Result[T],
	onSuccess func(ctx context.Context, r ropt.Result[T])) ropt.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input ropt.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) ropt.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input ropt.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) ropt.Result[Out] {

	if input.IsSuccess() {
		return ropt.Success(onSuccess(ctx, input.Result()))
	}

	onError(ctx, input.Err())
	return ropt.FailFrom[In, Out](input)
}

// Try calls a (Out, error) function and converts a non-nil error into a
// traced failure.
func Try[In any, Out any](ctx context.Context, input ropt.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) ropt.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return ropt.Fail[Out](errtrace.Wrap(err))
		}

		return ropt.Success(out)
	}

	return ropt.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input ropt.Result[T],
	maybeErr func(ctx context.Context, in T) error) ropt.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Result())
		if err != nil {
			return ropt.Fail[T](err)
		}
		return input
	}
	return input
}

// Else returns first when it is a success; otherwise it evaluates the
// alternative exactly once and returns its result.
func Else[T any](ctx context.Context, first ropt.Result[T],
	alternative func(ctx context.Context) ropt.Result[T]) ropt.Result[T] {

	if first.IsSuccess() {
		return first
	}
	return alternative(ctx)
}

func Finally[In, Out any](ctx context.Context, input ropt.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}

func Join[T any](ctx context.Context,
	input ropt.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current ropt.Result[T]) ropt.Result[T],
	inputsF ...func(ctx context.Context, in ropt.Result[T]) ropt.Result[T]) ropt.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
