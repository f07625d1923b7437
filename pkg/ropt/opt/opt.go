package opt

import (
	"github.com/ib-77/ropt/pkg/ropt"
)

func Lift[T any](v T) ropt.Option[T] {
	return ropt.Some(v)
}

// From passes an already-optional value through unchanged.
func From[T any](o ropt.Option[T]) ropt.Option[T] {
	return o
}

func Bind[In any, Out any](input ropt.Option[In],
	onSome func(v In) ropt.Option[Out]) ropt.Option[Out] {

	if v, ok := input.Get(); ok {
		return onSome(v)
	}
	return ropt.None[Out]()
}

func Map[In any, Out any](input ropt.Option[In],
	onSome func(v In) Out) ropt.Option[Out] {

	if v, ok := input.Get(); ok {
		return ropt.Some(onSome(v))
	}
	return ropt.None[Out]()
}

func Filter[T any](input ropt.Option[T],
	keep func(v T) bool) ropt.Option[T] {

	if v, ok := input.Get(); ok && keep(v) {
		return input
	}
	return ropt.None[T]()
}

// Or returns input when present; otherwise it evaluates the alternative
// exactly once and returns its result.
func Or[T any](input ropt.Option[T],
	alternative func() ropt.Option[T]) ropt.Option[T] {

	if input.IsSome() {
		return input
	}
	return alternative()
}

func Tee[T any](input ropt.Option[T],
	onSome func(v T)) ropt.Option[T] {

	if v, ok := input.Get(); ok {
		onSome(v)
	}
	return input
}

func Finally[In any, Out any](input ropt.Option[In],
	onSome func(v In) Out,
	onNone func() Out) Out {

	if v, ok := input.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// Head returns the first element of items, or none for an empty slice.
func Head[T any](items []T) ropt.Option[T] {
	if len(items) == 0 {
		return ropt.None[T]()
	}
	return ropt.Some(items[0])
}

// Lookup returns the value stored under key, or none on a lookup miss.
func Lookup[K comparable, V any](m map[K]V, key K) ropt.Option[V] {
	if v, ok := m[key]; ok {
		return ropt.Some(v)
	}
	return ropt.None[V]()
}
