package ropt

type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:  v,
		isSome: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Value() T {
	return o.value
}

// Get returns the value together with a presence flag.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// OrElse returns the value if present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.isSome {
		return o.value
	}
	return fallback
}
