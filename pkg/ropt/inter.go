package ropt

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// ValueProvider defines an interface for types that may hold a value
type ValueProvider[T any] interface {
	// Get returns the value and whether it is present
	Get() (T, bool)
	// IsSome returns true if a value is present
	IsSome() bool
}

var (
	_ WithError[any]     = Result[any]{}
	_ ValueProvider[any] = Option[any]{}
)
