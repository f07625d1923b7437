package conv

import (
	"github.com/ib-77/ropt/pkg/ropt"
)

// Parser is the try-parse capability: attempt to convert text to a value
// and report success without raising on failure. User types opt in by
// implementing it.
type Parser[T any] interface {
	TryParse(s string) (T, bool)
}

// Parse converts s through the parser type P, yielding the parsed value
// or none. P is instantiated as its zero value, so parser types must be
// stateless.
func Parse[T any, P Parser[T]](s string) ropt.Option[T] {
	var p P
	if v, ok := p.TryParse(s); ok {
		return ropt.Some(v)
	}
	return ropt.None[T]()
}

// ToOption adapts any two-output try-parse-shaped function.
func ToOption[T any](tryParse func(s string) (T, bool), s string) ropt.Option[T] {
	if v, ok := tryParse(s); ok {
		return ropt.Some(v)
	}
	return ropt.None[T]()
}

// Try adapts the (T, error) parse shape, mapping any error to none.
func Try[T any](parse func(s string) (T, error), s string) ropt.Option[T] {
	v, err := parse(s)
	if err != nil {
		return ropt.None[T]()
	}
	return ropt.Some(v)
}
