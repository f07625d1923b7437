// Package conv turns textual input into typed Option values through the
// Parser[T] try-parse capability.
//
// Highlights:
// - Parse: generic parse through a Parser type, none on failure
// - ToOption/Try: adapt (T, bool) and (T, error) parse shapes
// - Int/Int64/Uint/Float64/Bool/Time/Duration/UUID: built-in parsers
//
// Nothing in this package panics on malformed input; failure is always
// represented as absence.
package conv
