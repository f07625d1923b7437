// Package opt contains single-value, synchronous primitives that operate
// on Option[T]. Composition short-circuits on the first absent value and
// evaluates strictly left to right.
//
// Highlights:
// - Lift/From: wrap a value or pass an Option through
// - Bind: continue with the unwrapped value, skip on none
// - Map/Filter: transform or drop the present value
// - Or: lazy alternative on absence
// - Tee: side-effect helper on presence
// - Finally: reduce to a concrete value via some/none handlers
// - Head/Lookup: lift slice heads and map lookups into Option
package opt
