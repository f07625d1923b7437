// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values using rail primitives.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Or: lazy alternative when the chain is not a success
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability without dealing directly with branching
// results at each step.
package chain
