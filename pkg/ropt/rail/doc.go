// Package rail contains single-value, synchronous railway primitives that
// operate on Result[T]. These functions form the core building blocks for
// error-aware pipelines; failures are ordinary values and propagate by
// return, never by panic.
//
// Highlights:
// - Succeed/Fail/Zero: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error maps)
// - Try: call a function (Out, error) and convert error to a traced failure
// - Tee/DoubleTee: side-effect helpers
// - Else: lazy alternative when the first outcome is not a success
// - Delay/Run/Then: assemble a chain as a Deferred and force it later
// - Finally: reduce to a concrete value via success/error handlers
//
// Continuations take a context.Context for parity with callers that carry
// request-scoped data; the package itself never cancels or blocks.
package rail
