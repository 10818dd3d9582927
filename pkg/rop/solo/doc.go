// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions are the building blocks for error-aware
// transformations without exceptions or sentinel values.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Finally/OrElse: reduce to a concrete value
package solo
