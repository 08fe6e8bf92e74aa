// Package vector provides Vector, an owned sequence of integers confined to
// the closed range [MinValue, MaxValue].
//
// # Invariants
//
//   - Every element is within [MinValue, MaxValue] after any operation.
//   - The backing slice has capacity equal to its length; Append reallocates.
//   - A failed Set or Append leaves the vector unchanged.
//
// Add and Subtract are saturating: results outside the range are clamped to
// the nearest bound instead of failing. Operands of different lengths are
// padded with zeros, so the result has the length of the longer operand.
//
// Errors returned by this package (and by stats and export) are *Error values
// carrying a Code. Match them with errors.Is against the sentinels:
//
//	if errors.Is(err, vector.ErrOutOfRange) { ... }
package vector
