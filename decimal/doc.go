// Package decimal provides the bounded precision decimal number used by the
// EIS decimal instructions.
//
// The equation for a decimal number is:
//
//  number = coefficient * 10 ^ exponent
//
// Where coefficient is an unsigned integer of at most Context.Precision
// digits, exponent is a signed base 10 exponent and the sign is carried
// separately from the coefficient. For example:
//
//  -1.23 = -(123 * 10^-2)
//
// Zero
//
// A zero number has no significant digits (Digits returns 0) but keeps its
// exponent. The hardware tracks the scale of a zero result and the drivers
// rely on it when they write the characteristic of a floating zero.
//
// Context
//
// All rounding goes through a Context. The context carries the precision
// (default 65 digits) and the rounding mode (default half even). Temporary
// changes are scoped:
//
//  restore := ctx.WithPrecision(5)
//  defer restore()
//
// Special values (NaN, Infinity) are never produced. Operations that would
// produce one return an error instead.
package decimal
