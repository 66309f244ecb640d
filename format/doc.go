// Package format fits an arithmetic result into a destination field.
//
// The destination has N cells of which the sign and, for floating fields, the
// exponent use some (see operand.SignStyle.Overhead). The remaining cells are
// the adjusted length available to digits.
//
// A fixed point result is first rescaled to the scale factor of the
// destination. Digits lost by that rescale mark the result truncated; a
// rescaled result with more digits than the adjusted length overflows. A
// floating result keeps its exponent and, when it fits, is widened to use
// every digit cell as far as the exponent floor allows.
//
// On overflow the behavior depends on whether rounding was requested:
//
//  | Round | Floating | Outcome                                                 |
//  |-------|----------|---------------------------------------------------------|
//  | yes   | any      | round to the adjusted length, write the rounded         |
//  |       |          | coefficient, never overflow                             |
//  | no    | yes      | truncate to the adjusted length, truncated              |
//  | no    | no       | truncating rescale; truncated if it now fits, otherwise |
//  |       |          | keep the low order cells and overflow                   |
//
// A rounded fixed point result is not rescaled back to the scale factor, so
// its cells hold the rounded coefficient at a larger exponent.
package format
