// Package bcd converts between fields of decimal digit cells and
// decimal.Number.
//
// Two cell widths exist. A 4-bit cell (TN=1) holds the digit value directly. A
// 9-bit cell (TN=0) holds the ASCII character of the digit:
//
//  | Width  | Digit 0 | Digit 9 | Cells per word |
//  |--------|---------|---------|----------------|
//  | Nibble | 0o000   | 0o011   | 8              |
//  | Char   | 0o060   | 0o071   | 4              |
//
// A field of length cells is read most significant digit first. Decode skips
// leading zero cells, so the resulting number has as many digits as the field
// has significant cells. The scale of the field is the negated exponent:
//
//  cells = 0 0 1 2 3, scale = 2  =>  123 * 10^-2
//
// Encode is the inverse: the coefficient is written right aligned and zero
// padded to the requested length.
package bcd
