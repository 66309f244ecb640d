// Package operand describes decimal operand fields.
//
// Numeric Operand Descriptor
//
// A numeric operand is located and shaped by a 36-bit descriptor word:
//
//  | 0 ........... 17 | 18 . 20 | 21 | 22 . 23 | 24 ... 29 | 30 ... 35 |
//  |------------------|---------|----|---------|-----------|-----------|
//  | y (word address) | CN      | TN | S       | SF        | N         |
//  |------------------|---------|----|---------|-----------|-----------|
//
// CN is the first character position within the word, TN the cell width (0 is
// 9-bit, 1 is 4-bit), S the sign and decimal type, SF the signed scale factor
// and N the field length in cells.
//
// Sign and Decimal Type
//
//  | S | Abbr | Layout                                  | Scale     |
//  |---|------|-----------------------------------------|-----------|
//  | 0 | CSFL | sign, digits, exponent                  | exponent  |
//  | 1 | CSLS | sign, digits                            | SF        |
//  | 2 | CSTS | digits, sign                            | SF        |
//  | 3 | CSNS | digits                                  | SF        |
//
// The exponent of a floating field is one 9-bit cell or two 4-bit cells,
// holding a signed 8-bit value.
//
// Sign Cells
//
//  | Width | Plus                  | Minus |
//  |-------|-----------------------|-------|
//  | 4-bit | 0o012..0o017 but 0o015| 0o015 |
//  | 9-bit | '+'                   | '-'   |
//
// On output a 4-bit plus is 0o014, or 0o013 when the instruction P bit is set.
package operand
