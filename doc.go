// Package eis implements the decimal arithmetic instructions of the EIS
// (extended instruction set) unit: ad2d, ad3d, sb2d, sb3d, mp2d, mp3d, dv2d
// and dv3d.
//
// An instruction is executed in one pass:
//
//  operand cells -> operand.Load -> bcd.Decode -> decimal arithmetic
//    -> format.Format (format.FormatDiv for divide) -> Sink -> Indicators
//
// Subtract computes op2 - op1 and divide computes op2 / op1: the second
// operand is the minuend or dividend. Two operand forms store the result in
// op2, three operand forms in op3.
//
// Faults are returned as *Fault errors. A fault aborts the instruction but
// cells already written stay written, as they do on the hardware, and the
// indicators are already set.
package eis
