// Package cpu implements the architectural model and instruction
// interpreter for a subset of the Motorola 68000.
//
// The model consists of eight 32-bit data registers (d0-d7), eight
// 32-bit address registers (a0-a7, with sp as an alias for a7), a
// program counter, a condition-code register (X, N, Z, V, C), and a
// bounded big-endian byte-addressable memory.
//
// The Parser turns one line of assembly text into a resolved
// Instruction; Execute runs it against the CPU state. Operands take
// three addressing modes: immediate (#$FACEBEEF), register direct
// (d1), and absolute memory (($40)). Literals inside a line may use
// compile-time $() expression evaluation and .equ equates.
package cpu
