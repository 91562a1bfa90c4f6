package cpu

import (
	"fmt"
)

// Operation is an instruction kind. Mnemonic lookup happens once at
// parse time; execution dispatches on this closed set.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_MOVE = Operation(0) // move
	OP_ADD  = Operation(1) // add
	OP_SUB  = Operation(2) // sub
	OP_AND  = Operation(3) // and
	OP_OR   = Operation(4) // or
	OP_EOR  = Operation(5) // eor
	OP_MULU = Operation(6) // mulu
	OP_ROXL = Operation(7) // roxl
	OP_JMP  = Operation(8) // jmp
	OP_NOP  = Operation(9) // nop
)

// opSpec fixes an operation's operand shape and flag policy.
type opSpec struct {
	operands int   // Required operand count.
	reads    bool  // Reads the prior destination value before computing.
	touch    Flags // Flags the operation may modify.
}

// opSpecs is the per-instruction policy table. An instruction may only
// modify the flags its policy lists; everything else survives from the
// prior flag-affecting instruction. Reviewed against the M68000PRM
// condition-code tables, except that move deliberately leaves the
// condition codes untouched.
var opSpecs = [...]opSpec{
	OP_MOVE: {operands: 2},
	OP_ADD:  {operands: 2, reads: true, touch: FLAG_X | FLAG_N | FLAG_Z | FLAG_V | FLAG_C},
	OP_SUB:  {operands: 2, reads: true, touch: FLAG_X | FLAG_N | FLAG_Z | FLAG_V | FLAG_C},
	OP_AND:  {operands: 2, reads: true, touch: FLAG_N | FLAG_Z | FLAG_V | FLAG_C},
	OP_OR:   {operands: 2, reads: true, touch: FLAG_N | FLAG_Z | FLAG_V | FLAG_C},
	OP_EOR:  {operands: 2, reads: true, touch: FLAG_N | FLAG_Z | FLAG_V | FLAG_C},
	OP_MULU: {operands: 2, reads: true, touch: FLAG_N | FLAG_Z | FLAG_V | FLAG_C},
	OP_ROXL: {operands: 2, reads: true, touch: FLAG_X | FLAG_N | FLAG_Z | FLAG_V | FLAG_C},
	OP_JMP:  {operands: 1},
	OP_NOP:  {},
}

// Instruction is one parsed, resolved instruction: executed once,
// then discarded. Dst is nil for single- and zero-operand forms.
type Instruction struct {
	Op   Operation
	Size Size
	Src  Operand
	Dst  Operand
}

// String returns the assembly form of the instruction.
func (inst *Instruction) String() (text string) {
	text = fmt.Sprintf("%v.%v", inst.Op, inst.Size)

	switch {
	case inst.Src != nil && inst.Dst != nil:
		text += fmt.Sprintf(" %v, %v", inst.Src, inst.Dst)
	case inst.Src != nil:
		text += fmt.Sprintf(" %v", inst.Src)
	}

	return
}
