package cpu

import (
	"log"
)

// Cpu is one interpreter's architectural state: the register file,
// the condition codes, and the memory space. A Cpu is owned by a
// single caller; concurrent sessions each construct their own.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers Registers // Register file.
	Flags     Flags     // Condition-code register.
	Memory    Memory    // Addressable memory.
}

// NewCpu creates a CPU with a zeroed register file, cleared condition
// codes, and a zeroed memory space of the given byte size.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: NewMemory(size),
	}

	return
}

// Reset zeroes the registers, flags, and memory.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Flags = 0
	cpu.Memory.Reset()
}

// Outcome reports the observable effect of one executed instruction.
type Outcome struct {
	Dest    Operand // Destination written, or nil.
	Value   uint32  // Value stored at the destination.
	Size    Size    // Width of the stored value.
	Touched Flags   // Flags the instruction was allowed to modify.
}

// Execute runs a single resolved instruction against the CPU state.
// Operands are read and the destination validated before the single
// write; a failed call leaves registers, flags, and memory untouched.
func (cpu *Cpu) Execute(inst *Instruction) (out Outcome, err error) {
	if cpu.Verbose {
		log.Printf("cpu: %v", inst)
	}

	switch inst.Op {
	case OP_NOP:
		return
	case OP_JMP:
		var addr uint32
		addr, err = inst.Src.Value(cpu)
		if err != nil {
			return
		}
		cpu.Registers.Set(REG_PC, addr)
		out = Outcome{Dest: NewRegisterRef(REG_PC, SIZE_LONG), Value: addr, Size: SIZE_LONG}
		return
	}

	src, err := inst.Src.Value(cpu)
	if err != nil {
		return
	}

	var dst uint32
	if opSpecs[inst.Op].reads {
		dst, err = inst.Dst.Value(cpu)
		if err != nil {
			return
		}
	}

	size := inst.Size
	var result uint32
	var flags Flags

	switch inst.Op {
	case OP_MOVE:
		result = src
	case OP_ADD:
		result = size.Truncate(dst + src)
		flags = addFlags(src, dst, result, size)
	case OP_SUB:
		result = size.Truncate(dst - src)
		flags = subFlags(src, dst, result, size)
	case OP_AND:
		result = dst & src
		flags = logicFlags(result, size)
	case OP_OR:
		result = dst | src
		flags = logicFlags(result, size)
	case OP_EOR:
		result = dst ^ src
		flags = logicFlags(result, size)
	case OP_MULU:
		// The product is truncated to the width; the double-width
		// 68000 mulu.w form is not modeled.
		result = size.Truncate(dst * src)
		flags = logicFlags(result, size)
	case OP_ROXL:
		result, flags = rotateExtendLeft(dst, src, cpu.Flags.Test(FLAG_X), size)
	}

	err = inst.Dst.SetValue(cpu, result)
	if err != nil {
		return
	}

	touched := opSpecs[inst.Op].touch
	cpu.Flags = (cpu.Flags &^ touched) | (flags & touched)

	out = Outcome{Dest: inst.Dst, Value: result, Size: size, Touched: touched}

	return
}

// addFlags computes the condition codes of width-wrapped addition.
func addFlags(src, dst, result uint32, size Size) (flags Flags) {
	sign := size.SignBit()

	flags.Assign(FLAG_Z, result == 0)
	flags.Assign(FLAG_N, result&sign != 0)
	// Carry out of the width. Operands are already width-masked, so
	// the truncated sum wraps below dst exactly when a carry occurred.
	flags.Assign(FLAG_C|FLAG_X, result < dst)
	// Same-sign operands with a different-sign result.
	flags.Assign(FLAG_V, (src^result)&(dst^result)&sign != 0)

	return
}

// subFlags computes the condition codes of width-wrapped subtraction,
// with carry representing borrow.
func subFlags(src, dst, result uint32, size Size) (flags Flags) {
	sign := size.SignBit()

	flags.Assign(FLAG_Z, result == 0)
	flags.Assign(FLAG_N, result&sign != 0)
	flags.Assign(FLAG_C|FLAG_X, src > dst)
	flags.Assign(FLAG_V, (src^dst)&(dst^result)&sign != 0)

	return
}

// logicFlags computes the condition codes shared by the bitwise
// operations and mulu: N and Z from the result, V and C cleared.
func logicFlags(result uint32, size Size) (flags Flags) {
	flags.Assign(FLAG_Z, result == 0)
	flags.Assign(FLAG_N, result&size.SignBit() != 0)

	return
}

// rotateExtendLeft rotates a value left through the extend bit: X
// participates as bit `width` of a width+1 bit rotation, so a full
// cycle takes width+1 single-bit steps. The count is reduced modulo
// width+1. C mirrors X afterward.
func rotateExtendLeft(value, count uint32, extend bool, size Size) (result uint32, flags Flags) {
	width := size.Bits()
	span := width + 1
	count %= span

	wide := uint64(value)
	if extend {
		wide |= uint64(1) << width
	}

	if count != 0 {
		wide = ((wide << count) | (wide >> (span - count))) & (uint64(1)<<span - 1)
	}

	result = uint32(wide) & size.Mask()
	flags.Assign(FLAG_X|FLAG_C, wide&(uint64(1)<<width) != 0)
	flags.Assign(FLAG_Z, result == 0)
	flags.Assign(FLAG_N, result&size.SignBit() != 0)

	return
}
