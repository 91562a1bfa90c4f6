package cpu

import (
	"fmt"
)

// Operand is a resolved instruction operand. Operands are built fresh
// for each parsed line and never outlive the instruction that used them.
type Operand interface {
	// Value reads the operand at its width.
	Value(cpu *Cpu) (uint32, error)
	// SetValue writes the operand at its width.
	SetValue(cpu *Cpu, value uint32) error
	// Size is the operand's access width.
	Size() Size

	fmt.Stringer
}

// Immediate is a literal constant operand. It can be read but never
// written.
type Immediate struct {
	value uint32
	size  Size
}

// NewImmediate creates an immediate operand of the given width.
func NewImmediate(value uint32, size Size) Immediate {
	return Immediate{value: value & size.Mask(), size: size}
}

func (imm Immediate) Value(cpu *Cpu) (uint32, error) {
	return imm.value, nil
}

func (imm Immediate) SetValue(cpu *Cpu, value uint32) error {
	return ErrDestinationImmediate
}

func (imm Immediate) Size() Size {
	return imm.size
}

func (imm Immediate) String() string {
	return fmt.Sprintf("#$%X", imm.value)
}

// RegisterRef addresses a register directly. Sub-long access touches
// only the register's low lane.
type RegisterRef struct {
	register Register
	size     Size
}

// NewRegisterRef creates a register-direct operand of the given width.
func NewRegisterRef(reg Register, size Size) RegisterRef {
	return RegisterRef{register: reg, size: size}
}

func (ref RegisterRef) Value(cpu *Cpu) (uint32, error) {
	return cpu.Registers.GetSized(ref.register, ref.size), nil
}

func (ref RegisterRef) SetValue(cpu *Cpu, value uint32) error {
	cpu.Registers.SetSized(ref.register, value, ref.size)
	return nil
}

func (ref RegisterRef) Size() Size {
	return ref.size
}

func (ref RegisterRef) String() string {
	return ref.register.String()
}

// MemoryRef addresses memory absolutely. The address is bounds-checked
// on every access, never at parse time.
type MemoryRef struct {
	address uint64
	size    Size
}

// NewMemoryRef creates an absolute-memory operand of the given width.
func NewMemoryRef(addr uint64, size Size) MemoryRef {
	return MemoryRef{address: addr, size: size}
}

func (ref MemoryRef) Value(cpu *Cpu) (uint32, error) {
	return cpu.Memory.Read(ref.address, ref.size)
}

func (ref MemoryRef) SetValue(cpu *Cpu, value uint32) error {
	return cpu.Memory.Write(ref.address, ref.size, value)
}

func (ref MemoryRef) Size() Size {
	return ref.size
}

func (ref MemoryRef) String() string {
	return fmt.Sprintf("($%X)", ref.address)
}
