package cpu

// Register is an architectural register identifier.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_D0 = Register(0)  // d0
	REG_D1 = Register(1)  // d1
	REG_D2 = Register(2)  // d2
	REG_D3 = Register(3)  // d3
	REG_D4 = Register(4)  // d4
	REG_D5 = Register(5)  // d5
	REG_D6 = Register(6)  // d6
	REG_D7 = Register(7)  // d7
	REG_A0 = Register(8)  // a0
	REG_A1 = Register(9)  // a1
	REG_A2 = Register(10) // a2
	REG_A3 = Register(11) // a3
	REG_A4 = Register(12) // a4
	REG_A5 = Register(13) // a5
	REG_A6 = Register(14) // a6
	REG_A7 = Register(15) // a7
	REG_PC = Register(16) // pc
)

// Registers is the architectural register file. Every register is
// zero-initialized and always holds a defined 32-bit value.
type Registers struct {
	D  [8]uint32 // Data registers.
	A  [8]uint32 // Address registers. A7 doubles as the stack pointer.
	Pc uint32    // Program counter.
}

// Get reads the full 32-bit value of a register.
func (regs *Registers) Get(reg Register) (value uint32) {
	switch {
	case reg >= REG_D0 && reg <= REG_D7:
		value = regs.D[reg-REG_D0]
	case reg >= REG_A0 && reg <= REG_A7:
		value = regs.A[reg-REG_A0]
	case reg == REG_PC:
		value = regs.Pc
	}

	return
}

// Set writes the full 32-bit value of a register.
func (regs *Registers) Set(reg Register, value uint32) {
	switch {
	case reg >= REG_D0 && reg <= REG_D7:
		regs.D[reg-REG_D0] = value
	case reg >= REG_A0 && reg <= REG_A7:
		regs.A[reg-REG_A0] = value
	case reg == REG_PC:
		regs.Pc = value
	}
}

// GetSized reads the width's low lane of a register.
func (regs *Registers) GetSized(reg Register, size Size) uint32 {
	return regs.Get(reg) & size.Mask()
}

// SetSized replaces only the width's low lane of a register, keeping
// the upper bits.
func (regs *Registers) SetSized(reg Register, value uint32, size Size) {
	mask := size.Mask()
	prior := regs.Get(reg)
	regs.Set(reg, (prior & ^mask)|(value&mask))
}

// Reset zeroes the register file.
func (regs *Registers) Reset() {
	clear(regs.D[:])
	clear(regs.A[:])
	regs.Pc = 0
}
