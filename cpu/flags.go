package cpu

import (
	"fmt"
)

// Flags is the condition-code register.
type Flags uint8

const (
	FLAG_C = Flags(1) << iota // carry
	FLAG_V                    // overflow
	FLAG_Z                    // zero
	FLAG_N                    // negative / sign
	FLAG_X                    // extend
)

// Test reports whether every bit in the mask is set.
func (flags Flags) Test(mask Flags) bool {
	return flags&mask == mask
}

// Assign sets or clears the bits in the mask.
func (flags *Flags) Assign(mask Flags, on bool) {
	if on {
		*flags |= mask
	} else {
		*flags &^= mask
	}
}

// String returns the condition codes as "X:0 N:0 Z:0 V:0 C:0".
func (flags Flags) String() string {
	bit := func(mask Flags) (n int) {
		if flags.Test(mask) {
			n = 1
		}
		return
	}

	return fmt.Sprintf("X:%d N:%d Z:%d V:%d C:%d",
		bit(FLAG_X), bit(FLAG_N), bit(FLAG_Z), bit(FLAG_V), bit(FLAG_C))
}
