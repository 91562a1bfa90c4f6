// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m68k/cpu"
)

func TestInterpret(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// Reports follow one session's state line by line.
	table := [](struct {
		line   string
		report string
	}){
		{"; a comment", ""},
		{".equ SCRATCH $40", ""},
		{"move #$FACEBEEF, d1", "d1 = $FACEBEEF"},
		{"mulu #2, d1", "d1 = $F59D7DDE  X:0 N:1 Z:0 V:0 C:0"},
		{"move d1, ($0)", "($0) = $F59D7DDE"},
		{"move #$FFFFFFFF, d2", "d2 = $FFFFFFFF"},
		{"add #1, d2", "d2 = $00000000  X:1 N:0 Z:1 V:0 C:1"},
		{"move.b #7, d0", "d0 = $07"},
		{"add.w #$FFF9, d0", "d0 = $0000  X:1 N:0 Z:1 V:0 C:1"},
		{"move #$12345678, (SCRATCH)", "($40) = $12345678"},
		{"jmp (SCRATCH)", "pc = $12345678"},
		{"nop", ""},
	}

	for _, entry := range table {
		report, err := emu.Interpret(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.report, report, entry.line)
	}
}

func TestInterpretErrors(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	_, err := emu.Interpret("move #7, d1")
	assert.NoError(err)

	// Parse errors carry the source line, not a runtime wrapper.
	_, err = emu.Interpret("bogus #1, d1")
	var syntax *cpu.ErrSyntax
	assert.ErrorAs(err, &syntax)
	var runtime *ErrRuntime
	assert.False(errors.As(err, &runtime))

	// Runtime errors name the instruction.
	_, err = emu.Interpret("move #5, ($999999999)")
	if assert.ErrorAs(err, &runtime) {
		assert.Equal("move.l #$5, ($999999999)", runtime.Inst)
	}
	var bounds *cpu.ErrMemoryBounds
	assert.ErrorAs(err, &bounds)

	_, err = emu.Interpret("move d1, #5")
	assert.ErrorIs(err, cpu.ErrDestinationImmediate)

	// The failed lines left the session untouched.
	report, err := emu.Interpret("move d1, d2")
	assert.NoError(err)
	assert.Equal("d2 = $00000007", report)
}

func TestEmulatorIndependence(t *testing.T) {
	assert := assert.New(t)

	one := NewEmulator()
	two := NewEmulator()

	_, err := one.Interpret(".equ BASE $100")
	assert.NoError(err)
	_, err = one.Interpret("move #$11111111, d0")
	assert.NoError(err)
	_, err = one.Interpret("move #$22222222, (BASE)")
	assert.NoError(err)

	// Neither state nor equates leak between sessions.
	report, err := two.Interpret("move d0, d1")
	assert.NoError(err)
	assert.Equal("d1 = $00000000", report)

	_, err = two.Interpret("move #1, (BASE)")
	assert.Error(err)
}

func TestEmulatorState(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	_, err := emu.Interpret("move #$CAFE, d3")
	assert.NoError(err)
	_, err = emu.Interpret("sub #$CAFF, d3")
	assert.NoError(err)

	state := map[string]string{}
	for name, value := range emu.State() {
		state[name] = value
	}

	assert.Equal("$FFFFFFFF", state["d3"])
	assert.Equal("$00000000", state["a0"])
	assert.Equal("$00000000", state["pc"])
	assert.Equal("X:1 N:1 Z:0 V:0 C:1", state["ccr"])

	dump := emu.String()
	assert.True(strings.Contains(dump, "d3: $FFFFFFFF\n"))
	assert.True(strings.Contains(dump, "ccr: X:1 N:1 Z:0 V:0 C:1\n"))

	// 8 data + 8 address + pc + ccr
	assert.Equal(18, strings.Count(dump, "\n"))
}
