// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/m68k/cpu"
	"github.com/ezrec/m68k/internal"
)

// Emulator joins a parser and a CPU into a line-at-a-time
// interpreter session. Each session owns its state outright; two
// emulators never share registers, flags, or memory.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU state.

	Parser cpu.Parser // Parser, holding the session's equates.
}

// NewEmulator creates a new emulator session with zeroed state.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(cpu.MEMORY_SIZE),
	}

	return
}

// Interpret parses and executes one line of assembly, returning a
// human-readable report of the destination written and, when the
// instruction may modify them, the resulting condition codes. A
// blank, comment-only, or directive line yields an empty report.
func (emu *Emulator) Interpret(line string) (report string, err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Parser.Verbose = emu.Verbose

	inst, err := emu.Parser.ParseLine(line)
	if err != nil || inst == nil {
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{Inst: inst.String(), Err: err}
		}
	}()

	out, err := emu.Cpu.Execute(inst)
	if err != nil {
		return
	}

	report = emu.report(out)

	return
}

// report formats one execution outcome. The stored value is shown at
// the width it was written.
func (emu *Emulator) report(out cpu.Outcome) (text string) {
	if out.Dest == nil {
		return
	}

	text = fmt.Sprintf("%v = $%0*X", out.Dest, int(out.Size.Bytes())*2, out.Value)
	if out.Touched != 0 {
		text += "  " + emu.Cpu.Flags.String()
	}

	return
}

// State returns an iterator over the session's register and
// condition-code values.
func (emu *Emulator) State() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(emu.registerSeq(), emu.flagSeq())
}

func (emu *Emulator) registerSeq() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for reg := cpu.REG_D0; reg <= cpu.REG_PC; reg++ {
			value := fmt.Sprintf("$%08X", emu.Cpu.Registers.Get(reg))
			if !yield(reg.String(), value) {
				return
			}
		}
	}
}

func (emu *Emulator) flagSeq() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		yield("ccr", emu.Cpu.Flags.String())
	}
}

// String returns a full dump of the session state.
func (emu *Emulator) String() string {
	var sb strings.Builder

	for name, value := range emu.State() {
		fmt.Fprintf(&sb, "%s: %s\n", name, value)
	}

	return sb.String()
}
