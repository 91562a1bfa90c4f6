// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%#v", MEMORY_SIZE),
}

// opMap maps mnemonics to operations.
var opMap = map[string]Operation{
	"move": OP_MOVE,
	"add":  OP_ADD,
	"sub":  OP_SUB,
	"and":  OP_AND,
	"or":   OP_OR,
	"eor":  OP_EOR,
	"mulu": OP_MULU,
	"roxl": OP_ROXL,
	"jmp":  OP_JMP,
	"nop":  OP_NOP,
}

// sizeMap maps mnemonic size suffixes.
var sizeMap = map[string]Size{
	"b": SIZE_BYTE,
	"w": SIZE_WORD,
	"l": SIZE_LONG,
}

// regMap maps register names. Register names are matched
// case-insensitively; sp is an alias for a7.
var regMap = map[string]Register{
	"d0": REG_D0,
	"d1": REG_D1,
	"d2": REG_D2,
	"d3": REG_D3,
	"d4": REG_D4,
	"d5": REG_D5,
	"d6": REG_D6,
	"d7": REG_D7,
	"a0": REG_A0,
	"a1": REG_A1,
	"a2": REG_A2,
	"a3": REG_A3,
	"a4": REG_A4,
	"a5": REG_A5,
	"a6": REG_A6,
	"a7": REG_A7,
	"sp": REG_A7,
	"pc": REG_PC,
}

var (
	exprRe    = regexp.MustCompile(`\$\([^\$]*\)`)
	regLikeRe = regexp.MustCompile(`^[adAD][0-9]+$`)
)

// Parser turns one line of assembly text into a resolved Instruction.
// Parsing never mutates CPU state; the only state a Parser holds is
// its equate table.
type Parser struct {
	Verbose bool              // If set, verbosely logs parser actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (p *Parser) Predefine(equ string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{equ: value}
	} else {
		p.predefine[equ] = value
	}
}

// init populates the equate table on first use.
func (p *Parser) init() {
	if p.Equate != nil {
		return
	}

	p.Equate = maps.Clone(sysEquate)
	for attr, val := range p.predefine {
		p.Equate[attr] = val
	}
}

// ParseLine parses a single line of assembly into an instruction.
// A blank, comment-only, or directive-only line yields a nil
// instruction and no error.
func (p *Parser) ParseLine(line string) (inst *Instruction, err error) {
	p.init()

	defer func() {
		if err != nil {
			inst = nil
			err = &ErrSyntax{Line: line, Err: err}
		}
	}()

	text, _, _ := strings.Cut(line, ";")
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	// Do $() evaluations
	text, err = p.expandExprs(text)
	if err != nil {
		return
	}

	fields := strings.Fields(text)

	// .equ CONST VALUE
	if fields[0] == ".equ" {
		err = p.equate(fields)
		return
	}

	mnemonic := strings.ToLower(fields[0])
	rest := strings.TrimSpace(text[len(fields[0]):])

	name, suffix, sized := strings.Cut(mnemonic, ".")
	size := SIZE_LONG
	if sized {
		var ok bool
		size, ok = sizeMap[suffix]
		if !ok {
			err = ErrSizeInvalid
			return
		}
	}

	op, ok := opMap[name]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	var tokens []string
	if len(rest) != 0 {
		tokens, err = splitOperands(rest)
		if err != nil {
			return
		}
	}

	if len(tokens) != opSpecs[op].operands {
		err = ErrOperandCount
		return
	}

	operands := make([]Operand, len(tokens))
	for n, token := range tokens {
		operands[n], err = p.resolveOperand(token, n+1, size)
		if err != nil {
			return
		}
	}

	inst = &Instruction{Op: op, Size: size}
	switch len(operands) {
	case 2:
		inst.Src, inst.Dst = operands[0], operands[1]
	case 1:
		inst.Src = operands[0]
	}

	if p.Verbose {
		log.Printf("parse: %v", inst)
	}

	return
}

// equate processes a `.equ CONST VALUE` directive.
func (p *Parser) equate(fields []string) (err error) {
	if len(fields) != 3 {
		err = ErrEquateSyntax
		return
	}

	_, ok := p.Equate[fields[1]]
	if ok {
		err = ErrEquateDuplicate
		return
	}

	p.Equate[fields[1]] = fields[2]

	return
}

// splitOperands splits operand text on top-level commas, respecting
// the parentheses of memory-reference syntax.
func splitOperands(text string) (tokens []string, err error) {
	depth := 0
	start := 0
	for n, r := range text {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				err = ErrParenUnbalanced
				return
			}
		case ',':
			if depth == 0 {
				tokens = append(tokens, strings.TrimSpace(text[start:n]))
				start = n + 1
			}
		}
	}
	if depth != 0 {
		err = ErrParenUnbalanced
		return
	}

	tokens = append(tokens, strings.TrimSpace(text[start:]))

	return
}

// resolveOperand resolves one operand token, trying the immediate,
// register, and absolute-memory forms in order. A token that matches
// no form at all yields a bare ErrParseOperand naming it.
func (p *Parser) resolveOperand(token string, position int, size Size) (op Operand, err error) {
	defer func() {
		if op == nil {
			err = &ErrParseOperand{Token: token, Position: position, Err: err}
		}
	}()

	switch {
	case len(token) == 0:
		err = ErrOperandMissing
	case token[0] == '#':
		var value uint32
		value, err = p.valueOf(token[1:], size)
		if err != nil {
			return
		}
		op = NewImmediate(value, size)
	case token[0] == '(':
		if token[len(token)-1] != ')' {
			err = ErrParenUnbalanced
			return
		}
		var addr uint64
		addr, err = p.addressOf(strings.TrimSpace(token[1 : len(token)-1]))
		if err != nil {
			return
		}
		op = NewMemoryRef(addr, size)
	default:
		reg, ok := regMap[strings.ToLower(token)]
		if ok {
			op = NewRegisterRef(reg, size)
			return
		}
		if regLikeRe.MatchString(token) {
			err = ErrRegisterInvalid
		}
	}

	return
}

// valueOf parses a literal word into a value that must fit the width:
// decimal (optionally negative, folded two's-complement), $-prefixed
// hexadecimal, or an equate naming either.
func (p *Parser) valueOf(word string, size Size) (value uint32, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	if equ, ok := p.Equate[word]; ok {
		word = equ
	}
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	var value64 uint64
	var negative bool
	switch {
	case word[0] == '$':
		value64, err = strconv.ParseUint(word[1:], 16, 64)
	case word[0] == '-':
		var v64 int64
		v64, err = strconv.ParseInt(word, 10, 64)
		if err == nil {
			negative = true
			value64 = uint64(-v64)
		}
	default:
		value64, err = strconv.ParseUint(word, 0, 64)
	}
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = &ErrNumericOverflow{Token: word, Size: size}
		} else {
			err = ErrParseNumber(word)
		}
		return
	}

	switch {
	case !negative && value64 <= uint64(size.Mask()):
		value = uint32(value64)
	case negative && value64 <= uint64(size.SignBit()):
		value = uint32((uint64(1)<<size.Bits())-value64) & size.Mask()
	default:
		err = &ErrNumericOverflow{Token: word, Size: size}
		return
	}

	if invert {
		value = (^value) & size.Mask()
	}

	return
}

// addressOf parses an absolute address literal. Addresses are checked
// against the memory bound at execute time, not parse time.
func (p *Parser) addressOf(word string) (addr uint64, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	if equ, ok := p.Equate[word]; ok {
		word = equ
	}
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	if word[0] == '$' {
		addr, err = strconv.ParseUint(word[1:], 16, 64)
	} else {
		addr, err = strconv.ParseUint(word, 0, 64)
	}
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// expandExprs does compile-time $(...) evaluations.
func (p *Parser) expandExprs(text string) (out string, err error) {
	out = exprRe.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})

	return
}

// parenEval evaluates one $(...) expression, with every
// integer-valued equate predeclared.
func (p *Parser) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.Equate {
		var value32 uint32
		value32, err = p.valueOf(str, SIZE_LONG)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}
