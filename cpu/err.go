package cpu

import (
	"errors"

	"github.com/ezrec/m68k/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrSizeInvalid        = errors.New(f("size suffix invalid"))
	ErrOperandCount       = errors.New(f("operand count"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrParenUnbalanced    = errors.New(f("unbalanced parentheses"))
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))

	// Executor errors
	ErrDestinationImmediate = errors.New(f("destination not writable"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrParseOperand indicates an operand token that resolved to no
// addressing mode, with its 1-based position in the operand list.
type ErrParseOperand struct {
	Token    string
	Position int
	Err      error
}

func (err *ErrParseOperand) Error() string {
	if err.Err != nil {
		return f("operand %d '%v': %v", err.Position, err.Token, err.Err)
	}
	return f("operand %d '%v' is not an immediate, register, or address", err.Position, err.Token)
}

func (err *ErrParseOperand) Unwrap() error {
	return err.Err
}

// ErrNumericOverflow indicates a literal that does not fit the
// instruction's width.
type ErrNumericOverflow struct {
	Token string
	Size  Size
}

func (err *ErrNumericOverflow) Error() string {
	return f("'%v' exceeds the %d-bit width", err.Token, err.Size.Bits())
}

// ErrMemoryBounds indicates an access outside the declared memory size.
type ErrMemoryBounds struct {
	Address uint64
	Size    Size
}

func (err *ErrMemoryBounds) Error() string {
	return f("address $%X+%d outside memory bounds", err.Address, err.Size.Bytes())
}

// ErrSyntax wraps any parse failure with the offending source line.
type ErrSyntax struct {
	Line string
	Err  error
}

func (err *ErrSyntax) Error() string {
	return f("'%v' %v", err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
