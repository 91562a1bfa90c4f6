package emulator

import (
	"github.com/ezrec/m68k/translate"
)

var f = translate.From

// ErrRuntime names the instruction a runtime error occurred in.
type ErrRuntime struct {
	Inst string
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("'%v' %v", err.Inst, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
