package cpu

// Size is an operand access width, in bytes.
type Size int

//go:generate go tool stringer -linecomment -type=Size
const (
	SIZE_BYTE = Size(1) // b
	SIZE_WORD = Size(2) // w
	SIZE_LONG = Size(4) // l
)

// Bytes returns the width in bytes.
func (size Size) Bytes() uint32 {
	return uint32(size)
}

// Bits returns the width in bits.
func (size Size) Bits() uint32 {
	return uint32(size) * 8
}

// Mask returns the value mask of the width.
func (size Size) Mask() uint32 {
	return uint32(0xffffffff) >> (32 - size.Bits())
}

// SignBit returns the mask of the width's sign bit.
func (size Size) SignBit() uint32 {
	return uint32(1) << (size.Bits() - 1)
}

// Truncate folds a value into the width.
func (size Size) Truncate(value uint32) uint32 {
	return value & size.Mask()
}
