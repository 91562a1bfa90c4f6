package cpu

import (
	"encoding/binary"
)

const (
	MEMORY_SIZE = 32 * 1024 // Default addressable memory, in bytes.
)

// Memory is a bounded, big-endian, byte-addressable memory space.
// A read or write of any width either touches exactly its span of
// contiguous bytes, or fails without touching anything.
type Memory struct {
	data []byte
}

// NewMemory creates a zeroed memory space of the given byte size.
func NewMemory(size uint) Memory {
	return Memory{
		data: make([]byte, size),
	}
}

// Size returns the addressable size in bytes.
func (mem *Memory) Size() uint32 {
	return uint32(len(mem.data))
}

// check validates that [addr, addr+width) lies inside the memory bound.
func (mem *Memory) check(addr uint64, size Size) (err error) {
	// The first test keeps the span addition from wrapping uint64.
	if addr > uint64(len(mem.data)) || addr+uint64(size.Bytes()) > uint64(len(mem.data)) {
		err = &ErrMemoryBounds{Address: addr, Size: size}
	}

	return
}

// Read reads a value of the given width from addr.
func (mem *Memory) Read(addr uint64, size Size) (value uint32, err error) {
	err = mem.check(addr, size)
	if err != nil {
		return
	}

	switch size {
	case SIZE_BYTE:
		value = uint32(mem.data[addr])
	case SIZE_WORD:
		value = uint32(binary.BigEndian.Uint16(mem.data[addr:]))
	case SIZE_LONG:
		value = binary.BigEndian.Uint32(mem.data[addr:])
	}

	return
}

// Write stores a value of the given width at addr.
func (mem *Memory) Write(addr uint64, size Size, value uint32) (err error) {
	err = mem.check(addr, size)
	if err != nil {
		return
	}

	switch size {
	case SIZE_BYTE:
		mem.data[addr] = byte(value)
	case SIZE_WORD:
		binary.BigEndian.PutUint16(mem.data[addr:], uint16(value))
	case SIZE_LONG:
		binary.BigEndian.PutUint32(mem.data[addr:], value)
	}

	return
}

// Reset zeroes the memory space.
func (mem *Memory) Reset() {
	clear(mem.data)
}
