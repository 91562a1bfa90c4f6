package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testMemSize = 0x400 // 1KB
	testAddress = 0x201
)

func TestMemoryReadWrite(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		size  Size
		value uint32
	}){
		{"byte", SIZE_BYTE, 0xAB},
		{"word", SIZE_WORD, 0xDEAD},
		{"long", SIZE_LONG, 0xDEADBEEF},
	}

	for _, entry := range table {
		mem := NewMemory(testMemSize)

		err := mem.Write(testAddress, entry.size, entry.value)
		assert.NoError(err, entry.name)

		value, err := mem.Read(testAddress, entry.size)
		assert.NoError(err, entry.name)
		assert.Equal(entry.value, value, entry.name)
	}
}

func TestMemoryEndianness(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(testMemSize)

	for n, b := range []uint32{0x12, 0x34, 0x56, 0x78, 0x9A} {
		err := mem.Write(testAddress+uint64(n), SIZE_BYTE, b)
		assert.NoError(err)
	}

	// Big-endian: the long spans the first four bytes, high byte first.
	long, err := mem.Read(testAddress, SIZE_LONG)
	assert.NoError(err)
	assert.Equal(uint32(0x12345678), long)

	word, err := mem.Read(testAddress+2, SIZE_WORD)
	assert.NoError(err)
	assert.Equal(uint32(0x5678), word)

	tail, err := mem.Read(testAddress+4, SIZE_BYTE)
	assert.NoError(err)
	assert.Equal(uint32(0x9A), tail)
}

func TestMemoryBounds(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(testMemSize)
	assert.Equal(uint32(testMemSize), mem.Size())

	table := [](struct {
		name string
		addr uint64
		size Size
		ok   bool
	}){
		{"last_byte", testMemSize - 1, SIZE_BYTE, true},
		{"last_long", testMemSize - 4, SIZE_LONG, true},
		{"beyond", testMemSize, SIZE_BYTE, false},
		{"straddle_word", testMemSize - 1, SIZE_WORD, false},
		{"straddle_long", testMemSize - 3, SIZE_LONG, false},
		{"far", 0x999999999, SIZE_LONG, false},
	}

	for _, entry := range table {
		_, err := mem.Read(entry.addr, entry.size)
		if entry.ok {
			assert.NoError(err, entry.name)
			continue
		}

		var bounds *ErrMemoryBounds
		assert.True(errors.As(err, &bounds), entry.name)
		assert.Equal(entry.addr, bounds.Address, entry.name)

		err = mem.Write(entry.addr, entry.size, 0x55)
		assert.True(errors.As(err, &bounds), entry.name)
	}

	// A failed straddling write must not touch the in-bounds bytes.
	value, err := mem.Read(testMemSize-1, SIZE_BYTE)
	assert.NoError(err)
	assert.Equal(uint32(0), value)
}
