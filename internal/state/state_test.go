package state //nolint:testpackage // testing internals

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	var s State
	s.SetBit(0, 1)
	s.SetBit(63, 1)
	assert.Equal(t, State(0x8000000000000001), s)
	assert.EqualValues(t, 1, s.Bit(0))
	assert.EqualValues(t, 0, s.Bit(1))

	s = 0
	s.SetNibble(1, 0xA)
	s.SetNibble(15, 0x5)
	assert.Equal(t, State(0x50000000000000A0), s)
	assert.EqualValues(t, 0xA, s.Nibble(1))

	s = 0
	s.SetByte(2, 0xC3)
	assert.Equal(t, State(0x0000000000C30000), s)
	assert.EqualValues(t, 0xC3, s.Byte(2))
}

func TestSettersPreserveOtherBits(t *testing.T) {
	s := State(0xFFFFFFFFFFFFFFFF)
	s.SetNibble(3, 0)
	assert.Equal(t, State(0xFFFFFFFFFFFF0FFF), s)

	s = 0xFFFFFFFFFFFFFFFF
	s.SetByte(7, 0x12)
	assert.Equal(t, State(0x12FFFFFFFFFFFFFF), s)

	s = 0xFFFFFFFFFFFFFFFF
	s.SetBit(4, 0)
	assert.Equal(t, State(0xFFFFFFFFFFFFFFEF), s)

	// Values wider than the field are truncated.
	s = 0
	s.SetNibble(0, 0x1F)
	assert.Equal(t, State(0xF), s)
}

func TestOutOfRangePanics(t *testing.T) {
	var s State
	assert.Panics(t, func() { s.Bit(64) })
	assert.Panics(t, func() { s.SetBit(-1, 0) })
	assert.Panics(t, func() { s.Nibble(16) })
	assert.Panics(t, func() { s.SetNibble(16, 0) })
	assert.Panics(t, func() { s.Byte(8) })
	assert.Panics(t, func() { s.SetByte(-1, 0) })
}

func TestShifts(t *testing.T) {
	s := State(0x8000000000000001)
	s.ShiftLeft() // drops b0, b63 moves down
	assert.Equal(t, State(0x4000000000000000), s)

	s = 0x8000000000000001
	s.ShiftRight() // drops b63
	assert.Equal(t, State(0x0000000000000002), s)
}

func TestRotates(t *testing.T) {
	s := State(1)
	s.RotateRight(8) // display right: toward higher bit positions
	assert.Equal(t, State(0x100), s)

	s = 1
	s.RotateLeft(1)
	assert.Equal(t, State(0x8000000000000000), s)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _i := 0; _i < 100; _i++ {
		orig := State(rng.Uint64())
		n := rng.Intn(64)
		s := orig
		s.RotateRight(n)
		s.RotateLeft(n)
		assert.Equal(t, orig, s)
	}
}

func TestReverseBits(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _i := 0; _i < 100; _i++ {
		orig := State(rng.Uint64())

		// Against the naive bit-by-bit reversal.
		var want State
		for i := 0; i < 64; i++ {
			want.SetBit(63-i, orig.Bit(i))
		}

		s := orig
		s.ReverseBits()
		assert.Equal(t, want, s)

		s.ReverseBits()
		assert.Equal(t, orig, s)
	}
}

func TestReverseBytes(t *testing.T) {
	s := State(0x0123456789ABCDEF)
	s.ReverseBytes()
	assert.Equal(t, State(0xEFCDAB8967452301), s)
}

func TestSwaps(t *testing.T) {
	s := State(0x12)
	s.SwapNibbles()
	assert.Equal(t, State(0x21), s)

	// Swapping bits then pairs then nibbles then bytes reverses all bits.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _i := 0; _i < 100; _i++ {
		orig := State(rng.Uint64())
		s, r := orig, orig
		s.SwapBits()
		s.SwapBitPairs()
		s.SwapNibbles()
		s.ReverseBytes()
		r.ReverseBits()
		assert.Equal(t, r, s)
	}
}

func TestPermuteBits(t *testing.T) {
	var identity [64]int
	var reversal [64]int
	for i := 0; i < 64; i++ {
		identity[i] = i
		reversal[i] = 63 - i
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _i := 0; _i < 100; _i++ {
		orig := State(rng.Uint64())

		s := orig
		s.PermuteBits(&identity)
		assert.Equal(t, orig, s)

		s.PermuteBits(&reversal)
		r := orig
		r.ReverseBits()
		assert.Equal(t, r, s)
	}
}

func TestPermuteBytes(t *testing.T) {
	var reversal [8]int
	for i := 0; i < 8; i++ {
		reversal[i] = 7 - i
	}
	s := State(0x0123456789ABCDEF)
	s.PermuteBytes(&reversal)
	assert.Equal(t, State(0xEFCDAB8967452301), s)
}

func TestString(t *testing.T) {
	assert.Equal(t, "fedcba9876543210", State(0x0123456789ABCDEF).String())
	assert.Equal(t, "0000000000000000", State(0).String())
	assert.Equal(t, "1000000000000000", State(1).String())
}
