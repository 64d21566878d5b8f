package sbt

import "github.com/StijnM1/Unwind-Attack/internal/state"

// KeyRotateRight rotates each 28-bit half of the 56-bit key right by n
// positions in display orientation. Bits 56..63 stay zero.
func KeyRotateRight(key state.State, n int) state.State {
	const mask28 = 1<<28 - 1
	x := uint64(key) & mask28
	y := uint64(key) >> 28 & mask28
	n %= 28
	x = (x<<n | x>>(28-n)) & mask28
	y = (y<<n | y>>(28-n)) & mask28
	return state.State(x | y<<28)
}

// ControlNrGr derives the control bits for a round from the key and the
// input block. Bits 0..7 of the result are the nibble-switch controls Nr,
// one per byte; bits 8..39 are the 16 two-bit grid controls Gr, one pair per
// nibble with the low bit of the pair first.
//
// It panics if round is not in 0..7.
func ControlNrGr(round int, key, lfsr state.State) state.State {
	if round < 0 || round >= 8 {
		panic("sbt: round out of range")
	}

	xryr := KeyRotateRight(key, rshift[round])

	var c uint64
	for i, b := range nrBits {
		c |= uint64(xryr) >> b & 1 << i
	}

	sr := lfsr
	sr.RotateRight(srBits[round])
	for i, b := range krBits {
		bit := (uint64(xryr)>>b ^ uint64(sr)>>(63-i)) & 1
		c |= bit << (8 + i)
	}

	return state.State(c)
}
