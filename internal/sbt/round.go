package sbt

import "github.com/StijnM1/Unwind-Attack/internal/state"

// BitPermutation applies the fixed bit permutation between the input block
// and the first round.
func BitPermutation(s *state.State) {
	s.PermuteBits(&bitPerm)
}

// BitPermutationInv inverts BitPermutation.
func BitPermutationInv(s *state.State) {
	s.PermuteBits(bitPermInv)
}

// BytePermutation applies the per-round byte permutation.
func BytePermutation(s *state.State) {
	s.PermuteBytes(&bytePerm)
}

// BytePermutationInv inverts BytePermutation.
func BytePermutationInv(s *state.State) {
	s.PermuteBytes(&bytePermInv)
}

// NibbleSwitch swaps the low and high nibble of every byte whose control bit
// is set. It is its own inverse.
func NibbleSwitch(s *state.State, control state.State) {
	for i := 0; i < 8; i++ {
		if control.Bit(i) == 0 {
			continue
		}
		x := (uint64(*s)>>4 ^ uint64(*s)) & (0xF << (8 * i))
		*s ^= state.State(x ^ x<<4)
	}
}

// NibbleSwitchInv inverts NibbleSwitch.
func NibbleSwitchInv(s *state.State, control state.State) {
	NibbleSwitch(s, control)
}

// SBox substitutes every nibble through its position's S-box.
func SBox(s *state.State) {
	var r state.State
	for i := 0; i < 16; i++ {
		r |= state.State(sbox[i][s.Nibble(i)]) << (4 * i)
	}
	*s = r
}

// SBoxInv inverts SBox.
func SBoxInv(s *state.State) {
	var r state.State
	for i := 0; i < 16; i++ {
		r |= state.State(sboxInv[i][s.Nibble(i)]) << (4 * i)
	}
	*s = r
}
