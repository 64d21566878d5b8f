package sbt

import "github.com/StijnM1/Unwind-Attack/internal/state"

// GridPermutationKeycheck reports whether the grid controls move any nibble
// selected by the byte-path mask.
func GridPermutationKeycheck(control, bpMask state.State) bool {
	for n := 0; n < 16; n++ {
		if bpMask.Nibble(n^1) == 0 {
			continue
		}
		if uint64(control)>>(8+2*n)&3 != 0 {
			return true
		}
	}
	return false
}

// NibbleSwitchKeycheck reports whether the nibble switch acts on any byte
// selected by the byte-path mask.
func NibbleSwitchKeycheck(control, bpMask state.State) bool {
	for i := 0; i < 8; i++ {
		if bpMask.Byte(i) == 0 {
			continue
		}
		if control.Bit(i) != 0 {
			return true
		}
	}
	return false
}

// CipherKeycheck reports whether the given key, with the input block held at
// zero, produces controls that touch the byte-path mask in any round. Within
// each round the mask is advanced through the byte permutation between the
// grid-permutation check and the nibble-switch check, so it follows the path
// of the tracked nibbles through the cipher.
func CipherKeycheck(key, bpMask state.State) bool {
	for r := 0; r < 8; r++ {
		control := ControlNrGr(r, key, 0)
		if GridPermutationKeycheck(control, bpMask) {
			return true
		}
		BytePermutation(&bpMask)
		if NibbleSwitchKeycheck(control, bpMask) {
			return true
		}
	}
	return false
}

// DetermineKeymask computes the set of key bits that can influence
// propagation of the byte-path mask: bit i is set iff the unit key 1<<i
// passes CipherKeycheck. The result is monotone under mask union.
func DetermineKeymask(bpMask state.State) state.State {
	var keymask state.State
	for i := 0; i < 56; i++ {
		keybit := state.State(1) << i
		if CipherKeycheck(keybit, bpMask) {
			keymask |= keybit
		}
	}
	return keymask
}
