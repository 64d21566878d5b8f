package sbt

import "github.com/StijnM1/Unwind-Attack/internal/state"

// The grid permutation moves every nibble one step through a 4x4 grid, with
// the nibble value encoding its position as row = v>>2, col = v&3. The
// two-bit control for nibble index n selects the direction: 0 up, 1 down,
// 2 left, 3 right. A nibble stepping off the grid edge wraps, and its cross
// coordinate is additionally displaced by (nb + nb>>2) mod 4, where nb is
// the value of a fixed neighbour nibble: position pos^8 for vertical moves
// and pos^4 for horizontal ones, with pos = n^1.

func gridDelta(nb uint64) uint64 {
	return (nb + nb>>2) & 3
}

// GridPermutation applies the grid permutation, stepping nibble indices in
// order 0..15 over the evolving state.
func GridPermutation(s *state.State, control state.State) {
	for n := 0; n < 16; n++ {
		pos := n ^ 1
		v := s.Nibble(pos)
		row, col := v>>2, v&3
		switch uint64(control) >> (8 + 2*n) & 3 {
		case 0: // up
			if row == 0 {
				col = (col + gridDelta(s.Nibble(pos^8))) & 3
			}
			row = (row - 1) & 3
		case 1: // down
			if row == 3 {
				col = (col + gridDelta(s.Nibble(pos^8))) & 3
			}
			row = (row + 1) & 3
		case 2: // left
			if col == 0 {
				row = (row + gridDelta(s.Nibble(pos^4))) & 3
			}
			col = (col - 1) & 3
		case 3: // right
			if col == 3 {
				row = (row + gridDelta(s.Nibble(pos^4))) & 3
			}
			col = (col + 1) & 3
		}
		s.SetNibble(pos, row<<2|col)
	}
}

// GridPermutationInv inverts GridPermutation, stepping nibble indices in
// order 15..0 and reversing the displacement signs.
func GridPermutationInv(s *state.State, control state.State) {
	for n := 15; n >= 0; n-- {
		pos := n ^ 1
		v := s.Nibble(pos)
		row, col := v>>2, v&3
		switch uint64(control) >> (8 + 2*n) & 3 {
		case 0: // up
			if row == 3 {
				col = (col - gridDelta(s.Nibble(pos^8))) & 3
			}
			row = (row + 1) & 3
		case 1: // down
			if row == 0 {
				col = (col - gridDelta(s.Nibble(pos^8))) & 3
			}
			row = (row - 1) & 3
		case 2: // left
			if col == 3 {
				row = (row - gridDelta(s.Nibble(pos^4))) & 3
			}
			col = (col + 1) & 3
		case 3: // right
			if col == 0 {
				row = (row - gridDelta(s.Nibble(pos^4))) & 3
			}
			col = (col - 1) & 3
		}
		s.SetNibble(pos, row<<2|col)
	}
}

// PartialGridPermutation applies the grid permutation step for nibble index
// n under a byte-path mask. When the step consults a neighbour that lies
// outside the mask, its contribution is unknown: extraCrumb (0..3)
// substitutes for it and the return value is true. Callers enumerate all
// four crumbs exactly when the first call reports the crumb was used.
func PartialGridPermutation(s *state.State, n int, bpMask state.State, extraCrumb int, control state.State) bool {
	pos := n ^ 1
	v := s.Nibble(pos)
	row, col := v>>2, v&3
	used := false

	neighbour := func(nbPos int) uint64 {
		if bpMask.Nibble(nbPos) != 0 {
			return gridDelta(s.Nibble(nbPos))
		}
		used = true
		return uint64(extraCrumb) & 3
	}

	switch uint64(control) >> (8 + 2*n) & 3 {
	case 0: // up
		if row == 0 {
			col = (col + neighbour(pos^8)) & 3
		}
		row = (row - 1) & 3
	case 1: // down
		if row == 3 {
			col = (col + neighbour(pos^8)) & 3
		}
		row = (row + 1) & 3
	case 2: // left
		if col == 0 {
			row = (row + neighbour(pos^4)) & 3
		}
		col = (col - 1) & 3
	case 3: // right
		if col == 3 {
			row = (row + neighbour(pos^4)) & 3
		}
		col = (col + 1) & 3
	}
	s.SetNibble(pos, row<<2|col)
	return used
}

// PartialGridPermutationInv is the inverse counterpart of
// PartialGridPermutation, with the same crumb contract.
func PartialGridPermutationInv(s *state.State, n int, bpMask state.State, extraCrumb int, control state.State) bool {
	pos := n ^ 1
	v := s.Nibble(pos)
	row, col := v>>2, v&3
	used := false

	neighbour := func(nbPos int) uint64 {
		if bpMask.Nibble(nbPos) != 0 {
			return gridDelta(s.Nibble(nbPos))
		}
		used = true
		return uint64(extraCrumb) & 3
	}

	switch uint64(control) >> (8 + 2*n) & 3 {
	case 0: // up
		if row == 3 {
			col = (col - neighbour(pos^8)) & 3
		}
		row = (row + 1) & 3
	case 1: // down
		if row == 0 {
			col = (col - neighbour(pos^8)) & 3
		}
		row = (row - 1) & 3
	case 2: // left
		if col == 3 {
			row = (row - neighbour(pos^4)) & 3
		}
		col = (col + 1) & 3
	case 3: // right
		if col == 0 {
			row = (row - neighbour(pos^4)) & 3
		}
		col = (col - 1) & 3
	}
	s.SetNibble(pos, row<<2|col)
	return used
}
