package unwind

import (
	"github.com/StijnM1/Unwind-Attack/internal/sbt"
	"github.com/StijnM1/Unwind-Attack/internal/state"
)

// ValidMITM reports whether a candidate key is consistent with a byte path:
// whether some masked state at the round-3/round-4 boundary is reachable
// both by propagating the known plaintext forward through rounds 0..3 and
// the known ciphertext backward through rounds 7..4.
//
// Both traces project every intermediate state onto the byte-path mask,
// which itself advances through the byte permutation between rounds. Where a
// grid-permutation step consults a neighbour nibble outside the mask, the
// trace forks over the four possible crumb values, so each frontier is a
// list of masked states rather than a single value. The forward frontier is
// deduplicated in round 2, right after its grid-permutation step, to keep its
// size bounded by the number of distinct masked states.
func (a *Attack) ValidMITM(key, bpMask state.State) bool {
	origMask := bpMask

	// Backward: ciphertext to the middle.
	out := []state.State{a.Output}
	var in []state.State

	for round := 7; round > 3; round-- {
		control := sbt.ControlNrGr(round, key, a.Input)

		in, out = out, in[:0]
		for _, s := range in {
			sbt.SBoxInv(&s)
			out = append(out, s&bpMask)
		}

		in, out = out, in[:0]
		for _, s := range in {
			sbt.NibbleSwitchInv(&s, control)
			out = append(out, s&bpMask)
		}

		sbt.BytePermutationInv(&bpMask)

		in, out = out, in[:0]
		for _, s := range in {
			sbt.BytePermutationInv(&s)
			out = append(out, s&bpMask)
		}

		for n := 15; n >= 0; n-- {
			if bpMask.Nibble(n^1) == 0 {
				continue
			}
			in, out = out, in[:0]
			for _, s := range in {
				v := s
				used := sbt.PartialGridPermutationInv(&v, n, bpMask, 0, control)
				out = append(out, v&bpMask)
				if !used {
					continue
				}
				for crumb := 1; crumb < 4; crumb++ {
					v = s
					sbt.PartialGridPermutationInv(&v, n, bpMask, crumb, control)
					out = append(out, v&bpMask)
				}
			}
		}
	}

	backward := make(map[state.State]struct{}, len(out))
	for _, s := range out {
		backward[s] = struct{}{}
	}

	// Forward: plaintext to the middle.
	fwd := a.Input
	sbt.BitPermutation(&fwd)
	out = append(out[:0], fwd)
	bpMask = origMask

	for round := 0; round < 4; round++ {
		control := sbt.ControlNrGr(round, key, a.Input)

		for n := 0; n < 16; n++ {
			if bpMask.Nibble(n^1) == 0 {
				continue
			}
			in, out = out, in[:0]
			for _, s := range in {
				v := s
				used := sbt.PartialGridPermutation(&v, n, bpMask, 0, control)
				out = append(out, v&bpMask)
				if !used {
					continue
				}
				for crumb := 1; crumb < 4; crumb++ {
					v = s
					sbt.PartialGridPermutation(&v, n, bpMask, crumb, control)
					out = append(out, v&bpMask)
				}
			}
		}

		// Collapse the frontier to a set midway through: the crumb forks
		// otherwise multiply the list far beyond the number of distinct
		// masked states it can contain.
		if round == 2 {
			seen := make(map[state.State]struct{}, len(out))
			for _, s := range out {
				seen[s] = struct{}{}
			}
			out = out[:0]
			for s := range seen {
				out = append(out, s)
			}
		}

		sbt.BytePermutation(&bpMask)

		in, out = out, in[:0]
		for _, s := range in {
			sbt.BytePermutation(&s)
			out = append(out, s&bpMask)
		}

		in, out = out, in[:0]
		for _, s := range in {
			sbt.NibbleSwitch(&s, control)
			out = append(out, s&bpMask)
		}

		in, out = out, in[:0]
		for _, s := range in {
			sbt.SBox(&s)
			out = append(out, s&bpMask)
		}
	}

	for _, s := range out {
		if _, ok := backward[s]; ok {
			return true
		}
	}
	return false
}
