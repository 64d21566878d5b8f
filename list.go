package unwind

import (
	"github.com/StijnM1/Unwind-Attack/internal/sbt"
	"github.com/StijnM1/Unwind-Attack/internal/state"
)

// A List holds the candidate keys surviving MITM validation for a byte-path
// mask. Every key has all bits outside Keymask zero, and Keymask is always
// the keymask determined by BPMask. Keys is a set; the order is meaningless.
type List struct {
	BPMask  state.State
	Keymask state.State
	Keys    []state.State
}

// CreateSingleList builds the candidate list for the byte path covering one
// full byte of the block: every key confined to the path's keymask that
// passes the leak filter and the MITM check.
//
// Candidate enumeration walks all subsets of the keymask with the
// decrement-and-mask cycle z = (z-1) & mask, which starting from zero visits
// every subset exactly once (zero included, as the final value) before
// returning to the origin.
func (a *Attack) CreateSingleList(byteIndex int) List {
	var bp state.State
	bp.SetByte(byteIndex, 0xFF)

	l := List{BPMask: bp, Keymask: sbt.DetermineKeymask(bp)}
	for z := state.State(0); ; {
		z = (z - 1) & l.Keymask
		if a.CheckKeyMask(z, l.Keymask) && a.ValidMITM(z, bp) {
			l.Keys = append(l.Keys, z)
		}
		if z == 0 {
			break
		}
	}
	return l
}

// CombineLists merges two lists into the list over the union of their byte
// paths. Each candidate of la is extended over the key bits lb constrains
// but la does not, and every extension is revalidated under the union mask,
// so the result only shrinks relative to the Cartesian product.
func (a *Attack) CombineLists(la, lb List) List {
	lc := List{BPMask: la.BPMask | lb.BPMask, Keymask: la.Keymask | lb.Keymask}
	ext := lb.Keymask &^ la.Keymask

	for _, partial := range la.Keys {
		for z := state.State(0); ; {
			z = (z - 1) & ext
			key := z ^ partial
			if a.CheckKeyMask(key, lc.Keymask) && a.ValidMITM(key, lc.BPMask) {
				lc.Keys = append(lc.Keys, key)
			}
			if z == 0 {
				break
			}
		}
	}
	return lc
}

// ApplyKeyMask drops, in place, the candidates that disagree with the leaked
// key bits inside the list's keymask.
func (a *Attack) ApplyKeyMask(l *List) {
	keep := l.Keys[:0]
	for _, key := range l.Keys {
		if a.CheckKeyMask(key, l.Keymask) {
			keep = append(keep, key)
		}
	}
	l.Keys = keep
}
