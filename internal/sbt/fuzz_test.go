package sbt //nolint:testpackage // testing internals

import (
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/StijnM1/Unwind-Attack/internal/state"
)

func FuzzEncryptDecrypt(f *testing.F) {
	f.Add(uint64(0x0123456789ABCDEF), uint64(0x00FEDCBA98765432))
	f.Add(uint64(0), uint64(0))

	f.Fuzz(func(t *testing.T, p, k uint64) {
		key := state.State(k) & keyMask56
		pt := state.State(p)
		if got := Decrypt(key, pt, Encrypt(key, pt)); got != pt {
			t.Fatalf("Decrypt(Encrypt(%s)) = %s", pt, got)
		}
	})
}

// FuzzRoundReversibility generates a transcript of round operations,
// applies it, then applies the duals in reverse order and checks the
// original state is recovered.
func FuzzRoundReversibility(f *testing.F) {
	f.Add([]byte("unwind round reversibility seed material 0123456789"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		s0, err := tp.GetUint64()
		if err != nil {
			t.Skip(err)
		}
		opCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		type op struct {
			kind    byte
			control state.State
		}

		s := state.State(s0)
		var trace []op
		for n := uint16(0); n < opCount%64; n++ {
			kind, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			c, err := tp.GetUint64()
			if err != nil {
				t.Skip(err)
			}
			control := state.State(c)

			const opTypeCount = 5 // grid, byte perm, nibble switch, sbox, bit perm
			switch kind % opTypeCount {
			case 0:
				GridPermutation(&s, control)
			case 1:
				BytePermutation(&s)
			case 2:
				NibbleSwitch(&s, control)
			case 3:
				SBox(&s)
			case 4:
				BitPermutation(&s)
			}
			trace = append(trace, op{kind: kind % opTypeCount, control: control})
		}

		for i := len(trace) - 1; i >= 0; i-- {
			switch trace[i].kind {
			case 0:
				GridPermutationInv(&s, trace[i].control)
			case 1:
				BytePermutationInv(&s)
			case 2:
				NibbleSwitchInv(&s, trace[i].control)
			case 3:
				SBoxInv(&s)
			case 4:
				BitPermutationInv(&s)
			}
		}

		if s != state.State(s0) {
			t.Fatalf("transcript inversion = %s, want %s", s, state.State(s0))
		}
	})
}

// FuzzPartialGridConsistency checks that inside the mask the partial step
// tracks the full permutation regardless of the crumb value.
func FuzzPartialGridConsistency(f *testing.F) {
	f.Add([]byte("unwind partial grid seed material 0123456789abcdef"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}
		s0, err := tp.GetUint64()
		if err != nil {
			t.Skip(err)
		}
		c, err := tp.GetUint64()
		if err != nil {
			t.Skip(err)
		}
		crumb, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}

		control := state.State(c)
		full := ^state.State(0)

		want := state.State(s0)
		GridPermutation(&want, control)

		got := state.State(s0)
		for n := 0; n < 16; n++ {
			if PartialGridPermutation(&got, n, full, int(crumb%4), control) {
				t.Fatalf("nibble %d: crumb used inside a full mask", n)
			}
		}
		if got != want {
			t.Fatalf("partial = %s, full = %s", got, want)
		}
	})
}
