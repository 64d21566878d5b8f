// Package unwind recovers the 56-bit key of the 8-round cipher implemented
// in internal/sbt from a single known plaintext/ciphertext pair.
//
// The attack is a meet-in-the-middle over byte paths: narrow cuts through
// the 64-bit state whose masked value can be propagated partially from both
// ends of the cipher and matched at the round-3/round-4 boundary. For each
// of the eight byte paths it first determines which key bits can influence
// the path at all, then enumerates those bits and keeps the candidates a
// MITM check cannot rule out. The eight per-path candidate lists are merged
// pairwise, revalidating under the union path, until one list over the full
// key remains.
package unwind

import (
	"log/slog"
	"sync"

	"github.com/StijnM1/Unwind-Attack/internal/state"
)

// An Attack holds the process-wide inputs of a key recovery. The fields are
// written once and the methods only read them, so a single Attack may be
// shared by concurrent searches.
type Attack struct {
	// Input is the known plaintext block.
	Input state.State
	// Output is the known ciphertext block.
	Output state.State
	// Key is the true key. It is consulted only through LeakMask and for
	// test instrumentation; an all-zero LeakMask makes it inert.
	Key state.State
	// LeakMask selects key bits assumed known a priori. Candidates that
	// disagree with Key on a leaked bit are pruned before validation.
	LeakMask state.State
}

// CheckKeyMask reports whether a candidate key agrees with the true key on
// every leaked bit inside the given keymask.
func (a *Attack) CheckKeyMask(key, keymask state.State) bool {
	return (key^a.Key)&(a.LeakMask&keymask) == 0
}

// Recover runs the full attack: the eight single-byte-path lists are built
// concurrently, then merged in a fixed schedule that starts from the pair
// with the largest keymask overlap and grows outward. The returned list
// enumerates every full key consistent with the plaintext/ciphertext pair
// and the leak mask; progress is reported through log.
func (a *Attack) Recover(log *slog.Logger) List {
	var single [8]List
	var wg sync.WaitGroup
	for i := range single {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			single[i] = a.CreateSingleList(7 - i)
		}()
	}
	wg.Wait()

	for i, l := range single {
		log.Info("built single-byte list", "list", i+1, "byte", 7-i, "keys", len(l.Keys))
	}

	combined := single[5]
	for i, next := range []int{6, 0, 4, 7, 1, 2, 3} {
		combined = a.CombineLists(combined, single[next])
		log.Info("combined lists", "step", i+1, "with", next+1, "keys", len(combined.Keys))
	}
	return combined
}
