// Command unwind recovers the 56-bit key of the 8-round block cipher from a
// known plaintext/ciphertext pair using a byte-path meet-in-the-middle
// attack. If only the key is given, the ciphertext is computed first; the
// true key is then only consulted for the bits selected by
// -knownkeybitmask.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	unwind "github.com/StijnM1/Unwind-Attack"
	"github.com/StijnM1/Unwind-Attack/internal/sbt"
	"github.com/StijnM1/Unwind-Attack/internal/state"
	"github.com/StijnM1/Unwind-Attack/internal/vecio"
)

func main() {
	var (
		help   bool
		input  uint64
		key    uint64
		output uint64
		leak   uint64
		dump   string
	)
	flag.BoolVar(&help, "help", false, "show options")
	flag.BoolVar(&help, "h", false, "shorthand for -help")
	flag.Uint64Var(&input, "input", 0, "the known plaintext block")
	flag.Uint64Var(&input, "i", 0, "shorthand for -input")
	flag.Uint64Var(&key, "key", 0, "the true key, used to compute the output block")
	flag.Uint64Var(&key, "k", 0, "shorthand for -key")
	flag.Uint64Var(&output, "output", 0, "the known ciphertext block")
	flag.Uint64Var(&output, "o", 0, "shorthand for -output")
	flag.Uint64Var(&leak, "knownkeybitmask", 0, "key bits leaked to the attack")
	flag.StringVar(&dump, "dump", "", "path to save the final candidate list as a binary vector")
	flag.Parse()

	seen := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	hasInput := seen["input"] || seen["i"]
	hasKey := seen["key"] || seen["k"]
	hasOutput := seen["output"] || seen["o"]

	if help || !hasInput || (!hasKey && !hasOutput) {
		flag.Usage()
		return
	}

	attack := &unwind.Attack{
		Input:    state.State(input),
		Output:   state.State(output),
		Key:      state.State(key),
		LeakMask: state.State(leak),
	}
	if !hasOutput {
		attack.Output = sbt.Encrypt(attack.Key, attack.Input)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	log.Info("starting",
		"input", attack.Input,
		"output", attack.Output,
		"key", attack.Key,
		"keyleak", attack.LeakMask)

	final := attack.Recover(log)

	fmt.Println("Candidate keys:")
	for _, k := range final.Keys {
		fmt.Printf("  %s (0x%016x)\n", k, uint64(k))
	}
	fmt.Printf("Original key: %s\n", attack.Key)

	if dump != "" {
		if err := vecio.Write(dump, final.Keys); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Info("saved candidate list", "path", dump, "keys", len(final.Keys))
	}
}
