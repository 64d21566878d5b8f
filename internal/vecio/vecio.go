// Package vecio reads and writes flat binary dumps of state vectors: raw
// little-endian 8-byte elements with no framing beyond the file length.
package vecio

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/StijnM1/Unwind-Attack/internal/state"
)

// elemSize is the on-disk size of one state.
const elemSize = 8

// Write dumps the vector to a file, overwriting it if present.
func Write(path string, v []state.State) error {
	buf := make([]byte, 0, len(v)*elemSize)
	for _, s := range v {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(s))
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("vecio: writing %s: %w", path, err)
	}
	return nil
}

// Read loads a vector from a file. A file whose size is not a multiple of
// the element size is rejected.
func Read(path string) ([]state.State, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vecio: reading %s: %w", path, err)
	}
	if len(buf)%elemSize != 0 {
		return nil, fmt.Errorf("vecio: %s: file size %d is not a multiple of the element size", path, len(buf))
	}
	v := make([]state.State, 0, len(buf)/elemSize)
	for i := 0; i < len(buf); i += elemSize {
		v = append(v, state.State(binary.LittleEndian.Uint64(buf[i:])))
	}
	return v, nil
}
