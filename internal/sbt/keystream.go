package sbt

import (
	"errors"

	"github.com/StijnM1/Unwind-Attack/internal/state"
)

// initialFill is the fixed input-register fill used between the key schedule
// and streaming mode.
const initialFill state.State = 0xcf17af8a107ac0f5

// ErrShortKeyMaterial is returned when the daily key or nonce strings are
// too short to fill the registers.
var ErrShortKeyMaterial = errors.New("sbt: daily key must be at least 15 characters and nonce at least 3")

// A Stream produces the cipher's keystream, a byte at a time. The block
// primitive fills a 64-bit buffer from the key and input registers; once all
// eight bytes are used the input register is stepped and the buffer refilled.
type Stream struct {
	lfsr state.State
	key  state.State
	buf  state.State
	used int
}

// NewStream derives the streaming registers from a daily key of at least 15
// characters and a 3-character nonce, running the cipher's two-phase
// initialization.
func NewStream(dailyKey, nonce string) (*Stream, error) {
	if len(dailyKey) < 15 || len(nonce) < 3 {
		return nil, ErrShortKeyMaterial
	}

	st := new(Stream)
	st.key, st.lfsr = initRegisters(dailyKey, nonce)

	// First pass: the preliminary key encrypts the stepped input register,
	// and the low 56 bits of the output become the session key.
	LFSR64(&st.lfsr)
	st.buf = Encrypt(st.key, st.lfsr)
	st.key = st.buf & (1<<56 - 1)
	st.key.SwapBits()
	st.key.SwapBitPairs()
	st.key.SwapNibbles()

	// Second pass: restart from the fixed fill under the session key.
	st.lfsr = initialFill
	LFSR64(&st.lfsr)
	st.buf = Encrypt(st.key, st.lfsr)

	// Splice the nonce into the top three bytes of the input register.
	st.lfsr &= 1<<40 - 1
	for i := 0; i < 3; i++ {
		st.lfsr |= state.State(charToByte(nonce[2-i])) << (8 * (7 - i))
	}

	return st, nil
}

// KeystreamByte returns the next keystream byte, refilling the buffer from a
// stepped input register when all eight bytes have been used.
func (st *Stream) KeystreamByte() byte {
	if st.used >= 8 {
		LFSR64(&st.lfsr)
		st.buf = Encrypt(st.key, st.lfsr)
		st.used = 0
	}
	b := byte(st.buf.Byte(st.used))
	st.used++
	return b
}

// Checksum renders the four-letter key checksum of the current buffer, as
// printed by the original equipment for the all-zero nonce.
func (st *Stream) Checksum() string {
	b := make([]byte, 0, 4)
	for i := 6; i >= 0; i -= 2 {
		x := (uint64(st.buf)>>(8*i) ^ uint64(st.buf)>>(8*i+12)) & 0xF
		b = append(b, byte('A'+x))
	}
	return string(b)
}

// initRegisters builds the preliminary key and input registers from the
// 6-bit character encodings of the daily key and nonce.
func initRegisters(dailyKey, nonce string) (key, lfsr state.State) {
	for i := 0; i < 8; i++ {
		lfsr |= state.State(charToByte(dailyKey[i])) << (8 * i)
		if i < 3 {
			lfsr ^= state.State(charToByte(nonce[i])) << (8 * i)
		}
	}
	for i := 0; i < 7; i++ {
		key |= state.State(charToByte(dailyKey[i+8])) << (8 * i)
	}
	key.SwapBits()
	key.SwapBitPairs()
	key.SwapNibbles()
	return key, lfsr
}

// charToByte encodes an input character as its ASCII code truncated to six
// bits.
func charToByte(c byte) uint64 {
	return uint64(c) & 0x3F
}

// StepLFSR steps the input register's LFSR once: the new top bit is the XOR
// of taps 31 and 63 of f(x) = 1 + x^31 + x^63.
func StepLFSR(s *state.State) {
	newbit := (uint64(*s)>>33 ^ uint64(*s)>>1) & 1
	s.ShiftLeft()
	*s |= state.State(newbit) << 63
}

// LFSR64 steps the input register's LFSR 64 times: two 31-bit strides and
// one 2-bit stride.
func LFSR64(s *state.State) {
	const mask = (1<<31 - 1) << 33
	u := uint64(*s)
	n31 := (u ^ u<<32) & mask
	u = u>>31 | n31
	n31 = (u ^ u<<32) & mask
	u = u>>31 | n31
	n2 := (u<<29 ^ u<<61) & (3 << 62)
	u = u>>2 | n2
	*s = state.State(u)
}
