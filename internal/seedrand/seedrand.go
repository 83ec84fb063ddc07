// Package seedrand provides the deterministic random engine that drives all
// stylistic variation for a single generation request. For a fixed seed the
// draw sequence is identical across platforms, so a stored seed reproduces a
// rendered document exactly.
package seedrand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
)

// MakeSeed produces a fresh 32-bit seed from two crypto-random words.
func MakeSeed() uint32 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand failure on supported platforms is not recoverable.
		panic("seedrand: crypto source unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint32(buf[:4]) ^ binary.LittleEndian.Uint32(buf[4:])
}

// New returns a generator yielding floats in [0,1). The mixing is a fixed
// odd-constant increment followed by two xorshift-multiply rounds; the exact
// constants are load-bearing for reproducibility and must not change.
func New(seed uint32) func() float64 {
	state := seed
	return func() float64 {
		state += 0x6D2B79F5
		z := state
		z = (z ^ (z >> 15)) * (z | 1)
		z ^= z + (z^(z>>7))*(z|61)
		z ^= z >> 14
		return float64(z) / (1 << 32)
	}
}

// Shuffle returns a seeded permutation of in without mutating it. It is a
// right-to-left Fisher-Yates consuming one draw per position.
func Shuffle[T any](in []T, next func() float64) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := int(next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
