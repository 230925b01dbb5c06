// Package analysis measures the statistical behaviour of a 256-bit hash function: avalanche,
// collisions, near-collisions, and per-bit output bias.
package analysis

import (
	"encoding/binary"

	"github.com/aead/chacha20/chacha"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Func is a hash function under test.
type Func func(msg []byte) [32]byte

// Source is a reproducible stream of pseudo-random bytes: the ChaCha20 keystream under a key
// derived from a 64-bit seed. Two Sources built from the same seed yield the same bytes.
type Source struct {
	stream *chacha.Cipher
	word   [4]byte
}

// NewSource returns the Source for seed.
func NewSource(seed uint64) *Source {
	var key [chacha.KeySize]byte
	var nonce [chacha.NonceSize]byte
	binary.LittleEndian.PutUint64(key[:], seed)

	stream, err := chacha.NewCipher(nonce[:], key[:], 20)
	if err != nil {
		panic(err) /* Key and nonce sizes are fixed above. */
	}
	return &Source{stream: stream}
}

// Read fills p with keystream. It never fails.
func (s *Source) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.stream.XORKeyStream(p, p)
	return len(p), nil
}

// Message returns the next n bytes of the stream.
func (s *Source) Message(n int) []byte {
	msg := make([]byte, n)
	_, _ = s.Read(msg)
	return msg
}

func (s *Source) Uint32() uint32 {
	_, _ = s.Read(s.word[:])
	return binary.LittleEndian.Uint32(s.word[:])
}

// Intn returns a value in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("analysis: Intn called with non-positive n")
	}
	/* Rejection keeps the result uniform for any n. */
	limit := ^uint32(0) - ^uint32(0)%uint32(n)
	for {
		if v := s.Uint32(); v < limit {
			return int(v % uint32(n))
		}
	}
}
