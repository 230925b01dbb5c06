package chronohash

import . "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The compression core: temporal diffusion, the compression round, and the mixing function they
// share the prime table with. All arithmetic wraps modulo 2^32.

func mix(a, b, c, p uint32) uint32 {
	t := RotateLeft32((a^b)+c, 13)
	t = RotateLeft32(t*p, 11)
	return t ^ t>>16
}

// diffuse runs the forward cascade once over the state. Every position reads the state as it
// was before the pass began; position i folds itself into the three positions after it and is
// then replaced by its mix with its successor. Updating the state in place instead, so that
// later positions see earlier writes, is a different function and breaks every Normal digest.
func diffuse(state *[8]uint32, block *[wordsPerBlock]uint32) {
	s, next := *state, *state
	for i := 0; i < 8; i++ {
		influence := block[i%wordsPerBlock]
		seed := s[i] + influence
		for offset := 1; offset < 4; offset++ {
			next[(i+offset)&7] ^= RotateLeft32(seed, offset<<2)
		}
		next[i] = mix(s[i], s[(i+1)&7], influence, primes[i])
	}
	*state = next
}

// round applies compression round r. Neighbours are always read from the pre-round snapshot so
// that no word of a round observes another word of the same round.
func round(state *[8]uint32, block *[wordsPerBlock]uint32, r int) {
	s := *state
	rot := rotations[r&15]
	for i := 0; i < 8; i++ {
		t := (s[i] ^ RotateLeft32(s[(i+1)&7], rot)) + RotateLeft32(s[(i+5)&7], -(rot >> 1))
		t ^= block[(i+r)%wordsPerBlock]
		t = RotateLeft32(t*primes[i], 11)
		state[i] = s[i] + t
	}
}

// compress absorbs one block into the state.
func compress(state *[8]uint32, b []byte, rounds int, mode Mode) {
	var block [wordsPerBlock]uint32
	bytesToWords(b, &block)

	if mode == Normal {
		diffuse(state, &block)
	}
	for r := 0; r < rounds; r++ {
		round(state, &block, r)
	}
}
