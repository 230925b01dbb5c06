package chronohash

import "encoding/binary"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	// Size is the length of a digest in bytes.
	Size = 32
	// BlockSize is the length of a padded block in bytes.
	BlockSize = 64

	wordsPerBlock = BlockSize / 4
	lengthBytes   = 8 /* big-endian bit length closing the padded message */

	fastRounds = 8
	baseRounds = 20
	extraRange = 12 /* Normal mode adds up to this many rounds */

	/* 8*len must fit in a uint64. */
	maxMessageLen = 1<<61 - 1
)

/* Derived from the leading digits of e, pi and phi. */
var iv = [8]uint32{
	0x2B7E1516, 0x28AED2A6, 0xABF71588, 0x09CF4F3C,
	0x762E7160, 0xF38B4DA5, 0x6A09E667, 0xBB67AE85,
}

/* Multiplier table; the first entry is the golden ratio scaled to 2^32. Only 32 bits of each
constant ever take part in a product, so they are stored as words. */
var primes = [8]uint32{
	0x9E3779B9, 0x85EBCA6B, 0xC2B2AE35, 0x92D68CA2,
	0xA5CB9243, 0xDF442D22, 0x8B2B8C1F, 0xCC9E2D51,
}

var rotations = [16]int{7, 12, 17, 22, 5, 9, 14, 20, 4, 11, 16, 23, 6, 10, 15, 21}

func bytesToWords(b []byte, words *[wordsPerBlock]uint32) {
	_ = b[BlockSize-1]
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
}
