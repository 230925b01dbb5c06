package chronohash

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// planRounds returns the number of compression rounds applied to every block of a padded
// message. The padded message may be handed over in pieces; they are treated as one sequence.
func planRounds(mode Mode, padded ...[]byte) int {
	if mode == Fast {
		return fastRounds
	}
	return baseRounds + extraRange*uniqueBytes(padded...)/256
}

// uniqueBytes counts the distinct byte values found across all of parts.
func uniqueBytes(parts ...[]byte) int {
	var seen [4]uint64
	count := 0
	for _, p := range parts {
		for _, b := range p {
			word, bit := b>>6, uint64(1)<<(b&63)
			if seen[word]&bit != 0 {
				continue
			}
			seen[word] |= bit
			if count++; count == 256 {
				return count
			}
		}
	}
	return bits.OnesCount64(seen[0]) + bits.OnesCount64(seen[1]) +
		bits.OnesCount64(seen[2]) + bits.OnesCount64(seen[3])
}
