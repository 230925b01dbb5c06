package analysis

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// MonobitBias returns, as a percentage, how far each output bit strays on average from being set
// in exactly half of digests. An ideal function approaches 0% as the sample grows; a constant
// function scores 100%.
func MonobitBias(digests [][32]byte) float64 {
	if len(digests) == 0 {
		return 0
	}
	var tally [outputBits]int
	for _, d := range digests {
		for i := range d {
			for x := d[i]; x != 0; x &= x - 1 {
				tally[i*8+bits.TrailingZeros8(x)]++
			}
		}
	}

	half := float64(len(digests)) / 2
	var total float64
	for _, c := range tally {
		dev := float64(c) - half
		if dev < 0 {
			dev = -dev
		}
		total += dev
	}
	return total / outputBits / half * 100
}
