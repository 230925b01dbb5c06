package analysis

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Collisions hashes gen(0) through gen(n-1) and counts the digests that were already produced
// by an earlier message. gen must return distinct messages for distinct i.
func Collisions(f Func, n int, gen func(i int) []byte) int {
	seen := make(map[[32]byte]struct{}, n)
	dupes := 0
	for i := 0; i < n; i++ {
		d := f(gen(i))
		if _, ok := seen[d]; ok {
			dupes++
			continue
		}
		seen[d] = struct{}{}
	}
	return dupes
}

// NearCollisions counts the pairs of msgs whose digests differ in at most threshold bits.
// Identical digests count too.
func NearCollisions(f Func, msgs [][]byte, threshold int) (pairs int, closest int) {
	digests := make([][32]byte, len(msgs))
	for i, m := range msgs {
		digests[i] = f(m)
	}
	closest = outputBits
	for i := range digests {
		for j := i + 1; j < len(digests); j++ {
			d := Hamming(digests[i], digests[j])
			if d < closest {
				closest = d
			}
			if d <= threshold {
				pairs++
			}
		}
	}
	return pairs, closest
}
