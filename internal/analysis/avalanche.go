package analysis

import (
	"math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const outputBits = 256

// AvalancheReport summarizes single-bit-flip trials against one hash function.
type AvalancheReport struct {
	Trials int `json:"trials"`
	// Mean is the average fraction of output bits that changed per trial.
	Mean float64 `json:"mean"`
	// Min and Max bound the per-output-bit flip rates.
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	// Rates holds the flip rate of every output bit, bit i being bit i%8 of byte i/8.
	Rates [outputBits]float64 `json:"-"`
}

// Hamming returns the number of bits in which a and b differ.
func Hamming(a, b [32]byte) (n int) {
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n
}

// SAC runs the strict avalanche criterion over base: every bit of its first nbytes bytes is
// flipped in turn and the output compared to the digest of base.
func SAC(f Func, base []byte, nbytes int) AvalancheReport {
	if nbytes > len(base) {
		nbytes = len(base)
	}
	var r AvalancheReport
	var counts [outputBits]int
	ref := f(base)
	msg := append([]byte(nil), base...)
	total := 0

	for i := 0; i < nbytes; i++ {
		for bit := 0; bit < 8; bit++ {
			msg[i] ^= 1 << bit
			diff := f(msg)
			msg[i] ^= 1 << bit

			for j := range diff {
				diff[j] ^= ref[j]
				for x := diff[j]; x != 0; x &= x - 1 {
					counts[j*8+bits.TrailingZeros8(x)]++
				}
				total += bits.OnesCount8(diff[j])
			}
			r.Trials++
		}
	}
	if r.Trials == 0 {
		return r
	}

	r.Mean = float64(total) / float64(r.Trials*outputBits)
	r.Min, r.Max = 1, 0
	for i, c := range counts {
		rate := float64(c) / float64(r.Trials)
		r.Rates[i] = rate
		if rate < r.Min {
			r.Min = rate
		}
		if rate > r.Max {
			r.Max = rate
		}
	}
	return r
}

// MeanAvalanche hashes samples random messages of size bytes, flips one random bit of each, and
// returns the average fraction of output bits that changed.
func MeanAvalanche(f Func, src *Source, samples, size int) float64 {
	if samples <= 0 || size <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < samples; i++ {
		msg := src.Message(size)
		before := f(msg)
		pos := src.Intn(size * 8)
		msg[pos>>3] ^= 1 << (pos & 7)
		total += Hamming(before, f(msg))
	}
	return float64(total) / float64(samples*outputBits)
}
