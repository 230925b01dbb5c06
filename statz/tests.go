package main

import (
	"encoding/binary"
	"sort"

	"github.com/p7r0x7/chronohash"
	"github.com/p7r0x7/chronohash/internal/analysis"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const randomSize, sacSize, nearSamples, nearThreshold = 1024, 64, 1000, 10

// quality is everything measured about one mode.
type quality struct {
	Mode          string                   `json:"mode"`
	IntegerBias   float64                  `json:"integer_monobit_bias"`
	RandomBias    float64                  `json:"random_monobit_bias"`
	SAC           analysis.AvalancheReport `json:"sac"`
	MeanAvalanche float64                  `json:"mean_avalanche"`
	Collisions    int                      `json:"collisions"`
	NearPairs     int                      `json:"near_collisions"`
	Closest       int                      `json:"closest_pair_bits"`
	Rounds        []roundCount             `json:"rounds"`
}

// roundCount is one bar of the round-count histogram.
type roundCount struct {
	Rounds     int `json:"rounds"`
	Random     int `json:"random"`
	LowEntropy int `json:"low_entropy"`
}

func hashFunc(mode chronohash.Mode) analysis.Func {
	if mode == chronohash.Fast {
		return func(msg []byte) [32]byte { return chronohash.SumFast(msg) }
	}
	return func(msg []byte) [32]byte { return chronohash.SumNormal(msg) }
}

func integer(i int) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(i))
	return b
}

// measure runs every quality test against mode over samples messages drawn from seed.
func measure(mode chronohash.Mode, samples int, seed uint64) quality {
	f, src := hashFunc(mode), analysis.NewSource(seed)
	q := quality{Mode: mode.String()}

	integers, random := make([][32]byte, samples), make([][32]byte, samples)
	for i := range integers {
		integers[i] = f(integer(i))
		random[i] = f(src.Message(randomSize))
	}
	q.IntegerBias = analysis.MonobitBias(integers)
	q.RandomBias = analysis.MonobitBias(random)

	q.SAC = analysis.SAC(f, src.Message(sacSize), sacSize)
	q.MeanAvalanche = analysis.MeanAvalanche(f, src, samples/10+1, 48)
	q.Collisions = analysis.Collisions(f, samples, integer)

	msgs := make([][]byte, nearSamples)
	for i := range msgs {
		msgs[i] = src.Message(32)
	}
	q.NearPairs, q.Closest = analysis.NearCollisions(f, msgs, nearThreshold)

	q.Rounds = roundHistogram(mode, samples/10+1, src)
	return q
}

// roundHistogram plans rounds for random messages and for messages drawn from a four-letter
// alphabet, which should sit at opposite ends of the Normal range.
func roundHistogram(mode chronohash.Mode, n int, src *analysis.Source) []roundCount {
	random, low := map[int]int{}, map[int]int{}
	for i := 0; i < n; i++ {
		size := 1 + src.Intn(randomSize)

		r, _ := chronohash.Rounds(src.Message(size), mode)
		random[r]++

		msg := src.Message(size)
		for j := range msg {
			msg[j] = "ACGT"[msg[j]&3]
		}
		r, _ = chronohash.Rounds(msg, mode)
		low[r]++
	}

	bars := map[int]*roundCount{}
	for r, c := range random {
		bars[r] = &roundCount{Rounds: r, Random: c}
	}
	for r, c := range low {
		if bars[r] == nil {
			bars[r] = &roundCount{Rounds: r}
		}
		bars[r].LowEntropy = c
	}
	out := make([]roundCount, 0, len(bars))
	for _, b := range bars {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rounds < out[j].Rounds })
	return out
}
