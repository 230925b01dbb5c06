package main

import (
	. "fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/chronohash"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var sizes = [...]int{64, 512 << 10, 64 << 20}
var bytes = []byte(nil)

// throughput is one row group of the benchmark table.
type throughput struct {
	Name  string    `json:"name"`
	Sizes []int     `json:"sizes"`
	MBps  []float64 `json:"mb_per_s"`
	CPB   []float64 `json:"cycles_per_byte,omitempty"`
	Alloc []float64 `json:"bytes_per_op"`
}

var algs = []struct {
	name  string
	bench func(b *testing.B)
}{
	{"github.com/p7r0x7/chronohash (normal)", BenchmarkNormal},
	{"github.com/p7r0x7/chronohash (fast)", BenchmarkFast},
	{"github.com/minio/sha256-simd", BenchmarkSHA256},
	{"github.com/zeebo/blake3", BenchmarkBlake3},
	{"github.com/zeebo/xxh3 (128-bit)", BenchmarkXXH3},
}

func BenchmarkNormal(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		chronohash.SumNormal(bytes)
	}
}

func BenchmarkFast(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		chronohash.SumFast(bytes)
	}
}

func BenchmarkSHA256(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(bytes)
	}
}

func BenchmarkBlake3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum256(bytes)
	}
}

func BenchmarkXXH3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		xxh3.Hash128(bytes)
	}
}

// benchAlg runs alg once per entry of sizes, sampling the TSC alongside to estimate the clock
// rate and from it cycles per byte.
func benchAlg(name string, alg func(b *testing.B)) throughput {
	const s = len(sizes)
	t := throughput{Name: name, Sizes: sizes[:], MBps: make([]float64, s), Alloc: make([]float64, s)}
	if calltime > 0 {
		t.CPB = make([]float64, s)
	}

	for i, v := range sizes {
		bytes = make([]byte, v)

		totalHz, polls, mut, done := uint64(0), uint64(0), &sync.Mutex{}, make(chan struct{})
		if calltime > 0 {
			go func() {
				for {
					select {
					case <-done:
						return
					default:
					}
					tsc1 := tscStart()
					time.Sleep(time.Millisecond)
					tsc2 := tscEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(alg)
		close(done)

		t.MBps[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		mut.Lock()
		if t.CPB != nil && polls > 0 {
			t.CPB[i] = float64(totalHz*1000) / float64(polls) / t.MBps[i]
		}
		mut.Unlock()
		t.MBps[i] /= 1e6 /* MB/s */
		t.Alloc[i] = float64(r.AllocedBytesPerOp())
	}
	bytes = nil
	return t
}

func (t throughput) String() string {
	var b strings.Builder
	b.WriteString(t.Name + "\n")
	b.WriteString("Speed " + fmtFloats(t.MBps...) + "   MB/s\n")
	if t.CPB != nil {
		b.WriteString("      " + fmtFloats(t.CPB...) + "   cpb\n")
	}
	b.WriteString("Usage " + fmtFloats(t.Alloc...) + "   B/op\n")
	return b.String()
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}
