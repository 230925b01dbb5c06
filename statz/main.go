package main

import (
	. "fmt"
	"os"
	"runtime"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/p7r0x7/chronohash"
	"github.com/sirupsen/logrus"
	. "github.com/spf13/pflag"
	"golang.org/x/sys/cpu"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pHelp, pJSON, pNoBench bool
var pSamples int
var pSeed uint64

// report is the whole of one statz run; --json prints it as is.
type report struct {
	CPUs       int          `json:"cpus"`
	Platform   string       `json:"platform"`
	Features   []string     `json:"cpu_features"`
	Samples    int          `json:"samples"`
	Seed       uint64       `json:"seed"`
	Quality    []quality    `json:"quality"`
	Throughput []throughput `json:"throughput,omitempty"`
	Elapsed    string       `json:"elapsed"`
}

func init() {
	BoolVarP(&pHelp, "help", "h", false, "print this help menu")
	BoolVarP(&pJSON, "json", "j", false, "print the report as a single JSON document")
	BoolVar(&pNoBench, "no-bench", false, "skip the throughput benchmarks")
	IntVarP(&pSamples, "samples", "n", 5e4, "messages hashed per quality test")
	Uint64Var(&pSeed, "seed", 1, "seed of the pseudo-random message stream")
	CommandLine.SortFlags = false
}

func main() {
	Parse()
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if pHelp {
		Fprintln(os.Stderr, "Usage: statz [-hj] [--no-bench] [-n <int>] [--seed <uint>]\n\nOptions:")
		PrintDefaults()
		return
	}
	if pSamples < 1 {
		log.Errorf("--samples must be positive, got %d", pSamples)
		os.Exit(2)
	}

	start := time.Now()
	r := report{
		CPUs:     runtime.NumCPU(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Features: features(),
		Samples:  pSamples,
		Seed:     pSeed,
	}
	if !pJSON {
		Printf("Running Statz on %d CPUs!\n%s [%s]\n\n", r.CPUs, r.Platform, strings.Join(r.Features, " "))
	}

	for _, mode := range [...]chronohash.Mode{chronohash.Normal, chronohash.Fast} {
		q := measure(mode, pSamples, pSeed)
		r.Quality = append(r.Quality, q)
		if !pJSON {
			Print(q.text())
		}
	}

	if !pNoBench {
		if !pJSON {
			Println("           64B      512K       64M")
		}
		for _, a := range algs {
			t := benchAlg(a.name, a.bench)
			r.Throughput = append(r.Throughput, t)
			if !pJSON {
				Println(t)
			}
		}
	}
	r.Elapsed = time.Since(start).Truncate(time.Millisecond).String()

	if pJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			log.WithError(err).Fatal("could not encode report")
		}
		return
	}
	Println("Finished in " + r.Elapsed + ".")
}

// features lists the instruction-set extensions that the compared hashes can take advantage of.
func features() []string {
	var f []string
	for _, v := range []struct {
		name string
		has  bool
	}{
		{"sse4.1", cpu.X86.HasSSE41},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512f", cpu.X86.HasAVX512F},
		{"asimd", cpu.ARM64.HasASIMD},
		{"sha2", cpu.ARM64.HasSHA2},
	} {
		if v.has {
			f = append(f, v.name)
		}
	}
	if f == nil {
		f = []string{"generic"}
	}
	return f
}

func (q quality) text() string {
	var b strings.Builder
	Fprintf(&b, "ChronoHash %s\n", q.Mode)
	Fprintf(&b, "Integer input Monobit test:  %6.3f%%\n", q.IntegerBias)
	Fprintf(&b, "Random input Monobit test:   %6.3f%%\n", q.RandomBias)
	Fprintf(&b, "Strict avalanche:            %6.4f (per-bit %.4f to %.4f over %d flips)\n",
		q.SAC.Mean, q.SAC.Min, q.SAC.Max, q.SAC.Trials)
	Fprintf(&b, "Mean avalanche:              %6.4f\n", q.MeanAvalanche)
	Fprintf(&b, "Collisions:                  %d\n", q.Collisions)
	Fprintf(&b, "Near collisions (<=%d bits): %d (closest pair differs in %d bits)\n",
		nearThreshold, q.NearPairs, q.Closest)
	b.WriteString("Rounds       random  low-entropy\n")
	for _, c := range q.Rounds {
		Fprintf(&b, "  %2d       %8d     %8d\n", c.Rounds, c.Random, c.LowEntropy)
	}
	b.WriteString(" ============================================= \n")
	return b.String()
}
