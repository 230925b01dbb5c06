package main

import (
	"encoding/base64"
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"
	"unicode/utf8"
	"unsafe"

	json "github.com/goccy/go-json"
	"github.com/p7r0x7/chronohash"
	"github.com/p7r0x7/vainpath"
	"github.com/sirupsen/logrus"
	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n, version = "\n", "1.2.0"
const success, failure, invalid = 0, 1, 2

var log, warnings = logrus.New(), 0

func main() {
	parse()
	os.Exit(program())
}

// help prints a usage menu and quietly exits if no non-flag arguments are given. To consistently
// correctly render this menu in most terminal windows, its content should be no wider than 80
// columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "chronosum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "A 256-bit hash whose work grows with the variety of its input.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-hv]"+n,
		spaces, "[-bjrt] [-f|n] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-bjrt] [-f|n] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// record is the --json rendering of one hashed target.
type record struct {
	Target  string `json:"target"`
	Mode    string `json:"mode"`
	Rounds  int    `json:"rounds"`
	Digest  string `json:"digest"`
	Elapsed string `json:"elapsed,omitempty"`
}

// This program is a command-line interface for chronohash: It handles various flags and an
// unlimited number of arguments, processing files as required by the command-line operator.
func program() int {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: pNoCodes})
	if pQuiet {
		log.SetLevel(logrus.ErrorLevel)
	}

	if pDebug {
		stop, err := profile()
		if err != nil {
			log.WithError(err).Error("could not start profiling")
			return failure
		}
		defer stop()
	}

	if pVersion {
		Println("chronosum", version)
		return success
	}
	if pHelp || NArg() == 0 {
		help()
		return success
	}
	if pFast && pNormal {
		log.Error("--fast and --normal are mutually exclusive")
		return invalid
	}

	mode := chronohash.Normal
	if pFast {
		mode = chronohash.Fast
	}
	enc := json.NewEncoder(os.Stdout)

	for _, target := range Args() {
		start, delta := time.Now(), ""

		msg, err := readTarget(target, pString, os.Stdin)
		if err != nil {
			warn(target, err)
			continue
		}
		sum, rounds, err := chronohash.SumRounds(msg, mode)
		if err != nil {
			warn(target, err)
			continue
		}

		if pTime {
			delta = elapsed(time.Since(start))
		}

		if pJSON {
			if err := enc.Encode(record{target, mode.String(), rounds, encode(sum), delta}); err != nil {
				warn(target, err)
			}
			continue
		}
		os.Stdout.WriteString(render(target, encode(sum), rounds, delta))
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// readTarget returns the message named by target: the argument itself in string mode, all of
// stdin for "-", or the contents of the file at that path otherwise. stdin is closed after use
// since it cannot be rewound.
func readTarget(target string, asString bool, stdin io.ReadCloser) ([]byte, error) {
	switch {
	case asString:
		return strToBytes(target), nil
	case target == "-" || target == os.Stdin.Name():
		defer stdin.Close()
		return io.ReadAll(stdin)
	default:
		return os.ReadFile(target)
	}
}

func encode(sum chronohash.Digest) string {
	if pBase64 {
		return base64.StdEncoding.EncodeToString(sum[:])
	}
	return sum.String()
}

func elapsed(d time.Duration) string {
	if d.Microseconds() > 99 {
		d = d.Truncate(10 * time.Microsecond)
	}
	return " (" + d.String() + ")"
}

// render formats one output line in the style selected by the current flags.
func render(target, sum string, rounds int, delta string) string {
	if pQuiet {
		return sum + n
	}
	var b strings.Builder
	b.WriteString(yell + sum + zero)
	if pRounds {
		Fprintf(&b, " [%d]", rounds)
	}
	switch {
	case pString:
		b.WriteString(`  "` + target + `"`)
	case pNoCodes:
		b.WriteString("  " + filepath.Clean(target))
	default:
		b.WriteString("  " + und + vainpath.Simplify(target) + zero)
	}
	b.WriteString(delta + n)
	return b.String()
}

// strToBytes converts any string into a byte slice without allocating memory; this is safe so
// long as the underlying memory is not modified during its lifetime, which chronohash.Sum never
// does.
func strToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// profile writes CPU and allocation profiles for the duration of the run.
func profile() (stop func(), err error) {
	cf, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err = pprof.StartCPUProfile(cf); err != nil {
		cf.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		cf.Close()
		af, err := os.Create("allocs.prof")
		if err != nil {
			log.WithError(err).Error("could not write allocation profile")
			return
		}
		defer af.Close()
		_ = pprof.Lookup("allocs").WriteTo(af, 0)
	}, nil
}

func warn(target string, err error) {
	if pStrict {
		panic(err)
	}
	warnings++
	log.WithField("target", target).Warn(err)
}
