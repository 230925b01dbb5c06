package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/p7r0x7/chronohash"
	"github.com/zeebo/assert"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const abcNormal = "6c52dc74b33a4ae19a5d2634e90226733ec374411cb0c7ebf6792f1b4dd014d0"

// flags sets the output flags for one test and restores them afterwards.
func flags(t *testing.T, base64, quiet, rounds, str bool) {
	t.Helper()
	saved := [...]bool{pBase64, pQuiet, pRounds, pString, pNoCodes}
	savedCodes := [...]string{yell, purp, und, zero}
	pBase64, pQuiet, pRounds, pString, pNoCodes = base64, quiet, rounds, str, true
	yell, purp, und, zero = "", "", "", ""
	t.Cleanup(func() {
		pBase64, pQuiet, pRounds, pString, pNoCodes = saved[0], saved[1], saved[2], saved[3], saved[4]
		yell, purp, und, zero = savedCodes[0], savedCodes[1], savedCodes[2], savedCodes[3]
	})
}

type closer struct {
	io.Reader
	closed bool
}

func (c *closer) Close() error { c.closed = true; return nil }

func TestReadTargetString(t *testing.T) {
	msg, err := readTarget("abc", true, nil)
	assert.NoError(t, err)
	assert.Equal(t, string(msg), "abc")

	/* A lone dash is an ordinary string in string mode. */
	msg, err = readTarget("-", true, nil)
	assert.NoError(t, err)
	assert.Equal(t, string(msg), "-")
}

func TestReadTargetStdin(t *testing.T) {
	in := &closer{Reader: strings.NewReader("from stdin")}
	msg, err := readTarget("-", false, in)
	assert.NoError(t, err)
	assert.Equal(t, string(msg), "from stdin")
	assert.That(t, in.closed)
}

func TestReadTargetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg")
	assert.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	msg, err := readTarget(path, false, nil)
	assert.NoError(t, err)
	assert.Equal(t, string(msg), "abc")

	_, err = readTarget(filepath.Join(t.TempDir(), "missing"), false, nil)
	assert.Error(t, err)

	_, err = readTarget(t.TempDir(), false, nil)
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	sum := chronohash.MustParseDigest(abcNormal)

	flags(t, false, false, false, false)
	assert.Equal(t, encode(sum), abcNormal)

	pBase64 = true
	assert.Equal(t, encode(sum), "bFLcdLM6SuGaXSY06QImcz7DdEEcsMfr9nkvG03QFNA=")
}

func TestRender(t *testing.T) {
	flags(t, false, true, false, false)
	assert.Equal(t, render("a/b", abcNormal, 20, ""), abcNormal+"\n")

	flags(t, false, false, true, true)
	assert.Equal(t, render("abc", abcNormal, 20, " (1ms)"), abcNormal+` [20]  "abc" (1ms)`+"\n")

	flags(t, false, false, false, false)
	assert.Equal(t, render("a//b/../c", abcNormal, 20, ""), abcNormal+"  a/c\n")
}

func TestElapsed(t *testing.T) {
	assert.Equal(t, elapsed(42*time.Microsecond), " (42µs)")
	assert.Equal(t, elapsed(1234567*time.Nanosecond), " (1.23ms)")
}

func TestStrToBytes(t *testing.T) {
	assert.Equal(t, len(strToBytes("")), 0)
	assert.Equal(t, string(strToBytes("chronohash")), "chronohash")
}
