package chronohash

import (
	"errors"
	"fmt"

	fasthex "github.com/tmthrgd/go-hex"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// ErrDigestSize is returned when decoded input is not exactly Size bytes long.
var ErrDigestSize = errors.New("chronohash: wrong digest size")

// Digest is the 32-byte output of ChronoHash: the eight final state words, little-endian, in
// word order.
type Digest [Size]byte

// String renders d in lowercase hexadecimal, most significant nibble of each byte first.
func (d Digest) String() string {
	return fasthex.EncodeToString(d[:])
}

func (d Digest) MarshalJSON() ([]byte, error) {
	var buf [Size*2 + 2]byte
	buf[0] = '"'
	buf[Size*2+1] = '"'
	fasthex.Encode(buf[1:], d[:])
	return buf[:], nil
}

func (d *Digest) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("chronohash: digest must be a JSON string, got %.16q", b)
	}
	parsed, err := ParseDigest(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDigest decodes the hexadecimal form produced by Digest.String.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != Size*2 {
		return d, ErrDigestSize
	}
	if _, err := fasthex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("chronohash: parse digest: %w", err)
	}
	return d, nil
}

// MustParseDigest is like ParseDigest but panics on malformed input. It is meant for
// package-level tables of known digests.
func MustParseDigest(s string) Digest {
	d, err := ParseDigest(s)
	if err != nil {
		panic(err)
	}
	return d
}
