// Package chronohash implements ChronoHash, a keyless hash function with a 256-bit output.
//
// Messages are padded with Merkle–Damgård strengthening and absorbed 64 bytes at a time into an
// eight-word state. Each block passes through a forward-cascade diffusion step (Normal mode only)
// and a run of compression rounds whose count depends on how many distinct byte values the padded
// message contains. Normal and Fast modes produce different digests for the same message; the mode
// is not recorded in the digest and must be agreed upon out of band.
//
// ChronoHash has not been subjected to external cryptanalysis.
package chronohash

import (
	"encoding/binary"
	"errors"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var (
	// ErrInvalidMode is returned for any Mode other than Normal or Fast.
	ErrInvalidMode = errors.New("chronohash: invalid mode")
	// ErrMessageTooLong is returned when the bit length of a message does not fit in 64 bits.
	ErrMessageTooLong = errors.New("chronohash: message length exceeds 2^64 bits")
)

// Mode selects one of the two processing profiles.
type Mode uint8

const (
	// Normal runs temporal diffusion and 20 to 32 rounds per block.
	Normal Mode = iota
	// Fast skips temporal diffusion and runs 8 rounds per block.
	Fast
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Fast:
		return "fast"
	default:
		return "invalid"
	}
}

func (m Mode) valid() bool { return m == Normal || m == Fast }

// ParseMode maps "normal" or "fast", in any case, to its Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "fast":
		return Fast, nil
	}
	return 0, ErrInvalidMode
}

// Sum returns the digest of msg under mode.
func Sum(msg []byte, mode Mode) (Digest, error) {
	d, _, err := SumRounds(msg, mode)
	return d, err
}

// SumRounds returns the digest of msg under mode together with the number of compression rounds
// each of its blocks received.
func SumRounds(msg []byte, mode Mode) (Digest, int, error) {
	if !mode.valid() {
		return Digest{}, 0, ErrInvalidMode
	}
	tail, err := padTail(msg)
	if err != nil {
		return Digest{}, 0, err
	}
	head := msg[:len(msg)&^(BlockSize-1)]
	rounds := planRounds(mode, head, tail)

	state := iv
	for ; len(head) > 0; head = head[BlockSize:] {
		compress(&state, head, rounds, mode)
	}
	for ; len(tail) > 0; tail = tail[BlockSize:] {
		compress(&state, tail, rounds, mode)
	}
	return finalize(&state), rounds, nil
}

// SumHex returns the digest of msg under mode as 64 lowercase hexadecimal characters.
func SumHex(msg []byte, mode Mode) (string, error) {
	d, err := Sum(msg, mode)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// SumNormal returns the Normal mode digest of msg.
func SumNormal(msg []byte) Digest { return mustSum(msg, Normal) }

// SumFast returns the Fast mode digest of msg.
func SumFast(msg []byte) Digest { return mustSum(msg, Fast) }

func mustSum(msg []byte, mode Mode) Digest {
	d, err := Sum(msg, mode)
	if err != nil {
		panic(err)
	}
	return d
}

// Rounds reports how many compression rounds each block of msg receives under mode.
func Rounds(msg []byte, mode Mode) (int, error) {
	if !mode.valid() {
		return 0, ErrInvalidMode
	}
	tail, err := padTail(msg)
	if err != nil {
		return 0, err
	}
	return planRounds(mode, msg[:len(msg)&^(BlockSize-1)], tail), nil
}

func finalize(state *[8]uint32) (d Digest) {
	for i, w := range state {
		binary.LittleEndian.PutUint32(d[i*4:], w+iv[i])
	}
	return d
}
