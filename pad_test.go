package chronohash

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/zeebo/assert"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestPad(t *testing.T) {
	for n := 0; n <= 3*BlockSize; n++ {
		msg := bytes.Repeat([]byte{0xa5}, n)
		padded, err := pad(msg)
		assert.NoError(t, err)

		assert.Equal(t, len(padded)%BlockSize, 0)
		assert.That(t, len(padded) > n+lengthBytes)
		assert.That(t, len(padded)-n <= BlockSize+lengthBytes)
		assert.That(t, bytes.Equal(padded[:n], msg))
		assert.Equal(t, padded[n], byte(0x80))
		for _, b := range padded[n+1 : len(padded)-lengthBytes] {
			assert.Equal(t, b, byte(0))
		}
		assert.Equal(t, binary.BigEndian.Uint64(padded[len(padded)-lengthBytes:]), uint64(8*n))
	}
}

func TestPadEmpty(t *testing.T) {
	padded, err := pad(nil)
	assert.NoError(t, err)

	exp := make([]byte, BlockSize)
	exp[0] = 0x80
	assert.That(t, bytes.Equal(padded, exp))
}

func TestPadBlockCount(t *testing.T) {
	cases := []struct {
		n      int
		blocks int
	}{
		{0, 1}, {1, 1}, {55, 1}, {56, 2}, {63, 2}, {64, 2}, {119, 2}, {120, 3}, {128, 3},
	}
	for _, c := range cases {
		padded, err := pad(make([]byte, c.n))
		assert.NoError(t, err)
		assert.Equal(t, len(padded)/BlockSize, c.blocks)
	}
}

func TestPadTailMatchesPad(t *testing.T) {
	for n := 0; n < 200; n++ {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i * 7)
		}
		padded, err := pad(msg)
		assert.NoError(t, err)
		tail, err := padTail(msg)
		assert.NoError(t, err)
		assert.That(t, bytes.Equal(padded[n&^(BlockSize-1):], tail))
	}
}

func TestBitLength(t *testing.T) {
	bits, err := bitLength(0)
	assert.NoError(t, err)
	assert.Equal(t, bits, uint64(0))

	bits, err = bitLength(3)
	assert.NoError(t, err)
	assert.Equal(t, bits, uint64(24))

	_, err = bitLength(-1)
	assert.That(t, errors.Is(err, ErrMessageTooLong))
}

func TestBitLengthLimit(t *testing.T) {
	if ^uint(0)>>63 == 0 {
		t.Skip("lengths near 2^61 bytes are not representable as int on this platform")
	}
	var limit uint64 = maxMessageLen

	bits, err := bitLength(int(limit))
	assert.NoError(t, err)
	assert.Equal(t, bits, limit*8)

	_, err = bitLength(int(limit + 1))
	assert.That(t, errors.Is(err, ErrMessageTooLong))
}
