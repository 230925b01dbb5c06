package chronohash

import "encoding/binary"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// bitLength returns the length of an n-byte message in bits, refusing lengths whose bit count
// would not survive the 64-bit length field.
func bitLength(n int) (uint64, error) {
	if n < 0 || uint64(n) > maxMessageLen {
		return 0, ErrMessageTooLong
	}
	return uint64(n) << 3, nil
}

// padTail returns the bytes that follow the last whole block of msg once it is padded: the
// leftover message bytes, 0x80, zero fill up to 56 mod 64, and the big-endian bit length. The
// result is always one or two blocks long.
func padTail(msg []byte) ([]byte, error) {
	bits, err := bitLength(len(msg))
	if err != nil {
		return nil, err
	}
	rem := msg[len(msg)&^(BlockSize-1):]

	size := BlockSize
	if len(rem) >= BlockSize-lengthBytes {
		size = 2 * BlockSize
	}
	tail := make([]byte, size)
	copy(tail, rem)
	tail[len(rem)] = 0x80
	binary.BigEndian.PutUint64(tail[size-lengthBytes:], bits)
	return tail, nil
}

// pad returns the fully strengthened copy of msg. Its length is a multiple of BlockSize and its
// last eight bytes hold the original length in bits.
func pad(msg []byte) ([]byte, error) {
	tail, err := padTail(msg)
	if err != nil {
		return nil, err
	}
	whole := len(msg) &^ (BlockSize - 1)
	padded := make([]byte, whole, whole+len(tail))
	copy(padded, msg[:whole])
	return append(padded, tail...), nil
}
