// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import (
	"encoding/binary"
	"io"
)

// Uint128 is this package's 128-bit unsigned integer, since Go has no
// native type wide enough to hold one. Hi holds the most significant 64
// bits, Lo the least significant; the value is Hi*2^64 + Lo.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128FromUint64 widens v to a Uint128 with a zero high half.
func Uint128FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint64 reports whether u fits losslessly in a uint64 and, if so,
// returns it.
func (u Uint128) Uint64() (uint64, bool) {
	return u.Lo, u.Hi == 0
}

func (u Uint128) bigEndianBytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:16], u.Lo)
	return b
}

func uint128FromBigEndianBytes(b []byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// PackUint128 encodes v with the narrowest legal frame: the ordinary
// unsigned ladder (PackUint64) when v fits in 64 bits, otherwise the
// private Bin8-length-16 extension described in the package doc.
func PackUint128(v Uint128, w io.Writer) (int, error) {
	if lo, ok := v.Uint64(); ok {
		return PackUint64(lo, w)
	}
	payload := v.bigEndianBytes()
	frame := make([]byte, 0, 2+len(payload))
	frame = append(frame, byte(Bin8), bin128Len)
	frame = append(frame, payload[:]...)
	return writeFrame(w, frame)
}

// UnpackUint128 decodes a value encoded by PackUint128, or by any
// narrower unsigned pack function (128-bit is a superset width of the
// unsigned ladder).
func UnpackUint128(data []byte) (int, Uint128, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, Uint128{}, err
	}
	if Format(tag) == Bin8 {
		return unpackBin128(rest, uint128FromBigEndianBytes)
	}
	n, v, err := unpackUint64FromTag(tag, rest)
	if err != nil {
		return 0, Uint128{}, err
	}
	return n, Uint128FromUint64(v), nil
}

// UnpackUint128Reader is the producer-mode counterpart of
// UnpackUint128.
func UnpackUint128Reader(r ByteReader) (int, Uint128, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, Uint128{}, err
	}
	if Format(tag) == Bin8 {
		return unpackBin128Iter(r, uint128FromBigEndianBytes)
	}
	n, v, err := unpackUint64FromTagIter(tag, r)
	if err != nil {
		return 0, Uint128{}, err
	}
	return n, Uint128FromUint64(v), nil
}

// unpackBin128 decodes the private Bin8-length-16 frame from rest (the
// bytes following an already-consumed Bin8 tag), returning 18 as the
// total frame length on success.
func unpackBin128[T any](rest []byte, from func([]byte) T) (int, T, error) {
	var zero T
	length, rest, err := takeByte(rest)
	if err != nil {
		return 0, zero, err
	}
	if length != bin128Len {
		return 0, zero, unexpectedBinLength(length)
	}
	var scratch [16]byte
	payload, _, err := takeNum(rest, bin128Len, &scratch)
	if err != nil {
		return 0, zero, err
	}
	return 1 + 1 + bin128Len, from(payload), nil
}

// unpackBin128Iter is the producer-mode counterpart of unpackBin128.
func unpackBin128Iter[T any](r ByteReader, from func([]byte) T) (int, T, error) {
	var zero T
	length, err := takeByteIter(r)
	if err != nil {
		return 0, zero, err
	}
	if length != bin128Len {
		return 0, zero, unexpectedBinLength(length)
	}
	var scratch [16]byte
	payload, err := takeNumIter(r, bin128Len, &scratch)
	if err != nil {
		return 0, zero, err
	}
	return 1 + 1 + bin128Len, from(payload), nil
}
