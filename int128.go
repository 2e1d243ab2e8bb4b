// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import (
	"encoding/binary"
	"io"
)

// Int128 is this package's 128-bit signed integer. It is represented as
// a two's-complement split into a signed high half and an unsigned low
// half; the value is Hi*2^64 + Lo.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128FromInt64 widens v to an Int128, sign-extending into the high
// half.
func Int128FromInt64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// Int64 reports whether v fits losslessly in an int64 and, if so,
// returns it. It does so by re-sign-extending the low half and checking
// that the result reproduces the original high half.
func (v Int128) Int64() (int64, bool) {
	ext := Int128FromInt64(int64(v.Lo))
	return int64(v.Lo), ext.Hi == v.Hi
}

func (v Int128) bigEndianBytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], uint64(v.Hi))
	binary.BigEndian.PutUint64(b[8:16], v.Lo)
	return b
}

func int128FromBigEndianBytes(b []byte) Int128 {
	return Int128{
		Hi: int64(binary.BigEndian.Uint64(b[0:8])),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// PackInt128 encodes v with the narrowest legal frame: the ordinary
// signed ladder (PackInt64) when v fits in 64 bits, otherwise the
// private Bin8-length-16 extension.
func PackInt128(v Int128, w io.Writer) (int, error) {
	if i64, ok := v.Int64(); ok {
		return PackInt64(i64, w)
	}
	payload := v.bigEndianBytes()
	frame := make([]byte, 0, 2+len(payload))
	frame = append(frame, byte(Bin8), bin128Len)
	frame = append(frame, payload[:]...)
	return writeFrame(w, frame)
}

// UnpackInt128 decodes a value encoded by PackInt128, or by any
// narrower signed pack function (128-bit is a superset width of the
// signed ladder).
func UnpackInt128(data []byte) (int, Int128, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, Int128{}, err
	}
	if Format(tag) == Bin8 {
		return unpackBin128(rest, int128FromBigEndianBytes)
	}
	n, v, err := unpackInt64FromTag(tag, rest)
	if err != nil {
		return 0, Int128{}, err
	}
	return n, Int128FromInt64(v), nil
}

// UnpackInt128Reader is the producer-mode counterpart of UnpackInt128.
func UnpackInt128Reader(r ByteReader) (int, Int128, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, Int128{}, err
	}
	if Format(tag) == Bin8 {
		return unpackBin128Iter(r, int128FromBigEndianBytes)
	}
	n, v, err := unpackInt64FromTagIter(tag, r)
	if err != nil {
		return 0, Int128{}, err
	}
	return n, Int128FromInt64(v), nil
}
