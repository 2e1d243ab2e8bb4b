// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import (
	"encoding/binary"
	"io"
	"math"
)

// PackInt8 encodes v using the negative-fixint / positive-fixint /
// Int8 cascade. The asymmetric cut at -32/-33 is what lets negative
// values from -32 to -1 fit in the tag byte alone.
func PackInt8(v int8, w io.Writer) (int, error) {
	switch {
	case v <= -33:
		return writeFrame(w, []byte{byte(Int8), byte(v)})
	case v <= -1:
		// v is already in [-32, -1]; its two's-complement byte pattern
		// is exactly the negative-fixint tag.
		return writeFrame(w, []byte{byte(v)})
	default:
		return writeFrame(w, []byte{byte(v) & byte(PositiveFixintMax)})
	}
}

// PackInt16 encodes v using the cascade Int16(low) < Int8 <
// negative-fixint < positive-fixint < Int16(high).
func PackInt16(v int16, w io.Writer) (int, error) {
	switch {
	case v < math.MinInt8:
		var buf [3]byte
		buf[0] = byte(Int16)
		binary.BigEndian.PutUint16(buf[1:], uint16(v))
		return writeFrame(w, buf[:])
	case v <= -33:
		return writeFrame(w, []byte{byte(Int8), byte(int8(v))})
	case v <= -1:
		return writeFrame(w, []byte{byte(int8(v))})
	case v <= math.MaxInt8:
		return writeFrame(w, []byte{byte(v) & byte(PositiveFixintMax)})
	default:
		var buf [3]byte
		buf[0] = byte(Int16)
		binary.BigEndian.PutUint16(buf[1:], uint16(v))
		return writeFrame(w, buf[:])
	}
}

// PackInt32 encodes v using the full signed ladder described in the
// package doc, written strictly from most-negative to most-positive and
// crossing the negative-fixint boundary only in the [-32, -1] arm.
func PackInt32(v int32, w io.Writer) (int, error) {
	switch {
	case v < math.MinInt16:
		var buf [5]byte
		buf[0] = byte(Int32)
		binary.BigEndian.PutUint32(buf[1:], uint32(v))
		return writeFrame(w, buf[:])
	case v < math.MinInt8:
		var buf [3]byte
		buf[0] = byte(Int16)
		binary.BigEndian.PutUint16(buf[1:], uint16(int16(v)))
		return writeFrame(w, buf[:])
	case v <= -33:
		return writeFrame(w, []byte{byte(Int8), byte(int8(v))})
	case v <= -1:
		return writeFrame(w, []byte{byte(int8(v))})
	case v <= math.MaxInt8:
		return writeFrame(w, []byte{byte(v) & byte(PositiveFixintMax)})
	case v <= math.MaxInt16:
		var buf [3]byte
		buf[0] = byte(Int16)
		binary.BigEndian.PutUint16(buf[1:], uint16(int16(v)))
		return writeFrame(w, buf[:])
	default:
		var buf [5]byte
		buf[0] = byte(Int32)
		binary.BigEndian.PutUint32(buf[1:], uint32(v))
		return writeFrame(w, buf[:])
	}
}

// PackInt64 encodes v using the full signed ladder. This is also the
// ladder Int128 falls back to once a 128-bit value is known to fit in
// 64 bits.
func PackInt64(v int64, w io.Writer) (int, error) {
	switch {
	case v < math.MinInt32:
		var buf [9]byte
		buf[0] = byte(Int64)
		binary.BigEndian.PutUint64(buf[1:], uint64(v))
		return writeFrame(w, buf[:])
	case v < math.MinInt16:
		var buf [5]byte
		buf[0] = byte(Int32)
		binary.BigEndian.PutUint32(buf[1:], uint32(int32(v)))
		return writeFrame(w, buf[:])
	case v < math.MinInt8:
		var buf [3]byte
		buf[0] = byte(Int16)
		binary.BigEndian.PutUint16(buf[1:], uint16(int16(v)))
		return writeFrame(w, buf[:])
	case v <= -33:
		return writeFrame(w, []byte{byte(Int8), byte(int8(v))})
	case v <= -1:
		return writeFrame(w, []byte{byte(int8(v))})
	case v <= math.MaxInt8:
		return writeFrame(w, []byte{byte(v) & byte(PositiveFixintMax)})
	case v <= math.MaxInt16:
		var buf [3]byte
		buf[0] = byte(Int16)
		binary.BigEndian.PutUint16(buf[1:], uint16(int16(v)))
		return writeFrame(w, buf[:])
	case v <= math.MaxInt32:
		var buf [5]byte
		buf[0] = byte(Int32)
		binary.BigEndian.PutUint32(buf[1:], uint32(int32(v)))
		return writeFrame(w, buf[:])
	default:
		var buf [9]byte
		buf[0] = byte(Int64)
		binary.BigEndian.PutUint64(buf[1:], uint64(v))
		return writeFrame(w, buf[:])
	}
}

// PackInt encodes v at this module's concrete pointer width, always via
// the 64-bit ladder, so the wire format does not vary with GOARCH.
func PackInt(v int, w io.Writer) (int, error) {
	return PackInt64(int64(v), w)
}
