// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import (
	"encoding/binary"
	"io"
)

// PackUint8 encodes v as the narrowest legal tag: positive-fixint for
// 0..127, otherwise Uint8. It never fails; the only possible error comes
// from w.
func PackUint8(v uint8, w io.Writer) (int, error) {
	if v <= byte(PositiveFixintMax) {
		return writeFrame(w, []byte{v})
	}
	return writeFrame(w, []byte{byte(Uint8), v})
}

// PackUint16 encodes v as the narrowest legal tag in the cascade
// fixint < Uint8 < Uint16.
func PackUint16(v uint16, w io.Writer) (int, error) {
	switch {
	case v <= uint16(PositiveFixintMax):
		return writeFrame(w, []byte{byte(v)})
	case v <= 0xff:
		return writeFrame(w, []byte{byte(Uint8), byte(v)})
	default:
		var buf [3]byte
		buf[0] = byte(Uint16)
		binary.BigEndian.PutUint16(buf[1:], v)
		return writeFrame(w, buf[:])
	}
}

// PackUint32 encodes v as the narrowest legal tag in the cascade
// fixint < Uint8 < Uint16 < Uint32.
func PackUint32(v uint32, w io.Writer) (int, error) {
	switch {
	case v <= uint32(PositiveFixintMax):
		return writeFrame(w, []byte{byte(v)})
	case v <= 0xff:
		return writeFrame(w, []byte{byte(Uint8), byte(v)})
	case v <= 0xffff:
		var buf [3]byte
		buf[0] = byte(Uint16)
		binary.BigEndian.PutUint16(buf[1:], uint16(v))
		return writeFrame(w, buf[:])
	default:
		var buf [5]byte
		buf[0] = byte(Uint32)
		binary.BigEndian.PutUint32(buf[1:], v)
		return writeFrame(w, buf[:])
	}
}

// PackUint64 encodes v as the narrowest legal tag in the cascade
// fixint < Uint8 < Uint16 < Uint32 < Uint64. This is also the ladder
// Uint128 falls back to once a 128-bit value is known to fit in 64 bits.
func PackUint64(v uint64, w io.Writer) (int, error) {
	switch {
	case v <= uint64(PositiveFixintMax):
		return writeFrame(w, []byte{byte(v)})
	case v <= 0xff:
		return writeFrame(w, []byte{byte(Uint8), byte(v)})
	case v <= 0xffff:
		var buf [3]byte
		buf[0] = byte(Uint16)
		binary.BigEndian.PutUint16(buf[1:], uint16(v))
		return writeFrame(w, buf[:])
	case v <= 0xffffffff:
		var buf [5]byte
		buf[0] = byte(Uint32)
		binary.BigEndian.PutUint32(buf[1:], uint32(v))
		return writeFrame(w, buf[:])
	default:
		var buf [9]byte
		buf[0] = byte(Uint64)
		binary.BigEndian.PutUint64(buf[1:], v)
		return writeFrame(w, buf[:])
	}
}

// PackUint encodes v at this module's concrete pointer width. This
// always goes through the 64-bit ladder rather than varying with GOARCH.
func PackUint(v uint, w io.Writer) (int, error) {
	return PackUint64(uint64(v), w)
}
