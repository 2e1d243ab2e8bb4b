// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import "encoding/binary"

// UnpackUint8 decodes a value encoded by PackUint8 from the head of
// data. It accepts only positive-fixint and Uint8 — not wider tags, even
// ones whose payload would fit — matching the policy in the package doc.
func UnpackUint8(data []byte) (int, uint8, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax):
		return 1, tag, nil
	case Format(tag) == Uint8:
		b, _, err := takeByte(rest)
		if err != nil {
			return 0, 0, err
		}
		return 2, b, nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackUint8Reader is the producer-mode counterpart of UnpackUint8.
func UnpackUint8Reader(r ByteReader) (int, uint8, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax):
		return 1, tag, nil
	case Format(tag) == Uint8:
		b, err := takeByteIter(r)
		if err != nil {
			return 0, 0, err
		}
		return 2, b, nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackUint16 decodes a value encoded by PackUint8 or PackUint16.
func UnpackUint16(data []byte) (int, uint16, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax):
		return 1, uint16(tag), nil
	case Format(tag) == Uint8:
		b, _, err := takeByte(rest)
		if err != nil {
			return 0, 0, err
		}
		return 2, uint16(b), nil
	case Format(tag) == Uint16:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, binary.BigEndian.Uint16(payload), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackUint16Reader is the producer-mode counterpart of UnpackUint16.
func UnpackUint16Reader(r ByteReader) (int, uint16, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax):
		return 1, uint16(tag), nil
	case Format(tag) == Uint8:
		b, err := takeByteIter(r)
		if err != nil {
			return 0, 0, err
		}
		return 2, uint16(b), nil
	case Format(tag) == Uint16:
		var scratch [16]byte
		payload, err := takeNumIter(r, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, binary.BigEndian.Uint16(payload), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackUint32 decodes a value encoded by PackUint8, PackUint16, or
// PackUint32.
func UnpackUint32(data []byte) (int, uint32, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax):
		return 1, uint32(tag), nil
	case Format(tag) == Uint8:
		b, _, err := takeByte(rest)
		if err != nil {
			return 0, 0, err
		}
		return 2, uint32(b), nil
	case Format(tag) == Uint16:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, uint32(binary.BigEndian.Uint16(payload)), nil
	case Format(tag) == Uint32:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 5, binary.BigEndian.Uint32(payload), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackUint32Reader is the producer-mode counterpart of UnpackUint32.
func UnpackUint32Reader(r ByteReader) (int, uint32, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax):
		return 1, uint32(tag), nil
	case Format(tag) == Uint8:
		b, err := takeByteIter(r)
		if err != nil {
			return 0, 0, err
		}
		return 2, uint32(b), nil
	case Format(tag) == Uint16:
		var scratch [16]byte
		payload, err := takeNumIter(r, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, uint32(binary.BigEndian.Uint16(payload)), nil
	case Format(tag) == Uint32:
		var scratch [16]byte
		payload, err := takeNumIter(r, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 5, binary.BigEndian.Uint32(payload), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// unpackUint64FromTag decodes the Uint64 ladder given a tag byte already
// consumed from rest's predecessor. It is shared by UnpackUint64 and
// UnpackUint128, which falls back to this ladder whenever a 128-bit
// value turns out to fit in 64 bits.
func unpackUint64FromTag(tag byte, rest []byte) (int, uint64, error) {
	switch {
	case tag <= byte(PositiveFixintMax):
		return 1, uint64(tag), nil
	case Format(tag) == Uint8:
		b, _, err := takeByte(rest)
		if err != nil {
			return 0, 0, err
		}
		return 2, uint64(b), nil
	case Format(tag) == Uint16:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, uint64(binary.BigEndian.Uint16(payload)), nil
	case Format(tag) == Uint32:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 5, uint64(binary.BigEndian.Uint32(payload)), nil
	case Format(tag) == Uint64:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 8, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 9, binary.BigEndian.Uint64(payload), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// unpackUint64FromTagIter is the producer-mode counterpart of
// unpackUint64FromTag, given a tag byte already read from r.
func unpackUint64FromTagIter(tag byte, r ByteReader) (int, uint64, error) {
	switch {
	case tag <= byte(PositiveFixintMax):
		return 1, uint64(tag), nil
	case Format(tag) == Uint8:
		b, err := takeByteIter(r)
		if err != nil {
			return 0, 0, err
		}
		return 2, uint64(b), nil
	case Format(tag) == Uint16:
		var scratch [16]byte
		payload, err := takeNumIter(r, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, uint64(binary.BigEndian.Uint16(payload)), nil
	case Format(tag) == Uint32:
		var scratch [16]byte
		payload, err := takeNumIter(r, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 5, uint64(binary.BigEndian.Uint32(payload)), nil
	case Format(tag) == Uint64:
		var scratch [16]byte
		// Always read exactly 8 bytes for Uint64 regardless of GOARCH,
		// so pointer-width decoding (UnpackUintReader) reads the same
		// frame on every build target.
		payload, err := takeNumIter(r, 8, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 9, binary.BigEndian.Uint64(payload), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackUint64 decodes a value encoded by any of PackUint8 through
// PackUint64.
func UnpackUint64(data []byte) (int, uint64, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	return unpackUint64FromTag(tag, rest)
}

// UnpackUint64Reader is the producer-mode counterpart of UnpackUint64.
func UnpackUint64Reader(r ByteReader) (int, uint64, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	return unpackUint64FromTagIter(tag, r)
}

// UnpackUint decodes a value at this module's concrete pointer width,
// always via the 64-bit ladder (see PackUint).
func UnpackUint(data []byte) (int, uint, error) {
	n, v, err := UnpackUint64(data)
	return n, uint(v), err
}

// UnpackUintReader is the producer-mode counterpart of UnpackUint.
func UnpackUintReader(r ByteReader) (int, uint, error) {
	n, v, err := UnpackUint64Reader(r)
	return n, uint(v), err
}
