// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import "encoding/binary"

// isNegFixint reports whether tag falls in the negative-fixint range.
func isNegFixint(tag byte) bool {
	return tag >= byte(NegativeFixintMin)
}

// UnpackInt8 decodes a value encoded by PackInt8. It accepts both
// fixint ranges and Int8, but no wider tag.
func UnpackInt8(data []byte) (int, int8, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax), isNegFixint(tag):
		return 1, int8(tag), nil
	case Format(tag) == Int8:
		b, _, err := takeByte(rest)
		if err != nil {
			return 0, 0, err
		}
		return 2, int8(b), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackInt8Reader is the producer-mode counterpart of UnpackInt8.
func UnpackInt8Reader(r ByteReader) (int, int8, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax), isNegFixint(tag):
		return 1, int8(tag), nil
	case Format(tag) == Int8:
		b, err := takeByteIter(r)
		if err != nil {
			return 0, 0, err
		}
		return 2, int8(b), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackInt16 decodes a value encoded by PackInt8 or PackInt16.
func UnpackInt16(data []byte) (int, int16, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax), isNegFixint(tag):
		return 1, int16(int8(tag)), nil
	case Format(tag) == Int8:
		b, _, err := takeByte(rest)
		if err != nil {
			return 0, 0, err
		}
		return 2, int16(int8(b)), nil
	case Format(tag) == Int16:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, int16(binary.BigEndian.Uint16(payload)), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackInt16Reader is the producer-mode counterpart of UnpackInt16.
func UnpackInt16Reader(r ByteReader) (int, int16, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax), isNegFixint(tag):
		return 1, int16(int8(tag)), nil
	case Format(tag) == Int8:
		b, err := takeByteIter(r)
		if err != nil {
			return 0, 0, err
		}
		return 2, int16(int8(b)), nil
	case Format(tag) == Int16:
		var scratch [16]byte
		payload, err := takeNumIter(r, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, int16(binary.BigEndian.Uint16(payload)), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackInt32 decodes a value encoded by PackInt8, PackInt16, or
// PackInt32.
func UnpackInt32(data []byte) (int, int32, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax), isNegFixint(tag):
		return 1, int32(int8(tag)), nil
	case Format(tag) == Int8:
		b, _, err := takeByte(rest)
		if err != nil {
			return 0, 0, err
		}
		return 2, int32(int8(b)), nil
	case Format(tag) == Int16:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, int32(int16(binary.BigEndian.Uint16(payload))), nil
	case Format(tag) == Int32:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 5, int32(binary.BigEndian.Uint32(payload)), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackInt32Reader is the producer-mode counterpart of UnpackInt32.
func UnpackInt32Reader(r ByteReader) (int, int32, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag <= byte(PositiveFixintMax), isNegFixint(tag):
		return 1, int32(int8(tag)), nil
	case Format(tag) == Int8:
		b, err := takeByteIter(r)
		if err != nil {
			return 0, 0, err
		}
		return 2, int32(int8(b)), nil
	case Format(tag) == Int16:
		var scratch [16]byte
		payload, err := takeNumIter(r, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, int32(int16(binary.BigEndian.Uint16(payload))), nil
	case Format(tag) == Int32:
		var scratch [16]byte
		payload, err := takeNumIter(r, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 5, int32(binary.BigEndian.Uint32(payload)), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// unpackInt64FromTag decodes the Int64 ladder given a tag byte already
// consumed. It is shared by UnpackInt64 and UnpackInt128, which falls
// back to this ladder whenever a 128-bit value fits in 64 bits.
func unpackInt64FromTag(tag byte, rest []byte) (int, int64, error) {
	switch {
	case tag <= byte(PositiveFixintMax), isNegFixint(tag):
		return 1, int64(int8(tag)), nil
	case Format(tag) == Int8:
		b, _, err := takeByte(rest)
		if err != nil {
			return 0, 0, err
		}
		return 2, int64(int8(b)), nil
	case Format(tag) == Int16:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, int64(int16(binary.BigEndian.Uint16(payload))), nil
	case Format(tag) == Int32:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 5, int64(int32(binary.BigEndian.Uint32(payload))), nil
	case Format(tag) == Int64:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 8, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 9, int64(binary.BigEndian.Uint64(payload)), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// unpackInt64FromTagIter is the producer-mode counterpart of
// unpackInt64FromTag, given a tag byte already read from r.
func unpackInt64FromTagIter(tag byte, r ByteReader) (int, int64, error) {
	switch {
	case tag <= byte(PositiveFixintMax), isNegFixint(tag):
		return 1, int64(int8(tag)), nil
	case Format(tag) == Int8:
		b, err := takeByteIter(r)
		if err != nil {
			return 0, 0, err
		}
		return 2, int64(int8(b)), nil
	case Format(tag) == Int16:
		var scratch [16]byte
		payload, err := takeNumIter(r, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 3, int64(int16(binary.BigEndian.Uint16(payload))), nil
	case Format(tag) == Int32:
		var scratch [16]byte
		payload, err := takeNumIter(r, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 5, int64(int32(binary.BigEndian.Uint32(payload))), nil
	case Format(tag) == Int64:
		var scratch [16]byte
		payload, err := takeNumIter(r, 8, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return 9, int64(binary.BigEndian.Uint64(payload)), nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// UnpackInt64 decodes a value encoded by any of PackInt8 through
// PackInt64.
func UnpackInt64(data []byte) (int, int64, error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	return unpackInt64FromTag(tag, rest)
}

// UnpackInt64Reader is the producer-mode counterpart of UnpackInt64.
func UnpackInt64Reader(r ByteReader) (int, int64, error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	return unpackInt64FromTagIter(tag, r)
}

// UnpackInt decodes a value at this module's concrete pointer width,
// always via the 64-bit ladder (see PackInt).
func UnpackInt(data []byte) (int, int, error) {
	n, v, err := UnpackInt64(data)
	return n, int(v), err
}

// UnpackIntReader is the producer-mode counterpart of UnpackInt.
func UnpackIntReader(r ByteReader) (int, int, error) {
	n, v, err := UnpackInt64Reader(r)
	return n, int(v), err
}
