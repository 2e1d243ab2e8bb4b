// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import (
	"fmt"
	"io"
)

// PackAny dispatches to the pack function for v's dynamic numeric type
// and reports whether v was recognized. This mirrors the teacher's
// marshalNumber type switch, extended to the full set of widths this
// package covers (including the 128-bit types, which have no native Go
// primitive).
func PackAny(v interface{}, w io.Writer) (handled bool, n int, err error) {
	switch t := v.(type) {
	case uint8:
		n, err = PackUint8(t, w)
	case uint16:
		n, err = PackUint16(t, w)
	case uint32:
		n, err = PackUint32(t, w)
	case uint64:
		n, err = PackUint64(t, w)
	case uint:
		n, err = PackUint(t, w)
	case Uint128:
		n, err = PackUint128(t, w)
	case int8:
		n, err = PackInt8(t, w)
	case int16:
		n, err = PackInt16(t, w)
	case int32:
		n, err = PackInt32(t, w)
	case int64:
		n, err = PackInt64(t, w)
	case int:
		n, err = PackInt(t, w)
	case Int128:
		n, err = PackInt128(t, w)
	default:
		return false, 0, nil
	}
	return true, n, err
}

// UnpackAny decodes the head of data into target, which must be a
// pointer to one of the numeric types PackAny recognizes. It reports an
// error if target's type is not recognized, mirroring the teacher's
// unmarshalNumber type switch.
func UnpackAny(data []byte, target interface{}) (int, error) {
	switch t := target.(type) {
	case *uint8:
		n, v, err := UnpackUint8(data)
		*t = v
		return n, err
	case *uint16:
		n, v, err := UnpackUint16(data)
		*t = v
		return n, err
	case *uint32:
		n, v, err := UnpackUint32(data)
		*t = v
		return n, err
	case *uint64:
		n, v, err := UnpackUint64(data)
		*t = v
		return n, err
	case *uint:
		n, v, err := UnpackUint(data)
		*t = v
		return n, err
	case *Uint128:
		n, v, err := UnpackUint128(data)
		*t = v
		return n, err
	case *int8:
		n, v, err := UnpackInt8(data)
		*t = v
		return n, err
	case *int16:
		n, v, err := UnpackInt16(data)
		*t = v
		return n, err
	case *int32:
		n, v, err := UnpackInt32(data)
		*t = v
		return n, err
	case *int64:
		n, v, err := UnpackInt64(data)
		*t = v
		return n, err
	case *int:
		n, v, err := UnpackInt(data)
		*t = v
		return n, err
	case *Int128:
		n, v, err := UnpackInt128(data)
		*t = v
		return n, err
	default:
		return 0, fmt.Errorf("msgpack: type %T cannot be unpacked", target)
	}
}
