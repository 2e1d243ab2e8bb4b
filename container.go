// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxPreallocElems bounds how many elements a container decode will
// pre-allocate capacity for up front. Declared container lengths are
// attacker-controlled, so an honest decoder must not trust them enough
// to allocate proportionally without bound; growth past this bound
// still happens, just via the normal amortized append/insert path.
const maxPreallocElems = 4096

// EncodeArrayHeader appends the narrowest legal array-length tag for n
// (fixarray, Array16, or Array32) and returns the number of bytes
// appended.
func EncodeArrayHeader(w io.Writer, n int) (int, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("msgpack: negative array length %d", n)
	case n < 16:
		return writeFrame(w, []byte{byte(FixArrayMin) | byte(n)})
	case n <= 0xffff:
		var buf [3]byte
		buf[0] = byte(Array16)
		binary.BigEndian.PutUint16(buf[1:], uint16(n))
		return writeFrame(w, buf[:])
	case n <= 0xffffffff:
		var buf [5]byte
		buf[0] = byte(Array32)
		binary.BigEndian.PutUint32(buf[1:], uint32(n))
		return writeFrame(w, buf[:])
	default:
		return 0, fmt.Errorf("msgpack: array length %d exceeds ARRAY32 range", n)
	}
}

// EncodeMapHeader appends the narrowest legal map-length tag for n
// (fixmap, Map16, or Map32) and returns the number of bytes appended.
func EncodeMapHeader(w io.Writer, n int) (int, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("msgpack: negative map length %d", n)
	case n < 16:
		return writeFrame(w, []byte{byte(FixMapMin) | byte(n)})
	case n <= 0xffff:
		var buf [3]byte
		buf[0] = byte(Map16)
		binary.BigEndian.PutUint16(buf[1:], uint16(n))
		return writeFrame(w, buf[:])
	case n <= 0xffffffff:
		var buf [5]byte
		buf[0] = byte(Map32)
		binary.BigEndian.PutUint32(buf[1:], uint32(n))
		return writeFrame(w, buf[:])
	default:
		return 0, fmt.Errorf("msgpack: map length %d exceeds MAP32 range", n)
	}
}

// EncodeArray appends an array header followed by each element of vals,
// encoded in order with pack.
func EncodeArray[V any](w io.Writer, vals []V, pack PackFunc[V]) (int, error) {
	n, err := EncodeArrayHeader(w, len(vals))
	if err != nil {
		return 0, err
	}
	for i, v := range vals {
		c, err := pack(v, w)
		if err != nil {
			return 0, fmt.Errorf("encoding element %d: %w", i, err)
		}
		n += c
	}
	return n, nil
}

// decodeArrayHeader reads an array length tag from the head of data,
// returning the declared length and the number of header bytes read.
func decodeArrayHeader(data []byte) (length, headerLen int, err error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag >= byte(FixArrayMin) && tag <= byte(FixArrayMax):
		return int(tag & 0x0f), 1, nil
	case Format(tag) == Array16:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return int(binary.BigEndian.Uint16(payload)), 3, nil
	case Format(tag) == Array32:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return int(binary.BigEndian.Uint32(payload)), 5, nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

func decodeArrayHeaderIter(r ByteReader) (length int, headerLen int, err error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag >= byte(FixArrayMin) && tag <= byte(FixArrayMax):
		return int(tag & 0x0f), 1, nil
	case Format(tag) == Array16:
		var scratch [16]byte
		payload, err := takeNumIter(r, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return int(binary.BigEndian.Uint16(payload)), 3, nil
	case Format(tag) == Array32:
		var scratch [16]byte
		payload, err := takeNumIter(r, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return int(binary.BigEndian.Uint32(payload)), 5, nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

func preallocHint(n int) int {
	if n > maxPreallocElems {
		return maxPreallocElems
	}
	return n
}

// DecodeArray decodes an array header followed by length elements, each
// decoded in wire order with unpack. It returns the total bytes consumed
// and the decoded elements in the order they appeared on the wire.
func DecodeArray[V any](data []byte, unpack UnpackFunc[V]) (int, []V, error) {
	length, pos, err := decodeArrayHeader(data)
	if err != nil {
		return 0, nil, err
	}
	out := make([]V, 0, preallocHint(length))
	for i := 0; i < length; i++ {
		c, v, err := unpack(data[pos:])
		if err != nil {
			return 0, nil, fmt.Errorf("decoding element %d: %w", i, err)
		}
		out = append(out, v)
		pos += c
	}
	return pos, out, nil
}

// DecodeArrayReader is the producer-mode counterpart of DecodeArray.
func DecodeArrayReader[V any](r ByteReader, unpack UnpackIterFunc[V]) (int, []V, error) {
	length, n, err := decodeArrayHeaderIter(r)
	if err != nil {
		return 0, nil, err
	}
	out := make([]V, 0, preallocHint(length))
	for i := 0; i < length; i++ {
		c, v, err := unpack(r)
		if err != nil {
			return 0, nil, fmt.Errorf("decoding element %d: %w", i, err)
		}
		out = append(out, v)
		n += c
	}
	return n, out, nil
}

// EncodeMap appends a map header followed by each key-value pair of m,
// encoded key-then-value. Map iteration order (and thus wire order) is
// Go's randomized map order, same caveat as the teacher's Marshal.
func EncodeMap[K comparable, V any](w io.Writer, m map[K]V, packKey PackFunc[K], packVal PackFunc[V]) (int, error) {
	n, err := EncodeMapHeader(w, len(m))
	if err != nil {
		return 0, err
	}
	for k, v := range m {
		c, err := packKey(k, w)
		if err != nil {
			return 0, fmt.Errorf("encoding map key: %w", err)
		}
		n += c
		c, err = packVal(v, w)
		if err != nil {
			return 0, fmt.Errorf("encoding map value: %w", err)
		}
		n += c
	}
	return n, nil
}

func decodeMapHeader(data []byte) (length, headerLen int, err error) {
	tag, rest, err := takeByte(data)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag >= byte(FixMapMin) && tag <= byte(FixMapMax):
		return int(tag & 0x0f), 1, nil
	case Format(tag) == Map16:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return int(binary.BigEndian.Uint16(payload)), 3, nil
	case Format(tag) == Map32:
		var scratch [16]byte
		payload, _, err := takeNum(rest, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return int(binary.BigEndian.Uint32(payload)), 5, nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

func decodeMapHeaderIter(r ByteReader) (length, headerLen int, err error) {
	tag, err := takeByteIter(r)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case tag >= byte(FixMapMin) && tag <= byte(FixMapMax):
		return int(tag & 0x0f), 1, nil
	case Format(tag) == Map16:
		var scratch [16]byte
		payload, err := takeNumIter(r, 2, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return int(binary.BigEndian.Uint16(payload)), 3, nil
	case Format(tag) == Map32:
		var scratch [16]byte
		payload, err := takeNumIter(r, 4, &scratch)
		if err != nil {
			return 0, 0, err
		}
		return int(binary.BigEndian.Uint32(payload)), 5, nil
	default:
		return 0, 0, unexpectedTag(tag)
	}
}

// DecodeMap decodes a map header followed by length key-value pairs,
// each pair decoded key-then-value in wire order. The key's decode error
// and the value's decode error share a single error channel (both are
// plain errors); either is returned wrapped with the pair index, so
// errors.Is still matches the original error.
func DecodeMap[K comparable, V any](data []byte, unpackKey UnpackFunc[K], unpackVal UnpackFunc[V]) (int, map[K]V, error) {
	length, pos, err := decodeMapHeader(data)
	if err != nil {
		return 0, nil, err
	}
	out := make(map[K]V, preallocHint(length))
	for i := 0; i < length; i++ {
		c, k, err := unpackKey(data[pos:])
		if err != nil {
			return 0, nil, fmt.Errorf("decoding map key %d: %w", i, err)
		}
		pos += c
		c, v, err := unpackVal(data[pos:])
		if err != nil {
			return 0, nil, fmt.Errorf("decoding map value %d: %w", i, err)
		}
		pos += c
		out[k] = v
	}
	return pos, out, nil
}

// DecodeMapReader is the producer-mode counterpart of DecodeMap.
func DecodeMapReader[K comparable, V any](r ByteReader, unpackKey UnpackIterFunc[K], unpackVal UnpackIterFunc[V]) (int, map[K]V, error) {
	length, n, err := decodeMapHeaderIter(r)
	if err != nil {
		return 0, nil, err
	}
	out := make(map[K]V, preallocHint(length))
	for i := 0; i < length; i++ {
		c, k, err := unpackKey(r)
		if err != nil {
			return 0, nil, fmt.Errorf("decoding map key %d: %w", i, err)
		}
		n += c
		c, v, err := unpackVal(r)
		if err != nil {
			return 0, nil, fmt.Errorf("decoding map value %d: %w", i, err)
		}
		n += c
		out[k] = v
	}
	return n, out, nil
}
