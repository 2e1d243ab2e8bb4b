// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/creachadair/msgpack"
)

func TestEncodeArrayConcreteScenario(t *testing.T) {
	// Concrete scenario 5: encode [1,2,3] of u8 -> 93 01 02 03, decode as
	// array-of-u16 -> (4, [1,2,3]).
	var buf bytes.Buffer
	n, err := msgpack.EncodeArray(&buf, []uint8{1, 2, 3}, msgpack.PackUint8)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0x93, 0x01, 0x02, 0x03}, buf.Bytes())

	gotN, gotV, err := msgpack.DecodeArray(buf.Bytes(), msgpack.UnpackUint16)
	require.NoError(t, err)
	require.Equal(t, 4, gotN)
	require.Equal(t, []uint16{1, 2, 3}, gotV)
}

func TestDecodeArrayAsBin128Fails(t *testing.T) {
	// Decode C4 08 ... as u128 fails with UnexpectedBinLength (scenario 6,
	// exercised here through the container path rather than the scalar
	// path to confirm the wrapped error still matches the sentinel).
	data := append([]byte{0x91, 0xc4, 0x08}, make([]byte, 8)...)
	_, _, err := msgpack.DecodeArray(data, msgpack.UnpackUint128)
	require.ErrorIs(t, err, msgpack.ErrUnexpectedBinLength)
}

func TestEncodeArrayHeaderWidths(t *testing.T) {
	tests := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x90}},
		{15, []byte{0x9f}},
		{16, []byte{0xdc, 0x00, 0x10}},
		{65535, []byte{0xdc, 0xff, 0xff}},
		{65536, []byte{0xdd, 0x00, 0x01, 0x00, 0x00}},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		n, err := msgpack.EncodeArrayHeader(&buf, test.n)
		require.NoError(t, err)
		require.Equal(t, len(test.want), n)
		require.Equal(t, test.want, buf.Bytes())
	}
}

func TestEncodeMapHeaderWidths(t *testing.T) {
	tests := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x80}},
		{15, []byte{0x8f}},
		{16, []byte{0xde, 0x00, 0x10}},
		{65536, []byte{0xdf, 0x00, 0x01, 0x00, 0x00}},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		n, err := msgpack.EncodeMapHeader(&buf, test.n)
		require.NoError(t, err)
		require.Equal(t, len(test.want), n)
		require.Equal(t, test.want, buf.Bytes())
	}
}

func TestEncodeMapRoundTrip(t *testing.T) {
	m := map[uint8]uint32{1: 1000, 2: 2000, 3: 3000}

	var buf bytes.Buffer
	n, err := msgpack.EncodeMap(&buf, m, msgpack.PackUint8, msgpack.PackUint32)
	require.NoError(t, err)
	require.Equal(t, n, buf.Len())

	gotN, gotM, err := msgpack.DecodeMap(buf.Bytes(), msgpack.UnpackUint8, msgpack.UnpackUint32)
	require.NoError(t, err)
	require.Equal(t, n, gotN)
	if diff := cmp.Diff(m, gotM); diff != "" {
		t.Errorf("DecodeMap round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeArrayReaderMatchesSlice(t *testing.T) {
	var buf bytes.Buffer
	_, err := msgpack.EncodeArray(&buf, []uint32{10, 300, 70000}, msgpack.PackUint32)
	require.NoError(t, err)
	encoded := buf.Bytes()

	sliceN, sliceV, sliceErr := msgpack.DecodeArray(encoded, msgpack.UnpackUint32)
	readerN, readerV, readerErr := msgpack.DecodeArrayReader(
		strings.NewReader(string(encoded)), msgpack.UnpackUint32Reader)

	require.NoError(t, sliceErr)
	require.NoError(t, readerErr)
	require.Equal(t, sliceN, readerN)
	require.Equal(t, sliceV, readerV)
}

func TestDecodeMapReaderMatchesSlice(t *testing.T) {
	m := map[uint8]uint8{1: 10, 2: 20}

	var buf bytes.Buffer
	_, err := msgpack.EncodeMap(&buf, m, msgpack.PackUint8, msgpack.PackUint8)
	require.NoError(t, err)
	encoded := buf.Bytes()

	sliceN, sliceM, sliceErr := msgpack.DecodeMap(encoded, msgpack.UnpackUint8, msgpack.UnpackUint8)
	readerN, readerM, readerErr := msgpack.DecodeMapReader(
		strings.NewReader(string(encoded)), msgpack.UnpackUint8Reader, msgpack.UnpackUint8Reader)

	require.NoError(t, sliceErr)
	require.NoError(t, readerErr)
	require.Equal(t, sliceN, readerN)
	require.Equal(t, sliceM, readerM)
}

func TestDecodeArrayElementErrorPropagates(t *testing.T) {
	// A well-formed header followed by a truncated element must fail with
	// the element's own error, not silently yield a short slice.
	data := []byte{0x92, 0x01} // array of 2, only 1 element present
	_, _, err := msgpack.DecodeArray(data, msgpack.UnpackUint8)
	require.ErrorIs(t, err, msgpack.ErrBufferTooShort)
}
