// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/creachadair/msgpack"
)

func TestPackUint32Minimality(t *testing.T) {
	tests := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0xcc, 0x80}},
		{255, []byte{0xcc, 0xff}},
		{256, []byte{0xcd, 0x01, 0x00}},
		{65535, []byte{0xcd, 0xff, 0xff}},
		{65536, []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{300, []byte{0xcd, 0x01, 0x2c}}, // concrete scenario 1
	}
	for _, test := range tests {
		var buf bytes.Buffer
		n, err := msgpack.PackUint32(test.v, &buf)
		require.NoError(t, err)
		require.Equal(t, len(test.want), n)
		require.Equal(t, test.want, buf.Bytes())
	}
}

func TestPackUint32ConcreteScenario(t *testing.T) {
	var buf bytes.Buffer
	n, err := msgpack.PackUint32(300, &buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{0xcd, 0x01, 0x2c}, buf.Bytes())

	gotN, gotV, err := msgpack.UnpackUint32(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 3, gotN)
	require.Equal(t, uint32(300), gotV)
}

func TestUnpackUint8RejectsWiderTag(t *testing.T) {
	// A Uint16 tag carrying a value (200) that would fit in a uint8 must
	// still be rejected: u8::unpack only accepts positive-fixint and
	// Uint8, never a wider tag even when the payload would fit.
	var buf bytes.Buffer
	_, err := msgpack.PackUint16(200, &buf)
	require.NoError(t, err)

	_, _, err = msgpack.UnpackUint8(buf.Bytes())
	require.ErrorIs(t, err, msgpack.ErrUnexpectedFormatTag)
}

func TestCrossWidthCompatibility(t *testing.T) {
	var buf bytes.Buffer
	_, err := msgpack.PackUint8(200, &buf)
	require.NoError(t, err)
	encoded := buf.Bytes()

	_, v16, err := msgpack.UnpackUint16(encoded)
	require.NoError(t, err)
	require.EqualValues(t, 200, v16)

	_, v32, err := msgpack.UnpackUint32(encoded)
	require.NoError(t, err)
	require.EqualValues(t, 200, v32)

	_, v64, err := msgpack.UnpackUint64(encoded)
	require.NoError(t, err)
	require.EqualValues(t, 200, v64)
}

func TestUnpackUint32Reader(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
	}{
		{"fixint", 42},
		{"uint8", 200},
		{"uint16", 40000},
		{"uint32", 3000000000},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := msgpack.PackUint32(test.v, &buf)
			require.NoError(t, err)
			encoded := buf.Bytes()

			sliceN, sliceV, sliceErr := msgpack.UnpackUint32(encoded)
			readerN, readerV, readerErr := msgpack.UnpackUint32Reader(strings.NewReader(string(encoded)))

			require.Equal(t, n, sliceN)
			require.Equal(t, sliceN, readerN)
			require.Equal(t, sliceV, readerV)
			require.Equal(t, sliceErr, readerErr)
		})
	}
}

func TestUnpackUint32Reader_BufferTooShort(t *testing.T) {
	sliceN, sliceV, sliceErr := msgpack.UnpackUint32([]byte{0xce, 0x00, 0x01})
	readerN, readerV, readerErr := msgpack.UnpackUint32Reader(strings.NewReader("\xce\x00\x01"))

	require.ErrorIs(t, sliceErr, msgpack.ErrBufferTooShort)
	require.ErrorIs(t, readerErr, msgpack.ErrBufferTooShort)
	require.Equal(t, sliceN, readerN)
	require.Equal(t, sliceV, readerV)
}
