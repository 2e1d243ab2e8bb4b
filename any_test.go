// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/creachadair/msgpack"
)

func TestPackAnyUnpackAnyRoundTrip(t *testing.T) {
	big128 := msgpack.Uint128{Hi: 1, Lo: 0}
	negBig128 := msgpack.Int128{Hi: -1, Lo: 0}

	tests := []struct {
		name   string
		v      interface{}
		target interface{}
		want   interface{}
	}{
		{"uint8", uint8(200), new(uint8), uint8(200)},
		{"uint16", uint16(40000), new(uint16), uint16(40000)},
		{"uint32", uint32(70000), new(uint32), uint32(70000)},
		{"uint64", uint64(1) << 40, new(uint64), uint64(1) << 40},
		{"uint", uint(300), new(uint), uint(300)},
		{"uint128", big128, new(msgpack.Uint128), big128},
		{"int8", int8(-40), new(int8), int8(-40)},
		{"int16", int16(-30000), new(int16), int16(-30000)},
		{"int32", int32(-70000), new(int32), int32(-70000)},
		{"int64", int64(-1) << 40, new(int64), int64(-1) << 40},
		{"int", int(-300), new(int), int(-300)},
		{"int128", negBig128, new(msgpack.Int128), negBig128},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			handled, n, err := msgpack.PackAny(test.v, &buf)
			require.True(t, handled)
			require.NoError(t, err)
			require.Equal(t, buf.Len(), n)

			gotN, err := msgpack.UnpackAny(buf.Bytes(), test.target)
			require.NoError(t, err)
			require.Equal(t, n, gotN)

			switch target := test.target.(type) {
			case *uint8:
				require.Equal(t, test.want, *target)
			case *uint16:
				require.Equal(t, test.want, *target)
			case *uint32:
				require.Equal(t, test.want, *target)
			case *uint64:
				require.Equal(t, test.want, *target)
			case *uint:
				require.Equal(t, test.want, *target)
			case *msgpack.Uint128:
				require.Equal(t, test.want, *target)
			case *int8:
				require.Equal(t, test.want, *target)
			case *int16:
				require.Equal(t, test.want, *target)
			case *int32:
				require.Equal(t, test.want, *target)
			case *int64:
				require.Equal(t, test.want, *target)
			case *int:
				require.Equal(t, test.want, *target)
			case *msgpack.Int128:
				require.Equal(t, test.want, *target)
			}
		})
	}
}

func TestPackAnyUnrecognizedType(t *testing.T) {
	var buf bytes.Buffer
	handled, n, err := msgpack.PackAny("not a number", &buf)
	require.False(t, handled)
	require.Zero(t, n)
	require.NoError(t, err)
}

func TestUnpackAnyUnrecognizedType(t *testing.T) {
	var target string
	_, err := msgpack.UnpackAny([]byte{0x01}, &target)
	require.Error(t, err)
}

func TestPackAnyUint128ExtensionRoundTrip(t *testing.T) {
	big := msgpack.Uint128{Hi: 1, Lo: 0}

	var buf bytes.Buffer
	handled, n, err := msgpack.PackAny(big, &buf)
	require.True(t, handled)
	require.NoError(t, err)
	require.Equal(t, 18, n)

	var got msgpack.Uint128
	gotN, err := msgpack.UnpackAny(buf.Bytes(), &got)
	require.NoError(t, err)
	require.Equal(t, n, gotN)
	require.Equal(t, big, got)
}
