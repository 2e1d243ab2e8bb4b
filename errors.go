// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import (
	"errors"
	"fmt"
)

// ErrBufferTooShort is returned when a byte source cannot yield the next
// byte, or the next N payload bytes, that a decode operation requires.
var ErrBufferTooShort = errors.New("msgpack: buffer too short")

// ErrUnexpectedFormatTag is returned when the tag byte at the expected
// position is not in the accepted set for the requested operation and
// target width.
var ErrUnexpectedFormatTag = errors.New("msgpack: unexpected format tag")

// ErrUnexpectedBinLength is returned when a 128-bit decode reads a Bin8
// frame whose length byte is not 16.
var ErrUnexpectedBinLength = errors.New("msgpack: unexpected bin length")

// unexpectedTag wraps ErrUnexpectedFormatTag with the offending byte so
// callers (and tests) can report what was actually seen.
func unexpectedTag(tag byte) error {
	return fmt.Errorf("%w: 0x%02x", ErrUnexpectedFormatTag, tag)
}

// unexpectedBinLength wraps ErrUnexpectedBinLength with the offending
// length byte.
func unexpectedBinLength(n byte) error {
	return fmt.Errorf("%w: got %d, want %d", ErrUnexpectedBinLength, n, bin128Len)
}
