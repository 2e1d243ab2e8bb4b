// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// ByteReader is the one-shot producer abstraction: a non-rewindable
// source yielding bytes in order. It is satisfied by *bytes.Buffer,
// *bytes.Reader, *strings.Reader, and *bufio.Reader, among others.
//
// Partial reads are permitted: a failed take leaves no observable effect
// beyond the bytes it already consumed, and the producer is never
// rewound.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// AsByteReader adapts an arbitrary io.Reader to a ByteReader, reusing it
// directly when it already satisfies the interface (*bytes.Buffer,
// *bytes.Reader, *strings.Reader, *bufio.Reader) and wrapping it in a
// *bufio.Reader otherwise. Call it once on whatever source you have, the
// way binpack.NewDecoder used to, and pass the result to any *Reader
// function in this package.
func AsByteReader(r io.Reader) ByteReader {
	switch t := r.(type) {
	case *bytes.Buffer, *bytes.Reader, *strings.Reader:
		return t.(ByteReader)
	case *bufio.Reader:
		return t
	default:
		return bufio.NewReader(r)
	}
}

// takeByte advances one byte from the head of buf, or fails with
// ErrBufferTooShort.
func takeByte(buf []byte) (byte, []byte, error) {
	if len(buf) == 0 {
		return 0, buf, ErrBufferTooShort
	}
	return buf[0], buf[1:], nil
}

// takeNum reads the n-byte big-endian payload at the head of buf into a
// fixed-size staging array, advances past it, and returns the staged
// payload (scratch[:n]) and the remainder of buf. n must not exceed
// len(scratch).
func takeNum(buf []byte, n int, scratch *[16]byte) ([]byte, []byte, error) {
	if len(buf) < n {
		return nil, buf, ErrBufferTooShort
	}
	copy(scratch[:n], buf[:n])
	return scratch[:n], buf[n:], nil
}

// takeByteIter pulls one byte from r, or fails with ErrBufferTooShort.
func takeByteIter(r ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, ErrBufferTooShort
	}
	return b, nil
}

// takeNumIter pulls exactly n bytes from r into a fixed-size staging
// array, failing with ErrBufferTooShort if fewer than n are available.
// Bytes already read before the failure are gone; r is not rewound.
func takeNumIter(r ByteReader, n int, scratch *[16]byte) ([]byte, error) {
	if _, err := io.ReadFull(r, scratch[:n]); err != nil {
		return nil, ErrBufferTooShort
	}
	return scratch[:n], nil
}
