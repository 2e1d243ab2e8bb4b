// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import "io"

// PackFunc encodes a single value of type T to an appender w, returning
// the number of bytes appended. Encoding never fails on its own account;
// an error returned here can only originate from w itself, the
// io.Writer that plays the role of the byte appender.
type PackFunc[T any] func(v T, w io.Writer) (int, error)

// UnpackFunc decodes a single value of type T from the head of a byte
// slice, returning the number of bytes consumed.
type UnpackFunc[T any] func(data []byte) (int, T, error)

// UnpackIterFunc decodes a single value of type T from a ByteReader,
// returning the number of bytes consumed.
type UnpackIterFunc[T any] func(r ByteReader) (int, T, error)

// writeFrame appends a complete tag+payload frame to w in a single Write
// call, so the byte count returned to the caller always matches what was
// actually appended.
func writeFrame(w io.Writer, frame []byte) (int, error) {
	return w.Write(frame)
}
