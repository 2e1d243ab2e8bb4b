// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

import "io"

// PackOptionalNonZero lifts pack to an optional wrapper: a nil v encodes
// as the integer zero, a non-nil v encodes as *v. This establishes a
// bijection between "optional non-zero integer" and "plain integer",
// using zero as the sentinel for absence.
func PackOptionalNonZero[T comparable](v *T, w io.Writer, pack PackFunc[T]) (int, error) {
	if v == nil {
		var zero T
		return pack(zero, w)
	}
	return pack(*v, w)
}

// UnpackOptionalNonZero decodes the payload with unpack; a decoded zero
// value materializes as absent (nil), any other value as present.
func UnpackOptionalNonZero[T comparable](data []byte, unpack UnpackFunc[T]) (int, *T, error) {
	n, v, err := unpack(data)
	if err != nil {
		return 0, nil, err
	}
	var zero T
	if v == zero {
		return n, nil, nil
	}
	return n, &v, nil
}

// UnpackOptionalNonZeroReader is the producer-mode counterpart of
// UnpackOptionalNonZero.
func UnpackOptionalNonZeroReader[T comparable](r ByteReader, unpack UnpackIterFunc[T]) (int, *T, error) {
	n, v, err := unpack(r)
	if err != nil {
		return 0, nil, err
	}
	var zero T
	if v == zero {
		return n, nil, nil
	}
	return n, &v, nil
}
