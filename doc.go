// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

// Package msgpack implements the integer and container subset of
// MessagePack (https://github.com/msgpack/msgpack/blob/master/spec.md):
// given a numeric value, it selects the smallest legal tag+payload that
// represents it; given a byte stream, it decodes any legal
// representation into the requested target width.
//
// Encoders append to an io.Writer. Every decode operation comes in two
// forms: a slice form reading from the head of a contiguous []byte, and
// a reader form reading from a ByteReader (a one-shot, non-rewindable
// producer such as a *bufio.Reader). Both forms share the same tag
// dispatch and differ only in which byte-source helper they call.
//
// # Tag selection
//
// MessagePack overlays signed and unsigned integer encodings on the
// same byte-tag space: negative-fixint (0xe0-0xff) and positive-fixint
// (0x00-0x7f) carve subranges out of the tag byte itself. Unsigned
// widths encode as an ascending cascade (fixint, Uint8, Uint16, Uint32,
// Uint64); signed widths are written strictly monotonically from
// most-negative to most-positive, crossing the negative-fixint boundary
// only in the [-32, -1] arm — the asymmetric -32/-33 cut is the only
// way to select the minimal encoding across that boundary.
//
// Decoders accept exactly the tags whose payload fits the target width
// without loss: UnpackUint8 rejects Uint16 even when the payload would
// fit, preserving a one-to-one mapping between width and accepted tag
// set (see the package's unpack functions for the precise set per
// width).
//
// # 128-bit extension
//
// Go has no native 128-bit integer, and MessagePack has none either.
// Values exceeding 64 bits are smuggled through the Bin8 tag with a
// fixed payload length of 16: tag, length byte (always 16), then a
// 16-byte big-endian two's-complement payload. This is a private
// convention, not wire-compatible with generic MessagePack parsers for
// values that need it; Uint128 and Int128 fall back to it only once
// their ordinary 64-bit ladder (PackUint64 / PackInt64) can no longer
// hold the value.
//
// # Out of scope
//
// String, float, bool, nil, ext, and timestamp encodings; struct
// codegen; any I/O source or sink beyond an io.Writer appender and a
// ByteReader producer; buffer allocation policy. These are treated as
// separate collaborators that plug into the same dispatch shape this
// package establishes.
//
// Not supported: bin16/bin32 framing for 128-bit values (only Bin8 with
// length 16 is recognized), truncating lossy conversions (decoding into
// a target that cannot hold the value is an error, not a wrap), and
// canonical-encoding validation on decode (a wider representation than
// the one the encoder would have chosen, such as Uint16 carrying 5, is
// still accepted as long as its tag is in the target's accepted set).
package msgpack
