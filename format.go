// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package msgpack

// A Format is a single MessagePack tag byte. Most integer and container
// frames begin with one; the accepted set for a given operation is a
// fixed subset of this type's range, never the whole byte space.
type Format byte

// Tag bytes used by the integer and container subset of MessagePack this
// package implements. Ranges are inclusive on both ends.
const (
	// PositiveFixintMin and PositiveFixintMax bound the single-byte
	// encoding of unsigned integers 0..127: the tag byte *is* the value.
	PositiveFixintMin Format = 0x00
	PositiveFixintMax Format = 0x7f

	// FixMapMin and FixMapMax bound fixmap tags; the low nibble is the
	// number of key-value pairs (0..15).
	FixMapMin Format = 0x80
	FixMapMax Format = 0x8f

	// FixArrayMin and FixArrayMax bound fixarray tags; the low nibble is
	// the number of elements (0..15).
	FixArrayMin Format = 0x90
	FixArrayMax Format = 0x9f

	// NegativeFixintMin and NegativeFixintMax bound the single-byte
	// encoding of signed integers -32..-1, stored as the 8-bit two's
	// complement value of the tag byte itself.
	NegativeFixintMin Format = 0xe0
	NegativeFixintMax Format = 0xff

	Bin8 Format = 0xc4

	Uint8  Format = 0xcc
	Uint16 Format = 0xcd
	Uint32 Format = 0xce
	Uint64 Format = 0xcf

	Int8  Format = 0xd0
	Int16 Format = 0xd1
	Int32 Format = 0xd2
	Int64 Format = 0xd3

	Array16 Format = 0xdc
	Array32 Format = 0xdd

	Map16 Format = 0xde
	Map32 Format = 0xdf
)

// bin128Len is the fixed payload length this package's private 128-bit
// extension always uses with the Bin8 tag. Any other length on a Bin8
// frame, when decoding into a 128-bit target, is an error.
const bin128Len = 16
