// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package cborinterfaces defines the primary interfaces of the CBOR codec
//
// (This package is primarily separated out in order to permit the implementation to
// be kept under internal/ while the root package re-exports these types)
package cborinterfaces

import (
	"go.e43.eu/cbor/tag"
)

// Flag is a set of decode options, passed on each decode call
type Flag uint

const (
	None Flag = 0

	// RequireMinimalEncoding rejects a multi-byte value field whose
	// value would have fit a narrower emittable width (including the
	// inline form)
	RequireMinimalEncoding Flag = 1 << 0
)

// interface Encoder is the interface to the CBOR encoder
//
// An Encoder owns a growable output buffer. Every encode call appends to
// it and returns the number of bytes written. An Encoder must not be
// used from multiple goroutines simultaneously.
type Encoder interface {
	// EncodeTagAndAdditional appends a single header octet packing the
	// major tag with the given minor indicator
	EncodeTagAndAdditional(t tag.Major, a tag.Minor) int

	// EncodeTagAndValue appends a header for the major tag carrying the
	// magnitude v, using the narrowest emittable value field
	EncodeTagAndValue(t tag.Major, v uint64) (int, error)

	// EncodeUnsigned writes an unsigned integer to the encoder
	EncodeUnsigned(v uint64) (int, error)

	// EncodeNegative writes a negative integer to the encoder. v is the
	// already-transformed wire magnitude, representing the value -1-v
	EncodeNegative(v uint64) (int, error)

	// EncodeInteger writes a signed integer, dispatching on its sign
	EncodeInteger(v int64) (int, error)

	// EncodeBool writes a boolean simple value
	EncodeBool(v bool) (int, error)

	// EncodeBytes writes a length-prefixed byte string
	EncodeBytes(v []byte) (int, error)

	// EncodeText writes a length-prefixed UTF-8 text string
	EncodeText(v string) (int, error)

	// EncodeArraySize writes an array header for n elements. Elements
	// themselves are encoded by subsequent calls
	EncodeArraySize(n uint64) (int, error)

	// EncodeMapSize writes a map header for n key/value pairs
	EncodeMapSize(n uint64) (int, error)

	// EncodeEncodedBytes writes a semantic "encoded CBOR data" header
	// followed by v as a byte string
	EncodeEncodedBytes(v []byte) (int, error)

	// EncodeEncodedBytesPrefix writes the semantic "encoded CBOR data"
	// header and a byte string header announcing length payload bytes,
	// without the payload itself. The caller appends the payload with
	// EncodeRaw
	EncodeEncodedBytesPrefix(length uint64) (int, error)

	// EncodeRaw appends pre-encoded bytes verbatim
	EncodeRaw(v []byte) int

	// Bytes returns the encoded output so far. The returned slice is a
	// view into the encoder's buffer: it must not be modified, and is
	// only valid until the next encode call
	Bytes() []byte

	// Len returns the number of bytes encoded so far
	Len() int
}

// interface Decoder is the interface to the CBOR decoder
//
// A Decoder borrows an immutable input buffer and advances a read
// cursor over it. Every decode call validates, consumes input, and
// returns the decoded value together with the number of bytes consumed.
// Failures are terminal for the call; the cursor never rewinds. A
// Decoder must not be used from multiple goroutines simultaneously, and
// the input buffer must remain unmodified for its lifetime.
type Decoder interface {
	// DecodeTagAndAdditional reads a single header octet and splits it
	// into its major tag and minor indicator
	DecodeTagAndAdditional(flags Flag) (tag.Major, tag.Minor, int, error)

	// DecodeTagAndValue reads a complete header: the header octet plus
	// any trailing big-endian value field its minor indicator announces
	DecodeTagAndValue(flags Flag) (tag.Major, uint64, int, error)

	// DecodeUnsigned reads an unsigned integer
	DecodeUnsigned(flags Flag) (uint64, int, error)

	// DecodeNegative reads a negative integer, returning its wire
	// magnitude (the represented value is -1-magnitude)
	DecodeNegative(flags Flag) (uint64, int, error)

	// DecodeInteger reads either integer kind, dispatching on the tag
	// actually present
	DecodeInteger(flags Flag) (int64, int, error)

	// DecodeBool reads a boolean simple value
	DecodeBool(flags Flag) (bool, int, error)

	// DecodeBytes reads a length-prefixed byte string. The returned
	// slice is a copy, independent of the input buffer
	DecodeBytes(flags Flag) ([]byte, int, error)

	// DecodeText reads a length-prefixed UTF-8 text string
	DecodeText(flags Flag) (string, int, error)

	// DecodeArraySize reads an array header and returns the element count
	DecodeArraySize(flags Flag) (uint64, int, error)

	// DecodeMapSize reads a map header and returns the pair count
	DecodeMapSize(flags Flag) (uint64, int, error)

	// DecodeEncodedBytes reads a semantic "encoded CBOR data" header
	// followed by a byte string and returns the embedded payload
	DecodeEncodedBytes(flags Flag) ([]byte, int, error)

	// DecodeEncodedBytesPrefix reads the semantic "encoded CBOR data"
	// header and the byte string header that follows, returning the
	// announced payload length without consuming the payload. The
	// payload is then read with DecodeRaw
	DecodeEncodedBytesPrefix(flags Flag) (uint64, int, error)

	// DecodeRaw reads length raw bytes without interpretation. The
	// returned slice is a copy, independent of the input buffer
	DecodeRaw(length uint64) ([]byte, int, error)

	// Offset returns the current cursor position within the input
	Offset() int

	// Remaining returns the number of unconsumed input bytes
	Remaining() int
}
