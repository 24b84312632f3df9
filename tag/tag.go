// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package tag defines the constant tables of the CBOR wire format: the
// major type tags occupying the top three bits of a header octet, the
// minor (additional information) indicators occupying the bottom five,
// and the well-known semantic tag numbers.
//
// These are closed enumerations fixed by RFC 7049; they are never
// extended at runtime.
package tag

// Major is a major type tag, pre-shifted into the top three bits of the
// header octet position it occupies on the wire.
type Major byte

const (
	UnsignedInteger Major = 0 << 5
	NegativeInteger Major = 1 << 5
	ByteString      Major = 2 << 5
	TextString      Major = 3 << 5
	Array           Major = 4 << 5
	Map             Major = 5 << 5
	Semantic        Major = 6 << 5

	// FloatingPoint and Simple share major type 7; the minor indicator
	// distinguishes simple constants from float widths
	FloatingPoint Major = 7 << 5
	Simple        Major = 7 << 5
)

// MajorMask extracts the major type tag from a header octet
const MajorMask byte = 0xe0

func (m Major) String() string {
	switch m {
	case UnsignedInteger:
		return "unsignedInteger"
	case NegativeInteger:
		return "negativeInteger"
	case ByteString:
		return "byteString"
	case TextString:
		return "textString"
	case Array:
		return "array"
	case Map:
		return "map"
	case Semantic:
		return "semantic"
	case Simple:
		return "simple"
	default:
		return "invalid"
	}
}

// Minor is the additional information carried in the bottom five bits
// of a header octet. Values below Length1 are an inline magnitude;
// Length1 through Length8 announce a trailing big-endian value field.
type Minor byte

const (
	Length1 Minor = 24
	Length2 Minor = 25
	Length4 Minor = 26
	Length8 Minor = 27

	// Simple constants (major type 7)
	False     Minor = 20
	True      Minor = 21
	Null      Minor = 22
	Undefined Minor = 23

	// Floating point widths (major type 7). Named as extension points
	// only; this module does not encode or decode floats.
	HalfFloat   Minor = 25
	SingleFloat Minor = 26
	DoubleFloat Minor = 27
)

// MinorMask extracts the minor indicator from a header octet
const MinorMask byte = 0x1f

// Well-known semantic tag numbers (RFC 7049 section 2.4), carried as
// the value of a header with the Semantic major type.
const (
	DateTime         uint64 = 0
	EpochDateTime    uint64 = 1
	PositiveBignum   uint64 = 2
	NegativeBignum   uint64 = 3
	DecimalFraction  uint64 = 4
	Bigfloat         uint64 = 5
	ConvertBase64URL uint64 = 21
	ConvertBase64    uint64 = 22
	ConvertBase16    uint64 = 23

	// EncodedCBOR marks a byte string whose content is itself an
	// encoded CBOR data item
	EncodedCBOR uint64 = 24

	URI              uint64 = 32
	Base64URL        uint64 = 33
	Base64           uint64 = 34
	Regex            uint64 = 35
	MIMEMessage      uint64 = 36
	SelfDescribeCBOR uint64 = 55799
)
