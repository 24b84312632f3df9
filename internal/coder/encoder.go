// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	cborinterfaces "go.e43.eu/cbor/interfaces"
	"go.e43.eu/cbor/internal/errors"
	"go.e43.eu/cbor/tag"
)

// Encoder appends encoded items to a growable buffer. The zero value is
// an empty encoder ready for use.
type Encoder struct {
	buf []byte
}

var _ cborinterfaces.Encoder = &Encoder{}

func NewEncoder() *Encoder {
	return new(Encoder)
}

// Bytes returns the encoded output so far. The slice is a view into the
// encoder's buffer and is invalidated by the next encode call.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Len() int {
	return len(e.buf)
}

func (e *Encoder) EncodeTagAndAdditional(t tag.Major, a tag.Minor) int {
	e.buf = append(e.buf, byte(t)|byte(a))
	return 1
}

// EncodeTagAndValue writes a header octet for t followed by v in the
// narrowest emittable value field. Magnitudes below 24 are packed into
// the header octet itself.
func (e *Encoder) EncodeTagAndValue(t tag.Major, v uint64) (int, error) {
	length := byteLength(v)
	switch {
	case length == 0:
		e.EncodeTagAndAdditional(t, tag.Minor(v))

	case length == 1:
		e.EncodeTagAndAdditional(t, tag.Length1)
		e.buf = append(e.buf, byte(v))

	case length == 2:
		e.EncodeTagAndAdditional(t, tag.Length2)
		e.buf = append(e.buf, byte(v>>8), byte(v))

	case length <= 4:
		e.EncodeTagAndAdditional(t, tag.Length4)
		e.buf = append(e.buf,
			byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
		length = 4

	case length <= 8:
		e.EncodeTagAndAdditional(t, tag.Length8)
		e.buf = append(e.buf,
			byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
			byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
		length = 8

	default:
		return 0, errors.WidthError{Length: length}
	}

	return 1 + length, nil
}

func (e *Encoder) EncodeUnsigned(v uint64) (int, error) {
	return e.EncodeTagAndValue(tag.UnsignedInteger, v)
}

// EncodeNegative writes the negative integer -1-v. v is the wire
// magnitude, already transformed by the caller.
func (e *Encoder) EncodeNegative(v uint64) (int, error) {
	return e.EncodeTagAndValue(tag.NegativeInteger, v)
}

func (e *Encoder) EncodeInteger(v int64) (int, error) {
	if v >= 0 {
		return e.EncodeUnsigned(uint64(v))
	}
	return e.EncodeNegative(uint64(-(v + 1)))
}

func (e *Encoder) EncodeBool(v bool) (int, error) {
	m := tag.False
	if v {
		m = tag.True
	}
	return e.EncodeTagAndValue(tag.Simple, uint64(m))
}

func (e *Encoder) EncodeBytes(v []byte) (int, error) {
	n, err := e.EncodeTagAndValue(tag.ByteString, uint64(len(v)))
	if err != nil {
		return n, err
	}
	e.buf = append(e.buf, v...)
	return n + len(v), nil
}

func (e *Encoder) EncodeText(v string) (int, error) {
	n, err := e.EncodeTagAndValue(tag.TextString, uint64(len(v)))
	if err != nil {
		return n, err
	}
	e.buf = append(e.buf, v...)
	return n + len(v), nil
}

func (e *Encoder) EncodeArraySize(n uint64) (int, error) {
	return e.EncodeTagAndValue(tag.Array, n)
}

func (e *Encoder) EncodeMapSize(n uint64) (int, error) {
	return e.EncodeTagAndValue(tag.Map, n)
}

func (e *Encoder) EncodeEncodedBytes(v []byte) (int, error) {
	n, err := e.EncodeTagAndValue(tag.Semantic, tag.EncodedCBOR)
	if err != nil {
		return n, err
	}
	m, err := e.EncodeBytes(v)
	return n + m, err
}

// EncodeRaw appends pre-encoded bytes verbatim
func (e *Encoder) EncodeRaw(v []byte) int {
	e.buf = append(e.buf, v...)
	return len(v)
}

// EncodeEncodedBytesPrefix writes the embedded-data headers only: the
// semantic tag and a byte string header announcing length payload
// bytes. The caller is responsible for appending exactly that many,
// typically with EncodeRaw.
func (e *Encoder) EncodeEncodedBytesPrefix(length uint64) (int, error) {
	n, err := e.EncodeTagAndValue(tag.Semantic, tag.EncodedCBOR)
	if err != nil {
		return n, err
	}
	m, err := e.EncodeTagAndValue(tag.ByteString, length)
	return n + m, err
}
