// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"math"

	cborinterfaces "go.e43.eu/cbor/interfaces"
	"go.e43.eu/cbor/internal/errors"
	"go.e43.eu/cbor/tag"
)

// Decoder reads encoded items from a borrowed input buffer. The cursor
// advances only on successful reads and never rewinds; a failed call is
// terminal and the decode must be restarted on a fresh Decoder.
type Decoder struct {
	buf []byte
	pos int
}

var _ cborinterfaces.Decoder = &Decoder{}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

func (d *Decoder) Offset() int {
	return d.pos
}

func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

func (d *Decoder) DecodeTagAndAdditional(flags cborinterfaces.Flag) (tag.Major, tag.Minor, int, error) {
	if d.pos == len(d.buf) {
		return 0, 0, 0, errors.ErrNotEnoughInput
	}
	octet := d.buf[d.pos]
	d.pos++
	return tag.Major(octet & tag.MajorMask), tag.Minor(octet & tag.MinorMask), 1, nil
}

// DecodeTagAndValue reads a header octet and any value field its minor
// indicator announces. Indicators below 24 carry the magnitude inline;
// 24 through 27 select a 1/2/4/8 byte big-endian field; anything else
// is malformed.
func (d *Decoder) DecodeTagAndValue(flags cborinterfaces.Flag) (tag.Major, uint64, int, error) {
	t, additional, n, err := d.DecodeTagAndAdditional(flags)
	if err != nil {
		return 0, 0, 0, err
	}
	if additional < tag.Length1 {
		return t, uint64(additional), n, nil
	}

	var width int
	switch additional {
	case tag.Length1:
		width = 1
	case tag.Length2:
		width = 2
	case tag.Length4:
		width = 4
	case tag.Length8:
		width = 8
	default:
		return 0, 0, 0, errors.ErrBadAdditionalValue
	}

	if d.Remaining() < width {
		return 0, 0, 0, errors.ErrNotEnoughInput
	}
	var v uint64
	for _, b := range d.buf[d.pos : d.pos+width] {
		v = v<<8 | uint64(b)
	}
	d.pos += width

	if flags&cborinterfaces.RequireMinimalEncoding != 0 && width > minimalWidth(v) {
		return 0, 0, 0, errors.ErrNonMinimalEncoding
	}
	return t, v, n + width, nil
}

// expectTagAndValue reads a header and enforces its major tag
func (d *Decoder) expectTagAndValue(expected tag.Major, flags cborinterfaces.Flag) (uint64, int, error) {
	t, v, n, err := d.DecodeTagAndValue(flags)
	if err != nil {
		return 0, 0, err
	}
	if t != expected {
		return 0, 0, errors.TagMismatchError{Expected: expected, Actual: t}
	}
	return v, n, nil
}

func (d *Decoder) DecodeUnsigned(flags cborinterfaces.Flag) (uint64, int, error) {
	return d.expectTagAndValue(tag.UnsignedInteger, flags)
}

// DecodeNegative returns the wire magnitude of a negative integer; the
// represented value is -1-magnitude.
func (d *Decoder) DecodeNegative(flags cborinterfaces.Flag) (uint64, int, error) {
	return d.expectTagAndValue(tag.NegativeInteger, flags)
}

func (d *Decoder) DecodeInteger(flags cborinterfaces.Flag) (int64, int, error) {
	t, v, n, err := d.DecodeTagAndValue(flags)
	if err != nil {
		return 0, 0, err
	}
	switch t {
	case tag.UnsignedInteger:
		if v > math.MaxInt64 {
			return 0, 0, errors.ErrIntegerOverflow
		}
		return int64(v), n, nil
	case tag.NegativeInteger:
		if v > math.MaxInt64 {
			return 0, 0, errors.ErrIntegerOverflow
		}
		return -1 - int64(v), n, nil
	default:
		return 0, 0, errors.TagMismatchError{Expected: tag.UnsignedInteger, Actual: t}
	}
}

func (d *Decoder) DecodeBool(flags cborinterfaces.Flag) (bool, int, error) {
	v, n, err := d.expectTagAndValue(tag.Simple, flags)
	if err != nil {
		return false, 0, err
	}
	switch v {
	case uint64(tag.True):
		return true, n, nil
	case uint64(tag.False):
		return false, n, nil
	default:
		return false, 0, errors.ErrNotBoolean
	}
}

// decodeStringPayload reads a length-prefixed string of either kind and
// copies the payload out of the borrowed input
func (d *Decoder) decodeStringPayload(expected tag.Major, flags cborinterfaces.Flag) ([]byte, int, error) {
	length, n, err := d.expectTagAndValue(expected, flags)
	if err != nil {
		return nil, 0, err
	}
	if uint64(d.Remaining()) < length {
		return nil, 0, errors.ErrNotEnoughInput
	}
	payload := append([]byte(nil), d.buf[d.pos:d.pos+int(length)]...)
	d.pos += int(length)
	return payload, n + int(length), nil
}

func (d *Decoder) DecodeBytes(flags cborinterfaces.Flag) ([]byte, int, error) {
	return d.decodeStringPayload(tag.ByteString, flags)
}

func (d *Decoder) DecodeText(flags cborinterfaces.Flag) (string, int, error) {
	payload, n, err := d.decodeStringPayload(tag.TextString, flags)
	if err != nil {
		return "", 0, err
	}
	return string(payload), n, nil
}

func (d *Decoder) DecodeArraySize(flags cborinterfaces.Flag) (uint64, int, error) {
	return d.expectTagAndValue(tag.Array, flags)
}

func (d *Decoder) DecodeMapSize(flags cborinterfaces.Flag) (uint64, int, error) {
	return d.expectTagAndValue(tag.Map, flags)
}

// decodeEncodedDataTag consumes the semantic "encoded CBOR data" header
// that introduces both embedded forms
func (d *Decoder) decodeEncodedDataTag(flags cborinterfaces.Flag) (int, error) {
	t, v, n, err := d.DecodeTagAndValue(flags)
	if err != nil {
		return 0, err
	}
	if t != tag.Semantic {
		return 0, errors.TagMismatchError{Expected: tag.Semantic, Actual: t}
	}
	if v != tag.EncodedCBOR {
		return 0, errors.ErrNotEncodedCBOR
	}
	return n, nil
}

func (d *Decoder) DecodeEncodedBytes(flags cborinterfaces.Flag) ([]byte, int, error) {
	n, err := d.decodeEncodedDataTag(flags)
	if err != nil {
		return nil, 0, err
	}
	payload, m, err := d.DecodeBytes(flags)
	if err != nil {
		return nil, 0, err
	}
	return payload, n + m, nil
}

// DecodeRaw reads length raw bytes without interpretation, copying
// them out of the borrowed input
func (d *Decoder) DecodeRaw(length uint64) ([]byte, int, error) {
	if uint64(d.Remaining()) < length {
		return nil, 0, errors.ErrNotEnoughInput
	}
	payload := append([]byte(nil), d.buf[d.pos:d.pos+int(length)]...)
	d.pos += int(length)
	return payload, int(length), nil
}

// DecodeEncodedBytesPrefix reads the embedded-data headers only,
// returning the announced payload length. The payload itself is left
// for the caller to consume.
func (d *Decoder) DecodeEncodedBytesPrefix(flags cborinterfaces.Flag) (uint64, int, error) {
	n, err := d.decodeEncodedDataTag(flags)
	if err != nil {
		return 0, 0, err
	}
	length, m, err := d.expectTagAndValue(tag.ByteString, flags)
	if err != nil {
		return 0, 0, err
	}
	return length, n + m, nil
}
