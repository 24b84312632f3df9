// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package cbor

import (
	cborinterfaces "go.e43.eu/cbor/interfaces"
	"go.e43.eu/cbor/internal/coder"
	"go.e43.eu/cbor/internal/errors"
)

const (
	None                   = cborinterfaces.None
	RequireMinimalEncoding = cborinterfaces.RequireMinimalEncoding
)

// Error values returned by the decoder and encoder. Match with
// errors.Is; tag mismatches additionally carry the expected and found
// tags as a TagMismatchError.
var (
	ErrNotEnoughInput     = errors.ErrNotEnoughInput
	ErrBadAdditionalValue = errors.ErrBadAdditionalValue
	ErrNonMinimalEncoding = errors.ErrNonMinimalEncoding
	ErrNotBoolean         = errors.ErrNotBoolean
	ErrNotEncodedCBOR     = errors.ErrNotEncodedCBOR
	ErrIntegerOverflow    = errors.ErrIntegerOverflow
	ErrTagMismatch        = errors.ErrTagMismatch
)

// TagMismatchError reports a decoded header whose major tag is not the
// one the typed decode call expected
type TagMismatchError = errors.TagMismatchError

// WidthError reports a magnitude whose representation does not fit the
// widest (8 byte) value field the format defines
type WidthError = errors.WidthError

// Constructs a new encoder with an empty output buffer
func NewEncoder() Encoder {
	return coder.NewEncoder()
}

// Constructs a new decoder reading from buf
//
// The decoder borrows buf for its lifetime; the caller must not modify
// it while the decoder is in use.
func NewDecoder(buf []byte) Decoder {
	return coder.NewDecoder(buf)
}
