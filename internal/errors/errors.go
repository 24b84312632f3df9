// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package errors

import (
	"fmt"

	"github.com/pkg/errors"

	"go.e43.eu/cbor/tag"
)

var (
	// Input exhausted at a header octet or inside a required trailing
	// field (value bytes or string payload)
	ErrNotEnoughInput = errors.New("cbor: not enough input")

	// Minor indicator outside the defined set (28..31 on the header
	// decode path)
	ErrBadAdditionalValue = errors.New("cbor: bad additional value")

	// RequireMinimalEncoding was set and the value field was wider than
	// the value requires
	ErrNonMinimalEncoding = errors.New("cbor: encoding not minimal")

	// Simple value other than true or false where a boolean was expected
	ErrNotBoolean = errors.New("cbor: not a boolean")

	// Semantic tag other than "encoded CBOR data" where an embedded
	// item was expected
	ErrNotEncodedCBOR = errors.New("cbor: not encoded CBOR data")

	// Decoded integer magnitude does not fit the int64 result
	ErrIntegerOverflow = errors.New("cbor: integer exceeds representable range")

	// Decoded major tag differs from the one the call expects. Returned
	// errors are of type TagMismatchError; match with errors.Is
	ErrTagMismatch = errors.New("cbor: major tag mismatch")
)

// TagMismatchError reports a decoded header whose major tag is not the
// one the typed decode call expected
type TagMismatchError struct {
	Expected, Actual tag.Major
}

func (e TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}

func (e TagMismatchError) Error() string {
	return fmt.Sprintf("cbor: expected major tag %s, but found %s", e.Expected, e.Actual)
}

// WidthError reports a magnitude whose representation does not fit the
// widest (8 byte) value field the format defines
type WidthError struct {
	Length int
}

func (e WidthError) Error() string {
	return fmt.Sprintf("cbor: unsupported byte length %d for value field", e.Length)
}
