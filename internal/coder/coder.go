// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package coder implements the CBOR encode/decode engine: the shared
// tag-and-value header algorithm and the typed operations built on it.
package coder

import (
	"math/bits"

	"go.e43.eu/cbor/tag"
)

// byteLength returns the number of value-field bytes needed to carry v.
// Values below the inline threshold fit in the header octet itself and
// need none.
func byteLength(v uint64) int {
	if v < uint64(tag.Length1) {
		return 0
	}
	return (bits.Len64(v) + 7) / 8
}

// minimalWidth returns the narrowest value-field width the format can
// emit for v: one of 0, 1, 2, 4 or 8. Lengths of 3 round up to 4 and
// lengths of 5 through 7 round up to 8.
func minimalWidth(v uint64) int {
	switch l := byteLength(v); {
	case l <= 2:
		return l
	case l <= 4:
		return 4
	default:
		return 8
	}
}
