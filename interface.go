// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package cbor implements encoding and decoding of a compact subset of
// the CBOR wire format (RFC 7049): a length-prefixed, self-describing,
// tag-based binary serialization.
//
// The Encoder/Decoder types in this package offer low level marshalling
// of individual data items; composing them into messages, and walking
// the elements of arrays and maps, is left to the caller.
//
// Every item begins with a single header octet packing a 3-bit major
// type tag with a 5-bit minor indicator:
//
//       header octet = (major << 5) | minor
//
// A minor indicator below 24 is the item's magnitude itself; indicators
// 24, 25, 26 and 27 announce a trailing big-endian value field of 1, 2,
// 4 or 8 bytes. The encoder always chooses the narrowest emittable
// width for a magnitude.
//
// The mapping from Go types to CBOR is:
//
//                    Go | CBOR
//     ------------------+---------------------------------------
//                uint64 | unsigned integer (major 0)
//                 int64 | unsigned or negative integer (major 0/1)
//                []byte | byte string (major 2)
//                string | text string, UTF-8 (major 3)
//       uint64 (counts) | array / map size header (major 4/5)
//       []byte (nested) | embedded CBOR data (major 6, tag 24)
//                  bool | simple value true/false (major 7)
//
// Array and map headers carry only the element or pair count; the
// elements themselves are encoded by further calls on the same Encoder,
// and read back in the same order on decode. Floating point values and
// indefinite-length (streaming) encodings are not supported.
//
// Decoding is strictly bounds checked: a header or payload that runs
// past the end of the input fails with ErrNotEnoughInput, a reserved
// minor indicator fails with ErrBadAdditionalValue, and a typed decode
// which finds a different major tag than it expects fails with a
// TagMismatchError naming both tags. Every failure is terminal for the
// call; no partial result is produced and the decode of that value must
// be restarted from its first byte.
//
// The optional RequireMinimalEncoding flag, passed per decode call,
// additionally rejects headers whose value field is wider than the
// decoded magnitude requires.
package cbor

import (
	cborinterfaces "go.e43.eu/cbor/interfaces"
)

// interface Encoder is the interface to the CBOR encoder
type Encoder = cborinterfaces.Encoder

// interface Decoder is the interface to the CBOR decoder
type Decoder = cborinterfaces.Decoder

// Flag is a set of decode options, passed on each decode call
type Flag = cborinterfaces.Flag
