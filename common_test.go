// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package cbor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.e43.eu/cbor/tag"
)

type testDirection int

const (
	bothTest testDirection = iota
	encodeTest
	decodeTest
)

// testcase describes one header encoding: a (major tag, magnitude) pair
// together with its exact wire bytes
type testcase struct {
	// Name of this test case
	Name string

	// Which directions to run this test in (defaults to both)
	Direction testDirection

	// Flags passed to the decoder
	Flags Flag

	// The major tag and magnitude of the header
	Tag   tag.Major
	Value uint64

	// The encoded representation of the header
	Bytes []byte

	// Error expected on en/decode
	EncErrorIs error
	DecErrorIs error
}

func RunTestcases(t *testing.T, tcs []testcase) {
	generatedTestcases := append([]testcase(nil), tcs...)

	// For every case the decoder accepts, build truncation variants:
	// each proper prefix of the encoding (including the empty input)
	// must fail with input exhaustion
	for _, tc := range tcs {
		if tc.Direction == encodeTest || tc.DecErrorIs != nil {
			continue
		}
		for cut := 0; cut < len(tc.Bytes); cut++ {
			vtc := tc
			vtc.Name = fmt.Sprintf("%s+truncated[:%d]", tc.Name, cut)
			vtc.Direction = decodeTest
			vtc.Bytes = tc.Bytes[:cut]
			vtc.DecErrorIs = ErrNotEnoughInput
			generatedTestcases = append(generatedTestcases, vtc)
		}
	}

	t.Parallel()

	for _, tc := range generatedTestcases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			if tc.Direction != decodeTest {
				t.Run("Encode", func(t *testing.T) {
					t.Parallel()

					e := NewEncoder()
					n, err := e.EncodeTagAndValue(tc.Tag, tc.Value)
					if tc.EncErrorIs != nil {
						require.Error(t, err, "Encoding should have returned an error")
						require.Truef(t, errors.Is(err, tc.EncErrorIs), "Error expected to be %s, but was %s", tc.EncErrorIs, err)
					} else {
						require.NoError(t, err, "Encode should succeed")
						assert.Equal(t, tc.Bytes, e.Bytes(), "Encoded bytes should match")
						assert.Equal(t, len(tc.Bytes), n, "Reported length should match bytes written")
						assert.Equal(t, len(tc.Bytes), e.Len(), "Encoder length should match bytes written")
					}
				})
			}

			if tc.Direction != encodeTest {
				t.Run("Decode", func(t *testing.T) {
					t.Parallel()

					d := NewDecoder(tc.Bytes)
					tg, v, n, err := d.DecodeTagAndValue(tc.Flags)
					if tc.DecErrorIs != nil {
						require.Error(t, err, "Decoding should have returned an error")
						require.Truef(t, errors.Is(err, tc.DecErrorIs), "Error expected to be %s, but was %s", tc.DecErrorIs, err)
					} else {
						require.NoError(t, err, "Decode should succeed")
						assert.Equal(t, tc.Tag, tg, "Decoded major tag should match")
						assert.Equal(t, tc.Value, v, "Decoded value should match")
						assert.Equal(t, len(tc.Bytes), n, "Reported length should match bytes consumed")
						assert.Equal(t, len(tc.Bytes), d.Offset(), "Cursor should sit at the end of the encoding")
						assert.Equal(t, 0, d.Remaining(), "Decode should consume the whole encoding")
					}
				})
			}
		})
	}
}
