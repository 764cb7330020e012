// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package numeral

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decode_00(t *testing.T) {
	assert.Equal(t, int32(123), DecodeDecimal("123"))
	assert.Equal(t, int32(7), DecodeBinary("111"))
	assert.Equal(t, int32(166), DecodeHex("A6"))
}

func Test_Decode_01(t *testing.T) {
	tests := []struct {
		base     Base
		numeral  string
		expected int32
	}{
		{Decimal, "0", 0},
		{Decimal, "7", 7},
		{Decimal, "0042", 42},
		{Decimal, "2147483647", math.MaxInt32},
		{Binary, "0", 0},
		{Binary, "1", 1},
		{Binary, "10000000000", 1024},
		{Binary, "01111111111111111111111111111111", math.MaxInt32},
		{Hex, "0", 0},
		{Hex, "F", 15},
		{Hex, "DEADBEEF", -559038737},
		{Hex, "7FFFFFFF", math.MaxInt32},
		{Hex, "0000000000A6", 166},
	}
	//
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Decode(tt.base, tt.numeral), "%s numeral %q", tt.base, tt.numeral)
	}
}

func Test_Decode_02(t *testing.T) {
	// Magnitudes beyond the word width wrap silently.
	assert.Equal(t, int32(math.MinInt32), DecodeDecimal("2147483648"))
	assert.Equal(t, int32(-1), DecodeDecimal("4294967295"))
	assert.Equal(t, int32(0), DecodeDecimal("4294967296"))
	assert.Equal(t, int32(-1), DecodeHex("FFFFFFFF"))
	assert.Equal(t, int32(1), DecodeHex("100000001"))
	assert.Equal(t, int32(math.MinInt32), DecodeBinary("10000000000000000000000000000000"))
}

func Test_Decode_03(t *testing.T) {
	assert.Equal(t, int32(0), DecodeDecimal(""))
	assert.Equal(t, int32(0), DecodeBinary(""))
	assert.Equal(t, int32(0), DecodeHex(""))
}

func Test_Encode_00(t *testing.T) {
	assert.Equal(t, "0", EncodeBinary(0))
	assert.Equal(t, "0", EncodeHex(0))
	assert.Equal(t, "111", EncodeBinary(7))
	assert.Equal(t, "A6", EncodeHex(166))
	assert.Equal(t, "10000000000", EncodeBinary(1024))
	assert.Equal(t, "7FFFFFFF", EncodeHex(math.MaxInt32))
}

func Test_Encode_01(t *testing.T) {
	// Negative words are rendered as their unsigned bit pattern.
	assert.Equal(t, "11111111111111111111111111111111", EncodeBinary(-1))
	assert.Equal(t, "10000000000000000000000000000000", EncodeBinary(math.MinInt32))
	assert.Equal(t, "FFFFFFFF", EncodeHex(-1))
	assert.Equal(t, "DEADBEEF", EncodeHex(-559038737))
	assert.Equal(t, "4294967295", Encode(Decimal, -1))
}

func Test_Encode_02(t *testing.T) {
	assert.Equal(t, "123", Encode(Decimal, 123))
	assert.Equal(t, "0", Encode(Decimal, 0))
	assert.Equal(t, "111", Encode(Binary, 7))
	assert.Equal(t, "A6", Encode(Hex, 166))
}

func Test_RoundTrip_00(t *testing.T) {
	for _, n := range []int32{0, 1, 2, 9, 10, 15, 16, 255, 256, math.MaxInt32, -1, math.MinInt32} {
		checkRoundTrip(t, n)
	}
}

func Test_RoundTrip_01(t *testing.T) {
	for i := int32(0); i < 4096; i++ {
		checkRoundTrip(t, i)
	}
}

func Test_RoundTrip_02(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Really hammer it.
	for i := 0; i < 100000; i++ {
		checkRoundTrip(t, int32(rng.Uint32()))
	}
}

func Test_Parse_00(t *testing.T) {
	for _, s := range []string{"0", "123", "2147483647", "4294967295"} {
		n, err := ParseDecimal(s)
		require.NoError(t, err)
		assert.Equal(t, DecodeDecimal(s), n)
	}
	//
	n, err := ParseBinary("111")
	require.NoError(t, err)
	assert.Equal(t, int32(7), n)
	//
	n, err = ParseHex("A6")
	require.NoError(t, err)
	assert.Equal(t, int32(166), n)
}

func Test_Parse_01(t *testing.T) {
	tests := []struct {
		base    Base
		numeral string
		cause   error
	}{
		{Decimal, "", ErrEmpty},
		{Binary, "", ErrEmpty},
		{Hex, "", ErrEmpty},
		{Decimal, "12a", ErrInvalidDigit},
		{Decimal, "-12", ErrInvalidDigit},
		{Decimal, " 1", ErrInvalidDigit},
		{Binary, "102", ErrInvalidDigit},
		{Binary, "2", ErrInvalidDigit},
		{Hex, "a6", ErrInvalidDigit},
		{Hex, "0xA6", ErrInvalidDigit},
		{Hex, "G", ErrInvalidDigit},
	}
	//
	for _, tt := range tests {
		_, err := Parse(tt.base, tt.numeral)
		require.Error(t, err, "%s numeral %q", tt.base, tt.numeral)
		assert.Equal(t, tt.cause, errors.Cause(err), "%s numeral %q", tt.base, tt.numeral)
	}
}

func Test_Base_00(t *testing.T) {
	tests := []struct {
		name     string
		expected Base
	}{
		{"dec", Decimal},
		{"Decimal", Decimal},
		{"10", Decimal},
		{"bin", Binary},
		{"BINARY", Binary},
		{"2", Binary},
		{"hex", Hex},
		{"hexadecimal", Hex},
		{"16", Hex},
	}
	//
	for _, tt := range tests {
		base, err := ParseBase(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, base)
	}
	//
	_, err := ParseBase("octal")
	assert.Equal(t, ErrUnknownBase, errors.Cause(err))
}

func Test_Base_01(t *testing.T) {
	assert.Equal(t, uint(10), Decimal.Radix())
	assert.Equal(t, uint(2), Binary.Radix())
	assert.Equal(t, uint(16), Hex.Radix())
	//
	for _, c := range []byte("0123456789ABCDEF") {
		v, ok := Hex.Digit(c)
		assert.True(t, ok)
		assert.Equal(t, int32(indexOf(c)), v)
	}
	//
	_, ok := Hex.Digit('f')
	assert.False(t, ok)
	_, ok = Decimal.Digit('A')
	assert.False(t, ok)
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkRoundTrip(t *testing.T, n int32) {
	for _, base := range []Base{Decimal, Binary, Hex} {
		numeral := Encode(base, n)
		// Encoded numerals must always be well-formed
		m, err := Parse(base, numeral)
		if err != nil {
			t.Fatalf("%s encoding of %d gave malformed %q: %v", base, n, numeral, err)
		} else if m != n {
			t.Fatalf("%s encoding of %d gave %q which decoded to %d", base, n, numeral, m)
		} else if len(numeral) > 1 && numeral[0] == '0' {
			t.Fatalf("%s encoding of %d has leading zeros: %q", base, n, numeral)
		}
	}
	//
	if x := DecodeBinary(EncodeBinary(n)); x != n {
		t.Fatalf("binary round trip of %d gave %d", n, x)
	} else if x := DecodeHex(EncodeHex(n)); x != n {
		t.Fatalf("hex round trip of %d gave %d", n, x)
	}
}

func indexOf(c byte) int {
	for i := range digits {
		if digits[i] == c {
			return i
		}
	}
	//
	return -1
}
