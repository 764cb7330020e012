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
	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned when parsing a numeral with no digits.
	ErrEmpty = errors.New("empty numeral")
	// ErrInvalidDigit is returned when a numeral contains a character outside
	// the alphabet of its base.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrUnknownBase is returned by ParseBase for unrecognised names.
	ErrUnknownBase = errors.New("unknown base")
)

// Parse checks that a given string is a well-formed numeral in the given base
// and, if so, decodes it.  For any well-formed numeral the result is identical
// to that of Decode.
func Parse(base Base, s string) (int32, error) {
	if len(s) == 0 {
		return 0, errors.Wrapf(ErrEmpty, "%s numeral", base)
	}
	//
	for i := 0; i < len(s); i++ {
		if _, ok := base.Digit(s[i]); !ok {
			return 0, errors.Wrapf(ErrInvalidDigit, "%q at position %d of %s numeral %q", s[i], i, base, s)
		}
	}
	//
	return Decode(base, s), nil
}

// ParseDecimal is a checked variant of DecodeDecimal.
func ParseDecimal(s string) (int32, error) {
	return Parse(Decimal, s)
}

// ParseBinary is a checked variant of DecodeBinary.
func ParseBinary(s string) (int32, error) {
	return Parse(Binary, s)
}

// ParseHex is a checked variant of DecodeHex.
func ParseHex(s string) (int32, error) {
	return Parse(Hex, s)
}
