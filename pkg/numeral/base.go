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
	"strings"

	"github.com/pkg/errors"
)

// Base identifies one of the supported numeral systems.  Each base determines
// both the radix used for positional weighting and the alphabet of digits
// which may appear in a numeral.
type Base uint8

const (
	// Decimal numerals use the digits '0'-'9'.
	Decimal Base = iota
	// Binary numerals use the digits '0' and '1'.
	Binary
	// Hex numerals use the digits '0'-'9' and the uppercase letters 'A'-'F'.
	Hex
)

// ParseBase determines the base corresponding to a given name, such as "hex"
// or "16".  Names are matched case-insensitively.
func ParseBase(name string) (Base, error) {
	switch strings.ToLower(name) {
	case "dec", "decimal", "10":
		return Decimal, nil
	case "bin", "binary", "2":
		return Binary, nil
	case "hex", "hexadecimal", "16":
		return Hex, nil
	}
	//
	return Decimal, errors.Wrapf(ErrUnknownBase, "%q", name)
}

// Radix returns the number of distinct digits in this base.
func (b Base) Radix() uint {
	switch b {
	case Binary:
		return 2
	case Hex:
		return 16
	default:
		return 10
	}
}

// Digit returns the value of a given character when read as a digit of this
// base, or false if the character is not part of the base's alphabet.
func (b Base) Digit(c byte) (int32, bool) {
	var ok bool
	//
	switch b {
	case Binary:
		ok = c == '0' || c == '1'
	case Hex:
		ok = (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
	default:
		ok = c >= '0' && c <= '9'
	}
	//
	return b.digit(c), ok
}

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Hex:
		return "hex"
	default:
		return "decimal"
	}
}

// digit maps a character onto its digit value without checking that it belongs
// to the alphabet.  Letters are only meaningful for hex, where anything beyond
// '9' is assumed to be one of 'A'-'F'.
func (b Base) digit(c byte) int32 {
	if b == Hex && c > '9' {
		return int32(c) - 'A' + 10
	}
	//
	return int32(c) - '0'
}
