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
	"github.com/consensys/go-bitkit/pkg/util/math"
)

// DecodeDecimal converts a string of decimal digits into a 32-bit word.  The
// magnitude is accumulated using wrapping arithmetic, so numerals above
// 2147483647 silently wrap.  For example, DecodeDecimal("123") gives 123.
func DecodeDecimal(s string) int32 {
	return Decode(Decimal, s)
}

// DecodeBinary converts a string of binary digits into a 32-bit word.  For
// example, DecodeBinary("111") gives 7.
func DecodeBinary(s string) int32 {
	return Decode(Binary, s)
}

// DecodeHex converts a string of (uppercase) hexadecimal digits into a 32-bit
// word.  For example, DecodeHex("A6") gives 166.
func DecodeHex(s string) int32 {
	return Decode(Hex, s)
}

// Decode converts a numeral in the given base into a 32-bit word.  Digits are
// scanned from right to left, with the digit at position p (counting from zero
// on the right) contributing digit * radix^p.  No validation is performed:
// characters outside the base's alphabet produce meaningless results, and the
// empty string decodes as zero.  Use Parse for checked decoding.
func Decode(base Base, s string) int32 {
	var (
		radix  = int32(base.Radix())
		result int32
		n      = len(s)
	)
	//
	for i := n - 1; i >= 0; i-- {
		weight := math.PowInt32(radix, uint(n-1-i))
		result += base.digit(s[i]) * weight
	}
	//
	return result
}
