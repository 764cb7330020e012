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

const digits = "0123456789ABCDEF"

// EncodeBinary converts a word into its minimal binary numeral, most
// significant bit first.  Zero is encoded as "0".  Digits are extracted using
// a logical shift, hence a negative word is rendered as its 32-bit unsigned
// pattern (e.g. -1 gives thirty-two ones).
func EncodeBinary(n int32) string {
	return encodeShift(uint32(n), 1)
}

// EncodeHex converts a word into its minimal uppercase hexadecimal numeral,
// without leading zeros.  Zero is encoded as "0", whilst a negative word is
// rendered as its 32-bit unsigned pattern (e.g. -1 gives "FFFFFFFF").
func EncodeHex(n int32) string {
	return encodeShift(uint32(n), 4)
}

// Encode converts a word into its minimal numeral in the given base.  Decimal
// numerals render the unsigned magnitude of the word's bit pattern, so that
// Decode(b, Encode(b, n)) == n holds for every base.
func Encode(base Base, n int32) string {
	switch base {
	case Binary:
		return EncodeBinary(n)
	case Hex:
		return EncodeHex(n)
	default:
		return encodeDivide(uint32(n), 10)
	}
}

// Extract digits for a power-of-two radix by repeatedly masking off the lowest
// digit and then shifting it out.
func encodeShift(word uint32, width uint) string {
	var (
		// 32 binary digits is the longest possible numeral.
		buf  [32]byte
		i    = len(buf)
		mask = uint32(1)<<width - 1
	)
	//
	for word != 0 {
		i--
		buf[i] = digits[word&mask]
		word >>= width
	}
	//
	return finish(buf[i:])
}

func encodeDivide(word uint32, radix uint32) string {
	var (
		buf [32]byte
		i   = len(buf)
	)
	//
	for word != 0 {
		i--
		buf[i] = digits[word%radix]
		word /= radix
	}
	//
	return finish(buf[i:])
}

func finish(numeral []byte) string {
	if len(numeral) == 0 {
		return "0"
	}
	//
	return string(numeral)
}
