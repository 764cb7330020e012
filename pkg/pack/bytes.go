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
package pack

// A word is made of four bytes, numbered from least to most significant:
//
//	3322222222221111111111
//	10987654321098765432109876543210
//	-------+-------+-------+-------+
//	 Byte 3| Byte 2| Byte 1| Byte 0|
//
// Likewise, it is made of eight nibbles (N7 .. N0).  None of the functions
// here check their index arguments.  Indices beyond the word give zero (Go
// defines oversized shifts), whilst negative indices panic.

// SetByte replaces the byte of a word at a given index (0 for the least
// significant byte) with the low eight bits of value.  All other bytes are
// preserved.  For example, SetByte(0x56B218F9, 0x44, 3) gives 0x44B218F9.
func SetByte(word, value, index int32) int32 {
	var (
		shift = uint(index) << 3
		mask  = int32(0xFF) << shift
	)
	//
	return ((value & 0xFF) << shift) | (word & ^mask)
}

// GetByte returns the byte of a word at a given index, right-aligned.
func GetByte(word, index int32) int32 {
	return (word >> (uint(index) << 3)) & 0xFF
}

// GetNibble returns the nibble of a word at a given index (0 for the least
// significant nibble), right-aligned.  For example, GetNibble(0x56781234, 3)
// gives 0x1.
func GetNibble(word, index int32) int32 {
	return (word >> (uint(index) << 2)) & 0xF
}

// Pack concatenates four bytes into a single word, with b3 as the most
// significant byte.  For example, Pack(0xDE, 0xAD, 0xBE, 0xEF) gives
// 0xDEADBEEF.  Each argument is expected to be in the range [0,255].
func Pack(b3, b2, b1, b0 int32) int32 {
	return b0 | (b1 << 8) | (b2 << 16) | (b3 << 24)
}

// Unpack splits a word into its four bytes, most significant first.  This is
// the inverse of Pack.
func Unpack(word int32) (b3, b2, b1, b0 int32) {
	return GetByte(word, 3), GetByte(word, 2), GetByte(word, 1), GetByte(word, 0)
}
