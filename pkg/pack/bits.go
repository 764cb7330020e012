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

// BitRange extracts n bits from a word, starting at bit s (0 for the least
// significant bit).  The extracted field is treated as an n-bit two's
// complement number and is sign extended accordingly, so BitRange(0xF0, 4, 4)
// gives -1 whilst BitRange(0x55555555, 5, 7) gives 0x2A.  Here, n must be in
// [1,31] and s+n must not exceed 32.
func BitRange(num, s, n int32) int32 {
	// Move the field to the top of the word, then shift it back down
	// arithmetically so the field's top bit fills the rest.
	return num << uint(32-(n+s)) >> uint(32-n)
}

// Xor computes the bitwise exclusive-or of two words using only and, or and
// not.
func Xor(a, b int32) int32 {
	return (a & ^b) | (^a & b)
}

// PowerOf2 checks whether a word is a (strictly positive) power of two.  Since
// words are signed, neither zero nor any negative number qualifies.
func PowerOf2(n int32) bool {
	return n >= 1 && (n&(n-1)) == 0
}
