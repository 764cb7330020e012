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
package bitvector

import (
	"math/bits"
)

// Width is the number of bits held in a bit vector.
const Width = 32

// BitVector provides a mutable register of exactly 32 bits, where bit 0 is the
// least significant (i.e. right most) bit and bit 31 the most significant.  The
// zero value is a register with every bit clear.  A BitVector is not safe for
// concurrent mutation.
type BitVector struct {
	bits uint32
}

// New constructs a bit vector with every bit clear.
func New() *BitVector {
	return &BitVector{}
}

// FromWord constructs a bit vector initialised with the bits of a given word.
func FromWord(word uint32) *BitVector {
	return &BitVector{word}
}

// Word returns the contents of this bit vector as a single word.
func (p *BitVector) Word() uint32 {
	return p.bits
}

// Set the bit at a given index (i.e. make it one).  Indices from 32 upwards
// lie outside the register and are ignored.
func (p *BitVector) Set(index uint) {
	p.bits = p.bits | mask(index)
}

// Clear the bit at a given index (i.e. make it zero).  Indices from 32
// upwards lie outside the register and are ignored.
func (p *BitVector) Clear(index uint) {
	p.bits = p.bits & ^mask(index)
}

// Toggle the bit at a given index.  Indices from 32 upwards lie outside the
// register and are ignored.
func (p *BitVector) Toggle(index uint) {
	p.bits = p.bits ^ mask(index)
}

// IsSet checks whether the bit at a given index is one.  Bits beyond the
// register are considered clear, hence this returns false for any index from
// 32 upwards.
func (p *BitVector) IsSet(index uint) bool {
	if index >= Width {
		return false
	}
	//
	return p.bits&mask(index) != 0
}

// IsClear checks whether the bit at a given index is zero.  Bits beyond the
// register are considered clear, hence this returns true for any index from
// 32 upwards.
func (p *BitVector) IsClear(index uint) bool {
	if index >= Width {
		return true
	}
	//
	return p.bits&mask(index) == 0
}

// OnesCount returns the number of bits which are currently one.
func (p *BitVector) OnesCount() uint {
	return uint(bits.OnesCount32(p.bits))
}

// ZerosCount returns the number of bits which are currently zero.
func (p *BitVector) ZerosCount() uint {
	return Width - p.OnesCount()
}

// Size returns the minimum number of bits needed to represent all of the ones
// in this bit vector.  For example, the size of 00010000 is 5.  The smallest
// size reported is 1, which includes the register where every bit is clear.
func (p *BitVector) Size() uint {
	if n := uint(bits.Len32(p.bits)); n > 1 {
		return n
	}
	//
	return 1
}

// String returns all 32 bits of this vector as a string of '0' and '1'
// characters, most significant bit first.
func (p *BitVector) String() string {
	var buf [Width]byte
	//
	for i := uint(0); i < Width; i++ {
		if p.IsSet(i) {
			buf[Width-1-i] = '1'
		} else {
			buf[Width-1-i] = '0'
		}
	}
	//
	return string(buf[:])
}

// Construct a singleton mask for a given index.  This is zero for any index
// beyond the register, since Go defines oversized shifts to produce zero.
func mask(index uint) uint32 {
	return uint32(1) << index
}
