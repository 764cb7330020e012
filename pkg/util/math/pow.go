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
package math

// PowInt32 raises a given base to a given power using 32-bit two's complement
// arithmetic.  Intermediate products wrap silently, exactly as the native
// machine word does, hence PowInt32(10, 10) does not equal 10000000000.
func PowInt32(base int32, exp uint) int32 {
	result := int32(1)
	//
	for exp != 0 {
		if exp&1 == 1 {
			result *= base
		}
		// div 2
		exp >>= 1
		base *= base
	}
	//
	return result
}
