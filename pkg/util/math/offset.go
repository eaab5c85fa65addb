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

import "math/bits"

const (
	maxInt64 = uint64(1<<63 - 1)
	// magnitude of the smallest int64
	minInt64Magnitude = uint64(1 << 63)
)

// AddUint64 returns the sum of two unsigned values, or false if that sum does
// not fit into 64 bits.
func AddUint64(lhs uint64, rhs uint64) (uint64, bool) {
	sum, carry := bits.Add64(lhs, rhs, 0)
	//
	return sum, carry == 0
}

// AddOffset applies a signed offset to an unsigned value, or returns false if
// the result would be negative or would not fit into 64 bits.
func AddOffset(value uint64, offset int64) (uint64, bool) {
	if offset >= 0 {
		return AddUint64(value, uint64(offset))
	}
	// Compute magnitude without negating (which overflows for MinInt64)
	magnitude := uint64(-(offset + 1)) + 1
	//
	if magnitude > value {
		return 0, false
	}
	//
	return value - magnitude, true
}

// Delta returns the signed offset which takes source to target (i.e. target -
// source), or false if that offset cannot be represented as an int64.
func Delta(target uint64, source uint64) (int64, bool) {
	if target >= source {
		diff := target - source
		//
		if diff > maxInt64 {
			return 0, false
		}
		//
		return int64(diff), true
	}
	// Negative offset
	diff := source - target
	//
	switch {
	case diff > minInt64Magnitude:
		return 0, false
	case diff == minInt64Magnitude:
		return -1 << 63, true
	default:
		return -int64(diff), true
	}
}
