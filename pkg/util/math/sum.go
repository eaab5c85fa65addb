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

// TotalLength sums the lengths of a given set of intervals, or returns false
// if that sum does not fit into 64 bits.  Observe that overlapping intervals
// are counted multiple times.
func TotalLength(intervals ...Interval) (uint64, bool) {
	var (
		sum uint64
		ok  = true
	)
	//
	for _, item := range intervals {
		if sum, ok = AddUint64(sum, item.Length()); !ok {
			return 0, false
		}
	}
	//
	return sum, true
}
