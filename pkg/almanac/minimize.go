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
package almanac

import "slices"

// Min returns the smallest value in a given seed set.  For a ranged set this is
// the smallest start of any range.
func Min(set SeedSet) (uint64, error) {
	if set.IsEmpty() {
		return 0, ErrEmptyResult
	} else if !set.IsRanged() {
		return slices.Min(set.points), nil
	}
	//
	least := set.ranges[0].Start()
	//
	for _, r := range set.ranges[1:] {
		least = min(least, r.Start())
	}
	//
	return least, nil
}
