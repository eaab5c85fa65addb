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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Interval_Intersect_0(t *testing.T) {
	checkIntersect(t, NewInterval(0, 5), NewInterval(5, 10))
}

func Test_Interval_Intersect_1(t *testing.T) {
	checkIntersect(t, NewInterval(0, 6), NewInterval(5, 10), NewInterval(5, 6))
}

func Test_Interval_Intersect_2(t *testing.T) {
	checkIntersect(t, NewInterval(10, 15), NewInterval(10, 13), NewInterval(10, 13))
}

func Test_Interval_Intersect_3(t *testing.T) {
	checkIntersect(t, NewInterval(2, 3), NewInterval(0, 100), NewInterval(2, 3))
}

func Test_Interval_Subtract_0(t *testing.T) {
	checkSubtract(t, NewInterval(10, 15), NewInterval(10, 13), NewInterval(13, 15))
}

func Test_Interval_Subtract_1(t *testing.T) {
	checkSubtract(t, NewInterval(0, 20), NewInterval(10, 13), NewInterval(0, 10), NewInterval(13, 20))
}

func Test_Interval_Subtract_2(t *testing.T) {
	checkSubtract(t, NewInterval(10, 13), NewInterval(0, 20))
}

func Test_Interval_Subtract_3(t *testing.T) {
	checkSubtract(t, NewInterval(0, 5), NewInterval(7, 9), NewInterval(0, 5))
}

func Test_Interval_Shift_0(t *testing.T) {
	assert.Equal(t, NewInterval(15, 18), NewInterval(10, 13).Shift(5))
	assert.Equal(t, NewInterval(7, 12), NewInterval(10, 15).Shift(-3))
}

func Test_Interval_Shift_1(t *testing.T) {
	assert.Panics(t, func() { NewInterval(2, 5).Shift(-3) })
	assert.Panics(t, func() { NewInterval(10, ^uint64(0)).Shift(1) })
}

func Test_Interval_Empty(t *testing.T) {
	assert.Panics(t, func() { NewInterval(5, 5) })
	//
	_, ok := TryNewInterval(7, 3)
	assert.False(t, ok)
}

func Test_Coalesce_0(t *testing.T) {
	assert.Empty(t, Coalesce(nil))
}

func Test_Coalesce_1(t *testing.T) {
	input := []Interval{NewInterval(15, 18), NewInterval(13, 15), NewInterval(30, 31)}
	//
	assert.Equal(t, []Interval{NewInterval(13, 18), NewInterval(30, 31)}, Coalesce(input))
	// Input must be left untouched
	assert.Equal(t, NewInterval(15, 18), input[0])
}

func Test_Coalesce_2(t *testing.T) {
	input := []Interval{NewInterval(0, 10), NewInterval(2, 4), NewInterval(9, 12)}
	//
	assert.Equal(t, []Interval{NewInterval(0, 12)}, Coalesce(input))
}

func Test_TotalLength(t *testing.T) {
	n, ok := TotalLength(NewInterval(15, 18), NewInterval(13, 15))
	assert.True(t, ok)
	assert.Equal(t, uint64(5), n)
	//
	_, ok = TotalLength(NewInterval(0, ^uint64(0)), NewInterval(0, 2))
	assert.False(t, ok)
}

func checkIntersect(t *testing.T, lhs Interval, rhs Interval, expected ...Interval) {
	// Intersection is symmetric
	for _, pair := range [][2]Interval{{lhs, rhs}, {rhs, lhs}} {
		actual, ok := pair[0].Intersect(pair[1])
		//
		if len(expected) == 0 && ok {
			t.Errorf("%s ∩ %s == %s, expected nothing", pair[0], pair[1], actual)
		} else if len(expected) == 1 && (!ok || !actual.Equal(expected[0])) {
			t.Errorf("%s ∩ %s == %s, expected %s", pair[0], pair[1], actual, expected[0])
		}
		// Overlap must agree with intersection
		if pair[0].Overlaps(pair[1]) != ok {
			t.Errorf("%s overlaps %s inconsistent with intersection", pair[0], pair[1])
		}
	}
}

func checkSubtract(t *testing.T, lhs Interval, rhs Interval, expected ...Interval) {
	actual := lhs.Subtract(rhs)
	//
	if len(expected) == 0 {
		assert.Empty(t, actual)
	} else {
		assert.Equal(t, expected, actual)
	}
}
