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
	"cmp"
	"fmt"
	"slices"
)

// Interval provides a discrete, half-open range of unsigned integers, such as
// [0,1), [1,18), etc.  An interval is never empty: the end is always strictly
// greater than the start.  Operations which could produce an empty interval
// (e.g. intersection) instead report that no interval exists.
type Interval struct {
	// First value included in this interval.
	start uint64
	// One past the last value included in this interval.
	end uint64
}

// NewInterval creates an interval representing a given range.  Observe that
// this will panic if the range is empty.
func NewInterval(start uint64, end uint64) Interval {
	// sanity check
	if start >= end {
		panic(fmt.Sprintf("invalid interval [%d,%d)", start, end))
	}
	//
	return Interval{start, end}
}

// TryNewInterval creates an interval representing a given range, or reports
// false if that range would be empty.
func TryNewInterval(start uint64, end uint64) (Interval, bool) {
	if start >= end {
		return Interval{}, false
	}
	//
	return Interval{start, end}, true
}

// Start returns the smallest value included in this interval.
func (p Interval) Start() uint64 {
	return p.start
}

// End returns one past the largest value included in this interval.
func (p Interval) End() uint64 {
	return p.end
}

// Length returns the number of values included in this interval.
func (p Interval) Length() uint64 {
	return p.end - p.start
}

// Contains checks whether a given value is contained with this interval.
func (p Interval) Contains(val uint64) bool {
	return p.start <= val && val < p.end
}

// Within checks whether this interval is contained within the given bounds.
func (p Interval) Within(q Interval) bool {
	return q.start <= p.start && p.end <= q.end
}

// Overlaps checks whether this interval shares at least one value with the
// given interval.
func (p Interval) Overlaps(q Interval) bool {
	return p.start < q.end && q.start < p.end
}

// Intersect returns the values shared by this interval and the given
// interval, or false if they share none.
func (p Interval) Intersect(q Interval) (Interval, bool) {
	return TryNewInterval(max(p.start, q.start), min(p.end, q.end))
}

// Subtract returns those parts of this interval not covered by the given
// interval.  This produces zero, one or two intervals, ordered from lowest to
// highest.
func (p Interval) Subtract(q Interval) []Interval {
	var pieces []Interval
	// Part below q
	if below, ok := TryNewInterval(p.start, min(p.end, q.start)); ok {
		pieces = append(pieces, below)
	}
	// Part above q
	if above, ok := TryNewInterval(max(p.start, q.end), p.end); ok {
		pieces = append(pieces, above)
	}
	//
	return pieces
}

// Shift translates this interval by a given signed offset.  This panics if
// either bound leaves the range of uint64, hence callers are expected to have
// established beforehand that the translation is safe.
func (p Interval) Shift(offset int64) Interval {
	start, ok1 := AddOffset(p.start, offset)
	end, ok2 := AddOffset(p.end, offset)
	//
	if !ok1 || !ok2 {
		panic(fmt.Sprintf("interval %s overflows when shifted by %d", p.String(), offset))
	}
	//
	return Interval{start, end}
}

// Equal determines whether two intervals include exactly the same values.
func (p Interval) Equal(q Interval) bool {
	return p.start == q.start && p.end == q.end
}

// Cmp orders intervals by their start, then by their end.
func (p Interval) Cmp(q Interval) int {
	if c := cmp.Compare(p.start, q.start); c != 0 {
		return c
	}
	//
	return cmp.Compare(p.end, q.end)
}

func (p Interval) String() string {
	return fmt.Sprintf("[%d,%d)", p.start, p.end)
}

// Coalesce merges any overlapping or adjacent intervals within a given set,
// returning a sorted set of disjoint intervals which covers exactly the same
// values.  The given slice is not modified.
func Coalesce(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	//
	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, Interval.Cmp)
	//
	merged := sorted[:1]
	//
	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		// Does next touch or overlap last?
		if next.start <= last.end {
			last.end = max(last.end, next.end)
		} else {
			merged = append(merged, next)
		}
	}
	//
	return merged
}
