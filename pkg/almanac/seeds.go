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

import (
	"fmt"
	"slices"

	"github.com/consensys/go-almanac/pkg/util/math"
)

// Pairing determines how consecutive pairs of seeds are turned into ranges.
type Pairing uint8

const (
	// PairBounds treats a pair (a,b) as the range [min(a,b),max(a,b)).
	PairBounds Pairing = iota
	// PairStartLength treats a pair (a,b) as the range [a,a+b).
	PairStartLength
)

// ParsePairing converts the name of a pairing (as reported by String) back
// into a pairing.
func ParsePairing(name string) (Pairing, error) {
	switch name {
	case "bounds":
		return PairBounds, nil
	case "length":
		return PairStartLength, nil
	default:
		return 0, fmt.Errorf("unknown pairing \"%s\" (expected bounds or length)", name)
	}
}

func (p Pairing) String() string {
	switch p {
	case PairBounds:
		return "bounds"
	case PairStartLength:
		return "length"
	default:
		return fmt.Sprintf("pairing(%d)", uint8(p))
	}
}

// SeedSet represents a set of integers either as individual points, or as a
// set of ranges.  Whilst the two representations are interchangeable, the
// latter allows very large sets to be represented compactly.
type SeedSet struct {
	ranged bool
	points []uint64
	ranges []math.Interval
}

// PointSet constructs a seed set from zero or more individual values.  The
// given values are copied.
func PointSet(points ...uint64) SeedSet {
	return SeedSet{false, slices.Clone(points), nil}
}

// RangeSet constructs a seed set from zero or more ranges.  The given ranges
// are copied.
func RangeSet(ranges ...math.Interval) SeedSet {
	return SeedSet{true, nil, slices.Clone(ranges)}
}

// ExpandPoints turns each seed into a point of the resulting set.
func ExpandPoints(seeds []uint64) SeedSet {
	return PointSet(seeds...)
}

// ExpandRanges consumes seeds in consecutive pairs, turning each pair into a
// range according to the given pairing.  Pairs which denote an empty range are
// dropped.  This fails if there is an odd number of seeds.
func ExpandRanges(seeds []uint64, pairing Pairing) (SeedSet, error) {
	var ranges []math.Interval
	//
	if len(seeds)%2 != 0 {
		return SeedSet{}, fmt.Errorf("%w: odd number of seeds (%d), last seed %d is unpaired",
			ErrMalformedInput, len(seeds), seeds[len(seeds)-1])
	}
	//
	for i := 0; i < len(seeds); i += 2 {
		var (
			first, second = seeds[i], seeds[i+1]
			start, end    uint64
		)
		//
		switch pairing {
		case PairBounds:
			start, end = min(first, second), max(first, second)
		case PairStartLength:
			var ok bool
			//
			if end, ok = math.AddUint64(first, second); !ok {
				return SeedSet{}, fmt.Errorf("%w: seed range %d+%d", ErrOverflow, first, second)
			}
			//
			start = first
		default:
			return SeedSet{}, fmt.Errorf("%w: unknown pairing %s", ErrMalformedInput, pairing)
		}
		//
		if r, ok := math.TryNewInterval(start, end); ok {
			ranges = append(ranges, r)
		}
	}
	//
	return RangeSet(ranges...), nil
}

// IsRanged determines whether or not this set is represented as ranges.
func (p SeedSet) IsRanged() bool {
	return p.ranged
}

// Points returns the points of this set, or nil if it is represented as
// ranges.
func (p SeedSet) Points() []uint64 {
	return slices.Clone(p.points)
}

// Ranges returns the ranges of this set, or nil if it is represented as
// points.
func (p SeedSet) Ranges() []math.Interval {
	return slices.Clone(p.ranges)
}

// Len returns the number of points or ranges making up this set.
func (p SeedSet) Len() uint {
	if p.ranged {
		return uint(len(p.ranges))
	}
	//
	return uint(len(p.points))
}

// IsEmpty determines whether this set has no members.
func (p SeedSet) IsEmpty() bool {
	return p.Len() == 0
}

// Size returns the total number of values in this set, or false if that
// number does not fit into 64 bits.  Observe that overlapping ranges (or
// repeated points) are counted multiple times.
func (p SeedSet) Size() (uint64, bool) {
	if p.ranged {
		return math.TotalLength(p.ranges...)
	}
	//
	return uint64(len(p.points)), true
}

// Enumerate converts this set into an equivalent set of individual points,
// provided the number of points does not exceed a given limit.
func (p SeedSet) Enumerate(limit uint64) (SeedSet, error) {
	if !p.ranged {
		return p, nil
	} else if size, ok := p.Size(); !ok || size > limit {
		return SeedSet{}, fmt.Errorf("%w: more than %d values", ErrTooLarge, limit)
	}
	//
	var points []uint64
	//
	for _, r := range p.ranges {
		for v := r.Start(); v < r.End(); v++ {
			points = append(points, v)
		}
	}
	//
	return SeedSet{false, points, nil}, nil
}

func (p SeedSet) String() string {
	if p.ranged {
		return fmt.Sprintf("%v", p.ranges)
	}
	//
	return fmt.Sprintf("%v", p.points)
}
