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
	"sort"
	"strings"

	"github.com/consensys/go-almanac/pkg/util/collection/stack"
	"github.com/consensys/go-almanac/pkg/util/math"
)

// Entry associates a domain interval with the signed offset added to every
// value within it.
type Entry struct {
	Domain math.Interval
	Offset int64
}

// NewEntry constructs an entry translating the values [start,end) by a given
// offset.
func NewEntry(start uint64, end uint64, offset int64) Entry {
	return Entry{math.NewInterval(start, end), offset}
}

// Image returns the interval to which this entry's domain is translated.
func (e Entry) Image() math.Interval {
	return e.Domain.Shift(e.Offset)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s%+d", e.Domain.String(), e.Offset)
}

// apply the offset of this entry to a value known to be within its domain.
func (e Entry) apply(value uint64) uint64 {
	image, ok := math.AddOffset(value, e.Offset)
	// Should be impossible for a validated stage
	if !ok {
		panic(fmt.Sprintf("value %d overflows entry %s", value, e.String()))
	}
	//
	return image
}

// Triple is a single row of a lookup table, as given in the input document:
// the Length values starting at Source are sent to those starting at Target.
type Triple struct {
	Target uint64
	Source uint64
	Length uint64
}

// Entry converts this triple into the corresponding stage entry.  This returns
// false for a zero-length triple, and fails if any bound or the offset cannot
// be represented.
func (t Triple) Entry() (Entry, bool, error) {
	var (
		srcEnd, ok1 = math.AddUint64(t.Source, t.Length)
		_, ok2      = math.AddUint64(t.Target, t.Length)
		offset, ok3 = math.Delta(t.Target, t.Source)
	)
	//
	if t.Length == 0 {
		return Entry{}, false, nil
	} else if !ok1 || !ok2 || !ok3 {
		return Entry{}, false, fmt.Errorf("%w: row %d %d %d", ErrOverflow, t.Target, t.Source, t.Length)
	}
	//
	return Entry{math.NewInterval(t.Source, srcEnd), offset}, true, nil
}

// Stage is a lookup table mapping each of a number of disjoint domain intervals
// by a fixed offset.  Values not covered by any domain are mapped to themselves.
// A stage is immutable once constructed, and can be safely shared between
// goroutines.
type Stage struct {
	// Entries sorted by the start of their domain.
	entries []Entry
}

// NewStage constructs a stage from a given set of entries, which can be given
// in any order.  This fails if any two domains overlap, or if the image of any
// domain cannot be represented.
func NewStage(entries ...Entry) (*Stage, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(l, r Entry) int {
		return l.Domain.Cmp(r.Domain)
	})
	//
	for i, e := range sorted {
		if e.Domain.Length() == 0 {
			return nil, fmt.Errorf("%w: entry with empty domain", ErrMalformedStage)
		} else if i > 0 && sorted[i-1].Domain.Overlaps(e.Domain) {
			return nil, fmt.Errorf("%w: %s overlaps %s", ErrMalformedStage, sorted[i-1], e)
		}
		// Check both bounds of the image
		_, ok1 := math.AddOffset(e.Domain.Start(), e.Offset)
		_, ok2 := math.AddOffset(e.Domain.End(), e.Offset)
		//
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: image of %s", ErrOverflow, e)
		}
	}
	//
	return &Stage{sorted}, nil
}

// StageFromTriples constructs a stage from the rows of a lookup table, where
// zero-length rows are ignored.
func StageFromTriples(triples ...Triple) (*Stage, error) {
	entries := make([]Entry, 0, len(triples))
	//
	for _, t := range triples {
		if e, ok, err := t.Entry(); err != nil {
			return nil, err
		} else if ok {
			entries = append(entries, e)
		}
	}
	//
	return NewStage(entries...)
}

// Len returns the number of entries in this stage.
func (p *Stage) Len() uint {
	return uint(len(p.entries))
}

// Entries returns a copy of the entries of this stage, sorted by domain.
func (p *Stage) Entries() []Entry {
	return slices.Clone(p.entries)
}

// LookupScalar returns the image of a single value under this stage.
func (p *Stage) LookupScalar(value uint64) uint64 {
	if e, ok := p.find(value); ok {
		return e.apply(value)
	}
	// Not covered, so identity
	return value
}

// LookupPoints returns the images of a set of values under this stage, such
// that the ith image corresponds to the ith value.  The given values are not
// modified.
func (p *Stage) LookupPoints(points []uint64) []uint64 {
	var (
		images = slices.Clone(points)
		// Records which points have already been translated by an earlier
		// entry in this stage.
		translated = make([]bool, len(points))
	)
	//
	for _, e := range p.entries {
		for i, v := range points {
			if !translated[i] && e.Domain.Contains(v) {
				images[i] = e.apply(v)
				translated[i] = true
			}
		}
	}
	//
	return images
}

// LookupRanges returns the image of the union of a set of ranges under this
// stage.  Ranges are split around the domain intervals they overlap, and each
// piece is translated independently.  The resulting pieces are not merged, and
// their order is unspecified.  The given ranges are not modified.
func (p *Stage) LookupRanges(ranges []math.Interval) []math.Interval {
	var (
		images   = make([]math.Interval, 0, len(ranges))
		worklist = stack.NewStack(ranges...)
	)
	//
	for !worklist.IsEmpty() {
		next := worklist.Pop()
		//
		if e, ok := p.firstOverlap(next); !ok {
			// Not covered, so identity
			images = append(images, next)
		} else {
			overlap, _ := next.Intersect(e.Domain)
			// Translate covered piece
			images = append(images, overlap.Shift(e.Offset))
			// Leftovers may overlap other entries
			worklist.Push(next.Subtract(overlap)...)
		}
	}
	//
	return images
}

func (p *Stage) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, e := range p.entries {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Find the entry whose domain contains a given value (if any).
func (p *Stage) find(value uint64) (Entry, bool) {
	i := sort.Search(len(p.entries), func(i int) bool {
		return p.entries[i].Domain.End() > value
	})
	//
	if i < len(p.entries) && p.entries[i].Domain.Contains(value) {
		return p.entries[i], true
	}
	//
	return Entry{}, false
}

// Find the lowest entry whose domain overlaps a given range (if any).
func (p *Stage) firstOverlap(r math.Interval) (Entry, bool) {
	i := sort.Search(len(p.entries), func(i int) bool {
		return p.entries[i].Domain.End() > r.Start()
	})
	//
	if i < len(p.entries) && p.entries[i].Domain.Overlaps(r) {
		return p.entries[i], true
	}
	//
	return Entry{}, false
}
