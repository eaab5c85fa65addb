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

// Table is a named lookup table, as given in the input document, from which a
// stage is constructed.
type Table struct {
	Name string
	Rows []Triple
}

// Option configures a pipeline.
type Option func(*Pipeline)

// WithCoalesce merges overlapping or adjacent ranges in between stages.  This
// does not change the set of values represented, but bounds the number of
// fragments carried from one stage to the next.
func WithCoalesce() Option {
	return func(p *Pipeline) {
		p.coalesce = true
	}
}

// Pipeline is an ordered chain of stages, where the output of each stage is
// the input to the next.  A pipeline is immutable once constructed, and can be
// safely shared between goroutines.
type Pipeline struct {
	stages   []*Stage
	coalesce bool
}

// NewPipeline constructs a pipeline from stages given in application order.
func NewPipeline(stages []*Stage, options ...Option) *Pipeline {
	p := &Pipeline{stages: slices.Clone(stages)}
	//
	for _, opt := range options {
		opt(p)
	}
	//
	return p
}

// PipelineFromTables constructs a pipeline from lookup tables given in
// application order.
func PipelineFromTables(tables []Table, options ...Option) (*Pipeline, error) {
	stages := make([]*Stage, len(tables))
	//
	for i, t := range tables {
		stage, err := StageFromTriples(t.Rows...)
		//
		if err != nil {
			return nil, fmt.Errorf("table %d (%s): %w", i+1, t.Name, err)
		}
		//
		stages[i] = stage
	}
	//
	return NewPipeline(stages, options...), nil
}

// Len returns the number of stages in this pipeline.
func (p *Pipeline) Len() uint {
	return uint(len(p.stages))
}

// Stage returns the nth stage of this pipeline.
func (p *Pipeline) Stage(nth uint) *Stage {
	return p.stages[nth]
}

// ApplyScalar returns the image of a single value under every stage in turn.
func (p *Pipeline) ApplyScalar(value uint64) uint64 {
	for _, s := range p.stages {
		value = s.LookupScalar(value)
	}
	//
	return value
}

// ApplyPoints returns the images of a set of values under every stage in turn,
// such that the ith image corresponds to the ith value.
func (p *Pipeline) ApplyPoints(points []uint64) []uint64 {
	points = slices.Clone(points)
	//
	for _, s := range p.stages {
		points = s.LookupPoints(points)
	}
	//
	return points
}

// ApplyRanges returns the image of a set of ranges under every stage in turn.
// Each stage resolves every range it is given before any fragment is passed
// on to the next stage, since the domains of a stage are defined over the
// output of the previous one.
func (p *Pipeline) ApplyRanges(ranges []math.Interval) []math.Interval {
	ranges = slices.Clone(ranges)
	//
	for _, s := range p.stages {
		ranges = s.LookupRanges(ranges)
		//
		if p.coalesce {
			ranges = math.Coalesce(ranges)
		}
	}
	//
	return ranges
}

// Apply returns the image of a seed set under every stage in turn, using the
// same representation as the given set.
func (p *Pipeline) Apply(set SeedSet) SeedSet {
	if set.IsRanged() {
		return SeedSet{ranged: true, ranges: p.ApplyRanges(set.ranges)}
	}
	//
	return SeedSet{points: p.ApplyPoints(set.points)}
}
