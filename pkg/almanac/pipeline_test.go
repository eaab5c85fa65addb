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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-almanac/pkg/util/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Pipeline_Chain_00(t *testing.T) {
	pipeline := chainPipeline(t)
	//
	assert.Equal(t, uint64(9), pipeline.ApplyScalar(2))
	assert.Equal(t, uint64(6), pipeline.ApplyScalar(6))
	assert.Equal(t, []uint64{9, 6}, pipeline.ApplyPoints([]uint64{2, 6}))
}

func Test_Pipeline_Chain_01(t *testing.T) {
	pipeline := chainPipeline(t)
	// The second stage applies to the output of the first, not its input.
	checkRanges(t, pipeline.ApplyRanges(ranges(0, 5)), ranges(7, 12))
	checkRanges(t, pipeline.ApplyRanges(ranges(2, 3)), ranges(9, 10))
}

func Test_Pipeline_Chain_02(t *testing.T) {
	pipeline := chainPipeline(t)
	//
	least, err := Min(pipeline.Apply(PointSet(2)))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), least)
	// Seed 6 is untouched by either stage
	least, err = Min(pipeline.Apply(PointSet(2, 6)))
	require.NoError(t, err)
	assert.Equal(t, uint64(6), least)
}

func Test_Pipeline_Empty(t *testing.T) {
	pipeline := NewPipeline(nil)
	//
	assert.Equal(t, uint(0), pipeline.Len())
	assert.Equal(t, uint64(42), pipeline.ApplyScalar(42))
	checkRanges(t, pipeline.ApplyRanges(ranges(1, 5)), ranges(1, 5))
}

func Test_Pipeline_Tables(t *testing.T) {
	_, err := PipelineFromTables([]Table{
		{"seed-to-soil", []Triple{{50, 98, 2}}},
		{"soil-to-fertilizer", []Triple{{50, 10, 5}, {60, 12, 5}}},
	})
	//
	require.ErrorIs(t, err, ErrMalformedStage)
	assert.Contains(t, err.Error(), "table 2 (soil-to-fertilizer)")
}

func Test_Pipeline_Deterministic(t *testing.T) {
	var (
		pipeline = examplePipeline(t)
		input    = ranges(79, 93, 55, 68)
	)
	//
	assert.Equal(t, pipeline.ApplyRanges(input), pipeline.ApplyRanges(input))
	assert.Equal(t, ranges(79, 93, 55, 68), input)
}

func Test_Pipeline_Coalesce(t *testing.T) {
	var (
		plain     = examplePipeline(t)
		coalesced = NewPipeline(plain.stages, WithCoalesce())
		rng       = rand.New(rand.NewPCG(3, 4))
	)
	//
	for i := 0; i < 100; i++ {
		input := randomRanges(rng)
		// Same set of values, regardless of fragmentation
		expected := math.Coalesce(plain.ApplyRanges(input))
		actual := coalesced.ApplyRanges(input)
		//
		checkRanges(t, actual, expected)
	}
}

// Range and point application agree on every value.
func Test_Pipeline_Equivalence(t *testing.T) {
	var (
		pipeline = examplePipeline(t)
		input    = ranges(0, 120)
	)
	//
	checkSameValues(t, pointwise(input, pipeline.ApplyScalar), enumerate(pipeline.ApplyRanges(input)))
	checkSameValues(t, pipeline.ApplyPoints(enumerate(input)), enumerate(pipeline.ApplyRanges(input)))
}

// ============================================================================
// Helpers
// ============================================================================

func chainPipeline(t *testing.T) *Pipeline {
	return NewPipeline([]*Stage{
		mustStage(t, NewEntry(0, 5, 10)),
		mustStage(t, NewEntry(10, 15, -3)),
	})
}

func examplePipeline(t *testing.T) *Pipeline {
	pipeline, err := PipelineFromTables(exampleTables)
	require.NoError(t, err)
	//
	return pipeline
}

var exampleSeeds = []uint64{79, 14, 55, 13}

var exampleTables = []Table{
	{"seed-to-soil", []Triple{{50, 98, 2}, {52, 50, 48}}},
	{"soil-to-fertilizer", []Triple{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer-to-water", []Triple{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water-to-light", []Triple{{88, 18, 7}, {18, 25, 70}}},
	{"light-to-temperature", []Triple{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature-to-humidity", []Triple{{0, 69, 1}, {1, 0, 69}}},
	{"humidity-to-location", []Triple{{60, 56, 37}, {56, 93, 4}}},
}
