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
package document

import (
	"path"
	"testing"

	"github.com/consensys/go-almanac/pkg/almanac"
	"github.com/consensys/go-almanac/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir determines the (relative) location of the test directory.
const TestDir = "../../testdata/almanac"

func Test_Parse_Example(t *testing.T) {
	doc := checkValid(t, readTestFile(t, "example.txt"))
	//
	assert.Equal(t, []uint64{79, 14, 55, 13}, doc.Seeds)
	require.Len(t, doc.Tables, 7)
	assert.Equal(t, "seed-to-soil", doc.Tables[0].Name)
	assert.Equal(t, []almanac.Triple{{50, 98, 2}, {52, 50, 48}}, doc.Tables[0].Rows)
	assert.Equal(t, "humidity-to-location", doc.Tables[6].Name)
	//
	q1, err := almanac.SolveScalar(doc.Seeds, doc.Tables)
	require.NoError(t, err)
	assert.Equal(t, uint64(35), q1)
	//
	q2, err := almanac.SolveRanged(doc.Seeds, doc.Tables, almanac.PairStartLength)
	require.NoError(t, err)
	assert.Equal(t, uint64(46), q2)
}

func Test_Parse_Chain(t *testing.T) {
	doc := checkValid(t, readTestFile(t, "chain.txt"))
	//
	pipeline, err := doc.Pipeline()
	require.NoError(t, err)
	assert.Equal(t, uint64(9), pipeline.ApplyScalar(2))
}

func Test_Parse_Overlap(t *testing.T) {
	doc := checkValid(t, readTestFile(t, "overlap.txt"))
	// Syntactically fine, but semantically broken
	_, err := doc.Pipeline()
	assert.ErrorIs(t, err, almanac.ErrMalformedStage)
}

func Test_Parse_SeedsOnly(t *testing.T) {
	doc := checkValid(t, source.NewSourceFile("test", []byte("\n\nseeds: 1 2 3\n")))
	//
	assert.Equal(t, []uint64{1, 2, 3}, doc.Seeds)
	assert.Empty(t, doc.Tables)
}

func Test_Parse_Invalid_00(t *testing.T) {
	checkInvalid(t, readTestFile(t, "invalid.txt"), 1, 4, 5)
}

func Test_Parse_Invalid_01(t *testing.T) {
	checkInvalid(t, source.NewSourceFile("test", []byte("")), 1)
}

func Test_Parse_Invalid_02(t *testing.T) {
	checkInvalid(t, source.NewSourceFile("test", []byte("seeds: 1\n1 2 3\n")), 2)
}

func Test_Parse_Invalid_03(t *testing.T) {
	checkInvalid(t, source.NewSourceFile("test", []byte("seeds: 1 99999999999999999999\n")), 1)
}

func Test_Parse_Invalid_04(t *testing.T) {
	checkInvalid(t, source.NewSourceFile("test", []byte("seeds: 1\n\na-to-b map:\n1 2 3\n4 5 #\n")), 5)
}

func Test_Parse_Invalid_05(t *testing.T) {
	checkInvalid(t, source.NewSourceFile("test", []byte("seeds 1\n\na-to-b:\n")), 1, 3)
}

// ============================================================================
// Helpers
// ============================================================================

func readTestFile(t *testing.T, name string) *source.File {
	srcfile, err := source.ReadFile(path.Join(TestDir, name))
	require.NoError(t, err)
	//
	return srcfile
}

func checkValid(t *testing.T, srcfile *source.File) *Document {
	doc, errs := Parse(srcfile)
	//
	for _, err := range errs {
		t.Errorf("unexpected syntax error: %s", err.Error())
	}
	//
	require.NotNil(t, doc)
	//
	return doc
}

// Check that parsing fails with errors reported on exactly the given lines.
func checkInvalid(t *testing.T, srcfile *source.File, lines ...int) {
	doc, errs := Parse(srcfile)
	//
	assert.Nil(t, doc)
	//
	actual := make([]int, len(errs))
	//
	for i, err := range errs {
		line := err.FirstEnclosingLine()
		actual[i] = line.Number()
	}
	//
	assert.Equal(t, lines, actual)
}
