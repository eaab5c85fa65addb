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

// SolveScalar returns the smallest image of any seed under the pipeline
// constructed from the given tables.
func SolveScalar(seeds []uint64, tables []Table) (uint64, error) {
	pipeline, err := PipelineFromTables(tables)
	//
	if err != nil {
		return 0, err
	}
	//
	return Min(pipeline.Apply(ExpandPoints(seeds)))
}

// SolveRanged returns the smallest image of any value in the seed ranges under
// the pipeline constructed from the given tables.  This works on whole ranges
// at a time, and so is not affected by how large the ranges are.
func SolveRanged(seeds []uint64, tables []Table, pairing Pairing, options ...Option) (uint64, error) {
	pipeline, err := PipelineFromTables(tables, options...)
	//
	if err != nil {
		return 0, err
	}
	//
	set, err := ExpandRanges(seeds, pairing)
	//
	if err != nil {
		return 0, err
	}
	//
	return Min(pipeline.Apply(set))
}

// SolveRangedBruteForce computes the same result as SolveRanged, but by pushing
// every value of every seed range through the pipeline individually.  This is
// only feasible for small inputs, and is intended for validation.
func SolveRangedBruteForce(seeds []uint64, tables []Table, pairing Pairing, config EnumerationConfig) (uint64, error) {
	pipeline, err := PipelineFromTables(tables)
	//
	if err != nil {
		return 0, err
	}
	//
	set, err := ExpandRanges(seeds, pairing)
	//
	if err != nil {
		return 0, err
	}
	//
	return pipeline.MinByEnumeration(set, config)
}
