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
	"runtime"
	"slices"

	"github.com/sourcegraph/conc/pool"
)

// EnumerationConfig determines how values are divided between workers when
// enumerating a seed set point by point.
type EnumerationConfig struct {
	// Maximum number of goroutines to use (0 means GOMAXPROCS).
	Workers uint
	// Number of consecutive values handled by a single job.
	BatchSize uint64
	// Largest number of values which may be enumerated.
	Limit uint64
}

// DefaultEnumerationConfig returns a configuration suitable for enumerating
// seed sets of up to a few million values.
func DefaultEnumerationConfig() EnumerationConfig {
	return EnumerationConfig{
		Workers:   0,
		BatchSize: 1 << 14,
		Limit:     1 << 24,
	}
}

// MinByEnumeration returns the smallest image of any value in a seed set, by
// pushing every value through this pipeline individually.  Batches of values
// are processed in parallel, and the minimum of each batch is then combined.
// This fails if the set holds more values than the configured limit.
func (p *Pipeline) MinByEnumeration(set SeedSet, config EnumerationConfig) (uint64, error) {
	if size, ok := set.Size(); !ok || size > config.Limit {
		return 0, fmt.Errorf("%w: more than %d values", ErrTooLarge, config.Limit)
	}
	//
	var (
		workers = int(config.Workers)
		batches = divideBatches(set, max(config.BatchSize, 1))
	)
	//
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	//
	jobs := pool.NewWithResults[uint64]().WithMaxGoroutines(workers)
	//
	for _, b := range batches {
		jobs.Go(func() uint64 {
			return p.minOverBatch(b)
		})
	}
	//
	results := jobs.Wait()
	//
	if len(results) == 0 {
		return 0, ErrEmptyResult
	}
	//
	return slices.Min(results), nil
}

// batch identifies a run of consecutive values, starting from a given value.
type batch struct {
	first uint64
	count uint64
}

// Find the smallest image of any value in a non-empty batch.
func (p *Pipeline) minOverBatch(b batch) uint64 {
	least := p.ApplyScalar(b.first)
	//
	for i := uint64(1); i < b.count; i++ {
		least = min(least, p.ApplyScalar(b.first+i))
	}
	//
	return least
}

// Divide a seed set into batches of at most a given number of consecutive
// values.  Points become singleton batches.
func divideBatches(set SeedSet, size uint64) []batch {
	var batches []batch
	//
	for _, v := range set.points {
		batches = append(batches, batch{v, 1})
	}
	//
	for _, r := range set.ranges {
		for start := r.Start(); start < r.End(); {
			n := min(size, r.End()-start)
			batches = append(batches, batch{start, n})
			start += n
		}
	}
	//
	return batches
}
