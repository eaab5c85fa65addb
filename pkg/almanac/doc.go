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

// Package almanac pushes sets of unsigned integers through a chain of
// piecewise-offset lookup tables, and finds the smallest value which comes out
// the other end.
//
// Each Stage maps a number of disjoint domain intervals by a fixed offset, and
// leaves every other value untouched.  A Pipeline applies its stages in order.
// Seeds can be given as individual points (see ExpandPoints), or as ranges
// built from pairs of seeds (see ExpandRanges).  Ranges are split around the
// domains they overlap rather than enumerated, so the cost of a lookup depends
// on the number of fragments produced and not on how many values a range
// holds.  MinByEnumeration provides a (parallel) point-by-point alternative,
// which is useful for cross-checking on small inputs.
//
// Stages and pipelines are immutable once constructed, and may be shared freely
// between goroutines.
package almanac
