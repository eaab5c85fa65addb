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

import "errors"

var (
	// ErrMalformedStage indicates a stage whose domain intervals overlap (or
	// which has an empty domain).
	ErrMalformedStage = errors.New("almanac: malformed stage")
	// ErrMalformedInput indicates a seed list which cannot be paired up.
	ErrMalformedInput = errors.New("almanac: malformed input")
	// ErrOverflow indicates an offset or translated value which cannot be
	// represented.
	ErrOverflow = errors.New("almanac: arithmetic overflow")
	// ErrEmptyResult indicates there was nothing to minimise.
	ErrEmptyResult = errors.New("almanac: empty result")
	// ErrTooLarge indicates a seed set too large to enumerate point by point.
	ErrTooLarge = errors.New("almanac: seed set too large to enumerate")
)
