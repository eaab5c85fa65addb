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
package source

import (
	"cmp"
	"slices"
)

// Scanner looks at a given sequence of items, starting from the beginning, and
// attempts to consume 1 or more of them.  If it cannot consume any, then false
// is returned.  Otherwise, it returns a Token which spans characters 0..n+1
// where n is the last character of the token.
type Scanner[T any] interface {
	Scan([]T) (Token, bool)
}

// Eof adds a given tag to the end of the token stream.
func Eof[T any](tag uint) Scanner[T] {
	return &eofScanner[T]{tag}
}

// One creates a scanner responsible for associating a single item with a given
// tag.
func One[T comparable](tag uint, item T) Scanner[T] {
	return &unitScanner[T]{item, tag}
}

// Many creates a scanner responsible for associating one or more items drawn
// from a given set with a given tag.
func Many[T comparable](tag uint, items ...T) Scanner[T] {
	return ManyWhere(tag, func(item T) bool {
		return slices.Contains(items, item)
	})
}

// ManyWith creates a scanner responsible for associating one or more items in a
// given range with a given tag.
func ManyWith[T cmp.Ordered](tag uint, first T, last T) Scanner[T] {
	return ManyWhere(tag, func(item T) bool {
		return first <= item && item <= last
	})
}

// ManyWhere creates a scanner responsible for associating one or more items
// satisfying a given predicate with a given tag.
func ManyWhere[T any](tag uint, predicate func(T) bool) Scanner[T] {
	return &manyScanner[T]{tag, predicate}
}

// Or constructs a scanner which accepts words accepted by any of the given
// scanners, trying them in the order given.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return &orScanner[T]{scanners}
}

// ============================================================================
// Eof Scanner
// ============================================================================

type eofScanner[T any] struct {
	tag uint
}

func (p *eofScanner[T]) Scan(items []T) (Token, bool) {
	if len(items) == 0 {
		return Token{p.tag, NewSpan(0, 0)}, true
	}
	//
	return Token{}, false
}

// ============================================================================
// Unit Scanner
// ============================================================================

type unitScanner[T comparable] struct {
	item T
	tag  uint
}

func (p *unitScanner[T]) Scan(items []T) (Token, bool) {
	if len(items) > 0 && items[0] == p.item {
		return Token{p.tag, NewSpan(0, 1)}, true
	}
	//
	return Token{}, false
}

// ============================================================================
// Many Scanner
// ============================================================================

type manyScanner[T any] struct {
	tag       uint
	predicate func(T) bool
}

func (p *manyScanner[T]) Scan(items []T) (Token, bool) {
	i := 0
	//
	for i < len(items) && p.predicate(items[i]) {
		i++
	}
	//
	if i != 0 {
		return Token{p.tag, NewSpan(0, i)}, true
	}
	//
	return Token{}, false
}

// ============================================================================
// Or Scanner
// ============================================================================

type orScanner[T any] struct {
	scanners []Scanner[T]
}

func (p *orScanner[T]) Scan(items []T) (Token, bool) {
	for _, scanner := range p.scanners {
		if token, ok := scanner.Scan(items); ok {
			return token, true
		}
	}
	// Failed
	return Token{}, false
}
