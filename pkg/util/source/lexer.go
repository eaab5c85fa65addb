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

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span Span
}

// Lexer provides a top-level construct for tokenising a given input string.
// Tokens are produced one at a time, until either the input is exhausted or
// the scanner cannot match what remains.
type Lexer[T any] struct {
	items   []T
	index   int
	scanner Scanner[T]
	// Next token (if already scanned)
	next    Token
	hasNext bool
}

// NewLexer constructs a new lexer with a given scanner.
func NewLexer[T any](input []T, scanner Scanner[T]) *Lexer[T] {
	return &Lexer[T]{items: input, scanner: scanner}
}

// Index returns the position within the original sequence of the first item
// not yet consumed.
func (p *Lexer[T]) Index() int {
	return min(p.index, len(p.items))
}

// Remaining determines how many items from the original sequence were left.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether or not there are any tokens remaining.
func (p *Lexer[T]) HasNext() bool {
	p.scan()
	return p.hasNext
}

// Next returns the next token and advances the lexer.  This panics if there is
// no next token.
func (p *Lexer[T]) Next() Token {
	if !p.HasNext() {
		panic("no tokens remaining")
	}
	//
	next := p.next
	p.hasNext = false
	//
	if p.index == len(p.items) {
		// EOF condition
		p.index++
	} else {
		p.index = next.Span.End()
	}
	//
	return next
}

// Collect is a convenience function which scans all remaining tokens in one
// go, producing an array of tokens.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	// Keep scanning
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

// internal scan functions.
func (p *Lexer[T]) scan() {
	if p.hasNext || p.index > len(p.items) {
		return
	}
	// Look for item
	if next, ok := p.scanner.Scan(p.items[p.index:]); ok {
		// Shift span into correct position
		next.Span = NewSpan(next.Span.Start()+p.index, next.Span.End()+p.index)
		p.next, p.hasNext = next, true
	}
}
