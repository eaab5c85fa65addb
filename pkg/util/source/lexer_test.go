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
	"slices"
	"testing"
	"unicode"
)

func TestLexer_00(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, NewSpan(0, 0)})
}

func TestLexer_01(t *testing.T) {
	checkLexer(t, ":", 0,
		Token{COLON, NewSpan(0, 1)},
		Token{END_OF, NewSpan(1, 1)})
}

func TestLexer_02(t *testing.T) {
	checkLexer(t, "x!", 1,
		Token{WORD, NewSpan(0, 1)})
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "12 345", 0,
		Token{NUMBER, NewSpan(0, 2)},
		Token{WSPACE, NewSpan(2, 3)},
		Token{NUMBER, NewSpan(3, 6)},
		Token{END_OF, NewSpan(6, 6)})
}

func TestLexer_04(t *testing.T) {
	checkLexer(t, "seeds: 79 14", 0,
		Token{WORD, NewSpan(0, 5)},
		Token{COLON, NewSpan(5, 6)},
		Token{WSPACE, NewSpan(6, 7)},
		Token{NUMBER, NewSpan(7, 9)},
		Token{WSPACE, NewSpan(9, 10)},
		Token{NUMBER, NewSpan(10, 12)},
		Token{END_OF, NewSpan(12, 12)})
}

func TestLexer_05(t *testing.T) {
	checkLexer(t, "seed-to-soil map:\n50", 0,
		Token{WORD, NewSpan(0, 12)},
		Token{WSPACE, NewSpan(12, 13)},
		Token{WORD, NewSpan(13, 16)},
		Token{COLON, NewSpan(16, 17)},
		Token{NEWLINE, NewSpan(17, 18)},
		Token{NUMBER, NewSpan(18, 20)},
		Token{END_OF, NewSpan(20, 20)})
}

func TestLexer_06(t *testing.T) {
	checkLexer(t, "\t \n\n", 0,
		Token{WSPACE, NewSpan(0, 2)},
		Token{NEWLINE, NewSpan(2, 3)},
		Token{NEWLINE, NewSpan(3, 4)},
		Token{END_OF, NewSpan(4, 4)})
}

func TestLexer_Next(t *testing.T) {
	lexer := NewLexer([]rune("7"), scanner)
	//
	if token := lexer.Next(); token.Kind != NUMBER {
		t.Errorf("expected number, got %v", token)
	} else if lexer.Next(); lexer.HasNext() {
		t.Errorf("unexpected token after end-of-file")
	}
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when reading beyond end-of-file")
		}
	}()
	//
	lexer.Next()
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const NEWLINE uint = 2
const COLON uint = 3
const NUMBER uint = 4
const WORD uint = 5

var scanner Scanner[rune] = Or(
	One(COLON, ':'),
	One(NEWLINE, '\n'),
	Many(WSPACE, ' ', '\t'),
	ManyWith(NUMBER, '0', '9'),
	ManyWhere(WORD, func(r rune) bool { return r == '-' || unicode.IsLetter(r) }),
	Eof[rune](END_OF))

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer(items, scanner)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
