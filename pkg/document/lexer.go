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
	"unicode"

	"github.com/consensys/go-almanac/pkg/util/source"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace (excluding newlines)
const WHITESPACE uint = 1

// NEWLINE signals a line break
const NEWLINE uint = 2

// COLON signals ":"
const COLON uint = 3

// NUMBER signals an unsigned decimal integer
const NUMBER uint = 4

// IDENTIFIER signals a word, possibly containing dashes (e.g. "seed-to-soil").
const IDENTIFIER uint = 5

// Rule for describing whitespace
var whitespace = source.Many(WHITESPACE, ' ', '\t', '\r')

// Rule for describing identifiers
var identifier = source.ManyWhere(IDENTIFIER, func(r rune) bool {
	return r == '-' || r == '_' || unicode.IsLetter(r)
})

// lexing rules
var rules = source.Or(
	source.One(COLON, ':'),
	source.One(NEWLINE, '\n'),
	whitespace,
	source.ManyWith(NUMBER, '0', '9'),
	identifier,
	source.Eof[rune](END_OF))

// Lex a given source file into tokens, excluding whitespace.  If the file
// contains a character which cannot be matched, then a syntax error is
// returned identifying it.
func Lex(srcfile *source.File) ([]source.Token, *source.SyntaxError) {
	var (
		lexer  = source.NewLexer(srcfile.Contents(), rules)
		tokens []source.Token
	)
	//
	for lexer.HasNext() {
		if token := lexer.Next(); token.Kind != WHITESPACE {
			tokens = append(tokens, token)
		}
	}
	// Check whether anything was left unmatched
	if lexer.Remaining() != 0 {
		start := lexer.Index()
		err := srcfile.SyntaxError(source.NewSpan(start, start+1), "unknown character encountered")
		//
		return nil, err
	}
	//
	return tokens, nil
}
