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
	"strconv"

	"github.com/consensys/go-almanac/pkg/almanac"
	"github.com/consensys/go-almanac/pkg/util/source"
)

// Document is the parsed form of an almanac: a list of seeds, followed by the
// lookup tables through which they are pushed (in order).
type Document struct {
	Seeds  []uint64
	Tables []almanac.Table
}

// Pipeline constructs the pipeline described by the tables of this document.
func (d *Document) Pipeline(options ...almanac.Option) (*almanac.Pipeline, error) {
	return almanac.PipelineFromTables(d.Tables, options...)
}

// Parse a given source file into a document.  A file has the following form:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// The seeds line comes first, followed by zero or more map blocks.  Each map
// consists of a header followed by rows of three numbers: the target start,
// the source start and the length.  Blank lines are ignored.  Every syntax
// error found is reported, rather than just the first.
func Parse(srcfile *source.File) (*Document, []source.SyntaxError) {
	tokens, err := Lex(srcfile)
	//
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	p := &parser{srcfile: srcfile}
	// Parse line by line
	for _, line := range splitLines(tokens) {
		p.parseLine(line)
	}
	// Sanity check we found some seeds
	if !p.seeded {
		end := len(srcfile.Contents())
		p.errorAt(source.NewSpan(end, end), "missing seeds")
	}
	//
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	//
	return &p.doc, nil
}

type parser struct {
	srcfile *source.File
	doc     Document
	// Indicates whether the seeds line has been parsed.
	seeded bool
	errors []source.SyntaxError
}

func (p *parser) parseLine(line []source.Token) {
	switch {
	case len(line) == 0:
		return
	case !p.seeded:
		p.parseSeeds(line)
		p.seeded = true
	case line[0].Kind == IDENTIFIER:
		p.parseHeader(line)
	case line[0].Kind == NUMBER:
		p.parseRow(line)
	default:
		p.errorAt(line[0].Span, "unexpected "+p.describe(line[0]))
	}
}

// Parse a line of the form "seeds: n1 n2 ...".
func (p *parser) parseSeeds(line []source.Token) {
	if len(line) < 2 || !p.isWord(line[0], "seeds") || line[1].Kind != COLON {
		p.errorAt(line[0].Span, "expected \"seeds:\"")
		return
	}
	//
	for _, token := range line[2:] {
		if seed, ok := p.parseNumber(token); ok {
			p.doc.Seeds = append(p.doc.Seeds, seed)
		}
	}
}

// Parse a line of the form "name map:".
func (p *parser) parseHeader(line []source.Token) {
	if len(line) != 3 || !p.isWord(line[1], "map") || line[2].Kind != COLON {
		p.errorAt(spanOf(line), "expected map header (e.g. \"seed-to-soil map:\")")
		return
	}
	//
	name := p.srcfile.Text(line[0].Span)
	p.doc.Tables = append(p.doc.Tables, almanac.Table{Name: name})
}

// Parse a line of the form "target source length".
func (p *parser) parseRow(line []source.Token) {
	var (
		n      = len(p.doc.Tables)
		values [3]uint64
	)
	//
	if n == 0 {
		p.errorAt(spanOf(line), "row outside of any map")
		return
	} else if len(line) != 3 {
		p.errorAt(spanOf(line), "expected three numbers (target, source, length)")
		return
	}
	//
	for i, token := range line {
		var ok bool
		//
		if values[i], ok = p.parseNumber(token); !ok {
			return
		}
	}
	//
	row := almanac.Triple{Target: values[0], Source: values[1], Length: values[2]}
	p.doc.Tables[n-1].Rows = append(p.doc.Tables[n-1].Rows, row)
}

func (p *parser) parseNumber(token source.Token) (uint64, bool) {
	if token.Kind != NUMBER {
		p.errorAt(token.Span, "expected number, found "+p.describe(token))
		return 0, false
	}
	//
	value, err := strconv.ParseUint(p.srcfile.Text(token.Span), 10, 64)
	//
	if err != nil {
		p.errorAt(token.Span, "number out of range")
		return 0, false
	}
	//
	return value, true
}

func (p *parser) isWord(token source.Token, word string) bool {
	return token.Kind == IDENTIFIER && p.srcfile.Text(token.Span) == word
}

func (p *parser) describe(token source.Token) string {
	if token.Kind == END_OF {
		return "end-of-file"
	}
	//
	return "\"" + p.srcfile.Text(token.Span) + "\""
}

func (p *parser) errorAt(span source.Span, msg string) {
	p.errors = append(p.errors, *p.srcfile.SyntaxError(span, msg))
}

// Split tokens into lines, dropping the newlines and end-of-file.
func splitLines(tokens []source.Token) [][]source.Token {
	var (
		lines [][]source.Token
		line  []source.Token
	)
	//
	for _, token := range tokens {
		switch token.Kind {
		case NEWLINE, END_OF:
			lines = append(lines, line)
			line = nil
		default:
			line = append(line, token)
		}
	}
	//
	if len(line) > 0 {
		lines = append(lines, line)
	}
	//
	return lines
}

// Determine the span covering an entire (non-empty) line of tokens.
func spanOf(line []source.Token) source.Span {
	return line[0].Span.Join(line[len(line)-1].Span)
}
