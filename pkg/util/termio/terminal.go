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
package termio

import (
	"os"

	"golang.org/x/term"
)

// Highlighter applies ANSI formatting to text, but only when the output is
// going to a terminal.  Otherwise, text is passed through unchanged (e.g. so
// that redirected output is not littered with escapes).
type Highlighter struct {
	enabled bool
}

// NewHighlighter constructs a highlighter which applies formatting only when
// enabled.
func NewHighlighter(enabled bool) Highlighter {
	return Highlighter{enabled}
}

// NewTerminalHighlighter constructs a highlighter for a given output file,
// which is enabled only if that file is a terminal.
func NewTerminalHighlighter(out *os.File) Highlighter {
	return Highlighter{IsTerminal(out)}
}

// Enabled determines whether or not formatting is being applied.
func (p Highlighter) Enabled() bool {
	return p.enabled
}

// Apply a given escape to some text (if enabled).
func (p Highlighter) Apply(escape AnsiEscape, text string) string {
	if p.enabled {
		return escape.Wrap(text)
	}
	//
	return text
}

// IsTerminal determines whether a given file is connected to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
