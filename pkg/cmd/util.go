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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-almanac/pkg/almanac"
	"github.com/consensys/go-almanac/pkg/document"
	"github.com/consensys/go-almanac/pkg/util"
	"github.com/consensys/go-almanac/pkg/util/source"
	"github.com/consensys/go-almanac/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read the configuration for a command, setting the logging level accordingly.
// Any problem with the configuration is fatal.
func readConfig() *Config {
	config, err := ReadConfig()
	//
	if err == nil {
		err = config.Verify()
	}
	//
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	//
	return config
}

// Determine the file to read from the arguments of a command, where no
// argument means standard input.
func inputFilename(args []string) string {
	if len(args) == 0 {
		return source.StdinName
	}
	//
	return args[0]
}

// Read and parse an almanac document.  Any syntax errors are printed, and
// reading or parsing failures are fatal.
func readDocument(filename string) *document.Document {
	stats := util.NewPerfStats()
	srcfile, err := source.ReadFile(filename)
	//
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	doc, errs := document.Parse(srcfile)
	//
	if len(errs) > 0 {
		printSyntaxErrors(os.Stdout, termio.NewTerminalHighlighter(os.Stdout), errs)
		os.Exit(2)
	}
	//
	stats.Log("Parsing " + srcfile.Filename())
	//
	return doc
}

// Print a set of syntax errors.
func printSyntaxErrors(out io.Writer, hl termio.Highlighter, errs []source.SyntaxError) {
	for i := range errs {
		printSyntaxError(out, hl, &errs[i])
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, hl termio.Highlighter, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, hl.Apply(termio.NewAnsiEscape().Bold().FgColour(termio.TERM_RED), strings.Repeat("^", length)))
}

// Determine the exit code for a given failure.  Problems with the input itself
// are distinguished from failures to compute an answer.
func exitCode(err error) int {
	switch {
	case errors.Is(err, almanac.ErrMalformedStage), errors.Is(err, almanac.ErrMalformedInput),
		errors.Is(err, almanac.ErrOverflow), errors.Is(err, errInvalidConfig):
		return 2
	default:
		return 1
	}
}

// Report a failure and exit accordingly.
func fail(err error) {
	log.Error(err)
	os.Exit(exitCode(err))
}
