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
	"fmt"
	"os"

	"github.com/consensys/go-almanac/pkg/document"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] [almanac_file]",
	Short: "Check both strategies agree on the ranged question.",
	Long: `Check both strategies agree on the ranged question of a given almanac.
	The answer obtained by splitting ranges is compared against that obtained
	by enumerating every seed.  Since enumeration is bounded, this is only
	suitable for small almanacs.`,
	Args:   cobra.MaximumNArgs(1),
	PreRun: bindFlagsFunc(pairingKey, workersKey, limitKey, batchSizeKey, coalesceKey),
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()
		doc := readDocument(inputFilename(args))
		//
		result, err := crossCheck(doc, config)
		//
		if err != nil {
			fail(err)
		} else if !result.Agrees() {
			log.Errorf("strategies disagree: %s", result)
			os.Exit(1)
		}
		//
		fmt.Printf("ok %d\n", result.split)
	},
}

// checkResult records the answer reported by each strategy.
type checkResult struct {
	split uint64
	brute uint64
}

// Agrees determines whether both strategies reported the same answer.
func (p checkResult) Agrees() bool {
	return p.split == p.brute
}

func (p checkResult) String() string {
	return fmt.Sprintf("%s=%d, %s=%d", SplitStrategy, p.split, BruteStrategy, p.brute)
}

// Answer the ranged question of a given almanac using both strategies.
func crossCheck(doc *document.Document, config *Config) (checkResult, error) {
	var result checkResult
	//
	split, err := solveRanged(doc, config, SplitStrategy)
	if err != nil {
		return result, err
	}
	//
	brute, err := solveRanged(doc, config, BruteStrategy)
	if err != nil {
		return result, err
	}
	//
	return checkResult{split, brute}, nil
}

func init() {
	addSolveFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}
