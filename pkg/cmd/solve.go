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

	"github.com/consensys/go-almanac/pkg/almanac"
	"github.com/consensys/go-almanac/pkg/document"
	"github.com/consensys/go-almanac/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [flags] [almanac_file]",
	Short: "Report the lowest location reached by any seed.",
	Long: `Report the lowest location reached by any seed of a given almanac.
	Question 1 treats each seed as an individual value, whilst question 2
	pairs them up into ranges.  When no file is given (or it is "-"),
	the almanac is read from standard input.`,
	Args:   cobra.MaximumNArgs(1),
	PreRun: bindFlagsFunc(questionKey, strategyKey, pairingKey, workersKey, limitKey, batchSizeKey, coalesceKey),
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()
		doc := readDocument(inputFilename(args))
		//
		answer, err := solve(doc, config)
		//
		if err != nil {
			fail(err)
		}
		//
		fmt.Println(answer)
	},
}

// Solve a given almanac according to a given configuration.
func solve(doc *document.Document, config *Config) (uint64, error) {
	var (
		stats  = util.NewPerfStats()
		answer uint64
		err    error
	)
	//
	if config.Question == 1 {
		answer, err = almanac.SolveScalar(doc.Seeds, doc.Tables)
	} else {
		answer, err = solveRanged(doc, config, config.Strategy)
	}
	//
	stats.Log(fmt.Sprintf("Solving question %d", config.Question))
	//
	return answer, err
}

// Solve the ranged question of a given almanac using a given strategy.
func solveRanged(doc *document.Document, config *Config, strategy string) (uint64, error) {
	pairing, err := config.PairingMode()
	//
	if err != nil {
		return 0, err
	}
	//
	log.Debugf("solving %d seeds across %d maps (strategy %s, pairing %s)", len(doc.Seeds), len(doc.Tables),
		strategy, pairing)
	//
	if strategy == BruteStrategy {
		return almanac.SolveRangedBruteForce(doc.Seeds, doc.Tables, pairing, config.Enumeration())
	}
	//
	return almanac.SolveRanged(doc.Seeds, doc.Tables, pairing, config.Options()...)
}

func init() {
	defaults := DefaultConfig()
	//
	solveCmd.Flags().UintP(questionKey, "q", defaults.Question, "question to answer (1 for points, 2 for ranges)")
	solveCmd.Flags().String(strategyKey, defaults.Strategy, "strategy for ranges (split or brute)")
	addSolveFlags(solveCmd)
	rootCmd.AddCommand(solveCmd)
}
