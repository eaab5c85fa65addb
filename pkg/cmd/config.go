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
	"strings"

	"github.com/consensys/go-almanac/pkg/almanac"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Names of the configuration keys.  Each key is also the name of the flag to
// which it is bound, and (once upper-cased with dashes replaced) the suffix of
// the corresponding ALMANAC_ environment variable.
const (
	questionKey  = "question"
	strategyKey  = "strategy"
	pairingKey   = "pairing"
	workersKey   = "workers"
	limitKey     = "limit"
	batchSizeKey = "batch-size"
	coalesceKey  = "coalesce"
	verboseKey   = "verbose"
)

// Strategies for answering the ranged question.
const (
	// SplitStrategy pushes whole ranges through the pipeline, splitting them
	// at entry boundaries.
	SplitStrategy = "split"
	// BruteStrategy pushes every individual value of every range through the
	// pipeline.
	BruteStrategy = "brute"
)

var errInvalidConfig = errors.New("invalid configuration")

// Config determines how an almanac is solved.  Values are taken from (in
// order of precedence) command-line flags, ALMANAC_ environment variables and,
// finally, an almanac.yaml configuration file.
type Config struct {
	// Question to answer, where 1 treats seeds as points and 2 as ranges.
	Question uint `mapstructure:"question"`
	// Strategy used for the ranged question.
	Strategy string `mapstructure:"strategy"`
	// Pairing used to turn seeds into ranges.
	Pairing string `mapstructure:"pairing"`
	// Workers used for enumeration (0 means one per CPU).
	Workers uint `mapstructure:"workers"`
	// Limit on the number of values enumerated.
	Limit uint64 `mapstructure:"limit"`
	// Number of values enumerated by each task.
	BatchSize uint64 `mapstructure:"batch-size"`
	// Coalesce fragments after each stage.
	Coalesce bool `mapstructure:"coalesce"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() *Config {
	enumeration := almanac.DefaultEnumerationConfig()
	//
	return &Config{
		Question:  2,
		Strategy:  SplitStrategy,
		Pairing:   almanac.PairBounds.String(),
		Workers:   enumeration.Workers,
		Limit:     enumeration.Limit,
		BatchSize: enumeration.BatchSize,
	}
}

// Verify checks that a configuration is meaningful.
func (c *Config) Verify() error {
	if c.Question != 1 && c.Question != 2 {
		return fmt.Errorf("%w: unknown question %d (expected 1 or 2)", errInvalidConfig, c.Question)
	} else if c.Strategy != SplitStrategy && c.Strategy != BruteStrategy {
		return fmt.Errorf("%w: unknown strategy \"%s\" (expected %s or %s)", errInvalidConfig, c.Strategy,
			SplitStrategy, BruteStrategy)
	} else if c.BatchSize == 0 {
		return fmt.Errorf("%w: batch size must be positive", errInvalidConfig)
	} else if _, err := almanac.ParsePairing(c.Pairing); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}
	//
	return nil
}

// PairingMode returns the pairing named by this configuration.
func (c *Config) PairingMode() (almanac.Pairing, error) {
	return almanac.ParsePairing(c.Pairing)
}

// Enumeration returns the enumeration settings of this configuration.
func (c *Config) Enumeration() almanac.EnumerationConfig {
	return almanac.EnumerationConfig{Workers: c.Workers, BatchSize: c.BatchSize, Limit: c.Limit}
}

// Options returns the pipeline options of this configuration.
func (c *Config) Options() []almanac.Option {
	if c.Coalesce {
		return []almanac.Option{almanac.WithCoalesce()}
	}
	//
	return nil
}

// ReadConfig returns the configuration based on the values provided by flags,
// the environment and the 'almanac.yaml' file.  The file is loaded from the
// current working directory or '$HOME/.almanac'.  If no configuration file is
// present, the remaining values are returned.
func ReadConfig() (*Config, error) {
	config := DefaultConfig()
	//
	viper.SetTypeByDefaultValue(true)
	//
	if err := viper.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	//
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	//
	return config, nil
}

// MustBindPFlag attempts to bind a specific key to a pflag (as used by cobra)
// and panics if the binding fails with a non-nil error.
func MustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// Configure viper to read the configuration file and environment.  Defaults
// are registered for every key, since otherwise environment variables for
// keys which are not otherwise known are ignored when unmarshalling.
func configureViper() {
	viper.SetConfigName("almanac")
	viper.SetConfigType("yaml")
	//
	viper.SetEnvPrefix("ALMANAC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	//
	for _, path := range []string{".", "$HOME/.almanac"} {
		viper.AddConfigPath(path)
	}
	//
	defaults := DefaultConfig()
	viper.SetDefault(questionKey, defaults.Question)
	viper.SetDefault(strategyKey, defaults.Strategy)
	viper.SetDefault(pairingKey, defaults.Pairing)
	viper.SetDefault(workersKey, defaults.Workers)
	viper.SetDefault(limitKey, defaults.Limit)
	viper.SetDefault(batchSizeKey, defaults.BatchSize)
	viper.SetDefault(coalesceKey, defaults.Coalesce)
	viper.SetDefault(verboseKey, defaults.Verbose)
}

// Register the solving flags on a given command.
func addSolveFlags(command *cobra.Command) {
	defaults := DefaultConfig()
	flags := command.Flags()
	//
	flags.String(pairingKey, defaults.Pairing, "how seeds are paired into ranges (bounds or length)")
	flags.Uint(workersKey, defaults.Workers, "number of enumeration workers (0 for one per CPU)")
	flags.Uint64(limitKey, defaults.Limit, "maximum number of values to enumerate")
	flags.Uint64(batchSizeKey, defaults.BatchSize, "number of values enumerated per task")
	flags.Bool(coalesceKey, defaults.Coalesce, "merge adjacent ranges after each stage")
}

// bindFlagsFunc binds the cobra cmd flags to the equivalent config value being
// managed by viper.  Binding happens just before the command runs, since keys
// are shared between commands and the most recent binding wins.
func bindFlagsFunc(keys ...string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		for _, key := range keys {
			MustBindPFlag(key, cmd.Flag(key))
		}
		//
		MustBindPFlag(verboseKey, cmd.Flag(verboseKey))
	}
}
