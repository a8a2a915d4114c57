/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/suderio/coup/internal/data"
	"github.com/suderio/coup/internal/engine"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coup",
	Short: "A rules engine for a Coup-style game of coins and roles",
	Long: `coup runs a table of two to six players who gather coins, use the powers
of their roles and remove each other with coups until one player is left.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.coup.yaml)")
	rootCmd.PersistentFlags().StringSlice("rules_dir", nil, "Directories searched for rulesets/<name>.yaml before the built-in ones")
	rootCmd.PersistentFlags().String("ruleset", data.DefaultRuleset, "Name of the ruleset to play with")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for random role assignment (0 picks one from the clock)")
	rootCmd.PersistentFlags().String("log_level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log_file", "", "Write logs to this file (logging is off when empty)")

	for _, key := range []string{"rules_dir", "ruleset", "seed", "log_level", "log_file"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".coup")
	}

	viper.SetEnvPrefix("coup")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the logger from log_level and log_file. Without a log
// file nothing is logged, so the terminal UI stays clean.
func newLogger() (*zap.Logger, error) {
	path := viper.GetString("log_file")
	if path == "" {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(viper.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// loadRuleset resolves the configured ruleset through the data loader.
func loadRuleset() (*data.RulesetDoc, error) {
	loader := data.NewLoader(viper.GetStringSlice("rules_dir"))
	return loader.LoadRuleset(viper.GetString("ruleset"))
}

func newRand() *rand.Rand {
	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// newGame builds a game from the configured ruleset, seed and logger.
func newGame(logger *zap.Logger) (*engine.Game, error) {
	doc, err := loadRuleset()
	if err != nil {
		return nil, err
	}
	return engine.New(doc.Rules, engine.WithLogger(logger), engine.WithRand(newRand()))
}
