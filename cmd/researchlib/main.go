// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the researchlib CLI. Each record
// utility is a subcommand that reads JSON or YAML record files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/researchlib/internal/logging"
	"github.com/pdiddy/researchlib/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg holds the settings resolved from flags, config file, and env.
	cfg = types.DefaultLibraryConfig()

	// logger is built from cfg.Log before any subcommand runs.
	logger = slog.New(slog.DiscardHandler)
)

// rootCmd is the base command for the researchlib CLI.
var rootCmd = &cobra.Command{
	Use:   "researchlib",
	Short: "Record utilities for bibliographic and research metadata",
	Long: `researchlib validates identifiers, normalizes author names, parses loose
metadata, searches and indexes record collections, merges versioned record
sets, builds universal records, formats citations, and exports results.

Record files are JSON or YAML lists of flat objects. Use "-" to read stdin.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		l, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(l)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./researchlib.yaml or ~/.config/researchlib/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	def := types.DefaultLibraryConfig()
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.format", def.Log.Format)
	viper.SetDefault("ids.prefix", def.IDs.Prefix)
	viper.SetDefault("citation.style", string(def.Citation.Style))
	viper.SetDefault("export.format", string(def.Export.Format))
	viper.SetDefault("search.fields", []string{})

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("researchlib")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "researchlib"))
		}
	}

	viper.SetEnvPrefix("RESEARCHLIB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
