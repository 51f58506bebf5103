// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the idea-engine CLI.
// Subcommands: generate (print a batch of ideas), serve (HTTP dashboard
// and JSON API), catalog (show the active reference tables), version.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the idea-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "idea-engine",
	Short: "Generate random app ideas from curated reference tables",
	Long: `idea-engine assembles app ideas by drawing categories, audiences,
features, problem domains, technologies, and monetization models at random
from fixed reference tables.

Use generate to print a batch of ideas, or serve to run the dashboard.
Reference tables can be overridden with --catalog-file (YAML) or
--catalog-dir (one plain-text file per table).`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./idea-engine.yaml or ~/.config/idea-engine/idea-engine.yaml)")
	rootCmd.PersistentFlags().String("catalog-file", "", "YAML catalog overriding the built-in reference tables")
	rootCmd.PersistentFlags().String("catalog-dir", "", "directory of plain-text reference tables, applied after --catalog-file")

	bindFlags(rootCmd, map[string]string{
		"catalog-file": "catalog.file",
		"catalog-dir":  "catalog.dir",
	})

	viper.SetDefault("generator.count", types.DefaultCount)
	viper.SetDefault("generator.variant", string(types.VariantClassic))
	viper.SetDefault("generator.max_attempts", types.DefaultMaxAttempts)
	viper.SetDefault("generator.seed", 0)
	viper.SetDefault("generator.format", string(types.OutputText))
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.log_mode", "dev")
	viper.SetDefault("server.allow_origins", []string{})
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("idea-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "idea-engine"))
		}
	}

	viper.SetEnvPrefix("IDEA_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, env, file, and default settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// loadCatalog builds the reference tables once for the command run.
func loadCatalog(cfg types.Config) (*catalog.Catalog, error) {
	return catalog.Load(cfg.Catalog, os.Stderr)
}

// bindFlags ties command flags to config keys so flags override env and
// file settings.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for name, key := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			panic(fmt.Sprintf("binding --%s: %v", name, err))
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
