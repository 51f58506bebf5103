// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/idea-engine/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the active reference tables",
	Long: `Catalog prints the reference tables generation draws from, after
--catalog-file and --catalog-dir overrides are applied. The YAML output is
a valid --catalog-file.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("format", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	return writeCatalog(os.Stdout, c, format)
}

func writeCatalog(w io.Writer, c *catalog.Catalog, format string) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
