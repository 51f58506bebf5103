// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/internal/generator"
	"github.com/pdiddy/idea-engine/internal/render"
	"github.com/pdiddy/idea-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a batch of random app ideas",
	Long: `Generate draws a batch of 1-10 app ideas from the reference tables.

Use --variant to pick the idea template (classic, problem, stack, business,
validated). Use --feasibility to keep only ideas with that feasibility, or
--field and --value to constrain any field. Without --variant, a filter on
a field only one variant draws (feasibility, competition) selects that
variant. Filtered generation gives up after --max-attempts draws per idea.

Passing a non-zero --seed makes the output reproducible.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int("count", types.DefaultCount, "number of ideas to generate (1-10)")
	generateCmd.Flags().String("variant", string(types.VariantClassic), "idea template: classic, problem, stack, business, or validated")
	generateCmd.Flags().String("feasibility", "", "keep only ideas with this feasibility (implies validated unless --variant is set)")
	generateCmd.Flags().String("field", "", "field to filter on (category, audience, feature, problem, technology, monetization, feasibility, competition)")
	generateCmd.Flags().String("value", "", "value the filtered field must equal")
	generateCmd.Flags().Uint64("seed", 0, "random seed; 0 draws a fresh seed")
	generateCmd.Flags().Int("max-attempts", types.DefaultMaxAttempts, "draws per idea before a filtered generation gives up")
	generateCmd.Flags().String("format", string(types.OutputText), "output format: text, markdown, json, or yaml")
	generateCmd.Flags().String("output", "", "write ideas to this file instead of stdout")

	bindFlags(generateCmd, map[string]string{
		"count":        "generator.count",
		"variant":      "generator.variant",
		"seed":         "generator.seed",
		"max-attempts": "generator.max_attempts",
		"format":       "generator.format",
	})

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	feasibility, _ := cmd.Flags().GetString("feasibility")
	field, _ := cmd.Flags().GetString("field")
	value, _ := cmd.Flags().GetString("value")
	sel := generator.Selection{
		Feasibility: feasibility,
		Field:       field,
		Value:       value,
	}
	// Only an explicit --variant overrides the variant a feasibility
	// filter implies.
	if cmd.Flags().Changed("variant") {
		sel.Variant = string(cfg.Generator.Variant)
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		return writeIdeas(os.Stdout, c, cfg.Generator, sel)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := writeIdeas(f, c, cfg.Generator, sel); err != nil {
		f.Close()
		os.Remove(outPath)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote ideas to %s\n", outPath)
	return nil
}

// writeIdeas generates one batch under gc and renders it to w in
// gc.Format. A variant in sel overrides gc.Variant.
func writeIdeas(w io.Writer, c *catalog.Catalog, gc types.GeneratorConfig, sel generator.Selection) error {
	variant, filter, err := sel.Resolve(gc.Variant)
	if err != nil {
		return err
	}

	g, err := generator.NewSeeded(c, gc.Seed, generator.Options{
		Variant:     variant,
		MaxAttempts: gc.MaxAttempts,
	})
	if err != nil {
		return err
	}

	count := gc.Count
	if count == 0 {
		count = types.DefaultCount
	}
	ideas, err := g.GenerateMany(count, filter)
	if err != nil {
		return err
	}
	return render.Write(w, gc.Format, ideas)
}
