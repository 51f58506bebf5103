// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// tableFiles maps the file name of a plain-text table to its field.
var tableFiles = map[string]types.Field{
	"categories":   types.FieldCategory,
	"audiences":    types.FieldAudience,
	"features":     types.FieldFeature,
	"problems":     types.FieldProblem,
	"technologies": types.FieldTechnology,
	"monetization": types.FieldMonetization,
	"feasibility":  types.FieldFeasibility,
	"competition":  types.FieldCompetition,
}

// Load builds the catalog for cfg: the built-in tables, overlaid by
// cfg.File and then cfg.Dir when set. The result is validated.
// Warnings about skipped files go to w.
func Load(cfg types.CatalogConfig, w io.Writer) (*Catalog, error) {
	c := Default()
	if cfg.File != "" {
		var err error
		if c, err = LoadFile(cfg.File); err != nil {
			return nil, err
		}
	}
	if cfg.Dir != "" {
		if err := c.LoadDir(cfg.Dir, w); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a YAML catalog and overlays it on the built-in tables.
// Tables present in the file replace the default table; absent tables keep
// their defaults. The result is not validated.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return c, nil
}

// LoadDir replaces tables from a directory of plain-text files. Each file
// is named after its table (e.g. "categories" or "categories.txt") and
// holds one value per line; blank lines and lines starting with # are
// ignored. Monetization lines use "Model: detail".
//
// A missing directory is not an error. Dotfiles and subdirectories are
// skipped; unknown or unreadable files produce a warning on w but do not
// abort.
func (c *Catalog) LoadDir(dir string, w io.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading catalog directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		field, ok := tableFiles[strings.TrimSuffix(name, ".txt")]
		if !ok {
			fmt.Fprintf(w, "warning: unknown catalog table %s\n", name)
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "warning: could not read catalog table %s: %v\n", name, err)
			continue
		}

		c.setTable(field, parseLines(string(data)))
	}

	return nil
}

func (c *Catalog) setTable(f types.Field, values []string) {
	switch f {
	case types.FieldCategory:
		c.Categories = values
	case types.FieldAudience:
		c.Audiences = values
	case types.FieldFeature:
		c.Features = values
	case types.FieldProblem:
		c.Problems = values
	case types.FieldTechnology:
		c.Technologies = values
	case types.FieldMonetization:
		c.Monetization = make([]types.Monetization, len(values))
		for i, v := range values {
			model, detail, _ := strings.Cut(v, ":")
			c.Monetization[i] = types.Monetization{
				Model:  strings.TrimSpace(model),
				Detail: strings.TrimSpace(detail),
			}
		}
	case types.FieldFeasibility:
		c.Feasibility = values
	case types.FieldCompetition:
		c.Competition = values
	}
}

func parseLines(text string) []string {
	var values []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}
	return values
}
