// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes batches of ideas for display or export.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// Batch is the structured form of a generated batch used by the JSON and
// YAML renderers and the HTTP API.
type Batch struct {
	Count int          `json:"count" yaml:"count"`
	Ideas []types.Idea `json:"ideas" yaml:"ideas"`
}

// NewBatch wraps ideas in a Batch.
func NewBatch(ideas []types.Idea) Batch {
	if ideas == nil {
		ideas = []types.Idea{}
	}
	return Batch{Count: len(ideas), Ideas: ideas}
}

// Write renders ideas in the given format.
func Write(w io.Writer, format types.OutputFormat, ideas []types.Idea) error {
	switch format {
	case types.OutputText, "":
		return Text(w, ideas)
	case types.OutputMarkdown:
		return Markdown(w, ideas)
	case types.OutputJSON:
		return JSON(w, ideas)
	case types.OutputYAML:
		return YAML(w, ideas)
	default:
		return fmt.Errorf("unsupported format %q: use text, markdown, json, or yaml", format)
	}
}

// Detail is one labelled supporting attribute of an idea.
type Detail struct {
	Label string
	Value string
}

// Details lists the populated supporting attributes of idea in display order.
func Details(idea types.Idea) []Detail {
	var details []Detail
	add := func(label, value string) {
		if value != "" {
			details = append(details, Detail{Label: label, Value: value})
		}
	}

	add("Category", idea.Category)
	add("Problem", idea.Problem)
	add("Audience", idea.Audience)
	add("Feature", idea.Feature)
	add("Technology", idea.Technology)
	if m := idea.Monetization; m != nil {
		if m.Detail != "" {
			add("Monetization", m.Model+" ("+m.Detail+")")
		} else {
			add("Monetization", m.Model)
		}
	}
	add("Feasibility", idea.Feasibility)
	if v := idea.Validation; v != nil {
		add("Market size", fmt.Sprintf("%dM potential users", v.MarketSize))
		add("Competition", v.Competition)
	}
	return details
}

// Text writes one numbered line per idea. Variants that carry more than
// the description sentence get indented detail lines.
func Text(w io.Writer, ideas []types.Idea) error {
	for i, idea := range ideas {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, idea.Description); err != nil {
			return err
		}
		if idea.Variant == types.VariantClassic || idea.Variant == "" {
			continue
		}
		for _, d := range Details(idea) {
			if _, err := fmt.Fprintf(w, "   %-13s %s\n", d.Label+":", d.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Markdown writes one card section per idea.
func Markdown(w io.Writer, ideas []types.Idea) error {
	var b strings.Builder
	b.WriteString("## Generated Ideas\n")
	for i, idea := range ideas {
		fmt.Fprintf(&b, "\n### %d. %s\n\n", i+1, idea.Description)
		for _, d := range Details(idea) {
			fmt.Fprintf(&b, "- **%s:** %s\n", d.Label, d.Value)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the batch as indented JSON.
func JSON(w io.Writer, ideas []types.Idea) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewBatch(ideas))
}

// YAML writes the batch as YAML.
func YAML(w io.Writer, ideas []types.Idea) error {
	data, err := yaml.Marshal(NewBatch(ideas))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
