// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/idea-engine/pkg/types"
)

func sampleIdeas() []types.Idea {
	return []types.Idea{
		{
			Variant:     types.VariantClassic,
			Description: "Create a Travel app for Students with Voice commands",
			Category:    "Travel",
			Audience:    "Students",
			Feature:     "Voice commands",
		},
		{
			Variant:      types.VariantValidated,
			Description:  "Solve food waste for Parents using IoT sensors",
			Problem:      "food waste",
			Audience:     "Parents",
			Technology:   "IoT sensors",
			Monetization: &types.Monetization{Model: "Subscription", Detail: "monthly or yearly recurring plans"},
			Feasibility:  types.FeasibilityMediumTerm,
			Validation:   &types.Validation{MarketSize: 120, Competition: "Low"},
		},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleIdeas()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "1. Create a Travel app for Students with Voice commands", lines[0])
	assert.Equal(t, "2. Solve food waste for Parents using IoT sensors", lines[1])
	assert.Contains(t, buf.String(), "Feasibility:  Medium-term")
	assert.Contains(t, buf.String(), "Market size:  120M potential users")
	// Classic ideas print only their sentence.
	assert.NotContains(t, buf.String(), "Category:")
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, sampleIdeas()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "## Generated Ideas\n"))
	assert.Contains(t, out, "### 1. Create a Travel app for Students with Voice commands")
	assert.Contains(t, out, "- **Category:** Travel")
	assert.Contains(t, out, "- **Monetization:** Subscription (monthly or yearly recurring plans)")
	assert.Contains(t, out, "- **Competition:** Low")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleIdeas()))

	var got Batch
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, sampleIdeas(), got.Ideas)

	var raw struct {
		Ideas []map[string]any `json:"ideas"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.NotContains(t, raw.Ideas[0], "problem")
	assert.NotContains(t, raw.Ideas[0], "validation")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, sampleIdeas()))

	var got Batch
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "food waste", got.Ideas[1].Problem)
	assert.Equal(t, 120, got.Ideas[1].Validation.MarketSize)
}

func TestJSONEmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, nil))
	assert.JSONEq(t, `{"count":0,"ideas":[]}`, buf.String())
}

func TestWrite(t *testing.T) {
	tests := []struct {
		format  types.OutputFormat
		want    string
		wantErr bool
	}{
		{format: "", want: "1. Create a Travel app"},
		{format: types.OutputText, want: "1. Create a Travel app"},
		{format: types.OutputMarkdown, want: "### 1."},
		{format: types.OutputJSON, want: `"count": 2`},
		{format: types.OutputYAML, want: "count: 2"},
		{format: "latex", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.format, sampleIdeas())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported format")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestDetails(t *testing.T) {
	details := Details(sampleIdeas()[1])
	labels := make([]string, len(details))
	for i, d := range details {
		labels[i] = d.Label
	}
	assert.Equal(t, []string{
		"Problem", "Audience", "Technology", "Monetization",
		"Feasibility", "Market size", "Competition",
	}, labels)

	assert.Equal(t, []Detail{{Label: "Monetization", Value: "Tips"}},
		Details(types.Idea{Monetization: &types.Monetization{Model: "Tips"}}))
}
