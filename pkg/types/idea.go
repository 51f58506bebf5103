// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for idea-engine.
// Covers the idea record produced by the generator, the discrete fields
// an acceptance filter can target, and the stage configurations.
package types

import "fmt"

// Variant selects which reference tables the generator draws from and how
// the description sentence is phrased.
type Variant string

const (
	VariantClassic   Variant = "classic"
	VariantProblem   Variant = "problem"
	VariantStack     Variant = "stack"
	VariantBusiness  Variant = "business"
	VariantValidated Variant = "validated"
)

// Variants lists every supported variant in display order.
var Variants = []Variant{
	VariantClassic,
	VariantProblem,
	VariantStack,
	VariantBusiness,
	VariantValidated,
}

// ParseVariant returns the Variant named s. The empty string selects classic.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantClassic, nil
	}
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q: use classic, problem, stack, business, or validated", s)
}

// Field names a discrete idea attribute drawn from a reference table.
type Field string

const (
	FieldCategory     Field = "category"
	FieldAudience     Field = "audience"
	FieldFeature      Field = "feature"
	FieldProblem      Field = "problem"
	FieldTechnology   Field = "technology"
	FieldMonetization Field = "monetization"
	FieldFeasibility  Field = "feasibility"
	FieldCompetition  Field = "competition"
)

// Fields lists every discrete field in catalog order.
var Fields = []Field{
	FieldCategory,
	FieldAudience,
	FieldFeature,
	FieldProblem,
	FieldTechnology,
	FieldMonetization,
	FieldFeasibility,
	FieldCompetition,
}

// ParseField returns the Field named s.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Feasibility tiers used by the validated variant.
const (
	FeasibilityQuickMVP   = "Quick MVP"
	FeasibilityMediumTerm = "Medium-term"
	FeasibilityComplexRD  = "Complex R&D"
)

// Monetization is one entry of the monetization reference table.
type Monetization struct {
	// Model is the short name of the revenue model (e.g. "Freemium").
	Model string `json:"model" yaml:"model"`

	// Detail explains how the model earns money.
	Detail string `json:"detail" yaml:"detail"`
}

// Validation holds the randomly drawn market metrics of a validated idea.
type Validation struct {
	// MarketSize is the estimated addressable market in millions of users.
	MarketSize int `json:"market_size" yaml:"market_size"`

	// Competition is the competition level drawn from the competition table.
	Competition string `json:"competition" yaml:"competition"`
}

// Idea is one generated app idea. Only the fields drawn by its Variant are
// populated; the rest stay at their zero value.
type Idea struct {
	Variant     Variant `json:"variant" yaml:"variant"`
	Description string  `json:"description" yaml:"description"`

	Category     string        `json:"category,omitempty" yaml:"category,omitempty"`
	Audience     string        `json:"audience,omitempty" yaml:"audience,omitempty"`
	Feature      string        `json:"feature,omitempty" yaml:"feature,omitempty"`
	Problem      string        `json:"problem,omitempty" yaml:"problem,omitempty"`
	Technology   string        `json:"technology,omitempty" yaml:"technology,omitempty"`
	Monetization *Monetization `json:"monetization,omitempty" yaml:"monetization,omitempty"`
	Feasibility  string        `json:"feasibility,omitempty" yaml:"feasibility,omitempty"`
	Validation   *Validation   `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// Value returns the idea's value for a discrete field, or "" when the
// field was not drawn. Monetization resolves to the model name.
func (i Idea) Value(f Field) string {
	switch f {
	case FieldCategory:
		return i.Category
	case FieldAudience:
		return i.Audience
	case FieldFeature:
		return i.Feature
	case FieldProblem:
		return i.Problem
	case FieldTechnology:
		return i.Technology
	case FieldMonetization:
		if i.Monetization != nil {
			return i.Monetization.Model
		}
	case FieldFeasibility:
		return i.Feasibility
	case FieldCompetition:
		if i.Validation != nil {
			return i.Validation.Competition
		}
	}
	return ""
}
