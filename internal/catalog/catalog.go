// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the reference tables ideas are drawn from.
// A Catalog is built once at start-up (defaults, then optional overrides)
// and treated as read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// ErrEmptyTable is returned by Validate when a reference table has no values.
var ErrEmptyTable = errors.New("reference table is empty")

// MaxMarketSize is the largest market size, in millions of users, a
// catalog may declare.
const MaxMarketSize = 1_000_000

// Range is an inclusive integer bound for a random metric.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Catalog is the set of reference tables.
type Catalog struct {
	Categories   []string             `json:"categories" yaml:"categories"`
	Audiences    []string             `json:"audiences" yaml:"audiences"`
	Features     []string             `json:"features" yaml:"features"`
	Problems     []string             `json:"problems" yaml:"problems"`
	Technologies []string             `json:"technologies" yaml:"technologies"`
	Monetization []types.Monetization `json:"monetization" yaml:"monetization"`
	Feasibility  []string             `json:"feasibility" yaml:"feasibility"`
	Competition  []string             `json:"competition" yaml:"competition"`

	// MarketSize bounds the validated variant's market size, in millions of users.
	MarketSize Range `json:"market_size" yaml:"market_size"`
}

var (
	defaultCategories = []string{
		"Health & Fitness",
		"Education",
		"Finance",
		"Social Media",
		"Productivity",
		"Travel",
		"Food & Cooking",
		"Gaming",
		"E-commerce",
		"Sustainability",
	}

	defaultAudiences = []string{
		"Students",
		"Professionals",
		"Parents",
		"Seniors",
		"Teachers",
		"Entrepreneurs",
		"Fitness Enthusiasts",
		"Travelers",
		"Gamers",
		"Local Communities",
	}

	defaultFeatures = []string{
		"AI-powered recommendations",
		"Social sharing",
		"Augmented Reality",
		"Real-time collaboration",
		"Gamification elements",
		"Personalized dashboard",
		"Location-based services",
		"Voice commands",
		"Offline functionality",
		"Blockchain integration",
	}

	defaultProblems = []string{
		"food waste",
		"loneliness",
		"procrastination",
		"medication adherence",
		"household budgeting",
		"finding study partners",
		"tracking carbon footprint",
		"coordinating group travel",
		"learning a new language",
		"managing freelance invoices",
	}

	defaultTechnologies = []string{
		"Machine Learning",
		"Computer Vision",
		"Natural Language Processing",
		"Augmented Reality",
		"IoT sensors",
		"Blockchain",
		"Progressive Web App",
		"Serverless backend",
		"Wearables",
		"Edge computing",
	}

	defaultMonetization = []types.Monetization{
		{Model: "Freemium", Detail: "free core features with paid premium tiers"},
		{Model: "Subscription", Detail: "monthly or yearly recurring plans"},
		{Model: "In-app purchases", Detail: "one-off digital goods and upgrades"},
		{Model: "Advertising", Detail: "sponsored placements shown to free users"},
		{Model: "Marketplace fees", Detail: "a commission on every transaction"},
		{Model: "Licensing", Detail: "white-label licenses sold to businesses"},
	}

	defaultFeasibility = []string{
		types.FeasibilityQuickMVP,
		types.FeasibilityMediumTerm,
		types.FeasibilityComplexRD,
	}

	defaultCompetition = []string{"Low", "Medium", "High"}

	defaultMarketSize = Range{Min: 1, Max: 500}
)

// Default returns a fresh copy of the built-in tables. Callers may modify
// the returned catalog without affecting later calls.
func Default() *Catalog {
	return &Catalog{
		Categories:   clone(defaultCategories),
		Audiences:    clone(defaultAudiences),
		Features:     clone(defaultFeatures),
		Problems:     clone(defaultProblems),
		Technologies: clone(defaultTechnologies),
		Monetization: append([]types.Monetization(nil), defaultMonetization...),
		Feasibility:  clone(defaultFeasibility),
		Competition:  clone(defaultCompetition),
		MarketSize:   defaultMarketSize,
	}
}

func clone(values []string) []string {
	return append([]string(nil), values...)
}

// Values returns the candidate values of a discrete field. Monetization
// resolves to the model names. It returns nil for an unknown field.
func (c *Catalog) Values(f types.Field) []string {
	switch f {
	case types.FieldCategory:
		return c.Categories
	case types.FieldAudience:
		return c.Audiences
	case types.FieldFeature:
		return c.Features
	case types.FieldProblem:
		return c.Problems
	case types.FieldTechnology:
		return c.Technologies
	case types.FieldMonetization:
		models := make([]string, len(c.Monetization))
		for i, m := range c.Monetization {
			models[i] = m.Model
		}
		return models
	case types.FieldFeasibility:
		return c.Feasibility
	case types.FieldCompetition:
		return c.Competition
	}
	return nil
}

// Contains reports whether value is a member of the field's table.
func (c *Catalog) Contains(f types.Field, value string) bool {
	for _, v := range c.Values(f) {
		if v == value {
			return true
		}
	}
	return false
}

// Validate checks that every table is non-empty, that no value is blank,
// and that the market size range is well formed and at most MaxMarketSize.
func (c *Catalog) Validate() error {
	for _, f := range types.Fields {
		values := c.Values(f)
		if len(values) == 0 {
			return fmt.Errorf("%s: %w", f, ErrEmptyTable)
		}
		for i, v := range values {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%s: value %d is blank", f, i)
			}
		}
	}
	r := c.MarketSize
	if r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("market_size: invalid range [%d, %d]", r.Min, r.Max)
	}
	if r.Max > MaxMarketSize {
		return fmt.Errorf("market_size: max %d exceeds %d", r.Max, MaxMarketSize)
	}
	return nil
}
