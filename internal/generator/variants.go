// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"fmt"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// variantFields lists the tables each variant draws from.
var variantFields = map[types.Variant][]types.Field{
	types.VariantClassic: {
		types.FieldCategory, types.FieldAudience, types.FieldFeature,
	},
	types.VariantProblem: {
		types.FieldProblem, types.FieldAudience, types.FieldFeature,
	},
	types.VariantStack: {
		types.FieldCategory, types.FieldAudience, types.FieldTechnology,
	},
	types.VariantBusiness: {
		types.FieldCategory, types.FieldAudience, types.FieldFeature, types.FieldMonetization,
	},
	types.VariantValidated: {
		types.FieldProblem, types.FieldAudience, types.FieldTechnology,
		types.FieldMonetization, types.FieldFeasibility, types.FieldCompetition,
	},
}

// FieldsFor returns the fields drawn by variant, or nil if it is unknown.
func FieldsFor(variant types.Variant) []types.Field {
	return append([]types.Field(nil), variantFields[variant]...)
}

func describe(idea types.Idea) string {
	switch idea.Variant {
	case types.VariantProblem:
		return fmt.Sprintf("Solve %s for %s with %s", idea.Problem, idea.Audience, idea.Feature)
	case types.VariantStack:
		return fmt.Sprintf("Build a %s app for %s using %s", idea.Category, idea.Audience, idea.Technology)
	case types.VariantBusiness:
		return fmt.Sprintf("Create a %s app for %s with %s, monetized through %s",
			idea.Category, idea.Audience, idea.Feature, idea.Monetization.Model)
	case types.VariantValidated:
		return fmt.Sprintf("Solve %s for %s using %s", idea.Problem, idea.Audience, idea.Technology)
	default:
		return fmt.Sprintf("Create a %s app for %s with %s", idea.Category, idea.Audience, idea.Feature)
	}
}
