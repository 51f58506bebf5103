// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"errors"
	"fmt"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// ErrInvalid marks malformed generation parameters.
var ErrInvalid = errors.New("invalid request")

// Selection is a variant and filter choice as collected from a user, before
// validation.
type Selection struct {
	Variant     string
	Feasibility string
	Field       string
	Value       string
}

// Resolve returns the variant and filter for s. fallback applies when no
// variant was chosen. Without an explicit variant, a filter on a field the
// fallback does not draw selects the one variant that draws it, so a
// feasibility or competition filter alone selects validated.
func (s Selection) Resolve(fallback types.Variant) (types.Variant, Filter, error) {
	name := s.Variant
	if name == "" {
		name = string(fallback)
	}
	variant, err := types.ParseVariant(name)
	if err != nil {
		return "", Filter{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var filter Filter
	if s.Feasibility != "" {
		if s.Field != "" || s.Value != "" {
			return "", Filter{}, fmt.Errorf("%w: use either feasibility or field/value, not both", ErrInvalid)
		}
		filter = Filter{Field: types.FieldFeasibility, Value: s.Feasibility}
	} else {
		filter, err = ParseFilter(s.Field, s.Value)
		if err != nil {
			return "", Filter{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	if s.Variant == "" && !filter.IsEmpty() && !draws(variant, filter.Field) {
		if only, ok := soleVariantFor(filter.Field); ok {
			variant = only
		}
	}
	return variant, filter, nil
}

func draws(v types.Variant, f types.Field) bool {
	for _, drawn := range variantFields[v] {
		if drawn == f {
			return true
		}
	}
	return false
}

// soleVariantFor returns the variant that draws f when exactly one does.
func soleVariantFor(f types.Field) (types.Variant, bool) {
	var found types.Variant
	n := 0
	for _, v := range types.Variants {
		if draws(v, f) {
			found = v
			n++
		}
	}
	return found, n == 1
}
