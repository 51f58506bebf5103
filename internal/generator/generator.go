// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generator produces random app ideas from a catalog of reference
// tables. Every field of an idea is drawn uniformly and independently from
// its table; filtered generation re-samples under a bounded retry loop.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/pkg/types"
)

var (
	// ErrNoMatch is returned when no candidate satisfied the filter within
	// the attempt bound.
	ErrNoMatch = errors.New("no matching idea could be generated")

	// ErrUnsatisfiable is returned when a filter can never hold for the
	// generator's variant and catalog.
	ErrUnsatisfiable = errors.New("filter can never match")

	// ErrCount is returned when a batch size is outside [MinCount, MaxCount].
	ErrCount = errors.New("idea count out of range")
)

// Filter accepts ideas whose Field equals Value. The zero Filter accepts
// every idea.
type Filter struct {
	Field types.Field
	Value string
}

// IsEmpty reports whether the filter accepts every idea.
func (f Filter) IsEmpty() bool {
	return f.Field == "" && f.Value == ""
}

// Matches reports whether idea satisfies the filter.
func (f Filter) Matches(idea types.Idea) bool {
	return f.IsEmpty() || idea.Value(f.Field) == f.Value
}

func (f Filter) String() string {
	if f.IsEmpty() {
		return "any"
	}
	return fmt.Sprintf("%s=%q", f.Field, f.Value)
}

// Options configures a Generator.
type Options struct {
	// Variant selects the tables drawn. Empty means classic.
	Variant types.Variant

	// MaxAttempts bounds filtered generation. Zero uses DefaultMaxAttempts.
	MaxAttempts int
}

// Generator draws ideas from a catalog using an explicit random source.
// It is not safe for concurrent use.
type Generator struct {
	catalog     *catalog.Catalog
	rng         *rand.Rand
	variant     types.Variant
	draws       map[types.Field]bool
	maxAttempts int
}

// New validates the catalog and options and returns a Generator that
// draws from rng.
func New(c *catalog.Catalog, rng *rand.Rand, opts Options) (*Generator, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	variant := opts.Variant
	if variant == "" {
		variant = types.VariantClassic
	}
	draws, ok := variantFields[variant]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q", variant)
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = types.DefaultMaxAttempts
	}

	set := make(map[types.Field]bool, len(draws))
	for _, f := range draws {
		set[f] = true
	}

	return &Generator{
		catalog:     c,
		rng:         rng,
		variant:     variant,
		draws:       set,
		maxAttempts: maxAttempts,
	}, nil
}

// ParseFilter builds a Filter from a field name and value. Both empty
// yields the zero Filter.
func ParseFilter(field, value string) (Filter, error) {
	if field == "" && value == "" {
		return Filter{}, nil
	}
	if field == "" || value == "" {
		return Filter{}, fmt.Errorf("filter needs both a field and a value")
	}
	f, err := types.ParseField(field)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Field: f, Value: value}, nil
}

// NewRand returns a PCG-backed source seeded with seed, or with fresh
// entropy when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// NewSeeded returns a Generator drawing from NewRand(seed). Identical
// non-zero seeds yield identical idea sequences.
func NewSeeded(c *catalog.Catalog, seed uint64, opts Options) (*Generator, error) {
	return New(c, NewRand(seed), opts)
}

// Variant returns the generator's variant.
func (g *Generator) Variant() types.Variant {
	return g.variant
}

// Draws reports whether the generator's variant populates field f.
func (g *Generator) Draws(f types.Field) bool {
	return g.draws[f]
}

// Check returns ErrUnsatisfiable when f targets a field the variant does
// not draw or a value outside the field's table.
func (g *Generator) Check(f Filter) error {
	if f.IsEmpty() {
		return nil
	}
	if !g.draws[f.Field] {
		return fmt.Errorf("%w: variant %s does not produce field %q", ErrUnsatisfiable, g.variant, f.Field)
	}
	if !g.catalog.Contains(f.Field, f.Value) {
		return fmt.Errorf("%w: %q is not a known %s", ErrUnsatisfiable, f.Value, f.Field)
	}
	return nil
}

// Generate returns one idea satisfying f.
func (g *Generator) Generate(f Filter) (types.Idea, error) {
	if err := g.Check(f); err != nil {
		return types.Idea{}, err
	}
	if f.IsEmpty() {
		return g.GenerateWhere(nil)
	}
	return g.GenerateWhere(f.Matches)
}

// GenerateWhere draws candidates until accept holds, at most MaxAttempts
// times. A nil accept takes the first candidate.
func (g *Generator) GenerateWhere(accept func(types.Idea) bool) (types.Idea, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		idea := g.draw()
		if accept == nil || accept(idea) {
			return idea, nil
		}
	}
	return types.Idea{}, fmt.Errorf("%w within %d attempts", ErrNoMatch, g.maxAttempts)
}

// GenerateMany returns n independently generated ideas satisfying f, in
// generation order. Duplicates are possible. The first failure aborts the
// batch.
func (g *Generator) GenerateMany(n int, f Filter) ([]types.Idea, error) {
	if n < types.MinCount || n > types.MaxCount {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrCount, n, types.MinCount, types.MaxCount)
	}
	if err := g.Check(f); err != nil {
		return nil, err
	}

	ideas := make([]types.Idea, 0, n)
	for i := 0; i < n; i++ {
		idea, err := g.Generate(f)
		if err != nil {
			return nil, fmt.Errorf("idea %d of %d: %w", i+1, n, err)
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

// draw assembles one candidate. Tables are drawn in a fixed order so a
// seeded source always yields the same sequence.
func (g *Generator) draw() types.Idea {
	c := g.catalog
	idea := types.Idea{Variant: g.variant}

	if g.draws[types.FieldCategory] {
		idea.Category = g.pick(c.Categories)
	}
	if g.draws[types.FieldProblem] {
		idea.Problem = g.pick(c.Problems)
	}
	if g.draws[types.FieldAudience] {
		idea.Audience = g.pick(c.Audiences)
	}
	if g.draws[types.FieldFeature] {
		idea.Feature = g.pick(c.Features)
	}
	if g.draws[types.FieldTechnology] {
		idea.Technology = g.pick(c.Technologies)
	}
	if g.draws[types.FieldMonetization] {
		m := c.Monetization[g.rng.IntN(len(c.Monetization))]
		idea.Monetization = &m
	}
	if g.draws[types.FieldFeasibility] {
		idea.Feasibility = g.pick(c.Feasibility)
	}
	if g.draws[types.FieldCompetition] {
		span := c.MarketSize.Max - c.MarketSize.Min + 1
		idea.Validation = &types.Validation{
			MarketSize:  c.MarketSize.Min + g.rng.IntN(span),
			Competition: g.pick(c.Competition),
		}
	}

	idea.Description = describe(idea)
	return idea
}
