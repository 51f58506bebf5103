// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/pkg/types"
)

func newTestGenerator(t *testing.T, c *catalog.Catalog, opts Options) *Generator {
	t.Helper()
	g, err := NewSeeded(c, 42, opts)
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name    string
		catalog *catalog.Catalog
		rng     *rand.Rand
		opts    Options
		wantErr string
	}{
		{name: "defaults", catalog: catalog.Default(), rng: rng},
		{name: "nil catalog", rng: rng, wantErr: "catalog is required"},
		{name: "nil source", catalog: catalog.Default(), wantErr: "random source is required"},
		{
			name: "empty table",
			catalog: func() *catalog.Catalog {
				c := catalog.Default()
				c.Features = nil
				return c
			}(),
			rng:     rng,
			wantErr: "invalid catalog",
		},
		{
			name: "market size overflows",
			catalog: func() *catalog.Catalog {
				c := catalog.Default()
				c.MarketSize = catalog.Range{Min: 0, Max: math.MaxInt}
				return c
			}(),
			rng:     rng,
			wantErr: "invalid catalog",
		},
		{
			name:    "unknown variant",
			catalog: catalog.Default(),
			rng:     rng,
			opts:    Options{Variant: "futuristic"},
			wantErr: `unknown variant "futuristic"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.catalog, tt.rng, tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.VariantClassic, g.Variant())
			assert.Equal(t, types.DefaultMaxAttempts, g.maxAttempts)
		})
	}
}

func TestGenerateClassicDescription(t *testing.T) {
	g := newTestGenerator(t, catalog.Default(), Options{})

	idea, err := g.Generate(Filter{})
	require.NoError(t, err)
	assert.Equal(t, types.VariantClassic, idea.Variant)
	assert.Equal(t,
		"Create a "+idea.Category+" app for "+idea.Audience+" with "+idea.Feature,
		idea.Description)
	assert.Empty(t, idea.Problem)
	assert.Nil(t, idea.Monetization)
	assert.Nil(t, idea.Validation)
}

func TestGenerateSingletonTables(t *testing.T) {
	c := catalog.Default()
	c.Categories = []string{"Health"}
	c.Technologies = []string{"AI"}
	g := newTestGenerator(t, c, Options{Variant: types.VariantStack})

	for i := 0; i < 200; i++ {
		idea, err := g.Generate(Filter{})
		require.NoError(t, err)
		assert.Equal(t, "Health", idea.Category)
		assert.Equal(t, "AI", idea.Technology)
	}
}

func TestGenerateValuesStayInTables(t *testing.T) {
	c := catalog.Default()

	for _, variant := range types.Variants {
		t.Run(string(variant), func(t *testing.T) {
			g := newTestGenerator(t, c, Options{Variant: variant})
			for i := 0; i < 500; i++ {
				idea, err := g.Generate(Filter{})
				require.NoError(t, err)
				assert.Equal(t, variant, idea.Variant)
				assert.NotEmpty(t, idea.Description)

				for _, f := range types.Fields {
					value := idea.Value(f)
					if g.Draws(f) {
						assert.Contains(t, c.Values(f), value, "field %s", f)
					} else {
						assert.Empty(t, value, "field %s", f)
					}
				}
				if idea.Validation != nil {
					assert.GreaterOrEqual(t, idea.Validation.MarketSize, c.MarketSize.Min)
					assert.LessOrEqual(t, idea.Validation.MarketSize, c.MarketSize.Max)
				}
			}
		})
	}
}

func TestGenerateMonetizationIsTableTuple(t *testing.T) {
	c := catalog.Default()
	g := newTestGenerator(t, c, Options{Variant: types.VariantBusiness})

	for i := 0; i < 100; i++ {
		idea, err := g.Generate(Filter{})
		require.NoError(t, err)
		require.NotNil(t, idea.Monetization)
		assert.Contains(t, c.Monetization, *idea.Monetization)
		assert.Contains(t, idea.Description, "monetized through "+idea.Monetization.Model)
	}
}

func TestGenerateMarketSizeSingletonRange(t *testing.T) {
	c := catalog.Default()
	c.MarketSize = catalog.Range{Min: 12, Max: 12}
	g := newTestGenerator(t, c, Options{Variant: types.VariantValidated})

	for i := 0; i < 50; i++ {
		idea, err := g.Generate(Filter{})
		require.NoError(t, err)
		assert.Equal(t, 12, idea.Validation.MarketSize)
	}
}

func TestGenerateMarketSizeFullRange(t *testing.T) {
	c := catalog.Default()
	c.MarketSize = catalog.Range{Min: 0, Max: catalog.MaxMarketSize}
	g := newTestGenerator(t, c, Options{Variant: types.VariantValidated})

	for i := 0; i < 50; i++ {
		var idea types.Idea
		require.NotPanics(t, func() {
			var err error
			idea, err = g.Generate(Filter{})
			require.NoError(t, err)
		})
		assert.GreaterOrEqual(t, idea.Validation.MarketSize, 0)
		assert.LessOrEqual(t, idea.Validation.MarketSize, catalog.MaxMarketSize)
	}
}

func TestGenerateFilteredFeasibility(t *testing.T) {
	c := catalog.Default()
	c.Feasibility = []string{types.FeasibilityQuickMVP, types.FeasibilityComplexRD}
	g := newTestGenerator(t, c, Options{Variant: types.VariantValidated})
	filter := Filter{Field: types.FieldFeasibility, Value: types.FeasibilityComplexRD}

	for i := 0; i < 1000; i++ {
		idea, err := g.Generate(filter)
		require.NoError(t, err)
		assert.Equal(t, types.FeasibilityComplexRD, idea.Feasibility)
	}
}

func TestGenerateFilterOnEveryDrawnField(t *testing.T) {
	c := catalog.Default()

	for _, variant := range types.Variants {
		g := newTestGenerator(t, c, Options{Variant: variant})
		for _, f := range FieldsFor(variant) {
			want := c.Values(f)[0]
			idea, err := g.Generate(Filter{Field: f, Value: want})
			require.NoError(t, err, "variant %s field %s", variant, f)
			assert.Equal(t, want, idea.Value(f))
		}
	}
}

func TestGenerateUnsatisfiableFilter(t *testing.T) {
	tests := []struct {
		name    string
		variant types.Variant
		filter  Filter
		wantErr string
	}{
		{
			name:    "value not in table",
			variant: types.VariantValidated,
			filter:  Filter{Field: types.FieldFeasibility, Value: "Complex R and D"},
			wantErr: `"Complex R and D" is not a known feasibility`,
		},
		{
			name:    "field not drawn by variant",
			variant: types.VariantClassic,
			filter:  Filter{Field: types.FieldFeasibility, Value: types.FeasibilityQuickMVP},
			wantErr: `variant classic does not produce field "feasibility"`,
		},
		{
			name:    "unknown field",
			variant: types.VariantClassic,
			filter:  Filter{Field: "color", Value: "Red"},
			wantErr: "does not produce field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t, catalog.Default(), Options{Variant: tt.variant})

			_, err := g.Generate(tt.filter)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsatisfiable))
			assert.Contains(t, err.Error(), tt.wantErr)

			_, err = g.GenerateMany(3, tt.filter)
			assert.ErrorIs(t, err, ErrUnsatisfiable)
		})
	}
}

func TestGenerateWhereBoundedRetries(t *testing.T) {
	g := newTestGenerator(t, catalog.Default(), Options{MaxAttempts: 5})

	calls := 0
	_, err := g.GenerateWhere(func(types.Idea) bool {
		calls++
		return false
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, "no matching idea could be generated within 5 attempts", err.Error())
	assert.Equal(t, 5, calls)
}

func TestGenerateWhereNilAcceptsFirst(t *testing.T) {
	a := newTestGenerator(t, catalog.Default(), Options{})
	b := newTestGenerator(t, catalog.Default(), Options{})

	got, err := a.GenerateWhere(nil)
	require.NoError(t, err)
	want, err := b.Generate(Filter{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerateMany(t *testing.T) {
	g := newTestGenerator(t, catalog.Default(), Options{})

	for n := types.MinCount; n <= types.MaxCount; n++ {
		ideas, err := g.GenerateMany(n, Filter{})
		require.NoError(t, err)
		assert.Len(t, ideas, n)
	}
}

func TestGenerateManyCountOutOfRange(t *testing.T) {
	g := newTestGenerator(t, catalog.Default(), Options{})

	for _, n := range []int{-1, 0, types.MaxCount + 1} {
		ideas, err := g.GenerateMany(n, Filter{})
		assert.ErrorIs(t, err, ErrCount, "n=%d", n)
		assert.Nil(t, ideas)
	}
}

func TestGenerateManyFiltered(t *testing.T) {
	g := newTestGenerator(t, catalog.Default(), Options{Variant: types.VariantValidated})
	filter := Filter{Field: types.FieldCompetition, Value: "Low"}

	ideas, err := g.GenerateMany(types.MaxCount, filter)
	require.NoError(t, err)
	require.Len(t, ideas, types.MaxCount)
	for _, idea := range ideas {
		assert.Equal(t, "Low", idea.Validation.Competition)
	}
}

func TestGenerateManyPropagatesNoMatch(t *testing.T) {
	c := catalog.Default()
	g := newTestGenerator(t, c, Options{Variant: types.VariantValidated, MaxAttempts: 1})

	// With a single attempt a 1-in-3 filter fails well within ten ideas for
	// this seed; the batch must surface the error rather than a short slice.
	filter := Filter{Field: types.FieldFeasibility, Value: types.FeasibilityMediumTerm}
	var err error
	for i := 0; i < 20 && err == nil; i++ {
		_, err = g.GenerateMany(types.MaxCount, filter)
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), "of 10")
}

func TestSeededDeterminism(t *testing.T) {
	for _, variant := range types.Variants {
		t.Run(string(variant), func(t *testing.T) {
			a, err := NewSeeded(catalog.Default(), 7, Options{Variant: variant})
			require.NoError(t, err)
			b, err := NewSeeded(catalog.Default(), 7, Options{Variant: variant})
			require.NoError(t, err)

			first, err := a.GenerateMany(types.MaxCount, Filter{})
			require.NoError(t, err)
			second, err := b.GenerateMany(types.MaxCount, Filter{})
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, err := NewSeeded(catalog.Default(), 1, Options{Variant: types.VariantValidated})
	require.NoError(t, err)
	b, err := NewSeeded(catalog.Default(), 2, Options{Variant: types.VariantValidated})
	require.NoError(t, err)

	first, err := a.GenerateMany(types.MaxCount, Filter{})
	require.NoError(t, err)
	second, err := b.GenerateMany(types.MaxCount, Filter{})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestFilter(t *testing.T) {
	idea := types.Idea{Category: "Travel", Validation: &types.Validation{Competition: "High"}}

	assert.True(t, Filter{}.IsEmpty())
	assert.True(t, Filter{}.Matches(idea))
	assert.True(t, Filter{Field: types.FieldCategory, Value: "Travel"}.Matches(idea))
	assert.True(t, Filter{Field: types.FieldCompetition, Value: "High"}.Matches(idea))
	assert.False(t, Filter{Field: types.FieldCategory, Value: "Gaming"}.Matches(idea))
	assert.Equal(t, "any", Filter{}.String())
	assert.Equal(t, `category="Travel"`, Filter{Field: types.FieldCategory, Value: "Travel"}.String())
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		field, value string
		want         Filter
		wantErr      string
	}{
		{want: Filter{}},
		{field: "feasibility", value: "Quick MVP", want: Filter{Field: types.FieldFeasibility, Value: "Quick MVP"}},
		{field: "feasibility", wantErr: "both a field and a value"},
		{value: "Quick MVP", wantErr: "both a field and a value"},
		{field: "color", value: "Red", wantErr: `unknown field "color"`},
	}

	for _, tt := range tests {
		got, err := ParseFilter(tt.field, tt.value)
		if tt.wantErr != "" {
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewRandZeroSeedUsesEntropy(t *testing.T) {
	a := NewRand(0)
	b := NewRand(0)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
		}
	}
	assert.False(t, same)
}
