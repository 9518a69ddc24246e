package place

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbores/lineage/record"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected []string
	}{
		{"Town, County, Country", []string{"town", "county", "country"}},
		{"Town, Postal Code, Country", []string{"town", "postal_code", "country"}},
		{"Town", []string{"town"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseFormat(tt.format), "ParseFormat(%q)", tt.format)
	}
}

func TestStructuredMapping(t *testing.T) {
	r := NewResolver("Town, County, Country", nil)

	p := r.ResolveValue("Paris, Seine, France")
	require.NotNil(t, p)

	require.NotNil(t, p.Fields["town"])
	assert.Equal(t, "Paris", *p.Fields["town"])
	require.NotNil(t, p.Fields["county"])
	assert.Equal(t, "Seine", *p.Fields["county"])
	require.NotNil(t, p.Fields["country"])
	assert.Equal(t, "France", *p.Fields["country"])
}

func TestStructuredMappingOverflowFoldsIntoLastLabel(t *testing.T) {
	r := NewResolver("Town, Country", nil)

	p := r.ResolveValue("Lyon, Rhône, Auvergne, France")
	require.NotNil(t, p.Fields["country"])
	assert.Equal(t, "Lyon", *p.Fields["town"])
	assert.Equal(t, "Rhône, Auvergne, France", *p.Fields["country"])
}

func TestStructuredMappingShortfallPadsNull(t *testing.T) {
	r := NewResolver("Town, County, Region, Country", nil)

	p := r.ResolveValue("Paris, Seine")
	assert.Equal(t, "Paris", *p.Fields["town"])
	assert.Equal(t, "Seine", *p.Fields["county"])
	assert.Nil(t, p.Fields["region"])
	assert.Nil(t, p.Fields["country"])
}

func TestBracketGrammarSubdivision(t *testing.T) {
	r := NewResolver("Town, County, Country", nil)

	p := r.ResolveValue("Paris (Hôpital Saint-Louis), Seine, France")
	require.NotNil(t, p.Subdivision)
	assert.Equal(t, "Hôpital Saint-Louis", *p.Subdivision)
	assert.Equal(t, "Paris, Seine, France", p.Normalized)
	assert.Equal(t, "Paris (Hôpital Saint-Louis), Seine, France", p.Value)
	assert.Equal(t, "Paris", *p.Fields["town"])
}

func TestBracketGrammarNoSubdivision(t *testing.T) {
	g := BracketGrammar{}

	div := g.Split("Paris, Seine, France")
	assert.Empty(t, div.Subdivision)
	assert.Equal(t, "Paris, Seine, France", div.NormalizedPlace)

	// Unclosed bracket is not a subdivision
	div = g.Split("Paris (Hôpital, Seine")
	assert.Empty(t, div.Subdivision)
}

type suffixGrammar struct{}

func (suffixGrammar) Split(raw string) Division {
	return Division{NormalizedPlace: raw, FullPlace: raw, Subdivision: "injected"}
}

func TestInjectedGrammar(t *testing.T) {
	r := NewResolver("", suffixGrammar{})

	p := r.ResolveValue("Anywhere")
	require.NotNil(t, p.Subdivision)
	assert.Equal(t, "injected", *p.Subdivision)
}

func TestResolveCoordinatesCombinedScalar(t *testing.T) {
	r := NewResolver("", nil)
	n := &record.Node{
		Tag:   record.TagPlace,
		Value: "Paris, Seine, France",
		Children: []*record.Node{
			{Tag: record.TagMap, Value: "48.8566, 2.3522"},
		},
	}

	p := r.Resolve(n)
	require.NotNil(t, p)
	require.NotNil(t, p.Coordinates)
	assert.InDelta(t, 48.8566, p.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, 2.3522, p.Coordinates.Longitude, 1e-9)
}

func TestResolveCoordinatesSubFields(t *testing.T) {
	r := NewResolver("", nil)
	n := &record.Node{
		Tag:   record.TagPlace,
		Value: "Montevideo, Uruguay",
		Children: []*record.Node{
			{Tag: record.TagMap, Children: []*record.Node{
				{Tag: record.TagLatitude, Value: "S34.9011"},
				{Tag: record.TagLongitude, Value: "W56.1645"},
			}},
		},
	}

	p := r.Resolve(n)
	require.NotNil(t, p.Coordinates)
	assert.InDelta(t, -34.9011, p.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, -56.1645, p.Coordinates.Longitude, 1e-9)
}

func TestResolveCoordinatesMalformed(t *testing.T) {
	r := NewResolver("", nil)
	n := &record.Node{
		Tag:   record.TagPlace,
		Value: "Somewhere",
		Children: []*record.Node{
			{Tag: record.TagMap, Value: "not,numeric"},
		},
	}

	p := r.Resolve(n)
	require.NotNil(t, p)
	assert.Nil(t, p.Coordinates)
}

func TestResolveAbsent(t *testing.T) {
	r := NewResolver("", nil)

	assert.Nil(t, r.Resolve(nil))
	assert.Nil(t, r.Resolve(&record.Node{Tag: record.TagPlace, Value: "  "}))
}
