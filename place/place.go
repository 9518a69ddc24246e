// Package place parses place strings, optionally against a
// document-declared field format, and extracts best-effort coordinates.
package place

import (
	"math"
	"strconv"
	"strings"

	"github.com/arbores/lineage/record"
)

// DefaultFormat is the label set applied when a document declares no
// place field format of its own.
const DefaultFormat = "Town, County, Region, Country"

// Place is a resolved place. Coordinates are extraction-time data and
// are never persisted with the place.
type Place struct {
	Value       string             `json:"value"`
	Normalized  string             `json:"normalized"`
	Subdivision *string            `json:"subdivision,omitempty"`
	Fields      map[string]*string `json:"fields,omitempty"`
	Coordinates *Coordinates       `json:"-"`
}

// Coordinates is a transient latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Resolver parses place strings against one document's declared field
// format. The format is read once, before processing begins, and the
// resolver is read-only afterwards.
type Resolver struct {
	labels  []string
	grammar Grammar
}

// NewResolver builds a resolver for the given comma-separated format
// declaration. An empty format falls back to DefaultFormat; a nil
// grammar falls back to BracketGrammar.
func NewResolver(format string, grammar Grammar) *Resolver {
	if format == "" {
		format = DefaultFormat
	}
	if grammar == nil {
		grammar = BracketGrammar{}
	}
	return &Resolver{
		labels:  ParseFormat(format),
		grammar: grammar,
	}
}

// Labels returns the label set in force.
func (r *Resolver) Labels() []string {
	return r.labels
}

// ParseFormat splits a declared field format into ordered labels,
// lower-cased with spaces replaced by underscores.
func ParseFormat(format string) []string {
	segs := splitTrim(format)
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "_")
		out = append(out, s)
	}
	return out
}

// Resolve parses a place node: its scalar value plus optional
// coordinate sub-records. Returns nil for an absent or empty node.
func (r *Resolver) Resolve(n *record.Node) *Place {
	if n == nil || strings.TrimSpace(n.Value) == "" {
		return nil
	}
	p := r.ResolveValue(n.Value)
	p.Coordinates = parseCoordinates(n)
	return p
}

// ResolveValue parses a bare place string.
func (r *Resolver) ResolveValue(raw string) *Place {
	div := r.grammar.Split(raw)

	p := &Place{
		Value:      raw,
		Normalized: div.NormalizedPlace,
		Fields:     mapFields(div.NormalizedPlace, r.labels),
	}
	if div.Subdivision != "" {
		sub := div.Subdivision
		p.Subdivision = &sub
	}
	return p
}

// mapFields zips the comma-separated place segments onto the declared
// labels. Excess trailing segments fold into the last label; missing
// labels pad with null.
func mapFields(raw string, labels []string) map[string]*string {
	if len(labels) == 0 {
		return nil
	}
	segs := splitTrim(raw)

	fields := make(map[string]*string, len(labels))
	for i, label := range labels {
		switch {
		case i >= len(segs):
			fields[label] = nil
		case i == len(labels)-1 && len(segs) > len(labels):
			v := strings.Join(segs[i:], ", ")
			fields[label] = &v
		default:
			v := segs[i]
			fields[label] = &v
		}
	}
	return fields
}

// parseCoordinates reads best-effort coordinates from a place node: a
// combined "lat,lon" scalar on the map sub-record first, then separate
// latitude/longitude sub-records. Non-finite values are discarded.
func parseCoordinates(n *record.Node) *Coordinates {
	m, ok := n.First(record.TagMap)
	if !ok {
		return nil
	}

	if lat, lon, ok := splitLatLon(m.Value); ok {
		return finiteCoordinates(lat, lon)
	}

	latRaw, okLat := m.ValueOf(record.TagLatitude)
	lonRaw, okLon := m.ValueOf(record.TagLongitude)
	if !okLat || !okLon {
		return nil
	}
	lat, okLat := parseCoordinate(latRaw)
	lon, okLon := parseCoordinate(lonRaw)
	if !okLat || !okLon {
		return nil
	}
	return finiteCoordinates(lat, lon)
}

func splitLatLon(v string) (lat, lon float64, ok bool) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, okLat := parseCoordinate(parts[0])
	lon, okLon := parseCoordinate(parts[1])
	return lat, lon, okLat && okLon
}

// parseCoordinate parses a decimal coordinate with an optional
// hemisphere prefix (N/S/E/W), as written in map sub-records.
func parseCoordinate(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	sign := 1.0
	switch v[0] {
	case 'N', 'E', 'n', 'e':
		v = v[1:]
	case 'S', 'W', 's', 'w':
		sign = -1.0
		v = v[1:]
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return sign * f, true
}

func finiteCoordinates(lat, lon float64) *Coordinates {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return nil
	}
	return &Coordinates{Latitude: lat, Longitude: lon}
}
