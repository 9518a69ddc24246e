package place

import "strings"

// Division is the result of separating a sub-location marker from the
// hierarchical place name.
type Division struct {
	// NormalizedPlace is the hierarchical place with the subdivision
	// marker removed.
	NormalizedPlace string
	// FullPlace is the input as given.
	FullPlace string
	// Subdivision is the extracted sub-location, empty when none.
	Subdivision string
}

// Grammar separates a named sub-location (an institution, a hamlet, a
// lieu-dit) from the hierarchical place name. The resolver treats it as
// an opaque collaborator; implementations may apply locale-specific
// rules.
type Grammar interface {
	Split(raw string) Division
}

// BracketGrammar is the default grammar: the first parenthesized or
// bracketed run is the subdivision.
//
//	"Paris (Hôpital Saint-Louis), Seine, France" →
//	  normalized "Paris, Seine, France", subdivision "Hôpital Saint-Louis"
type BracketGrammar struct{}

func (BracketGrammar) Split(raw string) Division {
	div := Division{NormalizedPlace: raw, FullPlace: raw}

	start := strings.IndexAny(raw, "([")
	if start < 0 {
		return div
	}
	closer := ")"
	if raw[start] == '[' {
		closer = "]"
	}
	end := strings.Index(raw[start:], closer)
	if end <= 1 {
		return div
	}
	end += start

	sub := strings.TrimSpace(raw[start+1 : end])
	if sub == "" {
		return div
	}

	rest := strings.Join(splitTrim(raw[:start]+raw[end+1:]), ", ")

	div.NormalizedPlace = rest
	div.Subdivision = sub
	return div
}

// splitTrim splits on commas and trims each segment, dropping segments
// that trim to empty.
func splitTrim(s string) []string {
	var out []string
	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
