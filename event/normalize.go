package event

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arbores/lineage/note"
	"github.com/arbores/lineage/place"
	"github.com/arbores/lineage/record"
)

// Normalizer produces canonical events from raw sub-records. Every
// recognized kind goes through the same extraction shape; a sub-field
// the raw record does not carry yields an absent field, never an error.
type Normalizer struct {
	places *place.Resolver
}

// NewNormalizer builds a normalizer resolving places with the given
// resolver.
func NewNormalizer(places *place.Resolver) *Normalizer {
	if places == nil {
		places = place.NewResolver("", nil)
	}
	return &Normalizer{places: places}
}

// IndividualEvents normalizes the recognized event and attribute
// sub-records of an individual, in document order.
func (nz *Normalizer) IndividualEvents(ind record.Individual) ([]Event, []Warning) {
	return nz.collect(ind.Node(), ind.ID(), IndividualKind)
}

// FamilyEvents normalizes the recognized event sub-records of a family,
// in document order.
func (nz *Normalizer) FamilyEvents(fam record.Family) ([]Event, []Warning) {
	return nz.collect(fam.Node(), fam.ID(), FamilyKind)
}

func (nz *Normalizer) collect(n *record.Node, pointer string, kindOf func(string) (Kind, bool)) ([]Event, []Warning) {
	var events []Event
	var warnings []Warning
	for _, c := range n.Children {
		kind, ok := kindOf(c.Tag)
		if !ok {
			continue
		}
		ev, w := nz.Normalize(c, kind, pointer)
		events = append(events, ev)
		warnings = append(warnings, w...)
	}
	return events, warnings
}

// Normalize extracts one canonical event from a raw sub-record. Faults
// degrade only the affected field and are reported as warnings; sibling
// fields are unaffected.
func (nz *Normalizer) Normalize(n *record.Node, kind Kind, pointer string) (Event, []Warning) {
	ev := Event{Kind: kind}
	var warnings []Warning

	if v, ok := n.ValueOf(record.TagDate); ok {
		ev.Date = &v
	}
	if v, ok := n.ValueOf(record.TagAge); ok {
		ev.Age = &v
	}
	if v, ok := n.ValueOf(record.TagCause); ok {
		ev.Cause = &v
	}
	if v, ok := n.ValueOf(record.TagType); ok {
		ev.CustomType = &v
	}
	if v, ok := n.ValueOf(record.TagWitness); ok {
		ev.Attendees = &v
	}
	if v, ok := n.PointerOf(record.TagChild); ok {
		ev.ChildID = &v
	}

	// "Y" is a bare occurrence assertion, not an attribute payload.
	if n.Value != "" && n.Value != "Y" {
		v := n.Value
		ev.Value = &v
	}

	if plac, ok := n.First(record.TagPlace); ok {
		if p := nz.places.Resolve(plac); p != nil {
			ev.Place = p
			key := p.Normalized
			ev.PlaceKey = &key
		}
	}

	ev.Notes = extractNotes(n)
	ev.Sources, warnings = extractSources(n, pointer, warnings)
	ev.Media = extractMedia(n)

	return ev, warnings
}

// extractNotes collects note references and reconstructs inline note
// text. Inline notes get a synthetic id; empty inline notes are absent.
func extractNotes(n *record.Node) []Note {
	var notes []Note
	for _, c := range n.All(record.TagNote) {
		if record.IsPointer(c.Value) {
			notes = append(notes, Note{ID: c.Value, Reference: true})
			continue
		}
		text, ok := note.Reconstruct(c)
		if !ok {
			continue
		}
		notes = append(notes, Note{
			ID:   "N-" + uuid.NewString(),
			Text: text,
		})
	}
	return notes
}

func extractSources(n *record.Node, pointer string, warnings []Warning) ([]SourceCitation, []Warning) {
	var sources []SourceCitation
	for _, c := range n.All(record.TagSource) {
		if !record.IsPointer(c.Value) {
			warnings = append(warnings, Warning{
				Pointer: pointer,
				Field:   "sources",
				Reason:  fmt.Sprintf("source citation without pointer: %q", c.Value),
			})
			continue
		}
		cit := SourceCitation{Pointer: c.Value}
		if v, ok := c.ValueOf(record.TagPage); ok {
			cit.Page = &v
		}
		if v, ok := c.ValueOf(record.TagQuality); ok {
			cit.Quality = &v
		}
		sources = append(sources, cit)
	}
	return sources, warnings
}

// extractMedia collects multimedia links: record pointers, or file
// paths on embedded objects.
func extractMedia(n *record.Node) []string {
	var media []string
	for _, c := range n.All(record.TagMedia) {
		switch {
		case record.IsPointer(c.Value):
			media = append(media, c.Value)
		default:
			if v, ok := c.ValueOf(record.TagFile); ok {
				media = append(media, v)
			}
		}
	}
	return media
}
