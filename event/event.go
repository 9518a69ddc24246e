// Package event normalizes raw event and attribute sub-records into
// canonical events and post-processes grouped marriage events.
package event

import "github.com/arbores/lineage/place"

// Event is one normalized event or attribute. All optional fields are
// nil when absent; extraction faults degrade single fields, never the
// whole event.
type Event struct {
	Kind Kind    `json:"kind"`
	Date *string `json:"date,omitempty"`
	Age  *string `json:"age,omitempty"`

	Cause *string      `json:"cause,omitempty"`
	Place *place.Place `json:"place,omitempty"`
	// PlaceKey is a pre-resolved external place reference used by the
	// compact codec; the codec never embeds the full place.
	PlaceKey *string `json:"place_key,omitempty"`

	// Value carries an attribute's payload (an occupation, a title, a
	// caste) for attribute kinds.
	Value *string `json:"value,omitempty"`

	Notes   []Note           `json:"notes,omitempty"`
	Sources []SourceCitation `json:"sources,omitempty"`
	Media   []string         `json:"media,omitempty"`

	// Type-specific extras.
	SpouseID   *string `json:"spouse_id,omitempty"`
	ChildID    *string `json:"child_id,omitempty"`
	CustomType *string `json:"custom_type,omitempty"`
	Attendees  *string `json:"attendees,omitempty"`

	// Ceremonies is populated by marriage fusion only.
	Ceremonies []Ceremony `json:"ceremonies,omitempty"`
}

// Note is either a reference to a top-level note record or an owned
// inline text with a synthetic id.
type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text,omitempty"`
	Reference bool   `json:"reference,omitempty"`
}

// SourceCitation points at a source record with citation detail.
type SourceCitation struct {
	Pointer string  `json:"pointer"`
	Page    *string `json:"page,omitempty"`
	Quality *string `json:"quality,omitempty"`
}

// Ceremony is one civil or religious ritual instance of a fused
// marriage.
type Ceremony struct {
	Type        string           `json:"type"`
	Date        *string          `json:"date,omitempty"`
	Place       *place.Place     `json:"place,omitempty"`
	Subdivision *string          `json:"subdivision,omitempty"`
	Notes       []Note           `json:"notes,omitempty"`
	Sources     []SourceCitation `json:"sources,omitempty"`
}

// Ceremony types.
const (
	CeremonyCivil     = "civil"
	CeremonyReligious = "religious"
)

// Warning records one degraded field during normalization. Warnings are
// aggregated by the caller; no fault inside normalization is fatal.
type Warning struct {
	Pointer string `json:"pointer,omitempty"`
	Field   string `json:"field"`
	Reason  string `json:"reason"`
}
