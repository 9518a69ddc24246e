package extract

import (
	"time"

	"github.com/arbores/lineage/event"
	"github.com/arbores/lineage/relation"
)

// Model is the serializable aggregate produced by one extraction pass.
type Model struct {
	Individuals  []Individual    `json:"individuals"`
	Families     []Family        `json:"families"`
	Sources      []Source        `json:"sources"`
	Repositories []Repository    `json:"repositories"`
	Media        []MediaObject   `json:"media"`
	Notes        []NoteRecord    `json:"notes"`
	Metadata     Metadata        `json:"metadata"`
	Warnings     []event.Warning `json:"warnings,omitempty"`
}

// Individual is the flattened, relationship-resolved view of one
// individual record.
type Individual struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
	Sex  *string `json:"sex,omitempty"`

	relation.Relations

	Events []event.Event `json:"events"`
	Notes  []event.Note  `json:"notes,omitempty"`
}

// Family is the flattened view of one family record.
type Family struct {
	ID          string        `json:"id"`
	HusbandID   *string       `json:"husband_id"`
	WifeID      *string       `json:"wife_id"`
	ChildrenIDs []string      `json:"children_ids"`
	Events      []event.Event `json:"events"`
}

// Source is a cited source record.
type Source struct {
	ID     string  `json:"id"`
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Text   *string `json:"text,omitempty"`
}

// Repository holds a source repository record.
type Repository struct {
	ID      string  `json:"id"`
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// MediaObject is a multimedia record.
type MediaObject struct {
	ID    string  `json:"id"`
	File  *string `json:"file,omitempty"`
	Title *string `json:"title,omitempty"`
}

// NoteRecord is a top-level note with its reconstructed text.
type NoteRecord struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Metadata describes one extraction pass.
type Metadata struct {
	PassID      string    `json:"pass_id"`
	GeneratedAt time.Time `json:"generated_at"`
	PlaceFormat string    `json:"place_format"`
	Individuals int       `json:"individuals"`
	Families    int       `json:"families"`
}
