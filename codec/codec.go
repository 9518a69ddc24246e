// Package codec produces and parses the compact wire form of
// normalized events: {t, d?, l?, m?} with a two-letter type code, a
// packed integer date, a place key, and an optional metadata map.
//
// The codec is lossy but bounded: notes, sources, and media never enter
// the compact form, and a packed January-1st date is indistinguishable
// from a year-only date after a round trip.
package codec

import (
	"github.com/arbores/lineage/event"
)

// CompactEvent is the wire form of one event.
type CompactEvent struct {
	Type     string `json:"t"`
	Date     int    `json:"d,omitempty"`
	Location string `json:"l,omitempty"`
	Meta     *Meta  `json:"m,omitempty"`
}

// Meta carries the recognized event extras. It is omitted entirely when
// no key is set.
type Meta struct {
	SpouseID   string `json:"s,omitempty"`
	ChildID    string `json:"c,omitempty"`
	Occupation string `json:"o,omitempty"`
	Attendees  string `json:"a,omitempty"`
}

// typeCodes is the single source-of-truth code table. It must stay
// bijective; codeTypes is derived from it at init and the package
// panics on a collision.
var typeCodes = map[event.Kind]string{
	event.KindBirth:            "bi",
	event.KindChristening:      "ch",
	event.KindDeath:            "de",
	event.KindBurial:           "bu",
	event.KindCremation:        "cr",
	event.KindAdoption:         "ad",
	event.KindBaptism:          "ba",
	event.KindBarMitzvah:       "bm",
	event.KindBasMitzvah:       "bs",
	event.KindBlessing:         "bl",
	event.KindAdultChristening: "ac",
	event.KindConfirmation:     "co",
	event.KindFirstCommunion:   "fc",
	event.KindOrdination:       "or",
	event.KindNaturalization:   "na",
	event.KindEmigration:       "em",
	event.KindImmigration:      "im",
	event.KindCensus:           "ce",
	event.KindProbate:          "pr",
	event.KindWill:             "wi",
	event.KindGraduation:       "gr",
	event.KindRetirement:       "re",
	event.KindCustom:           "ev",

	event.KindCaste:               "ca",
	event.KindPhysicalDescription: "pd",
	event.KindEducation:           "ed",
	event.KindIDNumber:            "id",
	event.KindNationality:         "nt",
	event.KindChildrenCount:       "cc",
	event.KindMarriagesCount:      "mc",
	event.KindOccupation:          "oc",
	event.KindProperty:            "pp",
	event.KindReligion:            "rl",
	event.KindResidence:           "rs",
	event.KindSSN:                 "ss",
	event.KindTitle:               "ti",
	event.KindFact:                "fa",

	event.KindAnnulment:          "an",
	event.KindDivorce:            "di",
	event.KindDivorceFiled:       "df",
	event.KindEngagement:         "en",
	event.KindMarriageBanns:      "mb",
	event.KindMarriageContract:   "mt",
	event.KindMarriage:           "ma",
	event.KindMarriageLicense:    "ml",
	event.KindMarriageSettlement: "ms",
}

var codeTypes = func() map[string]event.Kind {
	rev := make(map[string]event.Kind, len(typeCodes))
	for kind, code := range typeCodes {
		if _, dup := rev[code]; dup {
			panic("codec: type code collision on " + code)
		}
		rev[code] = kind
	}
	return rev
}()

// Encode converts a normalized event into its compact form. A type
// outside the code table passes through unchanged, so no information is
// lost for unrecognized kinds.
func Encode(e event.Event) CompactEvent {
	c := CompactEvent{Type: encodeType(e.Kind)}

	if e.Date != nil {
		if packed, ok := CompressDate(*e.Date); ok {
			c.Date = packed
		}
	}
	if e.PlaceKey != nil {
		c.Location = *e.PlaceKey
	}
	c.Meta = encodeMeta(e)
	return c
}

// Decode is the exact inverse of Encode; see CompressDate for the
// documented lossy collapse of January-1st dates.
func Decode(c CompactEvent) event.Event {
	e := event.Event{Kind: decodeType(c.Type)}

	if c.Date != 0 {
		date := DecompressDate(c.Date)
		e.Date = &date
	}
	if c.Location != "" {
		loc := c.Location
		e.PlaceKey = &loc
	}
	if c.Meta != nil {
		decodeMeta(c.Meta, &e)
	}
	return e
}

func encodeType(k event.Kind) string {
	if code, ok := typeCodes[k]; ok {
		return code
	}
	return string(k)
}

func decodeType(t string) event.Kind {
	if kind, ok := codeTypes[t]; ok {
		return kind
	}
	return event.Kind(t)
}

// encodeMeta builds the metadata map, or nil when no recognized extra
// is set. An empty object is never emitted.
func encodeMeta(e event.Event) *Meta {
	m := Meta{}
	if e.SpouseID != nil {
		m.SpouseID = *e.SpouseID
	}
	if e.ChildID != nil {
		m.ChildID = *e.ChildID
	}
	if e.Kind == event.KindOccupation && e.Value != nil {
		m.Occupation = *e.Value
	}
	if e.Attendees != nil {
		m.Attendees = *e.Attendees
	}
	if m == (Meta{}) {
		return nil
	}
	return &m
}

func decodeMeta(m *Meta, e *event.Event) {
	if m.SpouseID != "" {
		v := m.SpouseID
		e.SpouseID = &v
	}
	if m.ChildID != "" {
		v := m.ChildID
		e.ChildID = &v
	}
	if m.Occupation != "" {
		v := m.Occupation
		e.Value = &v
	}
	if m.Attendees != "" {
		v := m.Attendees
		e.Attendees = &v
	}
}
