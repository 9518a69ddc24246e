package event

import (
	"sort"
	"strings"
)

// DivorceQuery reports whether a divorce is on record between the
// individual whose events are being fused and the given spouse.
type DivorceQuery func(spouseID string) bool

// fusionSpanYears is the widest calendar-year span a set of marriage
// events to the same spouse may cover and still be fused into one
// marriage with multiple ceremonies.
const fusionSpanYears = 10

// FuseMarriages revises an individual's event list, grouping marriage
// events by spouse. Groups of one pass through unchanged. Larger groups
// are sorted by parsed date and fused into a single marriage with one
// ceremony per original event, unless the group spans more than ten
// calendar years or a divorce with that spouse is on record, in which
// case the sorted group is kept unfused. Non-marriage events and
// marriage events without a resolved spouse are untouched.
func FuseMarriages(events []Event, divorced DivorceQuery) []Event {
	groups := make(map[string][]Event)
	for _, ev := range events {
		if ev.Kind == KindMarriage && ev.SpouseID != nil {
			groups[*ev.SpouseID] = append(groups[*ev.SpouseID], ev)
		}
	}

	out := make([]Event, 0, len(events))
	emitted := make(map[string]bool)
	for _, ev := range events {
		if ev.Kind != KindMarriage || ev.SpouseID == nil {
			out = append(out, ev)
			continue
		}
		spouse := *ev.SpouseID
		if emitted[spouse] {
			continue
		}
		emitted[spouse] = true
		out = append(out, fuseGroup(groups[spouse], spouse, divorced)...)
	}
	return out
}

func fuseGroup(group []Event, spouse string, divorced DivorceQuery) []Event {
	if len(group) == 1 {
		return group
	}

	sorted := make([]Event, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderingDate(sorted[i].Date).Before(orderingDate(sorted[j].Date))
	})

	first := orderingDate(sorted[0].Date)
	last := orderingDate(sorted[len(sorted)-1].Date)
	span := last.Year() - first.Year()

	if span > fusionSpanYears || (divorced != nil && divorced(spouse)) {
		return sorted
	}

	fused := sorted[0]
	fused.Ceremonies = make([]Ceremony, 0, len(sorted))
	for i, ev := range sorted {
		fused.Ceremonies = append(fused.Ceremonies, ceremonyOf(ev, i))
	}
	return []Event{fused}
}

// ceremonyOf classifies one raw marriage event as a civil or religious
// ceremony. An explicit ceremony-type subfield wins; without one the
// first ceremony is taken as civil and the rest as religious.
func ceremonyOf(ev Event, position int) Ceremony {
	cer := Ceremony{
		Type:    positionalCeremonyType(position),
		Date:    ev.Date,
		Place:   ev.Place,
		Notes:   ev.Notes,
		Sources: ev.Sources,
	}
	if ev.Place != nil {
		cer.Subdivision = ev.Place.Subdivision
	}
	if ev.CustomType != nil {
		tag := strings.ToLower(*ev.CustomType)
		switch {
		case strings.Contains(tag, CeremonyReligious):
			cer.Type = CeremonyReligious
		case strings.Contains(tag, CeremonyCivil):
			cer.Type = CeremonyCivil
		}
	}
	return cer
}

func positionalCeremonyType(position int) string {
	if position == 0 {
		return CeremonyCivil
	}
	return CeremonyReligious
}
