// Package relation derives the direct family graph for one individual
// from its raw family cross-reference links.
package relation

import "github.com/arbores/lineage/record"

// Relations are the resolved direct links of one individual. Absent
// parents are nil; the id sets never contain the individual itself.
type Relations struct {
	FatherID    *string  `json:"father_id"`
	MotherID    *string  `json:"mother_id"`
	SiblingIDs  []string `json:"sibling_ids"`
	SpouseIDs   []string `json:"spouse_ids"`
	ChildrenIDs []string `json:"children_ids"`
}

// Resolve derives the relations of one individual. Only the first
// family-as-child link is considered when several exist. Malformed data
// (self-referential parents, spousal families not actually containing
// the individual) is neutralized to absent rather than reported; no
// fault in the input raises an error.
func Resolve(ind record.Individual) Relations {
	self := ind.ID()
	var rel Relations

	if famc := ind.FamiliesAsChild(); len(famc) > 0 {
		fam := famc[0]
		rel.FatherID = parentID(fam.HusbandID, self)
		rel.MotherID = parentID(fam.WifeID, self)
		for _, id := range fam.ChildIDs() {
			if id != self {
				rel.SiblingIDs = appendUnique(rel.SiblingIDs, id)
			}
		}
	}

	for _, fam := range ind.FamiliesAsSpouse() {
		if other := otherSpouse(fam, self); other != "" && other != self {
			rel.SpouseIDs = appendUnique(rel.SpouseIDs, other)
		}
		for _, id := range fam.ChildIDs() {
			if id != self {
				rel.ChildrenIDs = appendUnique(rel.ChildrenIDs, id)
			}
		}
	}

	return rel
}

// parentID reads a parent pointer, dropping an absent or
// self-referential value.
func parentID(get func() (string, bool), self string) *string {
	id, ok := get()
	if !ok || id == self {
		return nil
	}
	return &id
}

// otherSpouse returns the id of the family's other spouse, or empty
// when the individual is not actually one of the family's spouses.
func otherSpouse(fam record.Family, self string) string {
	husb, _ := fam.HusbandID()
	wife, _ := fam.WifeID()
	switch self {
	case wife:
		return husb
	case husb:
		return wife
	default:
		return ""
	}
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
