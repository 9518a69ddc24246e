// Package record models a parsed lineage-linked record tree and gives
// typed, capability-style access to the record kinds the extraction
// core consumes.
//
// The raw-text parser that produces the tree lives outside this module;
// anything able to build a Node tree (a parser, a JSON file, a test
// fixture) can feed the core. Optional operations return an explicit
// (value, ok) pair instead of relying on callers probing for accessor
// existence.
package record

import "strings"

// Node is a single node of the lineage-linked tree: a tag, an optional
// cross-reference id when the node declares one, a scalar value, and
// ordered children.
type Node struct {
	Tag      string  `json:"tag"`
	XRef     string  `json:"xref,omitempty"`
	Value    string  `json:"value,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Record-level tags.
const (
	TagHeader     = "HEAD"
	TagIndividual = "INDI"
	TagFamily     = "FAM"
	TagNote       = "NOTE"
	TagSource     = "SOUR"
	TagRepository = "REPO"
	TagMedia      = "OBJE"
)

// Sub-record tags consumed by the core.
const (
	TagName            = "NAME"
	TagSex             = "SEX"
	TagFamilyAsChild   = "FAMC"
	TagFamilyAsSpouse  = "FAMS"
	TagHusband         = "HUSB"
	TagWife            = "WIFE"
	TagChild           = "CHIL"
	TagDate            = "DATE"
	TagPlace           = "PLAC"
	TagForm            = "FORM"
	TagMap             = "MAP"
	TagLatitude        = "LATI"
	TagLongitude       = "LONG"
	TagAge             = "AGE"
	TagCause           = "CAUS"
	TagType            = "TYPE"
	TagPage            = "PAGE"
	TagQuality         = "QUAY"
	TagContinuation    = "CONT"
	TagConcatenation   = "CONC"
	TagFile            = "FILE"
	TagTitle           = "TITL"
	TagAuthor          = "AUTH"
	TagText            = "TEXT"
	TagAddress         = "ADDR"
	TagWitness         = "WITN"
)

// First returns the first child with the given tag.
func (n *Node) First(tag string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c, true
		}
	}
	return nil, false
}

// All returns every child with the given tag, in document order.
func (n *Node) All(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// ValueOf returns the scalar value of the first child with the given
// tag. The second result is false when no such child exists or its
// value is empty.
func (n *Node) ValueOf(tag string) (string, bool) {
	c, ok := n.First(tag)
	if !ok || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// IsPointer reports whether a scalar value is a cross-reference id,
// recognized by the surrounding @ sigils.
func IsPointer(v string) bool {
	return len(v) > 2 && strings.HasPrefix(v, "@") && strings.HasSuffix(v, "@")
}

// PointerOf returns the cross-reference id held by the first child with
// the given tag, or false when the child is absent or its value is not
// a pointer.
func (n *Node) PointerOf(tag string) (string, bool) {
	v, ok := n.ValueOf(tag)
	if !ok || !IsPointer(v) {
		return "", false
	}
	return v, true
}
