package record

// Individual is the capability wrapper over an individual record.
type Individual struct {
	n   *Node
	doc *Document
}

// NewIndividual wraps a raw individual node. Used by tests and by
// callers that hold nodes outside a Document.
func NewIndividual(n *Node, doc *Document) Individual {
	return Individual{n: n, doc: doc}
}

// ID returns the individual's cross-reference id.
func (i Individual) ID() string {
	return i.n.XRef
}

// Node exposes the underlying record node.
func (i Individual) Node() *Node {
	return i.n
}

// Name returns the primary name, if recorded.
func (i Individual) Name() (string, bool) {
	return i.n.ValueOf(TagName)
}

// Sex returns the recorded sex, if any.
func (i Individual) Sex() (string, bool) {
	return i.n.ValueOf(TagSex)
}

// FamiliesAsChild resolves the family-as-child links in document order.
// Links whose pointer does not resolve to a family record are skipped.
func (i Individual) FamiliesAsChild() []Family {
	return i.families(TagFamilyAsChild)
}

// FamiliesAsSpouse resolves the family-as-spouse links in document order.
func (i Individual) FamiliesAsSpouse() []Family {
	return i.families(TagFamilyAsSpouse)
}

func (i Individual) families(tag string) []Family {
	var out []Family
	for _, link := range i.n.All(tag) {
		if !IsPointer(link.Value) || i.doc == nil {
			continue
		}
		target, ok := i.doc.Lookup(link.Value)
		if !ok || target.Tag != TagFamily {
			continue
		}
		out = append(out, Family{n: target, doc: i.doc})
	}
	return out
}

// Family is the capability wrapper over a family record.
type Family struct {
	n   *Node
	doc *Document
}

// NewFamily wraps a raw family node.
func NewFamily(n *Node, doc *Document) Family {
	return Family{n: n, doc: doc}
}

// ID returns the family's cross-reference id.
func (f Family) ID() string {
	return f.n.XRef
}

// Node exposes the underlying record node.
func (f Family) Node() *Node {
	return f.n
}

// HusbandID returns the husband pointer, if present.
func (f Family) HusbandID() (string, bool) {
	return f.n.PointerOf(TagHusband)
}

// WifeID returns the wife pointer, if present.
func (f Family) WifeID() (string, bool) {
	return f.n.PointerOf(TagWife)
}

// ChildIDs returns the child pointers in record order.
func (f Family) ChildIDs() []string {
	var out []string
	for _, c := range f.n.All(TagChild) {
		if IsPointer(c.Value) {
			out = append(out, c.Value)
		}
	}
	return out
}
