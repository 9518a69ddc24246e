package record

// Document wraps a parsed record tree and indexes its top-level records
// by cross-reference id. The index is built once; Document is read-only
// afterwards, which keeps per-record extraction safe to parallelize.
type Document struct {
	root   *Node
	byXRef map[string]*Node
}

// NewDocument builds a Document around a root node whose children are
// the top-level records.
func NewDocument(root *Node) *Document {
	d := &Document{
		root:   root,
		byXRef: make(map[string]*Node),
	}
	if root != nil {
		for _, c := range root.Children {
			if c.XRef != "" {
				d.byXRef[c.XRef] = c
			}
		}
	}
	return d
}

// Root returns the underlying tree root.
func (d *Document) Root() *Node {
	return d.root
}

// Lookup resolves a cross-reference id to its declaring record.
func (d *Document) Lookup(pointer string) (*Node, bool) {
	n, ok := d.byXRef[pointer]
	return n, ok
}

func (d *Document) records(tag string) []*Node {
	if d.root == nil {
		return nil
	}
	return d.root.All(tag)
}

// Individuals enumerates the individual records in document order.
func (d *Document) Individuals() []Individual {
	nodes := d.records(TagIndividual)
	out := make([]Individual, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Individual{n: n, doc: d})
	}
	return out
}

// Families enumerates the family records in document order.
func (d *Document) Families() []Family {
	nodes := d.records(TagFamily)
	out := make([]Family, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Family{n: n, doc: d})
	}
	return out
}

// Notes enumerates the top-level note records.
func (d *Document) Notes() []*Node {
	return d.records(TagNote)
}

// Sources enumerates the source records.
func (d *Document) Sources() []*Node {
	return d.records(TagSource)
}

// Repositories enumerates the repository records.
func (d *Document) Repositories() []*Node {
	return d.records(TagRepository)
}

// Media enumerates the multimedia records.
func (d *Document) Media() []*Node {
	return d.records(TagMedia)
}

// PlaceFormat returns the document-declared place field format from the
// header (HEAD > PLAC > FORM), e.g. "Town, County, Region, Country".
// The declaration is read once before processing and applies uniformly
// to every place in the document.
func (d *Document) PlaceFormat() (string, bool) {
	if d.root == nil {
		return "", false
	}
	head, ok := d.root.First(TagHeader)
	if !ok {
		return "", false
	}
	plac, ok := head.First(TagPlace)
	if !ok {
		return "", false
	}
	return plac.ValueOf(TagForm)
}
