// Package note rebuilds multi-fragment note text.
//
// Long note text is stored as a head value followed by continuation
// (newline) and concatenation (no separator) fragments in document
// order. A note whose own value is a cross-reference pointer is a
// reference to a top-level note record and is not reconstructed here;
// callers check with record.IsPointer first.
package note

import (
	"strings"

	"github.com/arbores/lineage/record"
)

// Reconstruct rebuilds the full text of an inline note node. The second
// result is false when the reconstructed text trims to empty.
func Reconstruct(n *record.Node) (string, bool) {
	if n == nil {
		return "", false
	}

	var b strings.Builder
	b.WriteString(n.Value)

	for _, c := range n.Children {
		switch c.Tag {
		case record.TagContinuation:
			b.WriteString("\n")
			b.WriteString(c.Value)
		case record.TagConcatenation:
			b.WriteString(c.Value)
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
