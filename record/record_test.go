package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeNavigation(t *testing.T) {
	n := &Node{
		Tag: TagIndividual,
		Children: []*Node{
			{Tag: TagName, Value: "Jean Dupont"},
			{Tag: TagSex, Value: "M"},
			{Tag: TagFamilyAsSpouse, Value: "@F1@"},
			{Tag: TagFamilyAsSpouse, Value: "@F2@"},
		},
	}

	name, ok := n.ValueOf(TagName)
	require.True(t, ok)
	assert.Equal(t, "Jean Dupont", name)

	_, ok = n.ValueOf(TagDate)
	assert.False(t, ok)

	assert.Len(t, n.All(TagFamilyAsSpouse), 2)

	ptr, ok := n.PointerOf(TagFamilyAsSpouse)
	require.True(t, ok)
	assert.Equal(t, "@F1@", ptr)
}

func TestIsPointer(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"@I1@", true},
		{"@F23@", true},
		{"@@", false},
		{"I1", false},
		{"@I1", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsPointer(tt.value), "IsPointer(%q)", tt.value)
	}
}

func TestDocumentLookupAndEnumeration(t *testing.T) {
	root := &Node{
		Children: []*Node{
			{Tag: TagHeader, Children: []*Node{
				{Tag: TagPlace, Children: []*Node{
					{Tag: TagForm, Value: "Town, County, Region, Country"},
				}},
			}},
			{Tag: TagIndividual, XRef: "@I1@"},
			{Tag: TagIndividual, XRef: "@I2@"},
			{Tag: TagFamily, XRef: "@F1@", Children: []*Node{
				{Tag: TagHusband, Value: "@I1@"},
				{Tag: TagWife, Value: "@I2@"},
				{Tag: TagChild, Value: "@I3@"},
				{Tag: TagChild, Value: "@I4@"},
			}},
			{Tag: TagNote, XRef: "@N1@", Value: "A note"},
		},
	}
	doc := NewDocument(root)

	fam, ok := doc.Lookup("@F1@")
	require.True(t, ok)
	assert.Equal(t, TagFamily, fam.Tag)

	_, ok = doc.Lookup("@NOPE@")
	assert.False(t, ok)

	assert.Len(t, doc.Individuals(), 2)
	assert.Len(t, doc.Families(), 1)
	assert.Len(t, doc.Notes(), 1)

	f := doc.Families()[0]
	husb, ok := f.HusbandID()
	require.True(t, ok)
	assert.Equal(t, "@I1@", husb)
	assert.Equal(t, []string{"@I3@", "@I4@"}, f.ChildIDs())

	format, ok := doc.PlaceFormat()
	require.True(t, ok)
	assert.Equal(t, "Town, County, Region, Country", format)
}

func TestFamilyLinksSkipDanglingPointers(t *testing.T) {
	root := &Node{
		Children: []*Node{
			{Tag: TagIndividual, XRef: "@I1@", Children: []*Node{
				{Tag: TagFamilyAsChild, Value: "@F1@"},
				{Tag: TagFamilyAsChild, Value: "@MISSING@"},
				{Tag: TagFamilyAsSpouse, Value: "not-a-pointer"},
			}},
			{Tag: TagFamily, XRef: "@F1@"},
		},
	}
	doc := NewDocument(root)
	ind := doc.Individuals()[0]

	assert.Len(t, ind.FamiliesAsChild(), 1)
	assert.Empty(t, ind.FamiliesAsSpouse())
}
