package dfaxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringBasicTree(t *testing.T) {
	doc, err := ParseString(`<dfa name="Test"><states><accept><s0/></accept></states></dfa>`)
	require.NoError(t, err)

	require.NotNil(t, doc.Root)
	assert.Equal(t, "dfa", doc.Root.Tag)
	name, ok := doc.Root.Attr("name")
	require.True(t, ok)
	assert.Equal(t, "Test", name)

	require.Len(t, doc.Root.Children, 1)
	states := doc.Root.Children[0]
	assert.Equal(t, "states", states.Tag)

	require.Len(t, states.Children, 1)
	accept := states.Children[0]
	assert.Equal(t, "accept", accept.Tag)

	require.Len(t, accept.Children, 1)
	s0 := accept.Children[0]
	assert.Equal(t, "s0", s0.Tag)
	assert.Empty(t, s0.Children)
	assert.Equal(t, []string{""}, s0.Content)
}

func TestParseStringContentFragmentInvariant(t *testing.T) {
	doc, err := ParseString(`<root>before<a/>between<b/>after</root>`)
	require.NoError(t, err)

	root := doc.Root
	require.Len(t, root.Children, 2)
	require.Len(t, root.Content, 3)
	assert.Equal(t, "before", root.Content[0])
	assert.Equal(t, "between", root.Content[1])
	assert.Equal(t, "after", root.Content[2])
}

func TestParseStringRetainsOnlyFirstProlog(t *testing.T) {
	doc, err := ParseString(`<?xml version="1.0"?><?second version="2.0"?><root/>`)
	require.NoError(t, err)
	assert.Equal(t, `<?xml version="1.0"?>`, doc.Meta)
}

func TestParseStringEscapesEntities(t *testing.T) {
	doc, err := ParseString(`<root attr="a &amp; b">x &lt; y</root>`)
	require.NoError(t, err)

	v, ok := doc.Root.Attr("attr")
	require.True(t, ok)
	assert.Equal(t, "a & b", v)
	assert.Equal(t, "x < y", doc.Root.Text())
}

func TestParseStringMismatchedTagIsSyntaxError(t *testing.T) {
	_, err := ParseString(`<root><a></b></root>`)
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseStringQuoteSymmetry(t *testing.T) {
	doc, err := ParseString(`<root attr='single'></root>`)
	require.NoError(t, err)
	v, ok := doc.Root.Attr("attr")
	require.True(t, ok)
	assert.Equal(t, "single", v)
}

func TestElementEqual(t *testing.T) {
	d1, err := ParseString(`<root><a/></root>`)
	require.NoError(t, err)
	d2, err := ParseString(`<root><a/></root>`)
	require.NoError(t, err)

	assert.True(t, d1.Root.Equal(d2.Root))
}

func TestElementStringRoundTripsThroughReparse(t *testing.T) {
	doc, err := ParseString(`<root attr="a &amp; b">before<x attr="y"/>middle<z>text &lt; here</z>after</root>`)
	require.NoError(t, err)

	serialized := doc.Root.String()

	reparsed, err := ParseString(serialized)
	require.NoError(t, err)

	assert.True(t, doc.Root.Equal(reparsed.Root), "round-tripped document did not reparse to an equal tree:\n%s", serialized)
}

func TestElementStringEscapesEntities(t *testing.T) {
	doc, err := ParseString(`<root attr="a &amp; b">x &lt; y</root>`)
	require.NoError(t, err)

	serialized := doc.Root.String()
	assert.Contains(t, serialized, `attr="a &amp; b"`)
	assert.Contains(t, serialized, "x &lt; y")
}
