package xmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstChildElementFiltersByName(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r>text<a/><b/><a/></r>`), EncodingUTF8))
	root := doc.RootElement()

	first := root.FirstChildElement()
	require.NotNil(t, first)
	assert.Equal(t, "a", first.Value())

	b := root.FirstChildElement("b")
	require.NotNil(t, b)
	assert.Equal(t, "b", b.Value())

	next := first.NextSiblingElement("a")
	require.NotNil(t, next)
	assert.Same(t, root.LastChild(), next)
}

func TestIterateChildren(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r><a/><b/><c/></r>`), EncodingUTF8))
	root := doc.RootElement()

	var names []string
	for n := IterateChildren(root, nil); n != nil; n = IterateChildren(root, n) {
		names = append(names, n.Value())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestFirstChildNamed(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r><a/><b/><a/></r>`), EncodingUTF8))
	root := doc.RootElement()

	n := FirstChildNamed(root, "b")
	require.NotNil(t, n)
	assert.Equal(t, "b", n.Value())

	last := LastChildNamed(root, "a")
	require.NotNil(t, last)
	assert.Same(t, root.LastChild(), last)
}
