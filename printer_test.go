package xmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serialize(t *testing.T, doc *Document) string {
	t.Helper()
	s, err := doc.XMLString()
	require.NoError(t, err)
	return s
}

func TestPrintEmptyElement(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r/>`), EncodingUTF8))
	assert.Equal(t, "<r />\n", serialize(t, doc))
}

func TestPrintAttributesAndEntities(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r a="1&amp;2" b='x"y'/>`), EncodingUTF8))
	assert.Equal(t, `<r a="1&amp;2" b='x"y' />`+"\n", serialize(t, doc))
}

func TestPrintCDATAOwnLine(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r><![CDATA[<x&>]]></r>`), EncodingUTF8))
	assert.Equal(t, "<r>\n    <![CDATA[<x&>]]>\n</r>\n", serialize(t, doc))
}

func TestPrintSingleTextChildInline(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r>hello</r>`), EncodingUTF8))
	assert.Equal(t, "<r>hello</r>\n", serialize(t, doc))
}

func TestPrintMultiChildIndented(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r><a/><b/></r>`), EncodingUTF8))
	assert.Equal(t, "<r>\n    <a />\n    <b />\n</r>\n", serialize(t, doc))
}

func TestPrintMixedContentKeepsTextInline(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<p>Hello <b>world</b></p>`), EncodingUTF8))
	assert.Equal(t, "<p>Hello \n    <b>world</b>\n</p>\n", serialize(t, doc))
}

func TestPrintDeclarationFieldOrder(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?><r/>`), EncodingUTF8))
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<r />\n", serialize(t, doc))
}
