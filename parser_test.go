package xmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyElement(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r/>`), EncodingUTF8))
	require.False(t, doc.Error())

	root := doc.RootElement()
	require.NotNil(t, root)
	assert.Equal(t, "r", root.Value())
	assert.Nil(t, root.FirstChild())
	assert.Equal(t, 0, len(root.Attributes()))
}

func TestParseAttributesAndEntities(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r a="1&amp;2" b='x"y'/>`), EncodingUTF8))
	require.False(t, doc.Error())

	root := doc.RootElement()
	a, ok := root.Attribute("a")
	require.True(t, ok)
	assert.Equal(t, "1&2", a)

	b, ok := root.Attribute("b")
	require.True(t, ok)
	assert.Equal(t, `x"y`, b)
}

func TestParseEOLAndCondensing(t *testing.T) {
	doc := NewDocument(WithCondenseWhiteSpace(false))
	require.NoError(t, doc.Parse([]byte("<r>a\r\nb\rc\nd</r>"), EncodingUTF8))
	require.False(t, doc.Error())
	assert.Equal(t, "a\nb\nc\nd", doc.RootElement().FirstChild().Value())

	doc2 := NewDocument() // condense defaults to true
	require.NoError(t, doc2.Parse([]byte("<r>a\r\nb\rc\nd</r>"), EncodingUTF8))
	assert.Equal(t, "a b c d", doc2.RootElement().FirstChild().Value())
}

func TestParseCDATAPreserved(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r><![CDATA[<x&>]]></r>`), EncodingUTF8))
	require.False(t, doc.Error())

	txt, ok := doc.RootElement().FirstChild().(*Text)
	require.True(t, ok)
	assert.True(t, txt.CData())
	assert.Equal(t, "<x&>", txt.Value())
}

func TestParseDeclaration(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?><r/>`), EncodingUTF8))
	require.False(t, doc.Error())

	decl, ok := doc.FirstChild().(*Declaration)
	require.True(t, ok)
	assert.Equal(t, "1.0", decl.Version())
	assert.Equal(t, "UTF-8", decl.Encoding())
	assert.Equal(t, "", decl.Standalone())
}

func TestParseMismatchedEndTagStampsError(t *testing.T) {
	doc := NewDocument()
	err := doc.Parse([]byte(`<a><b></a>`), EncodingUTF8)
	require.Error(t, err)
	assert.True(t, doc.Error())
	assert.Equal(t, ErrorReadingEndTag, doc.ErrorID())

	root := doc.RootElement()
	require.NotNil(t, root, "partial tree is retained for inspection")
	assert.Equal(t, "a", root.Value())
	b := root.FirstChild()
	require.NotNil(t, b)
	assert.Equal(t, "b", b.Value())
}

func TestParseDoctypeRoundTrip(t *testing.T) {
	const src = `<!DOCTYPE html [ <!ENTITY foo "bar"> ]><r/>`
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(src), EncodingUTF8))
	require.False(t, doc.Error())

	u, ok := doc.FirstChild().(*Unknown)
	require.True(t, ok)
	assert.Equal(t, `!DOCTYPE html [ <!ENTITY foo "bar"> ]`, u.Value())
}

func TestParseTextAtTopLevelIsRejected(t *testing.T) {
	doc := NewDocument()
	err := doc.Parse([]byte("stray text <r/>"), EncodingUTF8)
	require.Error(t, err)
	assert.Equal(t, ErrorDocumentTopOnly, doc.ErrorID())
}

func TestParseMultipleRootElementsTolerated(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<a/><b/>`), EncodingUTF8))
	require.False(t, doc.Error())
	assert.Equal(t, "a", doc.RootElement().Value())
}

func TestParseEmbeddedNull(t *testing.T) {
	doc := NewDocument()
	err := doc.Parse([]byte("<r>\x00</r>"), EncodingUTF8)
	require.Error(t, err)
	assert.Equal(t, ErrorEmbeddedNull, doc.ErrorID())
}
