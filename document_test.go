package xmlparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStickyError(t *testing.T) {
	doc := NewDocument()
	err := doc.Parse([]byte(`<a></b>`), EncodingUTF8)
	require.Error(t, err)
	require.True(t, doc.Error())

	// re-parsing a second malformed document does not overwrite the
	// first sticky error until ClearError is called.
	firstID := doc.ErrorID()
	doc.setError(ErrorGeneric, Location{Row: 99, Column: 1})
	assert.Equal(t, firstID, doc.ErrorID(), "setError is a no-op once an error is already sticky")

	doc.ClearError()
	assert.False(t, doc.Error())
	assert.Equal(t, NoError, doc.ErrorID())
}

func TestDocumentQueryAttributes(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Parse([]byte(`<r n="42" u="7" f="3.5" b="yes" bad="nope"/>`), EncodingUTF8))
	root := doc.RootElement()

	var n int
	assert.Equal(t, QuerySuccess, root.QueryIntAttribute("n", &n))
	assert.Equal(t, 42, n)

	var u uint
	assert.Equal(t, QuerySuccess, root.QueryUnsignedAttribute("u", &u))
	assert.Equal(t, uint(7), u)

	var f float64
	assert.Equal(t, QuerySuccess, root.QueryDoubleAttribute("f", &f))
	assert.Equal(t, 3.5, f)

	var b bool
	assert.Equal(t, QuerySuccess, root.QueryBoolAttribute("b", &b))
	assert.True(t, b)

	assert.Equal(t, QueryWrongType, root.QueryIntAttribute("bad", &n))
	assert.Equal(t, QueryNoAttribute, root.QueryIntAttribute("missing", &n))
}

func TestDocumentLoadReaderAndSaveRoundTrip(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.LoadReader(strings.NewReader(`<r a="1"><c/></r>`)))
	require.False(t, doc.Error())

	out, err := doc.XMLString()
	require.NoError(t, err)

	reparsed := NewDocument()
	require.NoError(t, reparsed.Parse([]byte(out), EncodingUTF8))
	require.False(t, reparsed.Error())

	assert.Equal(t, doc.RootElement().Value(), reparsed.RootElement().Value())
	v1, _ := doc.RootElement().Attribute("a")
	v2, _ := reparsed.RootElement().Attribute("a")
	assert.Equal(t, v1, v2)
}

func TestDocumentSetAttributeOverwrites(t *testing.T) {
	e := newElement("r")
	e.SetAttribute("a", "1")
	e.SetAttribute("a", "2")

	assert.Equal(t, 1, len(e.Attributes()), "duplicate SetAttribute overwrites in place, not an error")
	v, ok := e.Attribute("a")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}
