package xmlparser

// Text is a run of character data, optionally marked as a CDATA
// section. CDATA text is never entity-encoded on output and its
// whitespace is never condensed.
type Text struct {
	treeNode
	value string
	cdata bool
}

func newText(content []byte, cdata bool) *Text {
	return &Text{value: string(content), cdata: cdata}
}

func (t *Text) Type() NodeType { return TextNode }
func (t *Text) Value() string  { return t.value }

// CData reports whether this text node is a CDATA section.
func (t *Text) CData() bool { return t.cdata }

// AddContent appends b to the text node's value in place, merging
// consecutive text runs instead of creating a sibling.
func (t *Text) AddContent(b []byte) error {
	t.value += string(b)
	return nil
}

func (t *Text) AddChild(Node) error      { return ErrInvalidOperation }
func (t *Text) AddSibling(cur Node) error { return addSibling(t, cur) }
func (t *Text) Replace(cur Node) error    { return replaceNode(t, cur) }
func (t *Text) RemoveChild(Node) error    { return ErrInvalidOperation }

func (t *Text) Clone() Node {
	clone := newText([]byte(t.value), t.cdata)
	clone.loc = t.loc
	clone.userData = t.userData
	return clone
}

func (t *Text) Accept(v Visitor) bool { return v.Visit(t) }
