package xmlparser

import (
	"strconv"
	"strings"

	"github.com/Keinier/XMLParser/internal/orderedmap"
)

// Element is the tagged-element node kind: a name, an ordered
// attribute set, and ordered children.
type Element struct {
	treeNode
	name  string
	attrs *orderedmap.Map[string, *Attribute]
}

func newElement(name string) *Element {
	return &Element{name: name, attrs: orderedmap.New[string, *Attribute]()}
}

func (e *Element) Type() NodeType { return ElementNode }
func (e *Element) Value() string  { return e.name }

func (e *Element) AddChild(cur Node) error   { return addChild(e, cur) }
func (e *Element) AddContent(b []byte) error { return addContent(e, b) }
func (e *Element) AddSibling(cur Node) error { return addSibling(e, cur) }
func (e *Element) Replace(cur Node) error    { return replaceNode(e, cur) }
func (e *Element) RemoveChild(child Node) error {
	return removeChild(e, child)
}

// Clone deep-copies the element, its attributes, and its subtree.
func (e *Element) Clone() Node {
	clone := newElement(e.name)
	clone.loc = e.loc
	clone.userData = e.userData
	for name, attr := range e.attrs.Range() {
		clone.attrs.Set(name, &Attribute{name: attr.name, value: attr.value, loc: attr.loc})
	}
	cloneChildrenInto(clone, e)
	return clone
}

func (e *Element) Accept(v Visitor) bool {
	if !v.VisitEnterElement(e) {
		return v.VisitExitElement(e)
	}
	for c := e.FirstChild(); c != nil; c = c.NextSibling() {
		if !c.Accept(v) {
			break
		}
	}
	return v.VisitExitElement(e)
}

// SetAttribute sets name=value on the element, overwriting any existing
// attribute of that name in place rather than erroring on the
// duplicate.
func (e *Element) SetAttribute(name, value string) {
	if existing, ok := e.attrs.Get(name); ok {
		existing.value = value
		return
	}
	e.attrs.Set(name, &Attribute{name: name, value: value})
}

// setAttributeAt is used by the parser, which knows the attribute's
// source location.
func (e *Element) setAttributeAt(name, value string, loc Location) {
	if existing, ok := e.attrs.Get(name); ok {
		existing.value = value
		return
	}
	e.attrs.Set(name, &Attribute{name: name, value: value, loc: loc})
}

// RemoveAttribute deletes the named attribute, if present.
func (e *Element) RemoveAttribute(name string) {
	e.attrs.Delete(name)
}

// Attribute returns the named attribute's value and whether it exists.
func (e *Element) Attribute(name string) (string, bool) {
	a, ok := e.attrs.Get(name)
	if !ok {
		return "", false
	}
	return a.value, true
}

// Attributes returns the element's attributes in insertion order.
func (e *Element) Attributes() []*Attribute {
	out := make([]*Attribute, 0, e.attrs.Len())
	for _, a := range e.attrs.Range() {
		out = append(out, a)
	}
	return out
}

// QueryIntAttribute parses the named attribute as an integer, running
// strconv.ParseInt off the attribute's string value.
func (e *Element) QueryIntAttribute(name string, out *int) QueryResult {
	v, ok := e.attrs.Get(name)
	if !ok {
		return QueryNoAttribute
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.value), 10, 64)
	if err != nil {
		return QueryWrongType
	}
	*out = int(n)
	return QuerySuccess
}

// QueryUnsignedAttribute parses the named attribute as an unsigned
// integer.
func (e *Element) QueryUnsignedAttribute(name string, out *uint) QueryResult {
	v, ok := e.attrs.Get(name)
	if !ok {
		return QueryNoAttribute
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v.value), 10, 64)
	if err != nil {
		return QueryWrongType
	}
	*out = uint(n)
	return QuerySuccess
}

// QueryDoubleAttribute parses the named attribute as a float64.
func (e *Element) QueryDoubleAttribute(name string, out *float64) QueryResult {
	v, ok := e.attrs.Get(name)
	if !ok {
		return QueryNoAttribute
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.value), 64)
	if err != nil {
		return QueryWrongType
	}
	*out = f
	return QuerySuccess
}

// QueryBoolAttribute parses the named attribute as a boolean. It accepts
// (case-insensitively) "true"/"yes"/"1" and "false"/"no"/"0".
func (e *Element) QueryBoolAttribute(name string, out *bool) QueryResult {
	v, ok := e.attrs.Get(name)
	if !ok {
		return QueryNoAttribute
	}
	switch strings.ToLower(strings.TrimSpace(v.value)) {
	case "true", "yes", "1":
		*out = true
		return QuerySuccess
	case "false", "no", "0":
		*out = false
		return QuerySuccess
	default:
		return QueryWrongType
	}
}

// FirstChildElement returns the first child that is an Element,
// optionally filtered by name.
func (e *Element) FirstChildElement(name ...string) *Element {
	return firstElement(e.FirstChild(), nameFilter(name))
}

// NextSiblingElement returns the next sibling that is an Element,
// optionally filtered by name.
func (e *Element) NextSiblingElement(name ...string) *Element {
	return firstElement(e.NextSibling(), nameFilter(name))
}
