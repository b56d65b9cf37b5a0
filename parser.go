package xmlparser

import (
	"fmt"

	"github.com/Keinier/XMLParser/internal/debug"
)

// parser drives tree construction from a byte buffer. It classifies the
// next construct by a small prefix and recurses to build subtrees,
// stamping d's sticky error surface on the first structural failure and
// otherwise retaining whatever partial tree it has already built.
type parser struct {
	d   *Document
	c   *cursor
	err error
}

func newParser(d *Document, buf []byte, enc Encoding) *parser {
	return &parser{d: d, c: newCursor(buf, enc, d.TabSize)}
}

// parseDocument implements the document top-level grammar: optional
// whitespace, optional Declaration, any number of Comment/Unknown, the
// root Element, any number of trailing Comment/Unknown. A bare Text node
// at top level is ERROR_DOCUMENT_TOP_ONLY.
func (p *parser) parseDocument() error {
	sawElement := false

	for !p.c.done() {
		p.c.skipWhiteSpace()
		if p.c.done() {
			break
		}

		if p.c.peek(0) != '<' {
			p.fail(ErrorDocumentTopOnly, "text is not allowed at document top level")
			return p.err
		}

		switch {
		case p.c.hasPrefixFold("<?xml"):
			decl, err := p.parseDeclaration()
			if err != nil {
				return p.err
			}
			p.d.AddChild(decl)

		case p.c.hasPrefix("<?"):
			u, err := p.parseProcessingInstruction()
			if err != nil {
				return p.err
			}
			p.d.AddChild(u)

		case p.c.hasPrefix("<!--"):
			cm, err := p.parseComment()
			if err != nil {
				return p.err
			}
			p.d.AddChild(cm)

		case p.c.hasPrefix("<!"):
			u, err := p.parseMarkupDecl()
			if err != nil {
				return p.err
			}
			p.d.AddChild(u)

		case isNameStartByte(p.c.peek(1), p.c.enc):
			e, err := p.parseElement()
			if e != nil {
				p.d.AddChild(e)
				sawElement = true
			}
			if err != nil {
				return p.err
			}

		default:
			p.fail(ErrorParsingElement, "unrecognized markup at document top level")
			return p.err
		}
	}

	if !sawElement {
		p.fail(ErrorDocumentEmpty, "document has no root element")
		return p.err
	}
	return nil
}

func (p *parser) fail(id ErrorID, format string, args ...interface{}) {
	loc := p.c.loc()
	p.d.setError(id, loc)
	p.err = &ParseError{ID: id, Desc: fmt.Sprintf(format, args...), Location: loc}
	debug.Printf("parse error %s at %v: %s", id, loc, p.err)
}

// parseDeclaration parses "<?xml ... ?>" into a Declaration node:
// repeated name="value" pairs, recognizing version/encoding/standalone
// and ignoring anything else.
func (p *parser) parseDeclaration() (*Declaration, error) {
	loc := p.c.loc()
	p.c.advance(len("<?xml"))

	var version, encoding, standalone string
	for {
		p.c.skipWhiteSpace()
		if p.c.hasPrefix("?>") {
			p.c.advance(2)
			break
		}
		if p.c.done() {
			p.fail(ErrorParsingDeclaration, "unterminated declaration")
			return nil, p.err
		}

		name, err := p.c.readName()
		if err != nil {
			p.fail(ErrorParsingDeclaration, "expected attribute name in declaration")
			return nil, p.err
		}
		p.c.skipWhiteSpace()
		if p.c.done() || p.c.peek(0) != '=' {
			p.fail(ErrorParsingDeclaration, "expected '=' after %q", name)
			return nil, p.err
		}
		p.c.advance(1)
		p.c.skipWhiteSpace()
		value, err := p.c.readAttributeValue()
		if err != nil {
			p.fail(ErrorParsingDeclaration, "malformed value for %q", name)
			return nil, p.err
		}

		switch name {
		case "version":
			version = value
		case "encoding":
			encoding = value
		case "standalone":
			standalone = value
		}
	}

	decl := p.d.CreateDeclaration(version, encoding, standalone)
	decl.loc = loc
	return decl, nil
}

// parseProcessingInstruction parses "<?...?>" (that isn't "<?xml") into
// an Unknown node holding the raw text between "<" and ">".
func (p *parser) parseProcessingInstruction() (*Unknown, error) {
	loc := p.c.loc()
	p.c.advance(1) // '<'
	body, err := p.c.readTextUntil("?>", true, false)
	if err != nil {
		p.fail(ErrorParsingUnknown, "unterminated processing instruction")
		return nil, p.err
	}
	p.c.advance(2) // '?>'

	u := p.d.CreateUnknown("?" + body + "?")
	u.loc = loc
	return u, nil
}

// parseComment parses "<!--...-->" into a Comment node.
func (p *parser) parseComment() (*Comment, error) {
	loc := p.c.loc()
	p.c.advance(len("<!--"))
	body, err := p.c.readTextUntil("-->", true, false)
	if err != nil {
		p.fail(ErrorParsingComment, "unterminated comment")
		return nil, p.err
	}
	p.c.advance(len("-->"))

	cm := p.d.CreateComment([]byte(body))
	cm.loc = loc
	return cm, nil
}

// parseMarkupDecl parses a "<!...>" construct that is neither a comment
// nor CDATA: DOCTYPE and friends. It is stored verbatim as an Unknown,
// tracking bracket depth so a DOCTYPE's internal subset ("[ ... ]") can
// contain its own unescaped '>' characters without ending the
// declaration early.
func (p *parser) parseMarkupDecl() (*Unknown, error) {
	loc := p.c.loc()
	p.c.advance(1) // '<'
	start := p.c.pos

	depth := 0
	for {
		if p.c.done() {
			p.fail(ErrorParsingUnknown, "unterminated markup declaration")
			return nil, p.err
		}
		b := p.c.peek(0)
		switch b {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				raw := string(p.c.buf[start:p.c.pos])
				p.c.advance(1)
				u := p.d.CreateUnknown(raw)
				u.loc = loc
				return u, nil
			}
		}
		p.c.advance(1)
	}
}

// parseElement parses an element: name, attributes, then either an
// empty close or content mode ending in a matching end tag.
func (p *parser) parseElement() (*Element, error) {
	loc := p.c.loc()
	p.c.advance(1) // '<'
	name, err := p.c.readName()
	if err != nil {
		p.fail(ErrorFailedToReadElementName, "expected element name")
		return nil, p.err
	}

	e := p.d.CreateElement(name)
	e.loc = loc

	for {
		p.c.skipWhiteSpace()
		if p.c.done() {
			p.fail(ErrorReadingAttributes, "unexpected end of input in start tag of %q", name)
			return e, p.err
		}
		if p.c.hasPrefix("/>") {
			p.c.advance(2)
			return e, nil
		}
		if p.c.peek(0) == '>' {
			p.c.advance(1)
			break
		}
		if err := p.parseAttribute(e); err != nil {
			return e, err
		}
	}

	if err := p.parseContent(e); err != nil {
		return e, err
	}
	return e, nil
}

// parseAttribute reads one name="value" pair and sets it on e,
// overwriting any existing attribute of the same name rather than
// treating the duplicate as an error.
func (p *parser) parseAttribute(e *Element) error {
	loc := p.c.loc()
	name, err := p.c.readName()
	if err != nil {
		p.fail(ErrorReadingAttributes, "expected attribute name")
		return p.err
	}
	p.c.skipWhiteSpace()
	if p.c.done() || p.c.peek(0) != '=' {
		p.fail(ErrorReadingAttributes, "expected '=' after attribute %q", name)
		return p.err
	}
	p.c.advance(1)
	p.c.skipWhiteSpace()
	value, err := p.c.readAttributeValue()
	if err != nil {
		p.fail(ErrorReadingAttributes, "malformed value for attribute %q", name)
		return p.err
	}
	e.setAttributeAt(name, value, loc)
	return nil
}

// parseContent reads child constructs until a matching end tag is
// found. A mismatched end-tag name is ERROR_READING_END_TAG.
func (p *parser) parseContent(e *Element) error {
	for {
		if p.c.done() {
			p.fail(ErrorReadingEndTag, "unexpected end of input, expected </%s>", e.name)
			return p.err
		}

		if p.c.hasPrefix("</") {
			endLoc := p.c.loc()
			p.c.advance(2)
			name, err := p.c.readName()
			if err != nil {
				p.fail(ErrorReadingEndTag, "expected end tag name")
				return p.err
			}
			p.c.skipWhiteSpace()
			if p.c.done() || p.c.peek(0) != '>' {
				p.fail(ErrorReadingEndTag, "expected '>' closing </%s>", name)
				return p.err
			}
			p.c.advance(1)
			if name != e.name {
				p.d.setError(ErrorReadingEndTag, endLoc)
				p.err = &ParseError{ID: ErrorReadingEndTag, Desc: fmt.Sprintf("mismatched end tag: expected </%s>, found </%s>", e.name, name), Location: endLoc}
				return p.err
			}
			return nil
		}

		if p.c.hasPrefix("<![CDATA[") {
			t, err := p.parseCDATA()
			if err != nil {
				return err
			}
			e.AddChild(t)
			continue
		}
		if p.c.hasPrefix("<!--") {
			cm, err := p.parseComment()
			if err != nil {
				return err
			}
			e.AddChild(cm)
			continue
		}
		if p.c.hasPrefix("<!") {
			u, err := p.parseMarkupDecl()
			if err != nil {
				return err
			}
			e.AddChild(u)
			continue
		}
		if p.c.hasPrefix("<?") {
			u, err := p.parseProcessingInstruction()
			if err != nil {
				return err
			}
			e.AddChild(u)
			continue
		}
		if p.c.peek(0) == '<' {
			if !isNameStartByte(p.c.peek(1), p.c.enc) {
				p.fail(ErrorParsingElement, "malformed tag inside <%s>", e.name)
				return p.err
			}
			child, err := p.parseElement()
			if child != nil {
				e.AddChild(child)
			}
			if err != nil {
				return err
			}
			continue
		}

		if err := p.parseText(e); err != nil {
			return err
		}
	}
}

// parseCDATA parses "<![CDATA[...]]>" into a Text node with cdata=true.
func (p *parser) parseCDATA() (*Text, error) {
	loc := p.c.loc()
	p.c.advance(len("<![CDATA["))
	body, err := p.c.readTextUntil("]]>", true, false)
	if err != nil {
		p.fail(ErrorParsingCDATA, "unterminated CDATA section")
		return nil, p.err
	}
	p.c.advance(len("]]>"))

	t := p.d.CreateText([]byte(body))
	t.cdata = true
	t.loc = loc
	return t, nil
}

// parseText reads a run of character data up to the next '<', decoding
// entities and condensing whitespace per d.CondenseWhiteSpace.
func (p *parser) parseText(e *Element) error {
	loc := p.c.loc()
	body, err := p.c.readTextUntil("<", false, p.d.CondenseWhiteSpace)
	if err != nil {
		p.fail(ErrorReadingElementValue, "error reading text content of <%s>", e.name)
		return p.err
	}
	if body == "" {
		return nil
	}
	t := p.d.CreateText([]byte(body))
	t.loc = loc
	return e.AddChild(t)
}
