package xmlparser

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// Document is the root of a parsed or hand-built node tree. It owns
// its top-level children (an optional Declaration, any number of
// Comment/Unknown/whitespace-Text nodes, and the document's root
// element(s)) and carries a sticky parse error surface.
type Document struct {
	treeNode

	name     string
	encoding Encoding
	useBOM   bool

	// CondenseWhiteSpace controls text-node whitespace folding at parse
	// time, scoped per-document rather than process-global. Defaults to
	// true.
	CondenseWhiteSpace bool
	// TabSize is the column width a tab advances to when tracking parse
	// error locations. Defaults to 4.
	TabSize int

	err *ParseError
}

// DocumentOption configures a Document at construction time.
type DocumentOption func(*Document)

// WithTabSize overrides the default tab width used for location
// tracking.
func WithTabSize(n int) DocumentOption {
	return func(d *Document) { d.TabSize = n }
}

// WithCondenseWhiteSpace overrides the default (true) whitespace
// condensation policy.
func WithCondenseWhiteSpace(v bool) DocumentOption {
	return func(d *Document) { d.CondenseWhiteSpace = v }
}

// NewDocument creates an empty Document ready for programmatic tree
// construction or for Parse/LoadFile to populate.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		encoding:           EncodingUTF8,
		CondenseWhiteSpace: true,
		TabSize:            defaultTabSize,
	}
	d.doc = d
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) Type() NodeType   { return DocumentNode }
func (d *Document) Value() string    { return d.name }
func (d *Document) Encoding() Encoding { return d.encoding }

func (d *Document) AddChild(cur Node) error   { return addChild(d, cur) }
func (d *Document) AddContent(b []byte) error { return addContent(d, b) }
func (d *Document) AddSibling(Node) error     { return ErrInvalidOperation }
func (d *Document) Replace(Node) error        { return ErrInvalidOperation }
func (d *Document) RemoveChild(child Node) error {
	return removeChild(d, child)
}

// Clone deep-copies the entire tree into a new, detached Document.
func (d *Document) Clone() Node {
	clone := NewDocument(WithTabSize(d.TabSize), WithCondenseWhiteSpace(d.CondenseWhiteSpace))
	clone.name = d.name
	clone.encoding = d.encoding
	clone.useBOM = d.useBOM
	cloneChildrenInto(clone, d)
	return clone
}

func (d *Document) Accept(v Visitor) bool {
	if v.VisitEnterDocument(d) {
		for c := d.FirstChild(); c != nil; c = c.NextSibling() {
			if !c.Accept(v) {
				break
			}
		}
	}
	return v.VisitExitDocument(d)
}

// RootElement returns the document's first top-level Element child, or
// nil if none has been added yet. Multiple top-level elements are
// tolerated, not an error; RootElement always returns the first one.
func (d *Document) RootElement() *Element {
	for c := d.FirstChild(); c != nil; c = c.NextSibling() {
		if e, ok := c.(*Element); ok {
			return e
		}
	}
	return nil
}

// Error reports whether the document carries a sticky parse error.
func (d *Document) Error() bool { return d.err != nil }

// ErrorID returns the sticky error's ID, or NoError if none is set.
func (d *Document) ErrorID() ErrorID {
	if d.err == nil {
		return NoError
	}
	return d.err.ID
}

// ErrorStr returns the sticky error's full message, or "" if none is
// set.
func (d *Document) ErrorStr() string {
	if d.err == nil {
		return ""
	}
	return d.err.Error()
}

// ClearError clears the sticky error surface; errors persist until this
// is called explicitly.
func (d *Document) ClearError() { d.err = nil }

func (d *Document) setError(id ErrorID, loc Location) {
	if d.err != nil {
		return
	}
	d.err = &ParseError{ID: id, Desc: errorIDNames[id], Location: loc}
}

// CreateElement returns a new, detached Element owned by d.
func (d *Document) CreateElement(name string) *Element {
	e := newElement(name)
	e.doc = d
	return e
}

// CreateText returns a new, detached Text node owned by d.
func (d *Document) CreateText(content []byte) *Text {
	t := newText(content, false)
	t.doc = d
	return t
}

// CreateComment returns a new, detached Comment owned by d.
func (d *Document) CreateComment(content []byte) *Comment {
	c := newComment(content)
	c.doc = d
	return c
}

// CreateDeclaration returns a new, detached Declaration owned by d.
func (d *Document) CreateDeclaration(version, encoding, standalone string) *Declaration {
	decl := newDeclaration(version, encoding, standalone)
	decl.doc = d
	return decl
}

// CreateUnknown returns a new, detached Unknown node owned by d.
func (d *Document) CreateUnknown(raw string) *Unknown {
	u := newUnknown(raw)
	u.doc = d
	return u
}

// Parse parses data (already read into memory) into d, replacing any
// existing content. It normalizes line endings, detects a UTF-8 BOM, and
// otherwise honors encoding (EncodingUnknown defaults to UTF-8). A sticky
// error already on d is kept; Parse does not clear it.
func (d *Document) Parse(data []byte, encoding Encoding) error {
	d.firstChild, d.lastChild = nil, nil

	buf, hasBOM := detectBOM(data)
	d.useBOM = hasBOM
	if hasBOM {
		encoding = EncodingUTF8
	} else if encoding == EncodingUnknown {
		encoding = EncodingUTF8
	}
	d.encoding = encoding

	if encoding == EncodingLegacy {
		buf = transcodeLegacyToUTF8(buf)
	}
	buf = normalizeEOL(buf)

	if i := bytes.IndexByte(buf, 0); i >= 0 {
		tr := newTracker(d.TabSize)
		for _, b := range buf[:i] {
			tr.advance(b, 0, false)
		}
		d.setError(ErrorEmbeddedNull, tr.location())
		return &ParseError{ID: ErrorEmbeddedNull, Desc: errorIDNames[ErrorEmbeddedNull], Location: tr.location()}
	}

	p := newParser(d, buf, encoding)
	return p.parseDocument()
}

// LoadReader reads all of r and parses it as EncodingUTF8 unless a BOM
// says otherwise; it just hands Parse an in-memory buffer.
func (d *Document) LoadReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		d.setError(ErrorOpeningFile, Location{})
		return err
	}
	return d.Parse(data, EncodingUnknown)
}

// LoadFile opens path, reads it fully, and parses it.
func (d *Document) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		d.setError(ErrorOpeningFile, Location{})
		return err
	}
	defer f.Close()
	d.name = path
	return d.LoadReader(f)
}

// WriteTo serializes d as XML to w, satisfying io.WriterTo. Output is
// staged through a bufio.Writer so SaveFile and other os.File-backed
// callers get batched writes rather than one syscall per
// fprintf-equivalent call.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	p := NewPrinter()
	bw := bufio.NewWriter(w)
	var n int64

	if d.useBOM {
		m, err := bw.Write(utf8BOM)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	if !d.Accept(p) {
		return n, ErrInvalidOperation
	}
	m, err := bw.WriteString(p.String())
	n += int64(m)
	if err != nil {
		return n, err
	}
	return n, bw.Flush()
}

// SaveFile serializes d and writes it to path.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = d.WriteTo(f)
	return err
}

// XMLString serializes d into a string.
func (d *Document) XMLString() (string, error) {
	var buf strings.Builder
	if _, err := d.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
