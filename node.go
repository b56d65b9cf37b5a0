package xmlparser

import "errors"

// NodeType is the closed set of node kinds the document model supports.
type NodeType int

const (
	// DocumentNode is the root container of a parsed or constructed tree.
	DocumentNode NodeType = iota + 1
	// ElementNode has a tag name, an ordered attribute set, and children.
	ElementNode
	// TextNode holds a byte sequence and a CDATA flag.
	TextNode
	// CommentNode holds the body between "<!--" and "-->".
	CommentNode
	// DeclarationNode is the "<?xml ... ?>" prolog.
	DeclarationNode
	// UnknownNode is anything beginning with "<!" or "<?" that isn't a
	// recognized construct; stored verbatim for round-tripping.
	UnknownNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case DeclarationNode:
		return "Declaration"
	case UnknownNode:
		return "Unknown"
	default:
		return "Unknown(?)"
	}
}

var (
	// ErrInvalidOperation is returned when a mutation is attempted that the
	// data model forbids (e.g. adding a Document as a child).
	ErrInvalidOperation = errors.New("xmlparser: operation cannot be performed")
	// ErrNilNode is returned by operations given a nil node operand.
	ErrNilNode = errors.New("xmlparser: nil node")
)

// Location is the (row, column) coordinate a node was parsed at. It is
// frozen at parse time; mutating a node never updates it.
type Location struct {
	Row    int
	Column int
}

// Node is the common interface implemented by every node kind in the tree.
type Node interface {
	// getTreeNode exposes the embedded shared header so generic tree
	// algorithms (addChild, addSibling, replaceNode, ...) can mutate the
	// linkage fields without a type switch on every node kind.
	getTreeNode() *treeNode

	Type() NodeType
	// Value returns the kind-dependent display value: tag name for
	// Element, text for Text, raw body for Comment/Unknown, document
	// name for Document.
	Value() string

	Parent() Node
	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PrevSibling() Node
	Location() Location
	OwnerDocument() *Document
	UserData() any
	SetUserData(any)

	AddChild(Node) error
	AddSibling(Node) error
	AddContent([]byte) error
	Replace(Node) error
	RemoveChild(Node) error

	// Clone returns a deep copy of the node and its subtree, detached
	// from any parent.
	Clone() Node

	// Accept drives a depth-first Visitor traversal rooted at this node.
	Accept(Visitor) bool
}

// treeNode is the shared header embedded by every concrete node type. It
// carries ownership/sibling linkage, the frozen parse location, and an
// opaque user-data slot.
type treeNode struct {
	parent     Node
	firstChild Node
	lastChild  Node
	next       Node
	prev       Node
	doc        *Document
	loc        Location
	userData   any
}

func (n *treeNode) getTreeNode() *treeNode { return n }
func (n *treeNode) Parent() Node           { return n.parent }
func (n *treeNode) FirstChild() Node       { return n.firstChild }
func (n *treeNode) LastChild() Node        { return n.lastChild }
func (n *treeNode) NextSibling() Node      { return n.next }
func (n *treeNode) PrevSibling() Node      { return n.prev }
func (n *treeNode) Location() Location     { return n.loc }
func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}
func (n *treeNode) UserData() any      { return n.userData }
func (n *treeNode) SetUserData(v any)  { n.userData = v }

// addChild links cur as the new last child of n, merging it into a
// trailing Text child when both are Text nodes, so consecutive
// AddContent calls accumulate into a single node instead of a chain of
// one-byte siblings.
func addChild(n Node, cur Node) error {
	if n == nil || cur == nil {
		return ErrNilNode
	}
	if cur.Type() == DocumentNode {
		if doc := n.OwnerDocument(); doc != nil {
			doc.setError(ErrorDocumentTopOnly, n.Location())
		}
		return ErrInvalidOperation
	}

	nt := n.getTreeNode()
	if l := nt.lastChild; l != nil {
		if l.Type() == TextNode && cur.Type() == TextNode {
			return l.AddContent([]byte(cur.Value()))
		}
		if err := addSibling(l, cur); err != nil {
			return err
		}
	} else {
		nt.firstChild = cur
		nt.lastChild = cur
		cur.getTreeNode().parent = n
	}
	return nil
}

// addContent wraps b in a new Text node and appends it as a child of n,
// merging with a trailing Text child if one already exists (see
// addChild).
func addContent(n Node, b []byte) error {
	doc := n.OwnerDocument()
	var t *Text
	if doc != nil {
		t = doc.CreateText(b)
	} else {
		t = newText(b, false)
	}
	return n.AddChild(t)
}

// addSibling appends cur after the last sibling reachable from n.
func addSibling(n, cur Node) error {
	if n == nil || cur == nil {
		return ErrNilNode
	}

	last := n
	for last.NextSibling() != nil {
		last = last.NextSibling()
	}

	lt := last.getTreeNode()
	ct := cur.getTreeNode()
	lt.next = cur
	ct.prev = last
	if lt.parent != nil {
		ct.parent = lt.parent
		lt.parent.getTreeNode().lastChild = cur
	}
	return nil
}

// replaceNode splices cur into n's position among its siblings and
// beneath its parent, then detaches n.
func replaceNode(n Node, cur Node) error {
	if n == nil || cur == nil {
		return ErrNilNode
	}

	ct := cur.getTreeNode()
	if next := n.NextSibling(); next != nil {
		ct.next = next
		next.getTreeNode().prev = cur
	}
	if prev := n.PrevSibling(); prev != nil {
		ct.prev = prev
		prev.getTreeNode().next = cur
	}
	if parent := n.Parent(); parent != nil {
		pt := parent.getTreeNode()
		if pt.firstChild == n {
			pt.firstChild = cur
		}
		if pt.lastChild == n {
			pt.lastChild = cur
		}
		ct.parent = parent
	}

	nt := n.getTreeNode()
	nt.parent, nt.next, nt.prev = nil, nil, nil
	return nil
}

// removeChild detaches child from n's sibling chain and clears its
// linkage, destroying its subtree as far as Go's GC is concerned (no
// other live reference remains once the caller drops its own).
func removeChild(n Node, child Node) error {
	if n == nil || child == nil {
		return ErrNilNode
	}
	if child.Parent() != n {
		return ErrInvalidOperation
	}

	nt := n.getTreeNode()
	ct := child.getTreeNode()

	if ct.prev != nil {
		ct.prev.getTreeNode().next = ct.next
	} else {
		nt.firstChild = ct.next
	}
	if ct.next != nil {
		ct.next.getTreeNode().prev = ct.prev
	} else {
		nt.lastChild = ct.prev
	}

	ct.parent, ct.next, ct.prev = nil, nil, nil
	return nil
}

// setParent sets n's parent pointer only; sibling linkage and the
// parent's firstChild/lastChild are left untouched.
func setParent(n Node, parent Node) {
	n.getTreeNode().parent = parent
}
