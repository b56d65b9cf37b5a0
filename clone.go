package xmlparser

// cloneChildrenInto deep-copies each child of src, re-homes it under
// dst's owner document, and appends it to dst. Used by every container
// node kind's Clone method (Document, Element).
func cloneChildrenInto(dst Node, src Node) {
	doc := dst.OwnerDocument()
	for c := src.FirstChild(); c != nil; c = c.NextSibling() {
		clone := c.Clone()
		if doc != nil {
			setOwnerDocument(clone, doc)
		}
		_ = dst.AddChild(clone)
	}
}

// setOwnerDocument reassigns a freshly cloned subtree's owner document.
func setOwnerDocument(n Node, doc *Document) {
	n.getTreeNode().doc = doc
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		setOwnerDocument(c, doc)
	}
}
