package xmlparser

// FirstChildNamed returns the first child of n whose Value() equals
// name, or nil if none matches.
func FirstChildNamed(n Node, name string) Node {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Value() == name {
			return c
		}
	}
	return nil
}

// LastChildNamed returns the last child of n whose Value() equals name.
func LastChildNamed(n Node, name string) Node {
	for c := n.LastChild(); c != nil; c = c.PrevSibling() {
		if c.Value() == name {
			return c
		}
	}
	return nil
}

// NextSiblingNamed returns the next sibling after n whose Value() equals
// name.
func NextSiblingNamed(n Node, name string) Node {
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if s.Value() == name {
			return s
		}
	}
	return nil
}

// PreviousSiblingNamed returns the previous sibling before n whose
// Value() equals name.
func PreviousSiblingNamed(n Node, name string) Node {
	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		if s.Value() == name {
			return s
		}
	}
	return nil
}

// IterateChildren returns the child of n following previous, or n's
// first child when previous is nil.
func IterateChildren(n Node, previous Node) Node {
	if previous == nil {
		return n.FirstChild()
	}
	return previous.NextSibling()
}

func nameFilter(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// firstElement scans forward from start (itself included) via next,
// returning the first Element whose name matches filter (empty filter
// matches any name).
func firstElement(start Node, filter string) *Element {
	for c := start; c != nil; c = c.NextSibling() {
		if e, ok := c.(*Element); ok {
			if filter == "" || e.name == filter {
				return e
			}
		}
	}
	return nil
}
