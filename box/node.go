package box

// Node is one decoded box: its own attributes plus the decoded child boxes,
// in document order. Attrs always holds "type" and "size", plus "version"
// and "flags" for FullBox types, plus every field the box's schema names.
//
// The store is tree-shaped; the historical flattened view (children merged
// into the parent's namespace) is derived on demand by Flatten.
type Node struct {
	Type     string
	Size     uint64
	Attrs    map[string]any
	Children []*Node
}

// Flatten merges the node's attributes with those of all descendants into a
// single mapping. On name collisions the first value in document order wins,
// matching the first-match contract of field lookup.
func (n *Node) Flatten() map[string]any {
	out := make(map[string]any, len(n.Attrs))
	n.flattenInto(out)
	return out
}

func (n *Node) flattenInto(m map[string]any) {
	for k, v := range n.Attrs {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	for _, c := range n.Children {
		c.flattenInto(m)
	}
}

// Lookup returns the first value stored under name in a depth-first,
// document-order walk of the subtree rooted at n.
func (n *Node) Lookup(name string) (any, bool) {
	if v, ok := n.Attrs[name]; ok {
		return v, true
	}
	for _, c := range n.Children {
		if v, ok := c.Lookup(name); ok {
			return v, true
		}
	}
	return nil, false
}
