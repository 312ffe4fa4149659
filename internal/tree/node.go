// Package tree implements the category/family selection tree with
// tri-state checkbox semantics: toggling a node propagates the definite
// state to every descendant, and any child change recomputes the parent.
package tree

// State is the tri-state selection value of a node.
type State int

const (
	Off State = iota
	On
	Mixed // some but not all children selected; only interior nodes can be Mixed
)

func (s State) String() string {
	switch s {
	case On:
		return "on"
	case Mixed:
		return "mixed"
	default:
		return "off"
	}
}

// Node represents a category or family entry in the selection tree.
// Children belong exclusively to their parent; the Parent pointer is a
// back-reference used only for upward recomputation.
type Node struct {
	Name        string
	CategoryKey string // shared by a category and its family children
	IsCategory  bool
	IsMaterial  bool // pseudo-leaf representing a material rather than a family

	HasKeynote      bool
	HasAssemblyCode bool
	Keynote         string
	AssemblyCode    string

	Children []*Node
	Parent   *Node

	state State
}

// State reports the node's current selection state.
func (n *Node) State() State { return n.state }

// Selected reports whether the node is definitely on. Mixed counts as
// not selected: a partially-checked category is represented in the
// export by its selected children, never by itself.
func (n *Node) Selected() bool { return n.state == On }

// SetSelected forces a definite state onto the node and every
// descendant, then recomputes each ancestor from its children up to
// the root.
func (n *Node) SetSelected(on bool) {
	state := Off
	if on {
		state = On
	}
	n.apply(state)
	for p := n.Parent; p != nil; p = p.Parent {
		p.recomputeFromChildren()
	}
}

func (n *Node) apply(s State) {
	n.state = s
	for _, c := range n.Children {
		c.apply(s)
	}
}

// recomputeFromChildren derives the node's state from its direct
// children in one scan: all on yields On, none on yields Off, anything
// else yields Mixed. Childless nodes keep their state.
func (n *Node) recomputeFromChildren() {
	if len(n.Children) == 0 {
		return
	}
	all, none := true, true
	for _, c := range n.Children {
		switch c.state {
		case On:
			none = false
		case Off:
			all = false
		default:
			all, none = false, false
		}
	}
	switch {
	case all:
		n.state = On
	case none:
		n.state = Off
	default:
		n.state = Mixed
	}
}

// SelectAll selects every node of the forest.
func SelectAll(forest []*Node) {
	for _, n := range forest {
		n.SetSelected(true)
	}
}

// DeselectAll deselects every node of the forest.
func DeselectAll(forest []*Node) {
	for _, n := range forest {
		n.SetSelected(false)
	}
}
