// Package docmodel bridges directive documents and an editable tree host.
// The alignment state machine is written purely against the Host port so any
// editor backend providing wrap/lift/replace with transactional semantics
// can drive it; Tree is the in-memory implementation.
package docmodel

import "github.com/penbridge/directive-converter/directive"

// Path addresses a node as a sequence of child indexes from the root.
type Path []int

func (p Path) clone() Path {
	return append(Path{}, p...)
}

// Range is a contiguous run of sibling blocks under Parent: [Start, End).
type Range struct {
	Parent Path
	Start  int
	End    int
}

// Selection brackets two node paths. The block range derived from it is the
// smallest enclosing run of sibling blocks containing both ends.
type Selection struct {
	From Path
	To   Path
}

// Host is the editable document-tree port. All three mutations are
// transactional: a failed operation reports false and leaves the tree
// unchanged.
type Host interface {
	// Node returns a copy of the node at p.
	Node(p Path) (directive.Node, bool)
	// Wrap moves the blocks in r into a new container directive named name,
	// inserted at the range position. It returns the container's path.
	Wrap(r Range, name string) (Path, bool)
	// Lift removes the container at the given path, re-parenting its
	// children in place. It returns the range the children now occupy.
	Lift(container Path) (Range, bool)
	// ReplaceNodeType renames the container at the given path in a single
	// atomic mutation, preserving children and position.
	ReplaceNodeType(container Path, name string) bool
}
