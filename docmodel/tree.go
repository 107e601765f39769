package docmodel

import "github.com/penbridge/directive-converter/directive"

// Tree is the in-memory Host implementation over a directive document.
// It owns its copy of the document; callers read back via Document.
type Tree struct {
	root directive.Node
}

// NewTree creates a tree from a parsed document. Non-document roots are
// wrapped so the tree always has a block-holding root.
func NewTree(doc directive.Node) *Tree {
	if doc.Kind != directive.KindDocument {
		doc = directive.Node{Kind: directive.KindDocument, Children: []directive.Node{doc}}
	}
	return &Tree{root: doc.Clone()}
}

// Document returns a copy of the current document.
func (t *Tree) Document() directive.Node {
	return t.root.Clone()
}

func (t *Tree) resolve(p Path) (*directive.Node, bool) {
	node := &t.root
	for _, idx := range p {
		if idx < 0 || idx >= len(node.Children) {
			return nil, false
		}
		node = &node.Children[idx]
	}
	return node, true
}

func canHoldBlocks(node directive.Node) bool {
	return node.Kind == directive.KindDocument || node.Kind == directive.KindContainer
}

// Node returns a copy of the node at p.
func (t *Tree) Node(p Path) (directive.Node, bool) {
	node, ok := t.resolve(p)
	if !ok {
		return directive.Node{}, false
	}
	return node.Clone(), true
}

// Wrap implements Host.
func (t *Tree) Wrap(r Range, name string) (Path, bool) {
	if !directive.ValidName(name) {
		return nil, false
	}
	parent, ok := t.resolve(r.Parent)
	if !ok || !canHoldBlocks(*parent) {
		return nil, false
	}
	if r.Start < 0 || r.End <= r.Start || r.End > len(parent.Children) {
		return nil, false
	}

	wrapped := make([]directive.Node, r.End-r.Start)
	copy(wrapped, parent.Children[r.Start:r.End])
	container := directive.Node{
		Kind:     directive.KindContainer,
		Name:     name,
		Children: wrapped,
	}

	children := make([]directive.Node, 0, len(parent.Children)-len(wrapped)+1)
	children = append(children, parent.Children[:r.Start]...)
	children = append(children, container)
	children = append(children, parent.Children[r.End:]...)
	parent.Children = children

	return append(r.Parent.clone(), r.Start), true
}

// Lift implements Host.
func (t *Tree) Lift(container Path) (Range, bool) {
	if len(container) == 0 {
		return Range{}, false
	}
	parentPath := container[:len(container)-1].clone()
	idx := container[len(container)-1]

	parent, ok := t.resolve(parentPath)
	if !ok || !canHoldBlocks(*parent) || idx < 0 || idx >= len(parent.Children) {
		return Range{}, false
	}
	target := parent.Children[idx]
	if target.Kind != directive.KindContainer {
		return Range{}, false
	}

	children := make([]directive.Node, 0, len(parent.Children)+len(target.Children)-1)
	children = append(children, parent.Children[:idx]...)
	children = append(children, target.Children...)
	children = append(children, parent.Children[idx+1:]...)
	parent.Children = children

	return Range{Parent: parentPath, Start: idx, End: idx + len(target.Children)}, true
}

// ReplaceNodeType implements Host.
func (t *Tree) ReplaceNodeType(container Path, name string) bool {
	if !directive.ValidName(name) {
		return false
	}
	node, ok := t.resolve(container)
	if !ok || node.Kind != directive.KindContainer {
		return false
	}
	node.Name = name
	return true
}

// BlockRange derives the smallest enclosing block range containing both ends
// of a selection. Selections never produce partial-block wrapping: endpoints
// at different depths widen to the blocks containing them.
func (t *Tree) BlockRange(sel Selection) (Range, bool) {
	if _, ok := t.resolve(sel.From); !ok {
		return Range{}, false
	}
	if _, ok := t.resolve(sel.To); !ok {
		return Range{}, false
	}

	prefix := 0
	for prefix < len(sel.From) && prefix < len(sel.To) && sel.From[prefix] == sel.To[prefix] {
		prefix++
	}

	var parentPath Path
	var start, end int
	if prefix == len(sel.From) || prefix == len(sel.To) {
		// One endpoint encloses the other; the range is the enclosing node
		// within its own parent.
		enclosing := sel.From
		if prefix == len(sel.To) {
			enclosing = sel.To
		}
		if len(enclosing) == 0 {
			if len(t.root.Children) == 0 {
				return Range{}, false
			}
			return Range{Parent: Path{}, Start: 0, End: len(t.root.Children)}, true
		}
		parentPath = enclosing[:len(enclosing)-1].clone()
		start = enclosing[len(enclosing)-1]
		end = start + 1
	} else {
		parentPath = sel.From[:prefix].clone()
		start, end = sel.From[prefix], sel.To[prefix]
		if start > end {
			start, end = end, start
		}
		end++
	}

	// Widen until the parent can hold blocks.
	for {
		node, ok := t.resolve(parentPath)
		if !ok {
			return Range{}, false
		}
		if canHoldBlocks(*node) {
			if start < 0 || end > len(node.Children) || start >= end {
				return Range{}, false
			}
			return Range{Parent: parentPath, Start: start, End: end}, true
		}
		if len(parentPath) == 0 {
			return Range{}, false
		}
		start = parentPath[len(parentPath)-1]
		end = start + 1
		parentPath = parentPath[:len(parentPath)-1].clone()
	}
}
