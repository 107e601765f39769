package docmodel

import "github.com/penbridge/directive-converter/directive"

// AlignState describes the alignment of a block range.
type AlignState struct {
	Aligned   bool
	Alignment string
	Container Path // path of the alignment container when aligned
}

// ApplyResult reports where the affected content lives after a transition,
// so overlays and selections can re-anchor without a full re-render.
type ApplyResult struct {
	State   AlignState
	Content Range
}

// Aligner implements the toggle-alignment state machine over a Host.
// A block range is either unaligned or aligned as exactly one of the four
// alignment directives; applying the current alignment again toggles it off,
// applying a different one replaces it atomically.
type Aligner struct {
	host Host
}

// NewAligner creates an aligner over the given host.
func NewAligner(host Host) *Aligner {
	return &Aligner{host: host}
}

// StateOf returns the alignment state of a block range: the innermost
// enclosing alignment container, or, for a single-block range, the block
// itself when it is an alignment container.
func (a *Aligner) StateOf(r Range) AlignState {
	for depth := len(r.Parent); depth > 0; depth-- {
		p := Path(r.Parent[:depth]).clone()
		if node, ok := a.host.Node(p); ok && isAlignmentContainer(node) {
			return AlignState{Aligned: true, Alignment: node.Name, Container: p}
		}
	}

	if r.End == r.Start+1 {
		p := append(r.Parent.clone(), r.Start)
		if node, ok := a.host.Node(p); ok && isAlignmentContainer(node) {
			return AlignState{Aligned: true, Alignment: node.Name, Container: p}
		}
	}

	return AlignState{}
}

// Apply runs one transition of the state machine on r. Structurally invalid
// targets make the whole operation a no-op: the second return value is false
// and the document is unchanged.
func (a *Aligner) Apply(r Range, alignment string) (ApplyResult, bool) {
	if !directive.IsAlignment(alignment) {
		return ApplyResult{}, false
	}

	state := a.StateOf(r)
	switch {
	case !state.Aligned:
		container, ok := a.host.Wrap(r, alignment)
		if !ok {
			return ApplyResult{}, false
		}
		return ApplyResult{
			State:   AlignState{Aligned: true, Alignment: alignment, Container: container},
			Content: Range{Parent: container, Start: 0, End: r.End - r.Start},
		}, true

	case state.Alignment == alignment:
		// Toggle off: unwrap, re-parenting children in place.
		lifted, ok := a.host.Lift(state.Container)
		if !ok {
			return ApplyResult{}, false
		}
		return ApplyResult{Content: lifted}, true

	default:
		// Mutual exclusivity: a single atomic rename, never unwrap-then-wrap.
		if !a.host.ReplaceNodeType(state.Container, alignment) {
			return ApplyResult{}, false
		}
		node, _ := a.host.Node(state.Container)
		return ApplyResult{
			State:   AlignState{Aligned: true, Alignment: alignment, Container: state.Container},
			Content: Range{Parent: state.Container, Start: 0, End: len(node.Children)},
		}, true
	}
}

// ApplyToBlock runs the state machine on a single block, typically an
// embedded image, and returns the block's new path after the transition.
func (a *Aligner) ApplyToBlock(p Path, alignment string) (Path, bool) {
	if len(p) == 0 || !directive.IsAlignment(alignment) {
		return nil, false
	}

	r := Range{
		Parent: p[:len(p)-1].clone(),
		Start:  p[len(p)-1],
		End:    p[len(p)-1] + 1,
	}

	state := a.StateOf(r)
	switch {
	case !state.Aligned:
		container, ok := a.host.Wrap(r, alignment)
		if !ok {
			return nil, false
		}
		return append(container.clone(), 0), true

	case state.Alignment == alignment:
		rest := p[len(state.Container):]
		lifted, ok := a.host.Lift(state.Container)
		if !ok {
			return nil, false
		}
		if len(rest) == 0 {
			return append(lifted.Parent.clone(), lifted.Start), true
		}
		next := append(lifted.Parent.clone(), lifted.Start+rest[0])
		return append(next, rest[1:]...), true

	default:
		if !a.host.ReplaceNodeType(state.Container, alignment) {
			return nil, false
		}
		return p.clone(), true
	}
}

func isAlignmentContainer(node directive.Node) bool {
	return node.Kind == directive.KindContainer && directive.IsAlignment(node.Name)
}
