package directive

import (
	"regexp"
	"strings"
)

// Kind identifies the shape of a document node.
type Kind string

const (
	// KindDocument is the root node; children are block-level nodes.
	KindDocument Kind = "document"
	// KindMarkdown is a verbatim markdown segment with no directive syntax.
	// Block-level when a child of a document or container, inline when a
	// child of a paragraph.
	KindMarkdown Kind = "markdown"
	// KindParagraph is a paragraph that mixes inline markdown runs with
	// text directives.
	KindParagraph Kind = "paragraph"
	// KindContainer is a fenced container directive (":::name ... :::").
	KindContainer Kind = "container"
	// KindLeaf is an atomic leaf directive ("::name").
	KindLeaf Kind = "leaf"
	// KindText is an inline text directive (":name[text]").
	KindText Kind = "text"
)

// Node represents any node in a directive document tree.
type Node struct {
	Kind     Kind
	Name     string            // directive name; empty for document/markdown/paragraph
	Attrs    map[string]string // directive attributes; nil when absent
	Children []Node            // block children (document, container) or inline children (paragraph)
	Text     string            // raw markdown for KindMarkdown, inline payload for KindText
}

// IsDirective reports whether the node carries directive semantics.
func (n Node) IsDirective() bool {
	switch n.Kind {
	case KindContainer, KindLeaf, KindText:
		return true
	default:
		return false
	}
}

// PlainText returns the concatenated readable content of the node, dropping
// all directive structure. Used as the universal content-preserving fallback.
func (n Node) PlainText() string {
	switch n.Kind {
	case KindMarkdown:
		return n.Text
	case KindText:
		return n.Text
	case KindLeaf:
		return ""
	default:
		var sb strings.Builder
		for i, child := range n.Children {
			if i > 0 && (n.Kind == KindDocument || n.Kind == KindContainer) {
				sb.WriteString("\n\n")
			}
			sb.WriteString(child.PlainText())
		}
		return sb.String()
	}
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	cloned := n
	cloned.Attrs = cloneAttrs(n.Attrs)
	if n.Children != nil {
		cloned.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			cloned.Children[i] = child.Clone()
		}
	}
	return cloned
}

func cloneAttrs(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}
	cloned := make(map[string]string, len(attrs))
	for key, value := range attrs {
		cloned[key] = value
	}
	return cloned
}

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidName reports whether name is a legal directive name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}
