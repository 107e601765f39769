package mdparser

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

var (
	// KindContainerDirective is the goldmark node kind for ":::name" fences.
	KindContainerDirective = ast.NewNodeKind("ContainerDirective")
	// KindLeafDirective is the goldmark node kind for "::name" lines.
	KindLeafDirective = ast.NewNodeKind("LeafDirective")
	// KindTextDirective is the goldmark node kind for ":name[text]" inlines.
	KindTextDirective = ast.NewNodeKind("TextDirective")
)

// ContainerDirectiveNode is the tokenizer output for a fenced container
// directive. The body is captured raw and re-parsed by the walker so nested
// directives resolve recursively.
type ContainerDirectiveNode struct {
	ast.BaseBlock
	Name        string
	FenceLength int
	Attrs       map[string]string
	Closed      bool
	bodyLines   []string
	openDepth   int
}

func NewContainerDirectiveNode(name string, fenceLength int, attrs map[string]string) *ContainerDirectiveNode {
	return &ContainerDirectiveNode{
		Name:        name,
		FenceLength: fenceLength,
		Attrs:       attrs,
		openDepth:   1,
	}
}

func (n *ContainerDirectiveNode) Kind() ast.NodeKind {
	return KindContainerDirective
}

func (n *ContainerDirectiveNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":        n.Name,
		"FenceLength": strconv.Itoa(n.FenceLength),
		"Closed":      strconv.FormatBool(n.Closed),
	}, nil)
}

func (n *ContainerDirectiveNode) appendBodyLine(line string) {
	n.bodyLines = append(n.bodyLines, line)
}

// Body returns the raw markdown between the fences.
func (n *ContainerDirectiveNode) Body() string {
	return strings.Join(n.bodyLines, "\n")
}

// LeafDirectiveNode is the tokenizer output for a "::name" line.
type LeafDirectiveNode struct {
	ast.BaseBlock
	Name  string
	Attrs map[string]string
}

func NewLeafDirectiveNode(name string, attrs map[string]string) *LeafDirectiveNode {
	return &LeafDirectiveNode{Name: name, Attrs: attrs}
}

func (n *LeafDirectiveNode) Kind() ast.NodeKind {
	return KindLeafDirective
}

func (n *LeafDirectiveNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name": n.Name,
	}, nil)
}

// TextDirectiveNode is the tokenizer output for an inline ":name[text]"
// directive. Start and Stop record the absolute source span consumed so the
// walker can splice verbatim runs around it.
type TextDirectiveNode struct {
	ast.BaseInline
	Name    string
	Payload string
	Attrs   map[string]string
	Start   int
	Stop    int
}

func NewTextDirectiveNode(name, payload string, attrs map[string]string) *TextDirectiveNode {
	return &TextDirectiveNode{Name: name, Payload: payload, Attrs: attrs}
}

func (n *TextDirectiveNode) Kind() ast.NodeKind {
	return KindTextDirective
}

func (n *TextDirectiveNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":    n.Name,
		"Payload": n.Payload,
	}, nil)
}

func trimLineEnding(raw string) string {
	raw = strings.TrimSuffix(raw, "\n")
	return strings.TrimSuffix(raw, "\r")
}
