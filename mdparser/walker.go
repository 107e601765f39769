package mdparser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/penbridge/directive-converter/directive"
)

type state struct {
	config   Config
	source   []byte
	parse    func(source []byte) ast.Node
	warnings []directive.Warning
}

func (s *state) addWarning(warnType directive.WarningType, name, message string) {
	s.warnings = append(s.warnings, directive.Warning{
		Type:      warnType,
		Directive: name,
		Message:   message,
	})
}

func (s *state) document(root ast.Node) (directive.Node, error) {
	children, err := s.blocks(root)
	if err != nil {
		return directive.Node{}, err
	}
	return directive.Node{Kind: directive.KindDocument, Children: children}, nil
}

func (s *state) blocks(parent ast.Node) ([]directive.Node, error) {
	var content []directive.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		converted, err := s.block(child)
		if err != nil {
			return nil, err
		}
		content = append(content, converted...)
	}
	return content, nil
}

func (s *state) block(node ast.Node) ([]directive.Node, error) {
	switch typed := node.(type) {
	case *ContainerDirectiveNode:
		if !typed.Closed {
			s.addWarning(
				directive.WarningUnterminatedContainer,
				typed.Name,
				fmt.Sprintf("container directive %q closed at end of input", typed.Name),
			)
		}
		children, err := s.fragment(typed.Body())
		if err != nil {
			return nil, err
		}
		return []directive.Node{{
			Kind:     directive.KindContainer,
			Name:     typed.Name,
			Attrs:    typed.Attrs,
			Children: children,
		}}, nil

	case *LeafDirectiveNode:
		return []directive.Node{{
			Kind:  directive.KindLeaf,
			Name:  typed.Name,
			Attrs: typed.Attrs,
		}}, nil

	case *ast.Paragraph:
		return s.paragraph(typed)

	case *ast.Heading:
		return s.heading(typed)

	case *ast.ThematicBreak:
		return []directive.Node{{Kind: directive.KindMarkdown, Text: "---"}}, nil

	case *ast.HTMLBlock:
		return s.htmlBlock(typed)

	default:
		raw := s.blockSource(node)
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		return []directive.Node{{Kind: directive.KindMarkdown, Text: raw}}, nil
	}
}

// fragment parses a raw markdown fragment (a container directive body) into
// block nodes, sharing the warning sink with the outer document.
func (s *state) fragment(body string) ([]directive.Node, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	sub := &state{config: s.config, source: []byte(body), parse: s.parse}
	root := s.parse(sub.source)
	children, err := sub.blocks(root)
	s.warnings = append(s.warnings, sub.warnings...)
	if err != nil {
		return nil, err
	}
	return children, nil
}

// paragraph splits a paragraph into verbatim inline runs and text directives.
// Paragraphs without text directives stay a single verbatim segment.
func (s *state) paragraph(node *ast.Paragraph) ([]directive.Node, error) {
	var found []*TextDirectiveNode
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if td, ok := n.(*TextDirectiveNode); ok {
				found = append(found, td)
			}
		}
		return ast.WalkContinue, nil
	})

	if len(found) == 0 {
		raw := s.blockSource(node)
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		return []directive.Node{{Kind: directive.KindMarkdown, Text: raw}}, nil
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Start < found[j].Start })

	var inlines []directive.Node
	lines := node.Lines()
	next := 0
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		pos := seg.Start
		for next < len(found) && found[next].Start >= seg.Start && found[next].Stop <= seg.Stop {
			td := found[next]
			if td.Start > pos {
				inlines = appendInlineRun(inlines, string(s.source[pos:td.Start]))
			}
			inlines = append(inlines, directive.Node{
				Kind:  directive.KindText,
				Name:  td.Name,
				Attrs: td.Attrs,
				Text:  td.Payload,
			})
			pos = td.Stop
			next++
		}
		if pos < seg.Stop {
			inlines = appendInlineRun(inlines, string(s.source[pos:seg.Stop]))
		}
	}

	// Drop the trailing newline of the final run; block joining restores it.
	if len(inlines) > 0 {
		last := &inlines[len(inlines)-1]
		if last.Kind == directive.KindMarkdown {
			last.Text = strings.TrimRight(last.Text, "\r\n")
		}
	}

	return []directive.Node{{Kind: directive.KindParagraph, Children: inlines}}, nil
}

func appendInlineRun(inlines []directive.Node, run string) []directive.Node {
	if run == "" {
		return inlines
	}
	if len(inlines) > 0 && inlines[len(inlines)-1].Kind == directive.KindMarkdown {
		inlines[len(inlines)-1].Text += run
		return inlines
	}
	return append(inlines, directive.Node{Kind: directive.KindMarkdown, Text: run})
}

// heading captures a heading verbatim. Setext underlines are not part of the
// node's line segments, so they are restored from the heading level.
func (s *state) heading(node *ast.Heading) ([]directive.Node, error) {
	raw := s.blockSource(node)
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if !strings.HasPrefix(strings.TrimLeft(raw, " "), "#") {
		marker := "="
		if node.Level == 2 {
			marker = "-"
		}
		raw += "\n" + strings.Repeat(marker, 3)
	}
	return []directive.Node{{Kind: directive.KindMarkdown, Text: raw}}, nil
}

func (s *state) htmlBlock(node *ast.HTMLBlock) ([]directive.Node, error) {
	raw := s.htmlBlockSource(node)
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	if s.config.HTMLAlignDetection == HTMLAlignDetectDiv {
		if align, inner, ok := parseAlignedDiv(raw); ok {
			children, err := s.fragment(inner)
			if err != nil {
				return nil, err
			}
			return []directive.Node{{
				Kind:     directive.KindContainer,
				Name:     align,
				Children: children,
			}}, nil
		}
	}

	return []directive.Node{{Kind: directive.KindMarkdown, Text: raw}}, nil
}

// blockSource returns the verbatim source lines a block spans, including
// container prefixes such as blockquote markers.
func (s *state) blockSource(node ast.Node) string {
	start, stop := s.sourceSpan(node)
	if start < 0 || start >= stop {
		return ""
	}
	start, stop = expandToLines(s.source, start, stop)
	return strings.TrimRight(string(s.source[start:stop]), "\r\n")
}

func (s *state) htmlBlockSource(node *ast.HTMLBlock) string {
	start, stop := s.sourceSpan(node)
	if node.HasClosure() {
		closure := node.ClosureLine
		if start < 0 {
			start = closure.Start
		}
		if closure.Stop > stop {
			stop = closure.Stop
		}
	}
	if start < 0 || start >= stop {
		return ""
	}
	start, stop = expandToLines(s.source, start, stop)
	return strings.TrimRight(string(s.source[start:stop]), "\r\n")
}

// sourceSpan returns the minimal [start, stop) covering every line segment in
// the subtree, or (-1, -1) when the subtree carries no source lines. Inline
// nodes carry no line segments and are skipped.
func (s *state) sourceSpan(node ast.Node) (int, int) {
	if node.Type() == ast.TypeInline {
		return -1, -1
	}

	start, stop := -1, -1
	if lines := node.Lines(); lines != nil && lines.Len() > 0 {
		start = lines.At(0).Start
		stop = lines.At(lines.Len() - 1).Stop
	}
	if fenced, ok := node.(*ast.FencedCodeBlock); ok {
		start, stop = s.fenceSpan(fenced, start, stop)
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		childStart, childStop := s.sourceSpan(child)
		if childStart < 0 {
			continue
		}
		if start < 0 || childStart < start {
			start = childStart
		}
		if childStop > stop {
			stop = childStop
		}
	}
	return start, stop
}

// fenceSpan widens a fenced code block's content span to its fence lines,
// which goldmark excludes from the node's line segments.
func (s *state) fenceSpan(node *ast.FencedCodeBlock, start, stop int) (int, int) {
	if start >= 0 {
		// The opening fence sits on the line above the first content line.
		start = lineStart(s.source, start)
		if start > 0 {
			start = lineStart(s.source, start-1)
		}
	} else if node.Info != nil {
		seg := node.Info.Segment
		start, stop = seg.Start, seg.Stop
	} else {
		return start, stop
	}

	// The closing fence, when present, is the line after the content.
	stop = lineStop(s.source, stop)
	if stop < len(s.source) {
		stop = lineStop(s.source, stop+1)
	}
	return start, stop
}

func lineStart(source []byte, pos int) int {
	for pos > 0 && source[pos-1] != '\n' {
		pos--
	}
	return pos
}

func lineStop(source []byte, pos int) int {
	for pos < len(source) {
		if pos > 0 && source[pos-1] == '\n' {
			break
		}
		pos++
	}
	return pos
}

// expandToLines widens a span to full source lines so that container markers
// ("> ", list bullets) stripped from goldmark segments are recovered.
func expandToLines(source []byte, start, stop int) (int, int) {
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	for stop < len(source) && source[stop-1] != '\n' {
		stop++
	}
	return start, stop
}
