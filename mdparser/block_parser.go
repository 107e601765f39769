package mdparser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/penbridge/directive-converter/directive"
)

// directiveBlockParser recognizes container (":::name") and leaf ("::name")
// directives. Container bodies are captured raw, with nesting tracked by
// depth so equal-length inner fences do not close the outer container.
type directiveBlockParser struct{}

func newDirectiveBlockParser() parser.BlockParser {
	return &directiveBlockParser{}
}

func (p *directiveBlockParser) Trigger() []byte {
	return []byte{':'}
}

func (p *directiveBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	trimmed := strings.TrimLeft(trimLineEnding(string(line)), " \t")

	fenceLength := countLeadingChar(trimmed, ':')
	if fenceLength < 2 {
		return nil, parser.NoChildren
	}

	name, attrs, ok := parseDirectiveMarker(trimmed[fenceLength:])
	if !ok {
		return nil, parser.NoChildren
	}

	// Record the consumed source span so enclosing blocks captured verbatim
	// still cover the directive's lines.
	_, firstSegment := reader.PeekLine()
	spanStart, spanStop := firstSegment.Start, firstSegment.Stop

	if fenceLength == 2 {
		reader.AdvanceLine()
		node := NewLeafDirectiveNode(name, attrs)
		node.Lines().Append(text.NewSegment(spanStart, spanStop))
		return node, parser.NoChildren
	}

	node := NewContainerDirectiveNode(name, fenceLength, attrs)
	reader.AdvanceLine()

	for {
		nextLine, nextSegment := reader.PeekLine()
		if len(nextLine) == 0 {
			// End of input before the closing fence. The container closes
			// here; the walker reports it.
			break
		}
		spanStop = nextSegment.Stop

		rawLine := trimLineEnding(string(nextLine))
		leftTrimmed := strings.TrimLeft(rawLine, " \t")
		if isOpeningFence(leftTrimmed) {
			node.openDepth++
			node.appendBodyLine(rawLine)
			reader.AdvanceLine()
			continue
		}
		if isClosingFence(leftTrimmed, node.FenceLength) {
			if node.openDepth == 1 {
				node.Closed = true
				reader.AdvanceLine()
				break
			}
			node.openDepth--
			node.appendBodyLine(rawLine)
			reader.AdvanceLine()
			continue
		}

		node.appendBodyLine(rawLine)
		reader.AdvanceLine()
	}

	node.Lines().Append(text.NewSegment(spanStart, spanStop))
	return node, parser.NoChildren
}

func (p *directiveBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (p *directiveBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *directiveBlockParser) CanInterruptParagraph() bool {
	return true
}

func (p *directiveBlockParser) CanAcceptIndentedLine() bool {
	return false
}

// parseDirectiveMarker parses "name", "name{attrs}" or "name {attrs}" with
// nothing else on the line.
func parseDirectiveMarker(rest string) (string, map[string]string, bool) {
	name, remainder, ok := scanDirectiveName(rest)
	if !ok {
		return "", nil, false
	}

	remainder = strings.TrimLeft(remainder, " \t")
	var attrs map[string]string
	if strings.HasPrefix(remainder, "{") {
		rawAttrs, endPos, ok := readAttrBlock([]byte(remainder), 0)
		if !ok {
			return "", nil, false
		}
		attrs = parseAttributes(rawAttrs)
		remainder = remainder[endPos:]
	}
	if strings.TrimSpace(remainder) != "" {
		return "", nil, false
	}

	return name, attrs, true
}

// scanDirectiveName reads a directive name from the start of s.
func scanDirectiveName(s string) (string, string, bool) {
	end := 0
	for end < len(s) && isNameChar(s[end], end == 0) {
		end++
	}
	name := s[:end]
	if !directive.ValidName(name) {
		return "", "", false
	}
	return name, s[end:], true
}

func isNameChar(ch byte, first bool) bool {
	if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
		return true
	}
	if first {
		return false
	}
	return (ch >= '0' && ch <= '9') || ch == '_' || ch == '-'
}

func isOpeningFence(line string) bool {
	fenceLength := countLeadingChar(line, ':')
	if fenceLength < 3 {
		return false
	}
	_, _, ok := parseDirectiveMarker(line[fenceLength:])
	return ok
}

func isClosingFence(line string, openingFenceLength int) bool {
	fenceLength := countLeadingChar(line, ':')
	if fenceLength < 3 {
		return false
	}
	if strings.TrimSpace(line[fenceLength:]) != "" {
		return false
	}
	return fenceLength == openingFenceLength
}

func countLeadingChar(value string, target byte) int {
	count := 0
	for count < len(value) && value[count] == target {
		count++
	}
	return count
}
