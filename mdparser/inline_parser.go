package mdparser

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// textDirectiveParser recognizes inline ":name[text]{attrs}" directives.
type textDirectiveParser struct{}

func newTextDirectiveParser() parser.InlineParser {
	return &textDirectiveParser{}
}

func (p *textDirectiveParser) Trigger() []byte {
	return []byte{':'}
}

func (p *textDirectiveParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, segment := block.PeekLine()
	if len(line) < 4 || line[0] != ':' || line[1] == ':' {
		return nil
	}
	// A preceding colon means this is the tail of a "::" run, not a directive.
	if segment.Start > 0 {
		source := block.Source()
		if segment.Start <= len(source) && source[segment.Start-1] == ':' {
			return nil
		}
	}

	name, _, ok := scanDirectiveName(string(line[1:]))
	if !ok {
		return nil
	}

	bracketPos := 1 + len(name)
	if bracketPos >= len(line) || line[bracketPos] != '[' {
		return nil
	}

	closing := findBalancedClosingBracket(line[bracketPos:])
	if closing < 0 {
		return nil
	}
	closing += bracketPos
	payload := string(line[bracketPos+1 : closing])

	end := closing + 1
	var attrs map[string]string
	if end < len(line) && line[end] == '{' {
		rawAttrs, attrEnd, ok := readAttrBlock(line, end)
		if ok {
			attrs = parseAttributes(rawAttrs)
			end = attrEnd
		}
	}

	node := NewTextDirectiveNode(name, payload, attrs)
	node.Start = segment.Start
	node.Stop = segment.Start + end
	block.Advance(end)
	return node
}

// findBalancedClosingBracket returns the index of the "]" matching the "[" at
// line[0], honoring backslash escapes. Returns -1 when unbalanced.
func findBalancedClosingBracket(line []byte) int {
	depth := 0
	for idx := 0; idx < len(line); idx++ {
		ch := line[idx]
		if ch == '\n' || ch == '\r' {
			break
		}
		if ch == '\\' {
			if idx+1 < len(line) {
				idx++
			}
			continue
		}
		switch ch {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return idx
			}
			if depth < 0 {
				return -1
			}
		}
	}
	return -1
}
