package mdparser

import (
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/penbridge/directive-converter/directive"
)

// parseAlignedDiv recognizes a single aligned div block,
// <div style="text-align: X">...</div> or <div align="X">...</div>, and
// returns the alignment name and the inner markup.
func parseAlignedDiv(raw string) (string, string, bool) {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))

	// Skip leading whitespace text.
	tokenType := tokenizer.Next()
	for tokenType == xhtml.TextToken && strings.TrimSpace(string(tokenizer.Raw())) == "" {
		tokenType = tokenizer.Next()
	}
	if tokenType != xhtml.StartTagToken {
		return "", "", false
	}

	name, hasAttr := tokenizer.TagName()
	if string(name) != "div" || !hasAttr {
		return "", "", false
	}
	align := alignFromAttrs(tokenizer)
	if align == "" {
		return "", "", false
	}

	depth := 1
	var inner []byte
	for {
		tokenType := tokenizer.Next()
		rawToken := append([]byte(nil), tokenizer.Raw()...)

		switch tokenType {
		case xhtml.ErrorToken:
			return "", "", false

		case xhtml.StartTagToken:
			if tagName, _ := tokenizer.TagName(); string(tagName) == "div" {
				depth++
			}
			inner = append(inner, rawToken...)

		case xhtml.EndTagToken:
			if tagName, _ := tokenizer.TagName(); string(tagName) == "div" {
				depth--
				if depth == 0 {
					if !onlyTrailingWhitespace(tokenizer) {
						return "", "", false
					}
					return align, strings.TrimSpace(string(inner)), true
				}
			}
			inner = append(inner, rawToken...)

		default:
			inner = append(inner, rawToken...)
		}
	}
}

func alignFromAttrs(tokenizer *xhtml.Tokenizer) string {
	for {
		key, value, more := tokenizer.TagAttr()
		switch string(key) {
		case "style":
			if align := extractTextAlign(string(value)); align != "" {
				return align
			}
		case "align":
			align := strings.ToLower(strings.TrimSpace(string(value)))
			if directive.IsAlignment(align) {
				return align
			}
		}
		if !more {
			return ""
		}
	}
}

func onlyTrailingWhitespace(tokenizer *xhtml.Tokenizer) bool {
	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			return true
		case xhtml.TextToken:
			if strings.TrimSpace(string(tokenizer.Raw())) != "" {
				return false
			}
		default:
			return false
		}
	}
}

func extractTextAlign(style string) string {
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(strings.ToLower(part), "text-align:") {
			continue
		}
		value := strings.ToLower(strings.TrimSpace(part[len("text-align:"):]))
		if directive.IsAlignment(value) {
			return value
		}
	}
	return ""
}
