package publish

import (
	"sort"
	"strings"

	"github.com/penbridge/directive-converter/directive"
	"github.com/penbridge/directive-converter/platform"
)

// Serialize renders a directive document back to markdown with every
// directive kept verbatim. parse -> Serialize -> parse is stable for any
// document, known or fallback directives alike.
func Serialize(doc directive.Node) string {
	transformer, err := New(Config{Platform: platform.Source})
	if err != nil {
		// The source platform config is static; reaching this is a
		// programming error.
		panic(err)
	}
	result, _ := transformer.Transform(doc)
	return result.Markdown
}

func containerSyntax(name string, attrs map[string]string, body string) string {
	var sb strings.Builder
	sb.WriteString(":::")
	sb.WriteString(name)
	sb.WriteString(formatAttrs(attrs))
	sb.WriteString("\n")
	if body != "" {
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	sb.WriteString(":::")
	return sb.String()
}

func leafSyntax(name string, attrs map[string]string) string {
	return "::" + name + formatAttrs(attrs)
}

func textSyntax(name, payload string, attrs map[string]string) string {
	return ":" + name + "[" + payload + "]" + formatAttrs(attrs)
}

// formatAttrs renders an attribute map as {k="v" ...} with sorted keys, or
// an empty string for no attributes.
func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(key)
		sb.WriteString("=\"")
		sb.WriteString(escapeAttrValue(attrs[key]))
		sb.WriteString("\"")
	}
	sb.WriteString("}")
	return sb.String()
}

func escapeAttrValue(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	return strings.ReplaceAll(value, "\"", "\\\"")
}

// joinBlocks joins block-level outputs with blank lines, skipping empties.
func joinBlocks(parts []string) string {
	nonEmpty := parts[:0:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}
