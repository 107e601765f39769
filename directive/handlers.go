package directive

import "fmt"

// Alignment directive names understood natively.
const (
	AlignLeft    = "left"
	AlignRight   = "right"
	AlignCenter  = "center"
	AlignJustify = "justify"
)

// Alignments returns the four alignment directive names in canonical order.
func Alignments() []string {
	return []string{AlignLeft, AlignRight, AlignCenter, AlignJustify}
}

// IsAlignment reports whether name is one of the alignment directives.
func IsAlignment(name string) bool {
	switch name {
	case AlignLeft, AlignRight, AlignCenter, AlignJustify:
		return true
	default:
		return false
	}
}

// alignmentHandler renders alignment containers as styled divs.
type alignmentHandler struct {
	align string
}

func (h alignmentHandler) ToHTML(content string, _ map[string]string) string {
	return fmt.Sprintf("<div style=\"text-align: %s\">%s</div>", h.align, content)
}

func (h alignmentHandler) ToText(content string, _ map[string]string) string {
	// Alignment carries no textual semantic; the inner content stands alone.
	return content
}

// Builtin returns a registry with the native alignment handlers registered.
func Builtin() *Registry {
	registry := NewRegistry()
	for _, align := range Alignments() {
		if err := registry.Register(align, alignmentHandler{align: align}); err != nil {
			// Only reachable through a programming error in this package.
			panic(err)
		}
	}
	return registry
}
