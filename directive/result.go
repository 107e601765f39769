package directive

// WarningType categorizes non-fatal conversion issues.
type WarningType string

const (
	WarningUnterminatedContainer WarningType = "unterminated_container"
	WarningDroppedDirective      WarningType = "dropped_directive"
	WarningHTMLDowngrade         WarningType = "html_downgrade"
	WarningFallbackDirective     WarningType = "fallback_directive"
	WarningUnsupportedHTML       WarningType = "unsupported_html"
)

// Warning represents a non-fatal issue encountered while parsing or
// transforming a document. Content is always preserved; warnings only
// report lost directive structure.
type Warning struct {
	Type      WarningType `json:"type"`
	Directive string      `json:"directive,omitempty"`
	Message   string      `json:"message"`
}
