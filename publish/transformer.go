// Package publish walks directive documents at publish time and rewrites
// each directive according to the strategy resolved for the target platform.
package publish

import (
	"fmt"
	"strings"

	"github.com/penbridge/directive-converter/directive"
	"github.com/penbridge/directive-converter/platform"
)

// HTMLFallback controls what happens when a directive resolves to the toHtml
// strategy on a platform that does not accept raw HTML.
type HTMLFallback string

const (
	// HTMLFallbackText downgrades the directive to its text projection.
	HTMLFallbackText HTMLFallback = "text"
	// HTMLFallbackForce emits the HTML anyway.
	HTMLFallbackForce HTMLFallback = "force"
)

// Config holds transformer configuration.
type Config struct {
	// Platform is the target platform identifier. Unrecognized identifiers
	// resolve to the universal default config (everything removed).
	Platform string
	// Registry supplies known-directive projections. Defaults to the
	// built-in alignment registry.
	Registry *directive.Registry
	// Resolver supplies platform configs. Defaults to the built-in table.
	Resolver *platform.Resolver
	// HTMLFallback defaults to HTMLFallbackText.
	HTMLFallback HTMLFallback
}

func (c Config) applyDefaults() Config {
	if c.Registry == nil {
		c.Registry = directive.Builtin()
	}
	if c.Resolver == nil {
		c.Resolver = platform.BuiltinResolver()
	}
	if c.HTMLFallback == "" {
		c.HTMLFallback = HTMLFallbackText
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.Platform == "" {
		return fmt.Errorf("target platform must not be empty")
	}
	if c.HTMLFallback != HTMLFallbackText && c.HTMLFallback != HTMLFallbackForce {
		return fmt.Errorf("invalid htmlFallback %q", c.HTMLFallback)
	}
	return nil
}

// Transformer produces platform-specific output from directive documents.
type Transformer struct {
	config   Config
	platform platform.Config
}

// New creates a new Transformer with the given config.
func New(config Config) (*Transformer, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Transformer{
		config:   cfg,
		platform: cfg.Resolver.Config(cfg.Platform),
	}, nil
}

// Result holds the output of a publish transform.
type Result struct {
	Markdown string              `json:"markdown"`
	Warnings []directive.Warning `json:"warnings,omitempty"`
}

// Transform rewrites a document for the target platform. Transform never
// fails for structurally valid documents; lost directive structure is
// reported through warnings and user prose is always preserved.
func (t *Transformer) Transform(doc directive.Node) (Result, error) {
	s := &transformState{transformer: t}
	out := s.node(doc)
	if strings.TrimSpace(out) != "" {
		out = strings.TrimRight(out, "\n") + "\n"
	} else {
		out = ""
	}
	return Result{Markdown: out, Warnings: s.warnings}, nil
}

type transformState struct {
	transformer *Transformer
	warnings    []directive.Warning
}

func (s *transformState) addWarning(warnType directive.WarningType, name, message string) {
	s.warnings = append(s.warnings, directive.Warning{
		Type:      warnType,
		Directive: name,
		Message:   message,
	})
}

// node transforms depth-first: children are resolved for the target platform
// before the node's own strategy applies to their output.
func (s *transformState) node(node directive.Node) string {
	switch node.Kind {
	case directive.KindDocument:
		return joinBlocks(s.children(node))

	case directive.KindMarkdown:
		return node.Text

	case directive.KindParagraph:
		return strings.Join(s.children(node), "")

	case directive.KindContainer:
		return s.directive(node, joinBlocks(s.children(node)), false)

	case directive.KindLeaf:
		return s.directive(node, "", false)

	case directive.KindText:
		return s.directive(node, node.Text, true)

	default:
		// Unresolvable shapes degrade to remove: content survives.
		s.addWarning(
			directive.WarningDroppedDirective,
			node.Name,
			fmt.Sprintf("node of unknown kind %q reduced to content", node.Kind),
		)
		return joinBlocks(s.children(node))
	}
}

func (s *transformState) children(node directive.Node) []string {
	out := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		out = append(out, s.node(child))
	}
	return out
}

func (s *transformState) directive(node directive.Node, content string, inline bool) string {
	switch s.transformer.platform.StrategyFor(node.Name) {
	case platform.StrategyKeep:
		return s.keep(node, content)
	case platform.StrategyToHTML:
		return s.toHTML(node, content, inline)
	case platform.StrategyToText:
		return s.toText(node, content)
	case platform.StrategyRemove:
		s.addWarning(
			directive.WarningDroppedDirective,
			node.Name,
			fmt.Sprintf("directive %q removed for platform %q", node.Name, s.transformer.config.Platform),
		)
		return content
	default:
		s.addWarning(
			directive.WarningDroppedDirective,
			node.Name,
			fmt.Sprintf("unresolvable strategy for directive %q reduced to content", node.Name),
		)
		return content
	}
}

func (s *transformState) keep(node directive.Node, content string) string {
	switch node.Kind {
	case directive.KindContainer:
		return containerSyntax(node.Name, node.Attrs, content)
	case directive.KindLeaf:
		return leafSyntax(node.Name, node.Attrs)
	default:
		return textSyntax(node.Name, node.Text, node.Attrs)
	}
}

func (s *transformState) toHTML(node directive.Node, content string, inline bool) string {
	if !s.transformer.platform.SupportsHTML {
		if s.transformer.config.HTMLFallback == HTMLFallbackText {
			s.addWarning(
				directive.WarningHTMLDowngrade,
				node.Name,
				fmt.Sprintf("platform %q does not accept raw HTML; directive %q reduced to text", s.transformer.config.Platform, node.Name),
			)
			return s.toText(node, content)
		}
		s.addWarning(
			directive.WarningUnsupportedHTML,
			node.Name,
			fmt.Sprintf("emitting raw HTML for directive %q; platform %q may strip it", node.Name, s.transformer.config.Platform),
		)
	}

	if handler, ok := s.transformer.config.Registry.Lookup(node.Name); ok {
		return handler.ToHTML(content, node.Attrs)
	}

	s.addWarning(
		directive.WarningFallbackDirective,
		node.Name,
		fmt.Sprintf("no handler for directive %q; content wrapped in a plain container", node.Name),
	)
	if inline {
		return "<span>" + content + "</span>"
	}
	return "<div>" + content + "</div>"
}

func (s *transformState) toText(node directive.Node, content string) string {
	if handler, ok := s.transformer.config.Registry.Lookup(node.Name); ok {
		return handler.ToText(content, node.Attrs)
	}
	return content
}
