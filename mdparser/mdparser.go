// Package mdparser converts markdown with directive syntax into directive
// document trees. Directive recognition is a goldmark extension; everything
// that is not a directive passes through as verbatim source segments.
package mdparser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/penbridge/directive-converter/directive"
)

// Directives is a goldmark extender that adds the three directive shapes:
// container (":::name"), leaf ("::name") and text (":name[text]").
var Directives goldmark.Extender = &directiveExtension{}

type directiveExtension struct{}

func (e *directiveExtension) Extend(md goldmark.Markdown) {
	md.Parser().AddOptions(
		gparser.WithBlockParsers(
			util.Prioritized(newDirectiveBlockParser(), 500),
		),
		gparser.WithInlineParsers(
			util.Prioritized(newTextDirectiveParser(), 500),
		),
	)
}

// Parser converts markdown to directive documents.
type Parser struct {
	config Config
	md     goldmark.Markdown
}

// New creates a new Parser with the given config.
func New(config Config) (*Parser, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Parser{
		config: cfg,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, Directives),
		),
	}, nil
}

// Result holds a parsed document and any parse warnings.
type Result struct {
	Doc      directive.Node
	Warnings []directive.Warning
}

// Parse converts a markdown document into a directive document tree.
// Malformed directive syntax degrades to literal text; Parse never fails for
// any input string.
func (p *Parser) Parse(markdown string) (Result, error) {
	s := &state{config: p.config, source: []byte(markdown)}
	s.parse = func(source []byte) ast.Node {
		return p.md.Parser().Parse(text.NewReader(source))
	}

	doc, err := s.document(s.parse(s.source))
	if err != nil {
		return Result{}, err
	}

	return Result{Doc: doc, Warnings: s.warnings}, nil
}
