// Package platform holds per-platform directive syntax capabilities and the
// strategy lookup used at publish time.
package platform

import (
	"fmt"

	"github.com/penbridge/directive-converter/directive"
)

// Strategy is the platform-specific rule for rendering a directive.
type Strategy string

const (
	// StrategyKeep emits the directive syntax unchanged.
	StrategyKeep Strategy = "keep"
	// StrategyToHTML projects the directive to HTML.
	StrategyToHTML Strategy = "toHtml"
	// StrategyToText reduces the directive to its plain text content.
	StrategyToText Strategy = "toText"
	// StrategyRemove drops the directive wrapper, keeping its content.
	StrategyRemove Strategy = "remove"
)

func validStrategy(s Strategy) bool {
	switch s {
	case StrategyKeep, StrategyToHTML, StrategyToText, StrategyRemove:
		return true
	default:
		return false
	}
}

// Config describes how one target platform handles directive syntax.
type Config struct {
	Platform        string              `yaml:"platform" json:"platform"`
	Name            string              `yaml:"name,omitempty" json:"name,omitempty"`
	SupportsHTML    bool                `yaml:"supportsHtml" json:"supportsHtml"`
	Strategies      map[string]Strategy `yaml:"strategies,omitempty" json:"strategies,omitempty"`
	DefaultStrategy Strategy            `yaml:"defaultStrategy" json:"defaultStrategy"`
}

func (c Config) applyDefaults() Config {
	if c.DefaultStrategy == "" {
		c.DefaultStrategy = StrategyRemove
	}
	return c
}

// Validate checks that the config is usable. Invalid platform tables are
// static configuration bugs and must fail before any document is processed.
func (c Config) Validate() error {
	if c.Platform == "" {
		return fmt.Errorf("platform identifier must not be empty")
	}
	if !validStrategy(c.DefaultStrategy) {
		return fmt.Errorf("invalid defaultStrategy %q for platform %q", c.DefaultStrategy, c.Platform)
	}
	for name, strategy := range c.Strategies {
		if !directive.ValidName(name) {
			return fmt.Errorf("invalid directive name %q in strategies for platform %q", name, c.Platform)
		}
		if !validStrategy(strategy) {
			return fmt.Errorf("invalid strategy %q for directive %q on platform %q", strategy, name, c.Platform)
		}
	}
	return nil
}

// clone returns a deep copy of the config.
func (c Config) clone() Config {
	cloned := c
	if c.Strategies != nil {
		cloned.Strategies = make(map[string]Strategy, len(c.Strategies))
		for name, strategy := range c.Strategies {
			cloned.Strategies[name] = strategy
		}
	}
	return cloned
}

// StrategyFor resolves the strategy for a directive name, falling back to the
// platform default. The result is always a valid strategy.
func (c Config) StrategyFor(name string) Strategy {
	if c.Strategies != nil {
		if strategy, ok := c.Strategies[name]; ok {
			return strategy
		}
	}
	return c.DefaultStrategy
}

// Default returns the universal catch-all config applied to unknown
// platforms: no HTML passthrough, every directive removed.
func Default() Config {
	return Config{
		Platform:        "default",
		Name:            "Unknown platform",
		SupportsHTML:    false,
		DefaultStrategy: StrategyRemove,
	}
}
