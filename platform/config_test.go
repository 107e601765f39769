package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Platform:        "blog",
		SupportsHTML:    true,
		Strategies:      map[string]Strategy{"center": StrategyKeep},
		DefaultStrategy: StrategyRemove,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty platform", func(c *Config) { c.Platform = "" }},
		{"invalid default strategy", func(c *Config) { c.DefaultStrategy = "drop" }},
		{"empty default strategy", func(c *Config) { c.DefaultStrategy = "" }},
		{"invalid strategy", func(c *Config) { c.Strategies = map[string]Strategy{"center": "yeet"} }},
		{"invalid directive name", func(c *Config) { c.Strategies = map[string]Strategy{"1bad": StrategyKeep} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid.clone()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{Platform: "blog"}.applyDefaults()
	assert.Equal(t, StrategyRemove, cfg.DefaultStrategy)

	cfg = Config{Platform: "blog", DefaultStrategy: StrategyKeep}.applyDefaults()
	assert.Equal(t, StrategyKeep, cfg.DefaultStrategy)
}

func TestStrategyFor(t *testing.T) {
	cfg := Config{
		Platform:        "blog",
		Strategies:      map[string]Strategy{"center": StrategyToHTML},
		DefaultStrategy: StrategyToText,
	}

	assert.Equal(t, StrategyToHTML, cfg.StrategyFor("center"))
	assert.Equal(t, StrategyToText, cfg.StrategyFor("spoiler"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.SupportsHTML)
	assert.Equal(t, StrategyRemove, cfg.DefaultStrategy)
	assert.Equal(t, StrategyRemove, cfg.StrategyFor("anything"))
}
