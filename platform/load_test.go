package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfigYAML = `- platform: devto
  name: DEV Community
  supportsHtml: true
  strategies:
    center: keep
    spoiler: toText
  defaultStrategy: toHtml
- platform: plain
  defaultStrategy: remove
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "platforms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	configs, err := LoadFile(writeConfigFile(t, sampleConfigYAML))
	require.NoError(t, err)
	require.Len(t, configs, 2)

	assert.Equal(t, Config{
		Platform:     "devto",
		Name:         "DEV Community",
		SupportsHTML: true,
		Strategies: map[string]Strategy{
			"center":  StrategyKeep,
			"spoiler": StrategyToText,
		},
		DefaultStrategy: StrategyToHTML,
	}, configs[0])

	// Omitted defaultStrategy falls back to remove.
	assert.Equal(t, StrategyRemove, configs[1].DefaultStrategy)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileRejectsInvalidStrategy(t *testing.T) {
	_, err := LoadFile(writeConfigFile(t, "- platform: devto\n  defaultStrategy: yeet\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaultStrategy")
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	_, err := LoadFile(writeConfigFile(t, "platform: [unbalanced"))
	assert.Error(t, err)
}

func TestNewResolverWithOverrides(t *testing.T) {
	overrides := []Config{
		{Platform: Juejin, SupportsHTML: true, DefaultStrategy: StrategyKeep},
		{Platform: "devto", DefaultStrategy: StrategyToText},
	}

	resolver, err := NewResolverWithOverrides(Builtin(), overrides)
	require.NoError(t, err)

	// Override replaces the built-in entry wholesale.
	assert.True(t, resolver.Config(Juejin).SupportsHTML)
	assert.Equal(t, StrategyKeep, resolver.Strategy(Juejin, "center"))

	// New platforms are added alongside the built-ins.
	assert.True(t, resolver.Known("devto"))
	assert.Equal(t, StrategyToText, resolver.Strategy("devto", "center"))
	assert.Equal(t, StrategyKeep, resolver.Strategy(Source, "center"))
}

func TestNewResolverWithOverridesRejectsDuplicateOverrides(t *testing.T) {
	_, err := NewResolverWithOverrides(Builtin(), []Config{
		{Platform: "devto", DefaultStrategy: StrategyKeep},
		{Platform: "devto", DefaultStrategy: StrategyRemove},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configured twice")
}
