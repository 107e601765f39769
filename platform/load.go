package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads platform configs from a YAML file containing a list of
// config entries. Each entry is validated; a bad file halts startup rather
// than degrading document output later.
func LoadFile(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read platform config: %w", err)
	}
	return parseConfigs(data)
}

func parseConfigs(data []byte) ([]Config, error) {
	var configs []Config
	if err := yaml.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("failed to parse platform config: %w", err)
	}

	for i, config := range configs {
		cfg := config.applyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("platform config entry %d: %w", i, err)
		}
		configs[i] = cfg
	}
	return configs, nil
}

// NewResolverWithOverrides builds a resolver from base configs with override
// entries replacing same-id base entries. Duplicates inside either list are
// still configuration errors.
func NewResolverWithOverrides(base, overrides []Config) (*Resolver, error) {
	overridden := make(map[string]bool, len(overrides))
	for _, config := range overrides {
		if overridden[config.Platform] {
			return nil, fmt.Errorf("platform %q configured twice", config.Platform)
		}
		overridden[config.Platform] = true
	}

	merged := make([]Config, 0, len(base)+len(overrides))
	for _, config := range base {
		if !overridden[config.Platform] {
			merged = append(merged, config)
		}
	}
	merged = append(merged, overrides...)
	return NewResolver(merged...)
}
