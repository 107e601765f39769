package platform

import (
	"fmt"
	"sort"
)

// Resolver answers (platform, directive name) -> strategy lookups against a
// fixed set of platform configs. It is read-only after construction.
type Resolver struct {
	configs map[string]Config
}

// NewResolver builds a resolver from the given configs. Invalid configs and
// duplicate platform identifiers are configuration errors.
func NewResolver(configs ...Config) (*Resolver, error) {
	resolver := &Resolver{configs: make(map[string]Config, len(configs))}
	for _, config := range configs {
		cfg := config.applyDefaults().clone()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if _, exists := resolver.configs[cfg.Platform]; exists {
			return nil, fmt.Errorf("platform %q configured twice", cfg.Platform)
		}
		resolver.configs[cfg.Platform] = cfg
	}
	return resolver, nil
}

// Config returns the config registered for platformID, or the universal
// default for unrecognized platforms. It never fails.
func (r *Resolver) Config(platformID string) Config {
	if config, ok := r.configs[platformID]; ok {
		return config.clone()
	}
	return Default()
}

// Strategy resolves the transform strategy for a directive name on a
// platform. It never returns an invalid strategy.
func (r *Resolver) Strategy(platformID, directiveName string) Strategy {
	return r.Config(platformID).StrategyFor(directiveName)
}

// Known reports whether platformID has an explicit config.
func (r *Resolver) Known(platformID string) bool {
	_, ok := r.configs[platformID]
	return ok
}

// Platforms returns the registered platform identifiers, sorted.
func (r *Resolver) Platforms() []string {
	ids := make([]string, 0, len(r.configs))
	for id := range r.configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
