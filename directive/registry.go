package directive

import (
	"fmt"
	"sort"
)

// Handler projects a directive into HTML or plain text. Implementations must
// be pure: deterministic and free of input mutation.
type Handler interface {
	// ToHTML renders the directive as HTML. content is the already
	// transformed child content.
	ToHTML(content string, attrs map[string]string) string
	// ToText reduces the directive to readable plain text.
	ToText(content string, attrs map[string]string) string
}

// Registry maps directive names to their handlers. It is populated at
// initialization and read-only afterwards; directives without an entry take
// the opaque fallback path.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler for name. Registering a name twice is a
// configuration bug and returns an error rather than silently replacing the
// previous handler.
func (r *Registry) Register(name string, handler Handler) error {
	if !ValidName(name) {
		return fmt.Errorf("invalid directive name %q", name)
	}
	if handler == nil {
		return fmt.Errorf("nil handler for directive %q", name)
	}
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("directive %q already registered", name)
	}
	r.handlers[name] = handler
	return nil
}

// Lookup returns the handler for name, if one is registered.
func (r *Registry) Lookup(name string) (Handler, bool) {
	handler, ok := r.handlers[name]
	return handler, ok
}

// Names returns all registered directive names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
