package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores renderers by format name.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Named
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Named),
	}
}

// DefaultRegistry returns a registry holding the built-in renderers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(NewHTMLRenderer())
	r.MustRegister(NewJSONRenderer())
	r.MustRegister(NewMarkdownRenderer())
	return r
}

// Register adds a renderer under its Name. Duplicate names return ErrDuplicateFormat.
func (r *Registry) Register(renderer Named) error {
	if IsNil(renderer) {
		return ErrNilRenderer
	}
	name := renderer.Name()
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFormat, name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Named) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer registered for name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return renderer, nil
}

// List returns the registered format names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a renderer is registered for name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}
