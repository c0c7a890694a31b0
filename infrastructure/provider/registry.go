package provider

import (
	"fmt"

	"github.com/rios0rios0/gitws/domain"
)

// Registry holds the closed set of Git hosting providers. Providers are
// registered once at startup; lookups by name or host never fall back
// to a default.
type Registry struct {
	providers map[string]domain.Provider
	order     []string
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]domain.Provider),
	}
}

// Register adds a provider under its own name. Registering the same
// name twice replaces the earlier entry.
func (r *Registry) Register(p domain.Provider) {
	if _, ok := r.providers[p.Name()]; !ok {
		r.order = append(r.order, p.Name())
	}
	r.providers[p.Name()] = p
}

// Get returns the provider registered under the given name.
func (r *Registry) Get(name string) (domain.Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %q", name)
	}
	return p, nil
}

// ForHost resolves a remote URL host to the provider that claims it.
// Returns false when no registered provider matches.
func (r *Registry) ForHost(host string) (domain.Provider, bool) {
	for _, name := range r.order {
		if p := r.providers[name]; p.MatchesHost(host) {
			return p, true
		}
	}
	return nil, false
}

// Names returns the registered provider names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
