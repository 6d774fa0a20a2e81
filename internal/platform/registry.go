// Package platform holds the marketplace registry: the static mapping from
// platform identifier to display name and fee rate that the margin
// calculator and analyzer consult. The registry is immutable after
// construction and is passed explicitly into the components that need it
// rather than living as ambient state.
package platform

import (
	"sort"
	"strings"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

// Registry maps platform identifiers to their fee configuration. Build one
// with NewRegistry; it must not be mutated afterwards.
type Registry struct {
	platforms map[string]domain.Platform
}

// NewRegistry creates a registry from the given platforms. The last entry
// wins when an identifier appears twice.
func NewRegistry(platforms []domain.Platform) *Registry {
	m := make(map[string]domain.Platform, len(platforms))
	for _, p := range platforms {
		m[p.ID] = p
	}
	return &Registry{platforms: m}
}

// Lookup returns the platform for the given identifier. The second return
// value reports whether the identifier is registered.
func (r *Registry) Lookup(id string) (domain.Platform, bool) {
	p, ok := r.platforms[id]
	return p, ok
}

// FeeRate returns the fee rate for the given platform, or 0 when the
// platform is unknown.
func (r *Registry) FeeRate(id string) float64 {
	return r.platforms[id].FeeRate
}

// IDs returns all registered platform identifiers, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.platforms))
	for id := range r.platforms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Filter returns the requested identifiers that are registered, preserving
// request order and trimming whitespace. Unknown identifiers are silently
// dropped; it is the caller's job to treat an empty result as a
// configuration error.
func (r *Registry) Filter(requested []string) []string {
	out := make([]string, 0, len(requested))
	for _, id := range requested {
		id = strings.TrimSpace(id)
		if _, ok := r.platforms[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
