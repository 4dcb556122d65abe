// Package registry provides a global registry of tuning variants.
// Variants register themselves in init() functions, allowing the host
// to list and apply them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/superdudu/internal/config"
)

// ErrUnknownVariant is returned when a variant ID is not registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Tuning adjusts a configuration in place.
type Tuning func(cfg *config.Platformer)

// Variant is a named set of constant overrides.
type Variant struct {
	ID    string
	Title string
	Tune  Tuning
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant without ID")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(variants))
	for id, v := range variants {
		result = append(result, VariantInfo{ID: id, Title: v.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns a variant by its ID.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Apply returns cfg with the variant's overrides applied and validated.
// An empty ID returns cfg unchanged.
func Apply(id string, cfg config.Platformer) (config.Platformer, error) {
	if id == "" {
		return cfg, nil
	}
	v, err := Lookup(id)
	if err != nil {
		return cfg, err
	}

	out := cfg
	out.Rules.EndBands = append([]config.EndBand(nil), cfg.Rules.EndBands...)
	if v.Tune != nil {
		v.Tune(&out)
	}
	if err := out.Validate(); err != nil {
		return cfg, fmt.Errorf("registry: variant %q: %w", id, err)
	}
	return out, nil
}
