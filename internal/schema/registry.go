package schema

import (
	"fmt"
	"sort"
	"sync"
)

// SetRegistry manages a collection of variant set definitions
type SetRegistry struct {
	// mutex protects concurrent access
	mutex sync.RWMutex

	// sets maps set names to their definitions
	sets map[string]*Set
}

// RegistrationOptions configures set registration behavior
type RegistrationOptions struct {
	// ValidateSchema enables schema validation during registration
	ValidateSchema bool

	// AllowOverwrite permits overwriting existing set definitions
	AllowOverwrite bool
}

// DefaultRegistrationOptions returns the default registration options
func DefaultRegistrationOptions() RegistrationOptions {
	return RegistrationOptions{
		ValidateSchema: true,
		AllowOverwrite: false,
	}
}

// NewSetRegistry creates a new set registry
func NewSetRegistry() *SetRegistry {
	return &SetRegistry{
		sets: make(map[string]*Set),
	}
}

// IsEmpty returns true if the registry contains no sets
func (sr *SetRegistry) IsEmpty() bool {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()
	return len(sr.sets) == 0
}

// Count returns the number of sets in the registry
func (sr *SetRegistry) Count() int {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()
	return len(sr.sets)
}

// HasSet returns true if a set with the given name exists
func (sr *SetRegistry) HasSet(name string) bool {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()
	_, exists := sr.sets[name]
	return exists
}

// Register registers a set definition in the registry
func (sr *SetRegistry) Register(set *Set, opts ...RegistrationOptions) error {
	if set == nil {
		return fmt.Errorf("set cannot be nil")
	}

	options := DefaultRegistrationOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	sr.mutex.Lock()
	defer sr.mutex.Unlock()

	// Validate schema if requested
	if options.ValidateSchema {
		if err := set.Validate(); err != nil {
			return fmt.Errorf("set validation failed: %w", err)
		}
	}

	// Check for existing set
	if _, exists := sr.sets[set.Name]; exists && !options.AllowOverwrite {
		return fmt.Errorf("set '%s' already registered", set.Name)
	}

	sr.sets[set.Name] = set

	return nil
}

// RegisterAll registers multiple sets at once
func (sr *SetRegistry) RegisterAll(sets []*Set, opts ...RegistrationOptions) error {
	for _, set := range sets {
		if err := sr.Register(set, opts...); err != nil {
			return err
		}
	}
	return nil
}

// GetSet returns a set by name
func (sr *SetRegistry) GetSet(name string) (*Set, bool) {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()

	set, exists := sr.sets[name]
	return set, exists
}

// MustGetSet returns a set by name or panics if not found
func (sr *SetRegistry) MustGetSet(name string) *Set {
	set, exists := sr.GetSet(name)
	if !exists {
		panic(fmt.Sprintf("set '%s' not found", name))
	}
	return set
}

// GetAllSets returns all sets in the registry
func (sr *SetRegistry) GetAllSets() []*Set {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()

	sets := make([]*Set, 0, len(sr.sets))
	for _, set := range sr.sets {
		sets = append(sets, set)
	}
	return sets
}

// GetSetNames returns all set names, sorted alphabetically
func (sr *SetRegistry) GetSetNames() []string {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()

	names := make([]string, 0, len(sr.sets))
	for name := range sr.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove removes a set by name
func (sr *SetRegistry) Remove(name string) bool {
	sr.mutex.Lock()
	defer sr.mutex.Unlock()

	if _, exists := sr.sets[name]; !exists {
		return false
	}

	delete(sr.sets, name)
	return true
}

// Clear removes all sets from the registry
func (sr *SetRegistry) Clear() {
	sr.mutex.Lock()
	defer sr.mutex.Unlock()

	sr.sets = make(map[string]*Set)
}

// ValidateAll validates all sets in the registry
func (sr *SetRegistry) ValidateAll() error {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()

	for name, set := range sr.sets {
		if err := set.Validate(); err != nil {
			return fmt.Errorf("set '%s' validation failed: %w", name, err)
		}
	}
	return nil
}

// RegistryStats contains statistics about the registry
type RegistryStats struct {
	SetCount     int `json:"set_count"`
	VariantCount int `json:"variant_count"`
	FieldCount   int `json:"field_count"`
}

// GetStats returns statistics about the registry
func (sr *SetRegistry) GetStats() RegistryStats {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()

	stats := RegistryStats{
		SetCount: len(sr.sets),
	}

	for _, set := range sr.sets {
		stats.VariantCount += set.VariantCount()
		stats.FieldCount += set.FieldCount()
	}

	return stats
}

// String returns a string representation of the registry
func (sr *SetRegistry) String() string {
	sr.mutex.RLock()
	defer sr.mutex.RUnlock()

	return fmt.Sprintf("SetRegistry{sets: %d}", len(sr.sets))
}

// Global Registry
var globalRegistry = NewSetRegistry()

// Global Registry Functions

// GlobalRegister registers a set in the global registry
func GlobalRegister(set *Set, opts ...RegistrationOptions) error {
	return globalRegistry.Register(set, opts...)
}

// GlobalGetSet returns a set from the global registry by name
func GlobalGetSet(name string) (*Set, bool) {
	return globalRegistry.GetSet(name)
}

// GlobalMustGetSet returns a set from the global registry by name or panics
func GlobalMustGetSet(name string) *Set {
	return globalRegistry.MustGetSet(name)
}

// GlobalHasSet returns true if a set exists in the global registry
func GlobalHasSet(name string) bool {
	return globalRegistry.HasSet(name)
}

// GlobalCount returns the number of sets in the global registry
func GlobalCount() int {
	return globalRegistry.Count()
}

// GlobalGetSetNames returns all set names from the global registry
func GlobalGetSetNames() []string {
	return globalRegistry.GetSetNames()
}

// GlobalValidateAll validates all sets in the global registry
func GlobalValidateAll() error {
	return globalRegistry.ValidateAll()
}

// GlobalGetStats returns statistics about the global registry
func GlobalGetStats() RegistryStats {
	return globalRegistry.GetStats()
}

// GlobalClear clears the global registry
func GlobalClear() {
	globalRegistry.Clear()
}

// GetGlobalRegistry returns the global registry instance
func GetGlobalRegistry() *SetRegistry {
	return globalRegistry
}
