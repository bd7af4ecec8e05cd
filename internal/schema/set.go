package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Set is the exhaustive enumeration of all variants for one modeling problem.
// A Set is closed at definition time: there is no runtime registration of new
// variants, and adding a case means defining a new Set value.
type Set struct {
	// Name identifies the set, unique within a registry.
	Name string `json:"name"`

	// Variants holds the declared cases, in declaration order.
	Variants []Variant `json:"variants"`
}

// NewSet creates a new Set with the given name and variants.
func NewSet(name string, variants ...Variant) *Set {
	return &Set{
		Name:     name,
		Variants: variants,
	}
}

// Validate validates the Set declaration.
func (s *Set) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("set name cannot be empty")
	}

	if !isValidIdentifier(s.Name) {
		return fmt.Errorf("set name '%s' is not a valid identifier", s.Name)
	}

	if len(s.Variants) == 0 {
		return fmt.Errorf("set must declare at least one variant")
	}

	tags := make(map[string]bool)
	for i := range s.Variants {
		if err := s.Variants[i].Validate(); err != nil {
			return fmt.Errorf("variant %d: %w", i, err)
		}
		if tags[s.Variants[i].Tag] {
			return fmt.Errorf("duplicate variant tag: %s", s.Variants[i].Tag)
		}
		tags[s.Variants[i].Tag] = true
	}

	return nil
}

// Variant returns a declared variant by tag.
func (s *Set) Variant(tag string) *Variant {
	for i := range s.Variants {
		if s.Variants[i].Tag == tag {
			return &s.Variants[i]
		}
	}
	return nil
}

// HasVariant returns true if a variant with the given tag is declared.
func (s *Set) HasVariant(tag string) bool {
	return s.Variant(tag) != nil
}

// Tags returns all declared tags, in declaration order.
func (s *Set) Tags() []string {
	tags := make([]string, 0, len(s.Variants))
	for i := range s.Variants {
		tags = append(tags, s.Variants[i].Tag)
	}
	return tags
}

// VariantCount returns the number of declared variants.
func (s *Set) VariantCount() int {
	return len(s.Variants)
}

// FieldCount returns the total number of fields declared across all variants.
func (s *Set) FieldCount() int {
	count := 0
	for i := range s.Variants {
		count += len(s.Variants[i].Fields)
	}
	return count
}

// String returns a string representation of the set.
func (s *Set) String() string {
	return fmt.Sprintf("Set{name: %s, variants: [%s]}", s.Name, strings.Join(s.Tags(), ", "))
}

// MarshalJSON customizes JSON marshaling for Set.
func (s *Set) MarshalJSON() ([]byte, error) {
	type Alias Set
	return json.Marshal(&struct {
		*Alias
		VariantCount int `json:"variant_count"`
	}{
		Alias:        (*Alias)(s),
		VariantCount: len(s.Variants),
	})
}
