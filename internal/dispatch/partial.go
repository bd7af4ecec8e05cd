package dispatch

import (
	"fmt"

	"github.com/variantkit/variant-go/internal/schema"
	"github.com/variantkit/variant-go/internal/value"
	"github.com/variantkit/variant-go/internal/verrors"
)

// FallbackHandler receives the instances no explicit handler claims. The tag
// is passed alongside the payload since partial handlers cannot know it from
// context.
type FallbackHandler[R any] func(tag string, p value.Payload) R

// PartialBuilder accumulates handlers for a partial matcher. Partial
// matching is a separately named opt-in: exhaustive Match is never weakened
// by it.
type PartialBuilder[R any] struct {
	set      *schema.Set
	fallback FallbackHandler[R]
	handlers map[string]Handler[R]
	err      error
}

// NewPartialMatcher starts assembling a partial matcher for set. The
// fallback is invoked for every declared tag without an explicit handler.
func NewPartialMatcher[R any](set *schema.Set, fallback FallbackHandler[R]) *PartialBuilder[R] {
	b := &PartialBuilder[R]{
		set:      set,
		fallback: fallback,
		handlers: make(map[string]Handler[R]),
	}
	if set == nil {
		b.err = fmt.Errorf("set cannot be nil")
	} else if fallback == nil {
		b.err = fmt.Errorf("fallback handler for set '%s' cannot be nil", set.Name)
	}
	return b
}

// On supplies the handler for one tag. Undeclared and duplicate tags are
// still rejected; only coverage gaps are permitted.
func (b *PartialBuilder[R]) On(tag string, h Handler[R]) *PartialBuilder[R] {
	if b.err != nil {
		return b
	}
	if !b.set.HasVariant(tag) {
		b.err = &verrors.UnknownVariantError{Set: b.set.Name, Tag: tag, Known: b.set.Tags()}
		return b
	}
	if _, dup := b.handlers[tag]; dup {
		b.err = &verrors.DuplicateHandlerError{Set: b.set.Name, Tag: tag}
		return b
	}
	if h == nil {
		b.err = fmt.Errorf("handler for tag '%s' in set '%s' cannot be nil", tag, b.set.Name)
		return b
	}
	b.handlers[tag] = h
	return b
}

// Build finishes assembly. Missing tags are not an error here; they route to
// the fallback at match time.
func (b *PartialBuilder[R]) Build() (*PartialMatcher[R], error) {
	if b.err != nil {
		return nil, b.err
	}
	return &PartialMatcher[R]{set: b.set, fallback: b.fallback, handlers: b.handlers}, nil
}

// MustBuild is like Build but panics on error.
func (b *PartialBuilder[R]) MustBuild() *PartialMatcher[R] {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// PartialMatcher dispatches instances of one variant set, routing unhandled
// tags to an explicit fallback.
type PartialMatcher[R any] struct {
	set      *schema.Set
	fallback FallbackHandler[R]
	handlers map[string]Handler[R]
}

// Set returns the variant set this matcher covers.
func (m *PartialMatcher[R]) Set() *schema.Set {
	return m.set
}

// Handles returns true if an explicit handler claims the given tag.
func (m *PartialMatcher[R]) Handles(tag string) bool {
	_, ok := m.handlers[tag]
	return ok
}

// Match invokes the handler keyed by the instance's tag, or the fallback
// when no explicit handler exists. Instances of a different set fail with an
// UnknownVariantError.
func (m *PartialMatcher[R]) Match(inst *value.Instance) (R, error) {
	var zero R
	if inst == nil {
		return zero, fmt.Errorf("instance cannot be nil")
	}
	if inst.Set() != m.set {
		return zero, &verrors.UnknownVariantError{Set: m.set.Name, Tag: inst.Tag(), Known: m.set.Tags()}
	}

	if h, ok := m.handlers[inst.Tag()]; ok {
		return h(inst.Payload()), nil
	}
	return m.fallback(inst.Tag(), inst.Payload()), nil
}
