// Package dispatch implements exhaustive matching over closed variant sets.
// A Matcher is assembled through a Builder; exhaustiveness is enforced when
// Build is called, never deferred to the moment a missing tag shows up at a
// dispatch site.
package dispatch

import (
	"fmt"
	"sort"

	"github.com/variantkit/variant-go/internal/schema"
	"github.com/variantkit/variant-go/internal/value"
	"github.com/variantkit/variant-go/internal/verrors"
)

// Handler consumes one variant's payload and produces a result.
type Handler[R any] func(value.Payload) R

// Builder accumulates per-tag handlers for one variant set.
type Builder[R any] struct {
	set      *schema.Set
	handlers map[string]Handler[R]
	err      error
}

// NewMatcher starts assembling an exhaustive matcher for set.
func NewMatcher[R any](set *schema.Set) *Builder[R] {
	b := &Builder[R]{
		set:      set,
		handlers: make(map[string]Handler[R]),
	}
	if set == nil {
		b.err = fmt.Errorf("set cannot be nil")
	}
	return b
}

// On supplies the handler for one tag. Supplying a handler for an undeclared
// tag, or supplying one twice, fails the subsequent Build call.
func (b *Builder[R]) On(tag string, h Handler[R]) *Builder[R] {
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

// Build finishes assembly. It fails with a NonExhaustiveMatchError naming
// every declared tag that lacks a handler. Errors recorded by On are
// surfaced here.
func (b *Builder[R]) Build() (*Matcher[R], error) {
	if b.err != nil {
		return nil, b.err
	}

	var missing []string
	for _, tag := range b.set.Tags() {
		if _, ok := b.handlers[tag]; !ok {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &verrors.NonExhaustiveMatchError{Set: b.set.Name, Missing: missing}
	}

	return &Matcher[R]{set: b.set, handlers: b.handlers}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder[R]) MustBuild() *Matcher[R] {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// Matcher dispatches instances of one variant set to exactly one handler per
// declared tag. A built Matcher is immutable and safe for concurrent use.
type Matcher[R any] struct {
	set      *schema.Set
	handlers map[string]Handler[R]
}

// Set returns the variant set this matcher covers.
func (m *Matcher[R]) Set() *schema.Set {
	return m.set
}

// Match invokes the handler keyed by the instance's tag, exactly once, and
// returns that handler's result unchanged. Instances of a different set fail
// with an UnknownVariantError.
func (m *Matcher[R]) Match(inst *value.Instance) (R, error) {
	var zero R
	if inst == nil {
		return zero, fmt.Errorf("instance cannot be nil")
	}
	if inst.Set() != m.set {
		return zero, &verrors.UnknownVariantError{Set: m.set.Name, Tag: inst.Tag(), Known: m.set.Tags()}
	}

	h, ok := m.handlers[inst.Tag()]
	if !ok {
		// Unreachable for a built matcher; kept so a zero-value Matcher fails
		// loudly instead of returning zero silently.
		return zero, &verrors.NonExhaustiveMatchError{Set: m.set.Name, Missing: []string{inst.Tag()}}
	}
	return h(inst.Payload()), nil
}

// MatchAll applies the matcher to every instance in order and collects the
// results. The first error aborts the walk.
func (m *Matcher[R]) MatchAll(insts []*value.Instance) ([]R, error) {
	results := make([]R, 0, len(insts))
	for i, inst := range insts {
		r, err := m.Match(inst)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", i, err)
		}
		results = append(results, r)
	}
	return results, nil
}
