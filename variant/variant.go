// Package variant models heterogeneous, closed sets of related data shapes
// as tagged unions. A Set enumerates every Variant for one modeling problem;
// each variant carries its own complete field schema, with no shared base
// record. Instances are immutable tag+payload values, and matching over them
// is exhaustive: a matcher that omits a declared tag fails when it is built,
// not when the missing tag is first encountered.
package variant

import (
	"errors"

	"github.com/variantkit/variant-go/internal/dispatch"
	"github.com/variantkit/variant-go/internal/schema"
	"github.com/variantkit/variant-go/internal/value"
	"github.com/variantkit/variant-go/internal/verrors"
)

// Core types.
type (
	// Set is the closed enumeration of all variants for one modeling problem.
	Set = schema.Set

	// Variant is one named case with its own field schema.
	Variant = schema.Variant

	// Field declares one named, semantically typed payload field.
	Field = schema.Field

	// FieldType is the semantic type of a declared field.
	FieldType = schema.FieldType

	// Payload carries the field values of one instance.
	Payload = value.Payload

	// Instance is one variant tag plus its matching payload.
	Instance = value.Instance

	// Registry manages named set definitions.
	Registry = schema.SetRegistry

	// RegistrationOptions configures set registration behavior.
	RegistrationOptions = schema.RegistrationOptions
)

// Semantic field types.
const (
	String     = schema.TypeString
	Bool       = schema.TypeBool
	Timestamp  = schema.TypeTimestamp
	StringList = schema.TypeStringList
	Record     = schema.TypeRecord
)

// Error sentinels, usable with errors.Is. Structured details are available
// via errors.As against the concrete types in internal/verrors.
var (
	ErrSchemaMismatch     = verrors.ErrSchemaMismatch
	ErrUnknownVariant     = verrors.ErrUnknownVariant
	ErrNonExhaustiveMatch = verrors.ErrNonExhaustiveMatch
	ErrDuplicateHandler   = verrors.ErrDuplicateHandler
)

var errNilInstance = errors.New("instance cannot be nil")

// Define declares a closed variant set. The set is validated eagerly: tags
// must be unique identifiers and every field schema must be well-formed.
// The returned set is never mutated afterwards.
func Define(name string, variants ...Variant) (*Set, error) {
	s := schema.NewSet(name, variants...)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustDefine is like Define but panics on error. Intended for package-level
// set declarations, where a malformed schema is a programming error.
func MustDefine(name string, variants ...Variant) *Set {
	s, err := Define(name, variants...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewVariant declares one case of a set.
func NewVariant(tag string, fields ...Field) Variant {
	return schema.NewVariant(tag, fields...)
}

// NewField declares one payload field.
func NewField(name string, fieldType FieldType) Field {
	return schema.NewField(name, fieldType)
}

// NewRecordField declares one nested-record payload field.
func NewRecordField(name string, fields ...Field) Field {
	return schema.NewRecordField(name, fields...)
}

// Construct creates an Instance of set with the given tag and payload. It
// fails with ErrUnknownVariant for an undeclared tag and ErrSchemaMismatch
// when the payload's fields do not exactly equal the declared schema.
func Construct(set *Set, tag string, p Payload) (*Instance, error) {
	return value.Construct(set, tag, p)
}

// MustConstruct is like Construct but panics on error.
func MustConstruct(set *Set, tag string, p Payload) *Instance {
	return value.MustConstruct(set, tag, p)
}

// FromStruct builds a Payload from a struct value, honouring `variant:` tags.
func FromStruct(in any) (Payload, error) {
	return value.FromStruct(in)
}

// ToStruct copies a Payload into a pointer to struct.
func ToStruct(p Payload, out any) error {
	return value.ToStruct(p, out)
}

// Handler consumes one variant's payload and produces a result.
type Handler[R any] func(Payload) R

// NewMatcher starts assembling an exhaustive matcher for set. Build fails
// with ErrNonExhaustiveMatch unless every declared tag has a handler.
func NewMatcher[R any](set *Set) *dispatch.Builder[R] {
	return dispatch.NewMatcher[R](set)
}

// NewPartialMatcher starts assembling a partial matcher; tags without an
// explicit handler route to fallback. This is the only sanctioned way to get
// default-branch behavior.
func NewPartialMatcher[R any](set *Set, fallback func(tag string, p Payload) R) *dispatch.PartialBuilder[R] {
	return dispatch.NewPartialMatcher[R](set, fallback)
}

// Match assembles an exhaustive matcher from the handlers map and applies it
// to inst. The handlers map must supply exactly one handler per declared
// tag; gaps fail with ErrNonExhaustiveMatch and undeclared keys with
// ErrUnknownVariant, before any handler runs. For repeated dispatch over the
// same handlers, build a matcher once via NewMatcher instead.
func Match[R any](inst *Instance, handlers map[string]Handler[R]) (R, error) {
	var zero R
	if inst == nil {
		return zero, errNilInstance
	}

	b := dispatch.NewMatcher[R](inst.Set())
	for tag, h := range handlers {
		b.On(tag, dispatch.Handler[R](h))
	}
	m, err := b.Build()
	if err != nil {
		return zero, err
	}
	return m.Match(inst)
}

// MatchPartial is the explicitly partial counterpart of Match: tags missing
// from handlers route to fallback instead of failing.
func MatchPartial[R any](inst *Instance, handlers map[string]Handler[R], fallback func(tag string, p Payload) R) (R, error) {
	var zero R
	if inst == nil {
		return zero, errNilInstance
	}

	b := dispatch.NewPartialMatcher[R](inst.Set(), fallback)
	for tag, h := range handlers {
		b.On(tag, dispatch.Handler[R](h))
	}
	m, err := b.Build()
	if err != nil {
		return zero, err
	}
	return m.Match(inst)
}

// Registry helpers.

// NewRegistry creates an empty set registry.
func NewRegistry() *Registry {
	return schema.NewSetRegistry()
}

// GlobalRegister registers a set in the process-wide registry.
func GlobalRegister(set *Set, opts ...RegistrationOptions) error {
	return schema.GlobalRegister(set, opts...)
}

// GlobalGetSet returns a set from the process-wide registry by name.
func GlobalGetSet(name string) (*Set, bool) {
	return schema.GlobalGetSet(name)
}

// GlobalMustGetSet returns a set from the process-wide registry or panics.
func GlobalMustGetSet(name string) *Set {
	return schema.GlobalMustGetSet(name)
}
