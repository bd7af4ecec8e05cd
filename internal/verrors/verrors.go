// Package verrors defines the error kinds surfaced by variant construction
// and matching. All of them are programmer-visible contract violations, so
// the propagation policy throughout the module is fail fast, never swallow.
package verrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a numeric error kind code.
type Kind uint16

// Error kind codes.
const (
	KindSchemaMismatch     Kind = 0x0001
	KindUnknownVariant     Kind = 0x0002
	KindNonExhaustiveMatch Kind = 0x0003
	KindDuplicateHandler   Kind = 0x0004
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSchemaMismatch:
		return "schema mismatch"
	case KindUnknownVariant:
		return "unknown variant"
	case KindNonExhaustiveMatch:
		return "non-exhaustive match"
	case KindDuplicateHandler:
		return "duplicate handler"
	default:
		return fmt.Sprintf("unknown error kind: 0x%04X", uint16(k))
	}
}

// Sentinel values usable with errors.Is. The structured error types below
// unwrap to these.
var (
	ErrSchemaMismatch     = errors.New("payload does not match declared variant schema")
	ErrUnknownVariant     = errors.New("tag not declared in variant set")
	ErrNonExhaustiveMatch = errors.New("handler set does not cover variant set")
	ErrDuplicateHandler   = errors.New("handler already supplied for tag")
)

// SchemaMismatchError reports a payload whose fields do not exactly match the
// declared schema for a variant. The field lists are sorted so the message is
// deterministic.
type SchemaMismatchError struct {
	Set string
	Tag string

	// Missing holds declared fields absent from the payload.
	Missing []string

	// Extra holds payload fields not present in the declaration.
	Extra []string

	// Mistyped holds "field (want T, got G)" entries for present fields whose
	// value has the wrong semantic type.
	Mistyped []string
}

// Kind returns the error kind code.
func (e *SchemaMismatchError) Kind() Kind { return KindSchemaMismatch }

// Error implements the error interface.
func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing fields [%s]", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra fields [%s]", strings.Join(e.Extra, ", ")))
	}
	if len(e.Mistyped) > 0 {
		parts = append(parts, fmt.Sprintf("mistyped fields [%s]", strings.Join(e.Mistyped, ", ")))
	}
	return fmt.Sprintf("%s: variant '%s.%s': %s", ErrSchemaMismatch, e.Set, e.Tag, strings.Join(parts, "; "))
}

// Unwrap returns the sentinel so errors.Is(err, ErrSchemaMismatch) holds.
func (e *SchemaMismatchError) Unwrap() error { return ErrSchemaMismatch }

// UnknownVariantError reports a tag that is not declared in the variant set.
type UnknownVariantError struct {
	Set string
	Tag string

	// Known holds the declared tags, in declaration order.
	Known []string
}

// Kind returns the error kind code.
func (e *UnknownVariantError) Kind() Kind { return KindUnknownVariant }

// Error implements the error interface.
func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s: tag '%s' not in set '%s' (declared: [%s])",
		ErrUnknownVariant, e.Tag, e.Set, strings.Join(e.Known, ", "))
}

// Unwrap returns the sentinel so errors.Is(err, ErrUnknownVariant) holds.
func (e *UnknownVariantError) Unwrap() error { return ErrUnknownVariant }

// NonExhaustiveMatchError reports a handler set that omits one or more
// declared tags. Missing is sorted alphabetically.
type NonExhaustiveMatchError struct {
	Set     string
	Missing []string
}

// Kind returns the error kind code.
func (e *NonExhaustiveMatchError) Kind() Kind { return KindNonExhaustiveMatch }

// Error implements the error interface.
func (e *NonExhaustiveMatchError) Error() string {
	return fmt.Sprintf("%s: set '%s' missing handlers for [%s]",
		ErrNonExhaustiveMatch, e.Set, strings.Join(e.Missing, ", "))
}

// Unwrap returns the sentinel so errors.Is(err, ErrNonExhaustiveMatch) holds.
func (e *NonExhaustiveMatchError) Unwrap() error { return ErrNonExhaustiveMatch }

// DuplicateHandlerError reports a handler supplied twice for the same tag.
type DuplicateHandlerError struct {
	Set string
	Tag string
}

// Kind returns the error kind code.
func (e *DuplicateHandlerError) Kind() Kind { return KindDuplicateHandler }

// Error implements the error interface.
func (e *DuplicateHandlerError) Error() string {
	return fmt.Sprintf("%s: tag '%s' in set '%s'", ErrDuplicateHandler, e.Tag, e.Set)
}

// Unwrap returns the sentinel so errors.Is(err, ErrDuplicateHandler) holds.
func (e *DuplicateHandlerError) Unwrap() error { return ErrDuplicateHandler }

// KindOf returns the kind code carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var kinder interface{ Kind() Kind }
	if errors.As(err, &kinder) {
		return kinder.Kind(), true
	}
	return 0, false
}
