package value

import (
	"fmt"
	"sort"
	"time"

	"github.com/variantkit/variant-go/internal/schema"
	"github.com/variantkit/variant-go/internal/verrors"
)

// Payload carries the field values of one variant instance, keyed by the
// declared field names.
type Payload map[string]any

// Check verifies that a payload exactly matches the declared schema of the
// variant tagged tag in set. Any missing, extra, or mistyped field makes the
// check fail with a SchemaMismatchError naming every offending field.
func Check(set *schema.Set, tag string, p Payload) error {
	v := set.Variant(tag)
	if v == nil {
		return &verrors.UnknownVariantError{Set: set.Name, Tag: tag, Known: set.Tags()}
	}

	mismatch := &verrors.SchemaMismatchError{Set: set.Name, Tag: tag}
	checkFields(v.Fields, p, "", mismatch)

	if len(mismatch.Missing) > 0 || len(mismatch.Extra) > 0 || len(mismatch.Mistyped) > 0 {
		sort.Strings(mismatch.Missing)
		sort.Strings(mismatch.Extra)
		sort.Strings(mismatch.Mistyped)
		return mismatch
	}
	return nil
}

// checkFields compares one level of declared fields against a payload map.
// Nested record fields recurse with a dotted path prefix.
func checkFields(fields []schema.Field, p Payload, prefix string, mismatch *verrors.SchemaMismatchError) {
	declared := make(map[string]*schema.Field, len(fields))
	for i := range fields {
		declared[fields[i].Name] = &fields[i]
	}

	for name := range p {
		if _, ok := declared[name]; !ok {
			mismatch.Extra = append(mismatch.Extra, prefix+name)
		}
	}

	for i := range fields {
		f := &fields[i]
		path := prefix + f.Name

		raw, ok := p[f.Name]
		if !ok {
			mismatch.Missing = append(mismatch.Missing, path)
			continue
		}

		switch f.Type {
		case schema.TypeString:
			if _, ok := raw.(string); !ok {
				mismatch.Mistyped = append(mismatch.Mistyped, typeComplaint(path, f.Type, raw))
			}
		case schema.TypeBool:
			if _, ok := raw.(bool); !ok {
				mismatch.Mistyped = append(mismatch.Mistyped, typeComplaint(path, f.Type, raw))
			}
		case schema.TypeTimestamp:
			if _, ok := raw.(time.Time); !ok {
				mismatch.Mistyped = append(mismatch.Mistyped, typeComplaint(path, f.Type, raw))
			}
		case schema.TypeStringList:
			if _, ok := raw.([]string); !ok {
				mismatch.Mistyped = append(mismatch.Mistyped, typeComplaint(path, f.Type, raw))
			}
		case schema.TypeRecord:
			nested, ok := asPayload(raw)
			if !ok {
				mismatch.Mistyped = append(mismatch.Mistyped, typeComplaint(path, f.Type, raw))
				continue
			}
			checkFields(f.Record, nested, path+".", mismatch)
		}
	}
}

// asPayload accepts both Payload and the equivalent plain map type.
func asPayload(raw any) (Payload, bool) {
	switch m := raw.(type) {
	case Payload:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// typeComplaint renders one mistyped-field entry.
func typeComplaint(path string, want schema.FieldType, got any) string {
	return fmt.Sprintf("%s (want %s, got %T)", path, want, got)
}

// Clone returns a copy of the payload. Nested record maps and string lists
// are copied too, so mutating the clone never affects the original.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		switch val := v.(type) {
		case Payload:
			out[k] = val.Clone()
		case map[string]any:
			out[k] = Payload(val).Clone()
		case []string:
			list := make([]string, len(val))
			copy(list, val)
			out[k] = list
		default:
			out[k] = v
		}
	}
	return out
}
