package value

import (
	"fmt"
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// FromStruct builds a Payload from the exported fields of a struct value.
// Tag `variant:"name"` is honoured; `variant:"-"` skips the field. Fields
// whose names are untagged use the Go field name verbatim. Supported field
// types are string, bool, time.Time, []string, and nested structs, which map
// to nested record payloads.
func FromStruct(in any) (Payload, error) {
	v := reflect.ValueOf(in)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("cannot build payload from nil pointer")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot build payload from %s, need a struct", v.Kind())
	}

	p := make(Payload, v.NumField())
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		name, skip := fieldName(sf)
		if skip {
			continue
		}

		fv := v.Field(i)
		switch {
		case fv.Kind() == reflect.String:
			p[name] = fv.String()
		case fv.Kind() == reflect.Bool:
			p[name] = fv.Bool()
		case fv.Type() == timeType:
			p[name] = fv.Interface().(time.Time)
		case fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.String:
			list := make([]string, fv.Len())
			for j := 0; j < fv.Len(); j++ {
				list[j] = fv.Index(j).String()
			}
			p[name] = list
		case fv.Kind() == reflect.Struct:
			nested, err := FromStruct(fv.Interface())
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", sf.Name, err)
			}
			p[name] = nested
		default:
			return nil, fmt.Errorf("field %s: unsupported payload type %s", sf.Name, fv.Type())
		}
	}
	return p, nil
}

// ToStruct copies a payload into the given pointer to struct. Only exported
// fields are set; tag handling matches FromStruct. Payload fields without a
// matching struct field are ignored.
func ToStruct(p Payload, out any) error {
	vptr := reflect.ValueOf(out)
	if vptr.Kind() != reflect.Ptr || vptr.IsNil() {
		return fmt.Errorf("out must be a non-nil pointer to struct")
	}
	v := vptr.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("out must point to a struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		name, skip := fieldName(sf)
		if skip {
			continue
		}

		raw, exists := p[name]
		if !exists {
			continue
		}
		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}

		switch {
		case fv.Kind() == reflect.String:
			if s, ok := raw.(string); ok {
				fv.SetString(s)
			}
		case fv.Kind() == reflect.Bool:
			if b, ok := raw.(bool); ok {
				fv.SetBool(b)
			}
		case fv.Type() == timeType:
			if ts, ok := raw.(time.Time); ok {
				fv.Set(reflect.ValueOf(ts))
			}
		case fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.String:
			if list, ok := raw.([]string); ok {
				copied := make([]string, len(list))
				copy(copied, list)
				fv.Set(reflect.ValueOf(copied))
			}
		case fv.Kind() == reflect.Struct:
			if nested, ok := asPayload(raw); ok {
				if err := ToStruct(nested, fv.Addr().Interface()); err != nil {
					return fmt.Errorf("field %s: %w", sf.Name, err)
				}
			}
		}
	}
	return nil
}

// fieldName resolves the payload field name for a struct field.
func fieldName(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get("variant")
	if tag == "-" {
		return "", true
	}
	if tag != "" {
		return tag, false
	}
	return sf.Name, false
}
