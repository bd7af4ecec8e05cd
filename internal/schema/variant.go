package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Closed-variant schema framework.
// A Variant is one named case in a closed set; its field schema is
// independently and completely specified. Variants never share or inherit
// fields from one another.

// FieldType is the semantic type of a declared field.
type FieldType string

// Semantic field types.
const (
	TypeString     FieldType = "string"
	TypeBool       FieldType = "bool"
	TypeTimestamp  FieldType = "timestamp"
	TypeStringList FieldType = "stringlist"
	TypeRecord     FieldType = "record"
)

// Field declares one named field of a variant payload.
type Field struct {
	// Name is the field name, unique within the variant.
	Name string `json:"name"`

	// Type is the semantic type of the field value.
	Type FieldType `json:"type"`

	// Record is the nested field schema, set only when Type is TypeRecord.
	Record []Field `json:"record,omitempty"`
}

// Variant declares one named case of a closed set together with its complete
// field schema.
type Variant struct {
	// Tag is the variant name, unique within the set.
	Tag string `json:"tag"`

	// Fields declares the payload shape for this tag.
	Fields []Field `json:"fields"`
}

// Constructor functions

// NewField creates a new Field with the given name and semantic type.
func NewField(name string, fieldType FieldType) Field {
	return Field{
		Name: name,
		Type: fieldType,
	}
}

// NewRecordField creates a new nested-record field with the given schema.
func NewRecordField(name string, fields ...Field) Field {
	return Field{
		Name:   name,
		Type:   TypeRecord,
		Record: fields,
	}
}

// NewVariant creates a new Variant with the given tag and fields.
func NewVariant(tag string, fields ...Field) Variant {
	return Variant{
		Tag:    tag,
		Fields: fields,
	}
}

// Validation Methods

// Validate validates a Field declaration.
func (f *Field) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("field name cannot be empty")
	}

	if !isValidIdentifier(f.Name) {
		return fmt.Errorf("field name '%s' is not a valid identifier", f.Name)
	}

	if !isValidFieldType(f.Type) {
		return fmt.Errorf("field type '%s' is not a valid semantic type", string(f.Type))
	}

	if f.Type == TypeRecord {
		if len(f.Record) == 0 {
			return fmt.Errorf("record field '%s' must declare at least one nested field", f.Name)
		}
		nested := make(map[string]bool)
		for i := range f.Record {
			if err := f.Record[i].Validate(); err != nil {
				return fmt.Errorf("record field '%s', nested field %d: %w", f.Name, i, err)
			}
			if nested[f.Record[i].Name] {
				return fmt.Errorf("record field '%s': duplicate nested field name: %s", f.Name, f.Record[i].Name)
			}
			nested[f.Record[i].Name] = true
		}
	} else if len(f.Record) > 0 {
		return fmt.Errorf("field '%s' of type %s cannot declare a nested record schema", f.Name, f.Type)
	}

	return nil
}

// Validate validates a Variant declaration.
func (v *Variant) Validate() error {
	if v.Tag == "" {
		return fmt.Errorf("variant tag cannot be empty")
	}

	if !isValidIdentifier(v.Tag) {
		return fmt.Errorf("variant tag '%s' is not a valid identifier", v.Tag)
	}

	fieldNames := make(map[string]bool)
	for i := range v.Fields {
		if err := v.Fields[i].Validate(); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
		if fieldNames[v.Fields[i].Name] {
			return fmt.Errorf("duplicate field name: %s", v.Fields[i].Name)
		}
		fieldNames[v.Fields[i].Name] = true
	}

	return nil
}

// Field returns a declared field by name.
func (v *Variant) Field(name string) *Field {
	for i := range v.Fields {
		if v.Fields[i].Name == name {
			return &v.Fields[i]
		}
	}
	return nil
}

// HasField returns true if a field with the given name is declared.
func (v *Variant) HasField(name string) bool {
	return v.Field(name) != nil
}

// FieldCount returns the number of declared fields.
func (v *Variant) FieldCount() int {
	return len(v.Fields)
}

// Helper functions

var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// isValidIdentifier checks if a string is a valid tag or field identifier.
func isValidIdentifier(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	return identifierRegex.MatchString(name)
}

// isValidFieldType checks if a field type is one of the semantic types.
func isValidFieldType(fieldType FieldType) bool {
	validTypes := map[FieldType]bool{
		TypeString:     true,
		TypeBool:       true,
		TypeTimestamp:  true,
		TypeStringList: true,
		TypeRecord:     true,
	}

	return validTypes[fieldType]
}

// String returns a string representation of the field.
func (f *Field) String() string {
	if f.Type == TypeRecord {
		names := make([]string, 0, len(f.Record))
		for i := range f.Record {
			names = append(names, f.Record[i].Name)
		}
		return fmt.Sprintf("%s:record{%s}", f.Name, strings.Join(names, ", "))
	}
	return fmt.Sprintf("%s:%s", f.Name, f.Type)
}

// String returns a string representation of the variant.
func (v *Variant) String() string {
	fields := make([]string, 0, len(v.Fields))
	for i := range v.Fields {
		fields = append(fields, v.Fields[i].String())
	}
	return fmt.Sprintf("Variant{%s(%s)}", v.Tag, strings.Join(fields, ", "))
}
