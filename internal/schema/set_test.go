package schema

import (
	"strings"
	"testing"
)

func TestSet_Validate(t *testing.T) {
	set := NewSet("Session",
		NewVariant("KeyNote",
			NewField("title", TypeString),
			NewField("recorded", TypeBool),
		),
		NewVariant("Workshop",
			NewField("title", TypeString),
			NewField("topics", TypeStringList),
		),
	)

	if err := set.Validate(); err != nil {
		t.Fatalf("valid set failed validation: %v", err)
	}

	// Test empty name
	unnamed := NewSet("", NewVariant("A", NewField("x", TypeString)))
	if err := unnamed.Validate(); err == nil {
		t.Error("set with empty name should fail validation")
	}

	// Test empty variant list
	empty := NewSet("Empty")
	if err := empty.Validate(); err == nil {
		t.Error("set without variants should fail validation")
	}

	// Test duplicate tags
	duplicated := NewSet("Dup",
		NewVariant("A", NewField("x", TypeString)),
		NewVariant("A", NewField("y", TypeBool)),
	)
	if err := duplicated.Validate(); err == nil {
		t.Error("set with duplicate tags should fail validation")
	}

	// Test invalid tag identifier
	badTag := NewSet("Bad", NewVariant("not a tag", NewField("x", TypeString)))
	if err := badTag.Validate(); err == nil {
		t.Error("set with invalid tag identifier should fail validation")
	}
}

func TestVariant_Validate(t *testing.T) {
	v := NewVariant("JointSession",
		NewField("title", TypeString),
		NewField("date", TypeTimestamp),
		NewField("co_speakers", TypeStringList),
	)
	if err := v.Validate(); err != nil {
		t.Fatalf("valid variant failed validation: %v", err)
	}

	// Zero fields is legal (a unit variant)
	unit := NewVariant("None")
	if err := unit.Validate(); err != nil {
		t.Errorf("unit variant should be valid: %v", err)
	}

	// Duplicate field names
	dup := NewVariant("Dup",
		NewField("x", TypeString),
		NewField("x", TypeBool),
	)
	if err := dup.Validate(); err == nil {
		t.Error("variant with duplicate field names should fail validation")
	}

	// Invalid field type
	badType := NewVariant("Bad", Field{Name: "x", Type: FieldType("int")})
	if err := badType.Validate(); err == nil {
		t.Error("variant with invalid field type should fail validation")
	}
}

func TestField_Validate_Record(t *testing.T) {
	rec := NewRecordField("venue",
		NewField("city", TypeString),
		NewField("hall", TypeString),
	)
	if err := rec.Validate(); err != nil {
		t.Fatalf("valid record field failed validation: %v", err)
	}

	// Record without nested schema
	emptyRec := Field{Name: "venue", Type: TypeRecord}
	if err := emptyRec.Validate(); err == nil {
		t.Error("record field without nested schema should fail validation")
	}

	// Nested schema on a non-record field
	confused := Field{Name: "x", Type: TypeString, Record: []Field{NewField("y", TypeBool)}}
	if err := confused.Validate(); err == nil {
		t.Error("non-record field with nested schema should fail validation")
	}

	// Duplicate nested names
	dupNested := NewRecordField("venue",
		NewField("city", TypeString),
		NewField("city", TypeString),
	)
	if err := dupNested.Validate(); err == nil {
		t.Error("record field with duplicate nested names should fail validation")
	}
}

func TestSet_Lookup(t *testing.T) {
	set := NewSet("Ticket",
		NewVariant("Business", NewField("seat", TypeString)),
		NewVariant("Economy", NewField("seat", TypeString)),
	)

	if !set.HasVariant("Business") {
		t.Error("set should have Business variant")
	}
	if set.HasVariant("FirstClass") {
		t.Error("set should not have FirstClass variant")
	}

	v := set.Variant("Economy")
	if v == nil || v.Tag != "Economy" {
		t.Error("failed to look up Economy variant")
	}

	tags := set.Tags()
	if len(tags) != 2 || tags[0] != "Business" || tags[1] != "Economy" {
		t.Errorf("tags not in declaration order: %v", tags)
	}

	if set.VariantCount() != 2 {
		t.Errorf("expected 2 variants, got %d", set.VariantCount())
	}
	if set.FieldCount() != 2 {
		t.Errorf("expected 2 fields, got %d", set.FieldCount())
	}
}

func TestSet_String(t *testing.T) {
	set := NewSet("Role",
		NewVariant("Teacher", NewField("name", TypeString)),
		NewVariant("Student", NewField("name", TypeString)),
	)

	str := set.String()
	if !strings.Contains(str, "Role") || !strings.Contains(str, "Teacher") {
		t.Errorf("unexpected string representation: %s", str)
	}
}
