package playground

import (
	"fmt"
	"strings"
	"sync"

	"github.com/variantkit/variant-go/internal/dispatch"
	"github.com/variantkit/variant-go/variant"
)

// Role tags.
const (
	TagTeacher = "Teacher"
	TagStudent = "Student"
)

// RoleSet replaces the flat attendee record whose boolean flags
// (is_teacher, is_student) could describe impossible combinations. A role is
// exactly one case, and each case carries only the fields that make sense
// for it.
var RoleSet = sync.OnceValue(func() *variant.Set {
	return variant.MustDefine("Role",
		variant.NewVariant(TagTeacher,
			variant.NewField("name", variant.String),
			variant.NewField("subjects", variant.StringList),
			variant.NewField("tenured", variant.Bool),
		),
		variant.NewVariant(TagStudent,
			variant.NewField("name", variant.String),
			variant.NewField("cohort", variant.String),
		),
	)
})

var roleDescriber = sync.OnceValue(func() *dispatch.Matcher[string] {
	return variant.NewMatcher[string](RoleSet()).
		On(TagTeacher, func(p variant.Payload) string {
			status := "visiting"
			if p["tenured"].(bool) {
				status = "tenured"
			}
			return fmt.Sprintf("%s teaches %s (%s)",
				p["name"], strings.Join(p["subjects"].([]string), ", "), status)
		}).
		On(TagStudent, func(p variant.Payload) string {
			return fmt.Sprintf("%s studies in cohort %s", p["name"], p["cohort"])
		}).
		MustBuild()
})

// DescribeRole renders the one-line description for a role instance.
func DescribeRole(inst *variant.Instance) (string, error) {
	return roleDescriber().Match(inst)
}

// Roster renders descriptions for a mixed list of attendees. Before the
// union, this walk needed runtime type checks with a silent default branch;
// here the slice is homogeneous in the set and dispatch is exhaustive.
func Roster(attendees []*variant.Instance) ([]string, error) {
	return roleDescriber().MatchAll(attendees)
}

// SampleAttendees returns a mixed teacher/student roster.
func SampleAttendees() ([]*variant.Instance, error) {
	set := RoleSet()

	teacher, err := variant.Construct(set, TagTeacher, variant.Payload{
		"name": "Ines", "subjects": []string{"type theory", "Go"}, "tenured": true,
	})
	if err != nil {
		return nil, err
	}

	student, err := variant.Construct(set, TagStudent, variant.Payload{
		"name": "Theo", "cohort": "2026",
	})
	if err != nil {
		return nil, err
	}

	return []*variant.Instance{teacher, student}, nil
}
