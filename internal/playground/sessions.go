// Package playground holds the worked modeling examples shipped with the
// module: conference sessions, attendee roles, and ticket classes, each
// re-expressed as a closed variant set instead of flag records, any-typed
// collections, or an inheritance hierarchy.
package playground

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/variantkit/variant-go/internal/dispatch"
	"github.com/variantkit/variant-go/variant"
)

// Session tags.
const (
	TagKeyNote      = "KeyNote"
	TagWorkshop     = "Workshop"
	TagJointSession = "JointSession"
)

// SessionSet is the closed set of conference session kinds. Each kind
// carries its own complete schema; JointSession is the only one with
// co-speakers, and no kind inherits fields from another.
var SessionSet = sync.OnceValue(func() *variant.Set {
	return variant.MustDefine("Session",
		variant.NewVariant(TagKeyNote,
			variant.NewField("title", variant.String),
			variant.NewField("speaker", variant.String),
			variant.NewField("date", variant.Timestamp),
			variant.NewField("recorded", variant.Bool),
		),
		variant.NewVariant(TagWorkshop,
			variant.NewField("title", variant.String),
			variant.NewField("instructor", variant.String),
			variant.NewField("date", variant.Timestamp),
			variant.NewField("topics", variant.StringList),
		),
		variant.NewVariant(TagJointSession,
			variant.NewField("title", variant.String),
			variant.NewField("speaker", variant.String),
			variant.NewField("date", variant.Timestamp),
			variant.NewField("recorded", variant.Bool),
			variant.NewField("co_speakers", variant.StringList),
		),
	)
})

// KeyNote is the typed payload for the KeyNote tag.
type KeyNote struct {
	Title    string    `variant:"title"`
	Speaker  string    `variant:"speaker"`
	Date     time.Time `variant:"date"`
	Recorded bool      `variant:"recorded"`
}

// Workshop is the typed payload for the Workshop tag.
type Workshop struct {
	Title      string    `variant:"title"`
	Instructor string    `variant:"instructor"`
	Date       time.Time `variant:"date"`
	Topics     []string  `variant:"topics"`
}

// JointSession is the typed payload for the JointSession tag.
type JointSession struct {
	Title      string    `variant:"title"`
	Speaker    string    `variant:"speaker"`
	Date       time.Time `variant:"date"`
	Recorded   bool      `variant:"recorded"`
	CoSpeakers []string  `variant:"co_speakers"`
}

// NewKeyNote constructs a KeyNote session instance.
func NewKeyNote(k KeyNote) (*variant.Instance, error) {
	p, err := variant.FromStruct(k)
	if err != nil {
		return nil, err
	}
	return variant.Construct(SessionSet(), TagKeyNote, p)
}

// NewWorkshop constructs a Workshop session instance.
func NewWorkshop(w Workshop) (*variant.Instance, error) {
	p, err := variant.FromStruct(w)
	if err != nil {
		return nil, err
	}
	return variant.Construct(SessionSet(), TagWorkshop, p)
}

// NewJointSession constructs a JointSession instance.
func NewJointSession(j JointSession) (*variant.Instance, error) {
	p, err := variant.FromStruct(j)
	if err != nil {
		return nil, err
	}
	return variant.Construct(SessionSet(), TagJointSession, p)
}

// announcer covers every session kind; adding a kind to SessionSet makes
// this MustBuild panic until a handler is added here.
var announcer = sync.OnceValue(func() *dispatch.Matcher[string] {
	return variant.NewMatcher[string](SessionSet()).
		On(TagKeyNote, func(p variant.Payload) string {
			note := "not recorded"
			if p["recorded"].(bool) {
				note = "recorded"
			}
			return fmt.Sprintf("Keynote '%s' by %s on %s (%s)",
				p["title"], p["speaker"], p["date"].(time.Time).Format("2006-01-02"), note)
		}).
		On(TagWorkshop, func(p variant.Payload) string {
			return fmt.Sprintf("Workshop '%s' with %s on %s, covering %s",
				p["title"], p["instructor"], p["date"].(time.Time).Format("2006-01-02"),
				strings.Join(p["topics"].([]string), ", "))
		}).
		On(TagJointSession, func(p variant.Payload) string {
			return fmt.Sprintf("Joint session '%s' by %s with %s on %s",
				p["title"], p["speaker"], strings.Join(p["co_speakers"].([]string), " and "),
				p["date"].(time.Time).Format("2006-01-02"))
		}).
		MustBuild()
})

// AnnounceSession renders the announcement line for one session instance.
func AnnounceSession(inst *variant.Instance) (string, error) {
	return announcer().Match(inst)
}

// AnnounceSchedule renders announcement lines for a whole schedule. This is
// the replacement for iterating an any-typed collection with type checks:
// the slice holds instances of one set and dispatch is exhaustive.
func AnnounceSchedule(schedule []*variant.Instance) ([]string, error) {
	lines := make([]string, 0, len(schedule))
	for i, inst := range schedule {
		line, err := AnnounceSession(inst)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// SampleSchedule returns a small schedule used by the CLI walkthrough.
func SampleSchedule() ([]*variant.Instance, error) {
	day := time.Date(2026, time.June, 8, 10, 0, 0, 0, time.UTC)

	keynote, err := NewKeyNote(KeyNote{
		Title: "State of the Union", Speaker: "Maya", Date: day, Recorded: true,
	})
	if err != nil {
		return nil, err
	}

	workshop, err := NewWorkshop(Workshop{
		Title: "Modeling with Sum Types", Instructor: "Ines",
		Date: day.Add(3 * time.Hour), Topics: []string{"unions", "dispatch"},
	})
	if err != nil {
		return nil, err
	}

	joint, err := NewJointSession(JointSession{
		Title: "Closing Panel", Speaker: "Maya", Date: day.Add(7 * time.Hour),
		Recorded: false, CoSpeakers: []string{"Ines", "Theo"},
	})
	if err != nil {
		return nil, err
	}

	return []*variant.Instance{keynote, workshop, joint}, nil
}
