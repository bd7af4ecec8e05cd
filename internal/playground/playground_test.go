package playground

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantkit/variant-go/internal/dispatch"
	"github.com/variantkit/variant-go/variant"
)

func TestAnnounceSession(t *testing.T) {
	day := time.Date(2026, time.June, 8, 10, 0, 0, 0, time.UTC)

	keynote, err := NewKeyNote(KeyNote{
		Title: "State of the Union", Speaker: "Maya", Date: day, Recorded: true,
	})
	require.NoError(t, err)

	line, err := AnnounceSession(keynote)
	require.NoError(t, err)
	assert.Equal(t, "Keynote 'State of the Union' by Maya on 2026-06-08 (recorded)", line)

	joint, err := NewJointSession(JointSession{
		Title: "Closing Panel", Speaker: "Maya", Date: day,
		Recorded: false, CoSpeakers: []string{"Ines", "Theo"},
	})
	require.NoError(t, err)

	line, err = AnnounceSession(joint)
	require.NoError(t, err)
	assert.Equal(t, "Joint session 'Closing Panel' by Maya with Ines and Theo on 2026-06-08", line)
}

func TestAnnounceSchedule(t *testing.T) {
	schedule, err := SampleSchedule()
	require.NoError(t, err)
	require.Len(t, schedule, 3)

	lines, err := AnnounceSchedule(schedule)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Workshop 'Modeling with Sum Types' with Ines")
}

func TestSessionSet_RejectsIncompletePayload(t *testing.T) {
	_, err := variant.Construct(SessionSet(), TagWorkshop, variant.Payload{
		"title":      "Half-filled",
		"instructor": "Ines",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, variant.ErrSchemaMismatch))
}

func TestDescribeTicket(t *testing.T) {
	tickets, err := SampleTickets()
	require.NoError(t, err)
	require.Len(t, tickets, 3)

	want := []string{
		"Business seat 2A: flat bed, lounge access",
		"Business economy seat 12C with extra legroom",
		"Economy seat 31F",
	}
	for i, ticket := range tickets {
		got, err := DescribeTicket(ticket)
		require.NoError(t, err)
		assert.Equal(t, want[i], got)
	}
}

// The base perk handlers must stop building the moment FirstClass joins the
// set, instead of silently mishandling first class tickets at dispatch time.
func TestPerkHandlers_StaleAgainstExtendedSet(t *testing.T) {
	builder := variant.NewMatcher[string](TicketSetWithFirstClass())
	for tag, h := range PerkHandlers() {
		builder.On(tag, dispatch.Handler[string](h))
	}

	_, err := builder.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, variant.ErrNonExhaustiveMatch))
	assert.Contains(t, err.Error(), TagFirstClass)
}

func TestDescribeRole(t *testing.T) {
	attendees, err := SampleAttendees()
	require.NoError(t, err)
	require.Len(t, attendees, 2)

	teacher, err := DescribeRole(attendees[0])
	require.NoError(t, err)
	assert.Equal(t, "Ines teaches type theory, Go (tenured)", teacher)

	student, err := DescribeRole(attendees[1])
	require.NoError(t, err)
	assert.Equal(t, "Theo studies in cohort 2026", student)
}

func TestRoster(t *testing.T) {
	attendees, err := SampleAttendees()
	require.NoError(t, err)

	lines, err := Roster(attendees)
	require.NoError(t, err)
	assert.Len(t, lines, len(attendees))
}

func TestRoster_RejectsForeignInstance(t *testing.T) {
	session, err := NewKeyNote(KeyNote{
		Title: "Oops", Speaker: "Maya",
		Date: time.Date(2026, time.June, 8, 10, 0, 0, 0, time.UTC), Recorded: false,
	})
	require.NoError(t, err)

	_, err = Roster([]*variant.Instance{session})
	require.Error(t, err)
	assert.True(t, errors.Is(err, variant.ErrUnknownVariant))
}
