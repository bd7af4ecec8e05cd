package dispatch

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantkit/variant-go/internal/schema"
	"github.com/variantkit/variant-go/internal/value"
	"github.com/variantkit/variant-go/internal/verrors"
)

func sessionSet(t *testing.T) *schema.Set {
	t.Helper()
	set := schema.NewSet("Session",
		schema.NewVariant("KeyNote",
			schema.NewField("title", schema.TypeString),
			schema.NewField("speaker", schema.TypeString),
			schema.NewField("date", schema.TypeTimestamp),
			schema.NewField("recorded", schema.TypeBool),
		),
		schema.NewVariant("JointSession",
			schema.NewField("title", schema.TypeString),
			schema.NewField("speaker", schema.TypeString),
			schema.NewField("date", schema.TypeTimestamp),
			schema.NewField("recorded", schema.TypeBool),
			schema.NewField("co_speakers", schema.TypeStringList),
		),
	)
	require.NoError(t, set.Validate())
	return set
}

func keynoteInstance(t *testing.T, set *schema.Set) *value.Instance {
	t.Helper()
	inst, err := value.Construct(set, "KeyNote", value.Payload{
		"title":    "WWDC",
		"speaker":  "Tim",
		"date":     time.Date(2026, time.June, 8, 10, 0, 0, 0, time.UTC),
		"recorded": true,
	})
	require.NoError(t, err)
	return inst
}

func TestMatcher_DispatchesToTagHandler(t *testing.T) {
	set := sessionSet(t)
	inst := keynoteInstance(t, set)

	keynoteCalls := 0
	jointCalls := 0

	m, err := NewMatcher[string](set).
		On("KeyNote", func(p value.Payload) string {
			keynoteCalls++
			return fmt.Sprintf("keynote: %s", p["title"])
		}).
		On("JointSession", func(p value.Payload) string {
			jointCalls++
			return fmt.Sprintf("joint: %s", p["title"])
		}).
		Build()
	require.NoError(t, err)

	out, err := m.Match(inst)
	require.NoError(t, err)
	assert.Equal(t, "keynote: WWDC", out)
	assert.Equal(t, 1, keynoteCalls)
	assert.Equal(t, 0, jointCalls)
}

func TestMatcher_Idempotent(t *testing.T) {
	set := sessionSet(t)
	inst := keynoteInstance(t, set)

	m := NewMatcher[string](set).
		On("KeyNote", func(p value.Payload) string { return p["speaker"].(string) }).
		On("JointSession", func(p value.Payload) string { return "joint" }).
		MustBuild()

	first, err := m.Match(inst)
	require.NoError(t, err)
	second, err := m.Match(inst)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuild_NonExhaustive(t *testing.T) {
	set := sessionSet(t)

	_, err := NewMatcher[string](set).
		On("KeyNote", func(p value.Payload) string { return "keynote" }).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, verrors.ErrNonExhaustiveMatch))

	var nonExhaustive *verrors.NonExhaustiveMatchError
	require.True(t, errors.As(err, &nonExhaustive))
	assert.Equal(t, []string{"JointSession"}, nonExhaustive.Missing)
}

func TestBuild_UnknownTag(t *testing.T) {
	set := sessionSet(t)

	// A handler for a tag outside the set is rejected, not ignored
	_, err := NewMatcher[string](set).
		On("KeyNote", func(p value.Payload) string { return "keynote" }).
		On("JointSession", func(p value.Payload) string { return "joint" }).
		On("Lightning", func(p value.Payload) string { return "lightning" }).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, verrors.ErrUnknownVariant))
}

func TestBuild_DuplicateHandler(t *testing.T) {
	set := sessionSet(t)

	_, err := NewMatcher[string](set).
		On("KeyNote", func(p value.Payload) string { return "a" }).
		On("KeyNote", func(p value.Payload) string { return "b" }).
		On("JointSession", func(p value.Payload) string { return "joint" }).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, verrors.ErrDuplicateHandler))
}

func TestBuild_NilHandler(t *testing.T) {
	set := sessionSet(t)

	_, err := NewMatcher[string](set).
		On("KeyNote", nil).
		On("JointSession", func(p value.Payload) string { return "joint" }).
		Build()
	require.Error(t, err)
}

func TestBuild_NilSet(t *testing.T) {
	_, err := NewMatcher[string](nil).Build()
	require.Error(t, err)
}

func TestMustBuild_Panics(t *testing.T) {
	set := sessionSet(t)

	assert.Panics(t, func() {
		NewMatcher[string](set).MustBuild()
	})
}

func TestMatch_ForeignInstance(t *testing.T) {
	set := sessionSet(t)
	other := schema.NewSet("Other", schema.NewVariant("KeyNote"))
	require.NoError(t, other.Validate())

	m := NewMatcher[string](set).
		On("KeyNote", func(p value.Payload) string { return "keynote" }).
		On("JointSession", func(p value.Payload) string { return "joint" }).
		MustBuild()

	// Same tag name, different set: still rejected
	foreign, err := value.Construct(other, "KeyNote", value.Payload{})
	require.NoError(t, err)

	_, err = m.Match(foreign)
	require.Error(t, err)
	assert.True(t, errors.Is(err, verrors.ErrUnknownVariant))
}

func TestMatch_NilInstance(t *testing.T) {
	set := sessionSet(t)
	m := NewMatcher[string](set).
		On("KeyNote", func(p value.Payload) string { return "keynote" }).
		On("JointSession", func(p value.Payload) string { return "joint" }).
		MustBuild()

	_, err := m.Match(nil)
	require.Error(t, err)
}

func TestMatchAll(t *testing.T) {
	set := sessionSet(t)
	inst := keynoteInstance(t, set)

	joint, err := value.Construct(set, "JointSession", value.Payload{
		"title":       "Panel",
		"speaker":     "Tim",
		"date":        time.Date(2026, time.June, 8, 17, 0, 0, 0, time.UTC),
		"recorded":    false,
		"co_speakers": []string{"Craig"},
	})
	require.NoError(t, err)

	m := NewMatcher[string](set).
		On("KeyNote", func(p value.Payload) string { return "keynote" }).
		On("JointSession", func(p value.Payload) string { return "joint" }).
		MustBuild()

	results, err := m.MatchAll([]*value.Instance{inst, joint, inst})
	require.NoError(t, err)
	assert.Equal(t, []string{"keynote", "joint", "keynote"}, results)
}

// Adding a variant to a set must break every stale handler mapping at build
// time rather than falling through at dispatch time.
func TestExtension_BreaksStaleHandlerSets(t *testing.T) {
	base := []schema.Variant{
		schema.NewVariant("Business", schema.NewField("seat", schema.TypeString)),
		schema.NewVariant("BusinessEconomy", schema.NewField("seat", schema.TypeString)),
		schema.NewVariant("Economy", schema.NewField("seat", schema.TypeString)),
	}

	tickets := schema.NewSet("Ticket", base...)
	require.NoError(t, tickets.Validate())

	extended := schema.NewSet("Ticket",
		append(base, schema.NewVariant("FirstClass", schema.NewField("seat", schema.TypeString)))...)
	require.NoError(t, extended.Validate())

	describe := func(p value.Payload) string { return p["seat"].(string) }

	// The mapping is exhaustive for the original set
	_, err := NewMatcher[string](tickets).
		On("Business", describe).
		On("BusinessEconomy", describe).
		On("Economy", describe).
		Build()
	require.NoError(t, err)

	// The same mapping against the extended set fails naming FirstClass
	_, err = NewMatcher[string](extended).
		On("Business", describe).
		On("BusinessEconomy", describe).
		On("Economy", describe).
		Build()
	require.Error(t, err)

	var nonExhaustive *verrors.NonExhaustiveMatchError
	require.True(t, errors.As(err, &nonExhaustive))
	assert.Equal(t, []string{"FirstClass"}, nonExhaustive.Missing)
}
