package value

import (
	"encoding/json"
	"fmt"

	"github.com/variantkit/variant-go/internal/schema"
)

// Instance is a concrete value of one variant set: exactly one declared tag
// plus the payload matching that tag's schema. Instances are immutable after
// construction and may be freely shared across goroutines.
type Instance struct {
	set     *schema.Set
	tag     string
	payload Payload
}

// Construct creates an Instance of set with the given tag and payload.
// It fails with an UnknownVariantError if the tag is not declared in set,
// and with a SchemaMismatchError if the payload does not exactly match the
// declared field schema for the tag. The payload is cloned, so later caller
// mutations do not leak into the instance.
func Construct(set *schema.Set, tag string, p Payload) (*Instance, error) {
	if set == nil {
		return nil, fmt.Errorf("set cannot be nil")
	}

	if err := Check(set, tag, p); err != nil {
		return nil, err
	}

	return &Instance{
		set:     set,
		tag:     tag,
		payload: p.Clone(),
	}, nil
}

// MustConstruct is like Construct but panics on error.
func MustConstruct(set *schema.Set, tag string, p Payload) *Instance {
	inst, err := Construct(set, tag, p)
	if err != nil {
		panic(err)
	}
	return inst
}

// Set returns the variant set this instance belongs to.
func (i *Instance) Set() *schema.Set {
	return i.set
}

// Tag returns the instance's variant tag.
func (i *Instance) Tag() string {
	return i.tag
}

// Payload returns the instance's payload. The returned map is the instance's
// own storage; callers must treat it as read-only.
func (i *Instance) Payload() Payload {
	return i.payload
}

// Is returns true if the instance carries the given tag.
func (i *Instance) Is(tag string) bool {
	return i.tag == tag
}

// String returns a string representation of the instance.
func (i *Instance) String() string {
	return fmt.Sprintf("Instance{set: %s, tag: %s, fields: %d}", i.set.Name, i.tag, len(i.payload))
}

// MarshalJSON renders the instance as a tag+payload envelope.
func (i *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Set     string  `json:"set"`
		Tag     string  `json:"tag"`
		Payload Payload `json:"payload"`
	}{
		Set:     i.set.Name,
		Tag:     i.tag,
		Payload: i.payload,
	})
}
