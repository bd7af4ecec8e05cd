package playground

import (
	"fmt"
	"sync"

	"github.com/variantkit/variant-go/variant"
)

// Ticket class tags.
const (
	TagBusiness        = "Business"
	TagBusinessEconomy = "BusinessEconomy"
	TagEconomy         = "Economy"
	TagFirstClass      = "FirstClass"
)

// TicketSet replaces the ticket-class inheritance hierarchy: instead of a
// base ticket record that subclasses extend, every class is an independent,
// completely specified record shape.
var TicketSet = sync.OnceValue(func() *variant.Set {
	return variant.MustDefine("Ticket", ticketVariants()...)
})

// TicketSetWithFirstClass is TicketSet plus the FirstClass case. It exists
// to demonstrate the extension guarantee: handler sets written against the
// three-class set fail to build against this one.
var TicketSetWithFirstClass = sync.OnceValue(func() *variant.Set {
	extended := append(ticketVariants(),
		variant.NewVariant(TagFirstClass,
			variant.NewField("seat", variant.String),
			variant.NewField("suite", variant.Bool),
			variant.NewField("chauffeur", variant.Bool),
		),
	)
	return variant.MustDefine("TicketExtended", extended...)
})

func ticketVariants() []variant.Variant {
	return []variant.Variant{
		variant.NewVariant(TagBusiness,
			variant.NewField("seat", variant.String),
			variant.NewField("flat_bed", variant.Bool),
			variant.NewField("lounge_access", variant.Bool),
		),
		variant.NewVariant(TagBusinessEconomy,
			variant.NewField("seat", variant.String),
			variant.NewField("extra_legroom", variant.Bool),
		),
		variant.NewVariant(TagEconomy,
			variant.NewField("seat", variant.String),
		),
	}
}

// PerkHandlers returns one perks-describing handler per base ticket class.
// The map is rebuilt on each call so callers may extend or trim it.
func PerkHandlers() map[string]variant.Handler[string] {
	return map[string]variant.Handler[string]{
		TagBusiness: func(p variant.Payload) string {
			perks := "no lounge access"
			if p["lounge_access"].(bool) {
				perks = "lounge access"
			}
			bed := "recliner"
			if p["flat_bed"].(bool) {
				bed = "flat bed"
			}
			return fmt.Sprintf("Business seat %s: %s, %s", p["seat"], bed, perks)
		},
		TagBusinessEconomy: func(p variant.Payload) string {
			if p["extra_legroom"].(bool) {
				return fmt.Sprintf("Business economy seat %s with extra legroom", p["seat"])
			}
			return fmt.Sprintf("Business economy seat %s", p["seat"])
		},
		TagEconomy: func(p variant.Payload) string {
			return fmt.Sprintf("Economy seat %s", p["seat"])
		},
	}
}

// DescribeTicket renders the perks line for one ticket instance of the base
// set.
func DescribeTicket(inst *variant.Instance) (string, error) {
	return variant.Match(inst, PerkHandlers())
}

// SampleTickets returns one instance per base ticket class.
func SampleTickets() ([]*variant.Instance, error) {
	set := TicketSet()

	business, err := variant.Construct(set, TagBusiness, variant.Payload{
		"seat": "2A", "flat_bed": true, "lounge_access": true,
	})
	if err != nil {
		return nil, err
	}

	bizEco, err := variant.Construct(set, TagBusinessEconomy, variant.Payload{
		"seat": "12C", "extra_legroom": true,
	})
	if err != nil {
		return nil, err
	}

	economy, err := variant.Construct(set, TagEconomy, variant.Payload{
		"seat": "31F",
	})
	if err != nil {
		return nil, err
	}

	return []*variant.Instance{business, bizEco, economy}, nil
}
