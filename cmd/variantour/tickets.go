package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/variantkit/variant-go/internal/dispatch"
	"github.com/variantkit/variant-go/internal/playground"
	"github.com/variantkit/variant-go/variant"
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Describe the sample ticket classes and show the extension guarantee",
	RunE: func(cmd *cobra.Command, args []string) error {
		tickets, err := playground.SampleTickets()
		if err != nil {
			zap.L().Error("failed to build tickets", zap.Error(err))
			return err
		}

		lines := make([]string, 0, len(tickets))
		for _, t := range tickets {
			line, err := playground.DescribeTicket(t)
			if err != nil {
				zap.L().Error("failed to describe ticket", zap.Error(err))
				return err
			}
			lines = append(lines, line)
		}

		if err := render(tickets, lines); err != nil {
			return err
		}

		// The same handler set against the set extended with FirstClass must
		// refuse to build. Surfacing the error is the point of the demo.
		builder := variant.NewMatcher[string](playground.TicketSetWithFirstClass())
		for tag, h := range playground.PerkHandlers() {
			builder.On(tag, dispatch.Handler[string](h))
		}
		if _, err := builder.Build(); err != nil {
			zap.L().Info("extended set rejected the stale handler set", zap.Error(err))
		} else {
			zap.L().Error("extended set unexpectedly accepted a stale handler set")
		}

		return nil
	},
}
