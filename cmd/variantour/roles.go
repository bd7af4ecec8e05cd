package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/variantkit/variant-go/internal/playground"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Describe the sample attendee roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		attendees, err := playground.SampleAttendees()
		if err != nil {
			zap.L().Error("failed to build roster", zap.Error(err))
			return err
		}

		lines, err := playground.Roster(attendees)
		if err != nil {
			zap.L().Error("failed to describe roster", zap.Error(err))
			return err
		}

		return render(attendees, lines)
	},
}
