package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/variantkit/variant-go/internal/playground"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Announce the sample conference schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := playground.SampleSchedule()
		if err != nil {
			zap.L().Error("failed to build schedule", zap.Error(err))
			return err
		}

		lines, err := playground.AnnounceSchedule(schedule)
		if err != nil {
			zap.L().Error("failed to announce schedule", zap.Error(err))
			return err
		}

		zap.L().Info("announcing schedule", zap.Int("sessions", len(schedule)))
		return render(schedule, lines)
	},
}
