package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/variantkit/variant-go/internal/playground"
	"github.com/variantkit/variant-go/variant"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render every sample collection, formatting instances in parallel",
	RunE: func(cmd *cobra.Command, args []string) error {
		type section struct {
			insts    []*variant.Instance
			describe func(*variant.Instance) (string, error)
		}

		schedule, err := playground.SampleSchedule()
		if err != nil {
			return err
		}
		attendees, err := playground.SampleAttendees()
		if err != nil {
			return err
		}
		tickets, err := playground.SampleTickets()
		if err != nil {
			return err
		}

		sections := []section{
			{schedule, playground.AnnounceSession},
			{attendees, playground.DescribeRole},
			{tickets, playground.DescribeTicket},
		}

		var all []*variant.Instance
		var describers []func(*variant.Instance) (string, error)
		for _, s := range sections {
			for _, inst := range s.insts {
				all = append(all, inst)
				describers = append(describers, s.describe)
			}
		}

		// Instances are immutable and matchers are read-only once built, so
		// formatting fans out without locking. Results land by index to keep
		// the original order.
		lines := make([]string, len(all))
		g := new(errgroup.Group)
		sem := make(chan struct{}, runtime.NumCPU())

		for i, inst := range all {
			i, inst := i, inst
			g.Go(func() error {
				sem <- struct{}{}
				defer func() { <-sem }()

				line, err := describers[i](inst)
				if err != nil {
					return err
				}
				lines[i] = line
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			zap.L().Error("report failed", zap.Error(err))
			return err
		}

		zap.L().Info("report complete", zap.Int("instances", len(all)))
		return render(all, lines)
	},
}
