package main

import (
	"fmt"

	"github.com/nikolayk812/tipkart/internal/tracking"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTrackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "track <order-number>",
		Short: "Show the delivery timeline of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := tracking.NewMock()
			if err != nil {
				return fmt.Errorf("tracking.NewMock: %w", err)
			}

			t, err := tracker.Track(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("tracker.Track: %w", err)
			}

			a.logger.Debug("order tracked", zap.String("number", t.OrderNumber), zap.String("status", t.Status))
			fmt.Fprintln(cmd.OutOrStdout(), renderTracking(t))
			return nil
		},
	}
}
