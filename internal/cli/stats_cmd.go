package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show average, consistency, extremes, and recent trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if window < 1 {
				return fmt.Errorf("--window must be at least 1, got %d", window)
			}
			summary, err := app.Sleep.Stats(cmd.Context(), window)
			if errors.Is(err, domain.ErrEmptyHistory) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.EmptyStats())
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(summary))
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", app.trendWindow(), "Number of recent sessions compared for the trend")

	return cmd
}
