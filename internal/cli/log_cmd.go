package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/alexanderramin/slumber/internal/service"
	"github.com/alexanderramin/slumber/internal/sleepcalc"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var in intervalInput
	var note string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a sleep session",
		Long: `Record a sleep session made of one or more intervals.

An interval whose end is earlier than its start is read as crossing midnight.
Without interval flags on an interactive terminal, a form asks for them.`,
		Example: `  slumber log --interval 2024-01-01T23:00,2024-01-02T07:00
  slumber log --interval 2024-01-01T23:30,2024-01-01T07:30 --interval 2024-01-02T14:00,2024-01-02T14:30 --note "nap"
  slumber log --start 2024-01-01T23:00 --duration 450`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ivs, err := in.collect()
			if err != nil {
				return err
			}

			if len(ivs) == 0 {
				if !app.interactive() {
					return errors.New("no intervals given; use --interval START,END or --start with --duration")
				}
				input, err := runLogForm(app)
				if err != nil {
					return err
				}
				ivs = input.Intervals
				if note == "" {
					note = input.Notes
				}
			}

			session, err := app.Sleep.Record(cmd.Context(), service.RecordRequest{Intervals: ivs, Notes: note})
			if err != nil {
				return err
			}

			band := sleepcalc.Quality(session.TotalMinutes)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Saved %s of sleep (%s)\n%s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(sleepcalc.FormatDuration(session.TotalMinutes)),
				formatter.Dim(session.ID),
				formatter.QualityStyle(band).Render(sleepcalc.QualityMessage(band)))
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&note, "note", "", "Optional notes for the session")

	return cmd
}

func newPreviewCmd(app *App) *cobra.Command {
	var in intervalInput

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the total for intervals without saving them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ivs, err := in.collect()
			if err != nil {
				return err
			}
			if len(ivs) == 0 {
				return errors.New("no intervals given; use --interval START,END")
			}

			out := cmd.OutOrStdout()
			for i, iv := range ivs {
				fmt.Fprintf(out, "  %d. %s  %s\n", i+1,
					formatter.FormatIntervals(ivs[i:i+1]),
					formatter.Dim(sleepcalc.FormatDuration(sleepcalc.IntervalMinutes(iv.Start, iv.End))))
			}
			fmt.Fprintln(out, formatter.FormatPreview(app.Sleep.Preview(ivs)))
			return nil
		},
	}

	in.register(cmd)
	return cmd
}
