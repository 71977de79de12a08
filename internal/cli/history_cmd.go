package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/repository"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	var browse bool

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "List recorded sleep sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if browse {
				return app.runProgram(newHistoryBrowser(cmd.Context(), app))
			}

			history, err := app.Sleep.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sleep sessions recorded yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(history, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", app.HistoryRows, "Maximum sessions to show (0 for all)")
	cmd.Flags().BoolVar(&browse, "browse", false, "Open an interactive browser")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one sleep session in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := resolveSession(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSession(session))
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a sleep session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := resolveSession(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sleep.Delete(cmd.Context(), session.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed sleep session %s\n", session.ID)
			return nil
		},
	}
}

// resolveSession accepts a full ID or a unique prefix such as the eight
// characters shown by the history table.
func resolveSession(ctx context.Context, app *App, ref string) (*domain.SleepSession, error) {
	session, err := app.Sleep.Get(ctx, ref)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	history, err := app.Sleep.History(ctx, 0)
	if err != nil {
		return nil, err
	}
	var matches []domain.SleepSession
	for _, s := range history {
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("sleep session %q: %w", ref, repository.ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("sleep session prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}
