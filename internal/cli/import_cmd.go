package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Merge sleep sessions from a JSON export",
		Long: `Merge sleep sessions from a JSON file into the history.

The file may be a bare array of sessions or an object with a "sleepSessions"
array, as written by "slumber export". Sessions whose ID already exists are
skipped. Totals are recomputed from the intervals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.Import(cmd.Context(), args[0], dryRun)
			if err != nil {
				return err
			}
			verb := "Imported"
			if res.DryRun {
				verb = "Would import"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d session(s), skipped %d already present\n",
				formatter.StyleGreen.Render("✔"), verb, res.Added, res.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and count without saving")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the sleep history as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Import.Export(cmd.Context())
			if err != nil {
				return err
			}
			data = append(data, '\n')
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported sleep history to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default stdout)")
	return cmd
}
