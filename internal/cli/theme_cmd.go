package cli

import (
	"fmt"

	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [show|toggle|light|dark]",
		Short:     "Show or change the color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"show", "toggle", string(domain.ThemeLight), string(domain.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 || args[0] == "show" {
				theme, err := app.Settings.Theme(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Theme: %s\n", theme)
				return nil
			}

			var theme domain.Theme
			if args[0] == "toggle" {
				next, err := app.Settings.ToggleTheme(ctx)
				if err != nil {
					return err
				}
				theme = next
			} else {
				theme = domain.Theme(args[0])
				if err := app.Settings.SetTheme(ctx, theme); err != nil {
					return err
				}
			}

			formatter.ApplyTheme(theme)
			fmt.Fprintf(out, "%s Theme set to %s\n", formatter.StyleGreen.Render("✔"), theme)
			return nil
		},
	}
}
