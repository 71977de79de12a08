package cli

import (
	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type logFormInput struct {
	Intervals []domain.Interval
	Notes     string
}

func slumberHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateTimestamp(s string) error {
	_, err := domain.ParseTimestamp(s)
	return err
}

// runLogForm asks for intervals one at a time until the user declines to
// add another, then asks for notes. Both timestamps default to now.
func runLogForm(app *App) (logFormInput, error) {
	var input logFormInput

	for {
		now := app.now().Format(domain.TimestampLayout)
		start, end := now, now
		another := false

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Fell asleep at").
					Placeholder(domain.TimestampLayout).
					Value(&start).
					Validate(validateTimestamp),
				huh.NewInput().
					Title("Woke up at").
					Placeholder(domain.TimestampLayout).
					Value(&end).
					Validate(validateTimestamp),
				huh.NewConfirm().
					Title("Add another sleep period?").
					Value(&another),
			),
		).WithTheme(slumberHuhTheme()).WithShowHelp(false)

		if err := app.runForm(form); err != nil {
			return input, err
		}

		s, err := domain.ParseTimestamp(start)
		if err != nil {
			return input, err
		}
		e, err := domain.ParseTimestamp(end)
		if err != nil {
			return input, err
		}
		input.Intervals = append(input.Intervals, domain.Interval{Start: s, End: e})

		if !another {
			break
		}
	}

	notes := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Notes (optional)").
				Value(&input.Notes),
		),
	).WithTheme(slumberHuhTheme()).WithShowHelp(false)

	if err := app.runForm(notes); err != nil {
		return input, err
	}
	return input, nil
}
