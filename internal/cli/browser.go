package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/sleepcalc"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// historyLoadedMsg carries the result of loading the full history.
type historyLoadedMsg struct {
	sessions []domain.SleepSession
	err      error
}

// sessionDeletedMsg reports the outcome of a delete.
type sessionDeletedMsg struct {
	id  string
	err error
}

type browserKeys struct {
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func defaultBrowserKeys() browserKeys {
	return browserKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// historyBrowser is a navigable list of sessions with inline delete.
type historyBrowser struct {
	ctx  context.Context
	app  *App
	keys browserKeys
	help help.Model

	sessions   []domain.SleepSession
	cursor     int
	loading    bool
	confirming bool
	status     string
	err        error
}

// newHistoryBrowser runs its loads and deletes under ctx, normally the
// command's context.
func newHistoryBrowser(ctx context.Context, app *App) *historyBrowser {
	if ctx == nil {
		ctx = context.Background()
	}
	return &historyBrowser{
		ctx:     ctx,
		app:     app,
		keys:    defaultBrowserKeys(),
		help:    help.New(),
		loading: true,
	}
}

func (b *historyBrowser) Init() tea.Cmd {
	return b.load()
}

func (b *historyBrowser) load() tea.Cmd {
	ctx, sleep := b.ctx, b.app.Sleep
	return func() tea.Msg {
		sessions, err := sleep.History(ctx, 0)
		return historyLoadedMsg{sessions: sessions, err: err}
	}
}

func (b *historyBrowser) delete(id string) tea.Cmd {
	ctx, sleep := b.ctx, b.app.Sleep
	return func() tea.Msg {
		return sessionDeletedMsg{id: id, err: sleep.Delete(ctx, id)}
	}
}

func (b *historyBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		b.loading = false
		b.err = msg.err
		b.sessions = msg.sessions
		b.cursor = min(b.cursor, max(len(b.sessions)-1, 0))
		return b, nil

	case sessionDeletedMsg:
		if msg.err != nil {
			b.status = "Delete failed: " + msg.err.Error()
			return b, nil
		}
		b.status = "Removed " + msg.id
		return b, b.load()

	case tea.WindowSizeMsg:
		b.help.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		if b.confirming {
			return b.updateConfirm(msg)
		}
		return b.updateNormal(msg)
	}
	return b, nil
}

func (b *historyBrowser) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit
	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(b.sessions)-1 {
			b.cursor++
		}
	case key.Matches(msg, b.keys.Delete):
		if len(b.sessions) > 0 {
			b.confirming = true
			b.status = ""
		}
	}
	return b, nil
}

func (b *historyBrowser) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Confirm):
		b.confirming = false
		return b, b.delete(b.sessions[b.cursor].ID)
	case key.Matches(msg, b.keys.Cancel):
		b.confirming = false
	}
	return b, nil
}

func (b *historyBrowser) selected() *domain.SleepSession {
	if b.cursor < 0 || b.cursor >= len(b.sessions) {
		return nil
	}
	return &b.sessions[b.cursor]
}

func (b *historyBrowser) View() string {
	var s strings.Builder
	s.WriteString(formatter.Header("Sleep History"))
	s.WriteString("\n\n")

	switch {
	case b.loading:
		s.WriteString(formatter.Dim("Loading..."))
	case b.err != nil:
		s.WriteString(formatter.StyleRed.Render("Error: " + b.err.Error()))
	case len(b.sessions) == 0:
		s.WriteString(formatter.Dim("No sleep sessions recorded yet."))
	default:
		now := b.app.now()
		for i, sess := range b.sessions {
			marker := "  "
			if i == b.cursor {
				marker = formatter.StyleHeader.Render("› ")
			}
			fmt.Fprintf(&s, "%s%-12s %-24s %s\n", marker,
				formatter.HumanDateFrom(sess.Date.Local(), now),
				formatter.FormatIntervals(sess.Intervals),
				formatter.Duration(sess.TotalMinutes))
		}
		if sel := b.selected(); sel != nil {
			band := sleepcalc.Quality(sel.TotalMinutes)
			fmt.Fprintf(&s, "\n%s %s", formatter.Dim(sel.ID),
				formatter.QualityStyle(band).Render(sleepcalc.QualityMessage(band)))
			if note := sel.Note(); note != "" {
				fmt.Fprintf(&s, "\n%s", formatter.StyleFg.Render(note))
			}
		}
	}

	s.WriteString("\n\n")
	switch {
	case b.confirming:
		s.WriteString(formatter.StyleYellow.Render("Delete this session? ") +
			b.help.ShortHelpView([]key.Binding{b.keys.Confirm, b.keys.Cancel}))
	default:
		if b.status != "" {
			s.WriteString(formatter.Dim(b.status) + "\n")
		}
		s.WriteString(b.help.ShortHelpView([]key.Binding{b.keys.Up, b.keys.Down, b.keys.Delete, b.keys.Quit}))
	}
	return s.String()
}
