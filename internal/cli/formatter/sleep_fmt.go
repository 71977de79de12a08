package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/service"
	"github.com/alexanderramin/slumber/internal/sleepcalc"
	"github.com/alexanderramin/slumber/internal/stats"
)

const clockLayout = "15:04"

// FormatIntervals renders intervals as "23:00–07:00, 13:00–13:20".
func FormatIntervals(ivs []domain.Interval) string {
	parts := make([]string, 0, len(ivs))
	for _, iv := range ivs {
		parts = append(parts, iv.Start.Format(clockLayout)+"–"+iv.End.Format(clockLayout))
	}
	return strings.Join(parts, ", ")
}

// Duration renders minutes colored by quality band.
func Duration(minutes int) string {
	return QualityStyle(sleepcalc.Quality(minutes)).Render(sleepcalc.FormatDuration(minutes))
}

// FormatPreview renders the running total shown before saving.
func FormatPreview(p service.Preview) string {
	return fmt.Sprintf("%s %s  %s",
		Dim("Total sleep:"),
		Bold(p.Formatted),
		QualityStyle(p.Quality).Render(p.Message))
}

// FormatHistory renders sessions as a table in the order given.
func FormatHistory(history []domain.SleepSession, now time.Time) string {
	headers := []string{"ID", "DATE", "INTERVALS", "TOTAL", "NOTES"}
	rows := make([][]string, 0, len(history))
	for _, s := range history {
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanDateFrom(s.Date.Local(), now),
			FormatIntervals(s.Intervals),
			Duration(s.TotalMinutes),
			Dim(Truncate(s.Note(), 40)),
		})
	}
	return RenderBox("Sleep History", RenderTable(headers, rows))
}

// FormatSession renders one session in full.
func FormatSession(s *domain.SleepSession) string {
	band := sleepcalc.Quality(s.TotalMinutes)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID       "), s.ID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Recorded "), s.Date.Local().Format("Mon Jan 2, 2006 15:04"))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Total    "), Duration(s.TotalMinutes))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Quality  "), QualityStyle(band).Render(sleepcalc.QualityMessage(band)))
	b.WriteString("\n")
	for i, iv := range s.Intervals {
		minutes := sleepcalc.IntervalMinutes(iv.Start, iv.End)
		fmt.Fprintf(&b, "  %d. %s → %s  %s\n", i+1,
			iv.Start.Format(domain.TimestampLayout),
			iv.End.Format(domain.TimestampLayout),
			Dim(sleepcalc.FormatDuration(minutes)))
	}
	if note := s.Note(); note != "" {
		fmt.Fprintf(&b, "\n%s\n", StyleFg.Render(note))
	}
	return RenderBox("Sleep Session", strings.TrimRight(b.String(), "\n"))
}

// EmptyStats is shown when no sessions exist yet.
func EmptyStats() string {
	return RenderBox("Sleep Stats", Dim("Your sleep statistics will appear here once you start recording sleep sessions."))
}

// TrendLine describes the recent trend in words.
func TrendLine(trend int) string {
	switch {
	case trend > 0:
		return StyleGreen.Render("▲") + " " +
			fmt.Sprintf("You're sleeping %s more recently", sleepcalc.FormatDuration(trend))
	case trend < 0:
		return StyleRed.Render("▼") + " " +
			fmt.Sprintf("You're sleeping %s less recently", sleepcalc.FormatDuration(-trend))
	default:
		return StyleDim.Render("●") + " Your sleep duration has been consistent"
	}
}

// FormatStats renders the statistics panel.
func FormatStats(s stats.Summary) string {
	var b strings.Builder

	label := func(text string) string { return Dim(fmt.Sprintf("%-18s", text)) }

	fmt.Fprintf(&b, "%s %s\n", label("Average Sleep"), Duration(s.Average))
	fmt.Fprintf(&b, "%s %s\n", label("Sleep Consistency"), RenderProgress(s.Consistency/100, 20))
	fmt.Fprintf(&b, "%s %s\n", label("Longest Sleep"), Duration(s.Extremes.Max))
	fmt.Fprintf(&b, "%s %s\n", label("Shortest Sleep"), Duration(s.Extremes.Min))

	if s.Count >= 2 {
		fmt.Fprintf(&b, "\n%s\n%s\n", Header("Recent Trend"), TrendLine(s.Trend))
	}

	noun := "sessions"
	if s.Count == 1 {
		noun = "session"
	}
	fmt.Fprintf(&b, "\n%s", Dim(fmt.Sprintf("Based on %d recorded sleep %s", s.Count, noun)))

	return RenderBox("Sleep Stats", b.String())
}
