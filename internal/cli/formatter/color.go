package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors used by every style in this package.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Orange lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

// Gruvbox dark and light variants.
var (
	DarkPalette = Palette{
		Green:  "#8ec07c",
		Yellow: "#fabd2f",
		Orange: "#fe8019",
		Red:    "#fb4934",
		Blue:   "#83a598",
		Purple: "#d3869b",
		Dim:    "#928374",
		Fg:     "#ebdbb2",
		Header: "#d3869b",
	}
	LightPalette = Palette{
		Green:  "#79740e",
		Yellow: "#b57614",
		Orange: "#af3a03",
		Red:    "#9d0006",
		Blue:   "#076678",
		Purple: "#8f3f71",
		Dim:    "#7c6f64",
		Fg:     "#3c3836",
		Header: "#8f3f71",
	}
)

var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorOrange lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleOrange lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

func init() {
	usePalette(LightPalette)
}

// ApplyTheme switches every color and style to the theme's palette.
// It is not safe to call while other goroutines are rendering.
func ApplyTheme(t domain.Theme) {
	if t == domain.ThemeDark {
		usePalette(DarkPalette)
		return
	}
	usePalette(LightPalette)
}

func usePalette(p Palette) {
	ColorGreen, ColorYellow, ColorOrange, ColorRed = p.Green, p.Yellow, p.Orange, p.Red
	ColorBlue, ColorPurple, ColorDim, ColorFg, ColorHeader = p.Blue, p.Purple, p.Dim, p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// QualityStyle returns the style for a sleep quality band.
func QualityStyle(band domain.QualityBand) lipgloss.Style {
	switch band {
	case domain.QualityVeryPoor:
		return StyleRed
	case domain.QualityInsufficient:
		return StyleOrange
	case domain.QualityBorderline:
		return StyleYellow
	case domain.QualityOptimal:
		return StyleGreen
	case domain.QualityExtended:
		return StyleBlue
	default:
		return StyleDim
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
