package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" (case-sensitive).
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type QualityBand string

const (
	QualityVeryPoor     QualityBand = "very_poor"
	QualityInsufficient QualityBand = "insufficient"
	QualityBorderline   QualityBand = "borderline"
	QualityOptimal      QualityBand = "optimal"
	QualityExtended     QualityBand = "extended"
)

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendSteady TrendDirection = "steady"
)
