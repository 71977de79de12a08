package sleepcalc

import "github.com/alexanderramin/slumber/internal/domain"

// Quality classifies a session total into a duration band.
func Quality(totalMinutes int) domain.QualityBand {
	hours := float64(totalMinutes) / 60

	switch {
	case hours < 4:
		return domain.QualityVeryPoor
	case hours < 6:
		return domain.QualityInsufficient
	case hours < 7:
		return domain.QualityBorderline
	case hours <= 9:
		return domain.QualityOptimal
	default:
		return domain.QualityExtended
	}
}

// QualityMessage returns the human description for a band.
func QualityMessage(band domain.QualityBand) string {
	switch band {
	case domain.QualityVeryPoor:
		return "Very poor sleep duration"
	case domain.QualityInsufficient:
		return "Insufficient sleep"
	case domain.QualityBorderline:
		return "Borderline sleep duration"
	case domain.QualityOptimal:
		return "Optimal sleep duration"
	case domain.QualityExtended:
		return "Extended sleep duration"
	default:
		return "Unknown"
	}
}
