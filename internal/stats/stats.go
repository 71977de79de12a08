// Package stats derives aggregate figures from session totals. Inputs are
// ordered newest first and are never modified.
package stats

import (
	"math"

	"github.com/alexanderramin/slumber/internal/domain"
)

// DefaultTrendWindow is the number of recent sessions compared by Trend.
const DefaultTrendWindow = 5

// Extremes holds the shortest and longest session totals in minutes.
type Extremes struct {
	Min int
	Max int
}

// Summary bundles every statistic shown for a history.
type Summary struct {
	Count       int
	Average     int
	Extremes    Extremes
	Consistency float64
	Trend       int
	Direction   domain.TrendDirection
}

// Average returns the mean rounded to the nearest minute, or 0 for no input.
func Average(totals []int) int {
	if len(totals) == 0 {
		return 0
	}
	return int(math.Round(mean(totals)))
}

// ComputeExtremes returns the shortest and longest totals, or
// domain.ErrEmptyHistory when there are none.
func ComputeExtremes(totals []int) (Extremes, error) {
	if len(totals) == 0 {
		return Extremes{}, domain.ErrEmptyHistory
	}
	ext := Extremes{Min: totals[0], Max: totals[0]}
	for _, v := range totals[1:] {
		if v < ext.Min {
			ext.Min = v
		}
		if v > ext.Max {
			ext.Max = v
		}
	}
	return ext, nil
}

// Consistency is 100 minus the coefficient of variation as a percentage,
// clamped to [0, 100]. Deviations are taken around the rounded Average so
// the figure agrees with the average shown beside it. A zero average
// yields 0.
func Consistency(totals []int) float64 {
	if len(totals) == 0 {
		return 0
	}
	m := float64(Average(totals))
	if m == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range totals {
		d := float64(v) - m
		sumSq += d * d
	}
	stdDev := math.Sqrt(sumSq / float64(len(totals)))

	return math.Max(0, math.Min(100, 100-stdDev/m*100))
}

// Trend is the newest total minus the oldest total among the newest
// min(window, len(totals)) entries.
func Trend(totals []int, window int) int {
	n := min(window, len(totals))
	if n <= 0 {
		return 0
	}
	return totals[0] - totals[n-1]
}

// Direction classifies a trend value.
func Direction(trend int) domain.TrendDirection {
	switch {
	case trend > 0:
		return domain.TrendUp
	case trend < 0:
		return domain.TrendDown
	default:
		return domain.TrendSteady
	}
}

// Summarize computes every statistic in one call. An empty history yields a
// zero Summary together with domain.ErrEmptyHistory.
func Summarize(totals []int, window int) (Summary, error) {
	ext, err := ComputeExtremes(totals)
	if err != nil {
		return Summary{Direction: domain.TrendSteady}, err
	}
	trend := Trend(totals, window)
	return Summary{
		Count:       len(totals),
		Average:     Average(totals),
		Extremes:    ext,
		Consistency: Consistency(totals),
		Trend:       trend,
		Direction:   Direction(trend),
	}, nil
}

func mean(totals []int) float64 {
	var sum float64
	for _, v := range totals {
		sum += float64(v)
	}
	return sum / float64(len(totals))
}
