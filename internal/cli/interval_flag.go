package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/sleepcalc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// intervalListFlag collects repeated --interval START,END values.
type intervalListFlag struct {
	intervals []domain.Interval
}

var _ pflag.Value = (*intervalListFlag)(nil)

func (f *intervalListFlag) String() string {
	parts := make([]string, 0, len(f.intervals))
	for _, iv := range f.intervals {
		parts = append(parts, iv.Start.Format(domain.TimestampLayout)+","+iv.End.Format(domain.TimestampLayout))
	}
	return strings.Join(parts, " ")
}

func (f *intervalListFlag) Set(v string) error {
	iv, err := parseInterval(v)
	if err != nil {
		return err
	}
	f.intervals = append(f.intervals, iv)
	return nil
}

func (f *intervalListFlag) Type() string { return "start,end" }

func parseInterval(v string) (domain.Interval, error) {
	startStr, endStr, ok := strings.Cut(v, ",")
	if !ok {
		return domain.Interval{}, fmt.Errorf("interval %q must be START,END", v)
	}
	start, err := domain.ParseTimestamp(startStr)
	if err != nil {
		return domain.Interval{}, err
	}
	end, err := domain.ParseTimestamp(endStr)
	if err != nil {
		return domain.Interval{}, err
	}
	return domain.Interval{Start: start, End: end}, nil
}

// intervalInput binds the interval flags shared by log and preview.
type intervalInput struct {
	list     intervalListFlag
	start    string
	duration int
}

func (in *intervalInput) register(cmd *cobra.Command) {
	cmd.Flags().Var(&in.list, "interval", "Sleep interval as START,END (YYYY-MM-DDTHH:MM); repeatable")
	cmd.Flags().StringVar(&in.start, "start", "", "Start of a sleep interval, used with --duration")
	cmd.Flags().IntVar(&in.duration, "duration", 0, "Length in minutes of the interval beginning at --start")
}

// collect returns the --interval values plus the --start/--duration interval.
func (in *intervalInput) collect() ([]domain.Interval, error) {
	ivs := append([]domain.Interval(nil), in.list.intervals...)
	if in.start == "" && in.duration == 0 {
		return ivs, nil
	}
	if in.start == "" || in.duration <= 0 {
		return nil, errors.New("--start and a positive --duration must be given together")
	}
	start, err := domain.ParseTimestamp(in.start)
	if err != nil {
		return nil, err
	}
	return append(ivs, domain.Interval{Start: start, End: sleepcalc.EndFromDuration(start, in.duration)}), nil
}
