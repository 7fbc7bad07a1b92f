package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/timeutil"
)

// CalendarOptions selects the month and week layout.
type CalendarOptions struct {
	Month        string
	FirstWeekday string
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Month to show, example: --month=2025-03. Defaults to the current month.`)
	cmd.Flags().StringVar(&o.FirstWeekday, "first-weekday", "",
		"First day of the week. Defaults to the first_weekday setting.")
}

// Resolve returns the requested month and weekday, falling back to now and def.
func (o *CalendarOptions) Resolve(now time.Time, def time.Weekday, loc *time.Location) (time.Time, time.Weekday, error) {
	month := timeutil.FirstOfMonth(now, loc)
	if o.Month != "" {
		m, err := timeutil.ParseMonth(o.Month, loc)
		if err != nil {
			return time.Time{}, 0, err
		}
		month = m
	}
	weekday := def
	if o.FirstWeekday != "" {
		wd, err := timeutil.ParseWeekday(o.FirstWeekday)
		if err != nil {
			return time.Time{}, 0, err
		}
		weekday = wd
	}
	return month, weekday, nil
}
