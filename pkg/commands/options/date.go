package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/timeutil"
)

// DateOptions holds a date flag such as --due.
type DateOptions struct {
	Value string
}

func AddDueArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Value, "due", "",
		`Due date, example: --due="2025-02-28" or --due="2/28".`)
}

// Get parses the flag. An empty flag returns the zero time.
func (o *DateOptions) Get(now time.Time, loc *time.Location) (time.Time, error) {
	if o.Value == "" {
		return time.Time{}, nil
	}
	return timeutil.ParseDate(o.Value, now, loc)
}
