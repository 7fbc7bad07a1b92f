package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/timeutil"
)

// WindowOptions holds a look-back window such as --since 1w.
type WindowOptions struct {
	Since string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions, def string) {
	cmd.Flags().StringVar(&o.Since, "since", def,
		"Time window to include, for example 3d, 1w or 2w3d.")
}

// Get returns the window duration and its canonical label. An empty window
// returns zero.
func (o *WindowOptions) Get() (time.Duration, string, error) {
	if o.Since == "" {
		return 0, "", nil
	}
	return timeutil.ParseWindow(o.Since)
}
