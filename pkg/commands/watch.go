package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow workspace changes, including edits made by other folio processes.",
		Example: `
folio watch
folio watch --json | jq .kind
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := watch.Watch{Service: s.Service, Printer: s.Printer, Log: s.Log.Named("watch"), JSON: output.JSON}
				return r.Do(cmd.Context())
			})
		},
	}

	topLevel.AddCommand(cmd)
}
