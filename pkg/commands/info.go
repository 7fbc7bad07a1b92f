package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the workspace and where it is stored.",
		Example: `
folio info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := info.Info{
					Settings: s.Settings,
					Service:  s.Service,
					Printer:  s.Printer,
					JSON:     output.JSON,
				}
				return r.Do(cmd.Context())
			})
		},
	}

	topLevel.AddCommand(cmd)
}
