package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/review"
)

func addReview(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "review",
		Short: "List in-progress projects that are stale or have overdue milestones",
		Long: `Review lists in-progress projects that have not been touched within the
window, or that carry overdue milestones, least recently touched first.

Examples:
  folio review
  folio review --since 2w`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			stale, _, err := wo.Get()
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd.Context(), func(s *session) error {
				r := review.Review{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Stale: stale}
				return r.Do(cmd.Context())
			})
		},
	}

	options.AddWindowArgs(cmd, wo, "2w")
	topLevel.AddCommand(cmd)
}
