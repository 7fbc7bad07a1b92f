package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/report"
	"tableflip.dev/folio/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recent entries and due milestones grouped by project",
		Long: `Report lists the entries written and the milestones due within the specified time window, grouped by project.

Examples:
  folio report
  folio report --since 3d
  folio report --since 1w2d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			duration, label, err := timeutil.ParseWindow(wo.Since)
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd.Context(), func(s *session) error {
				r := report.Report{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Window: duration, Label: label}
				return r.Do(cmd.Context())
			})
		},
	}

	options.AddWindowArgs(cmd, wo, timeutil.DefaultWindow)
	topLevel.AddCommand(cmd)
}
