package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	co := &options.CalendarOptions{}
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with milestone due dates colored by urgency.",
		Example: `
folio calendar
folio calendar --month 2025-04 --first-weekday sunday
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				month, weekday, err := co.Resolve(s.Service.Now(), s.Settings.FirstWeekday, s.Service.Location())
				if err != nil {
					return err
				}
				r := calendar.Month{
					Service:      s.Service,
					Printer:      s.Printer,
					JSON:         output.JSON,
					Project:      po.Project,
					Month:        month,
					FirstWeekday: weekday,
				}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddProjectArg(cmd, po)
	options.AddCalendarArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
