package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "folio",
		Short: options.Wrap80("A project journal for makers: entries, milestones and a calendar on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		// main reports the error unless --json output already did.
		SilenceErrors: true,
	}
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	registerCompletions(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addProject(topLevel)
	addEntry(topLevel)
	addMilestone(topLevel)
	addSearch(topLevel)
	addTimeline(topLevel)
	addCalendar(topLevel)
	addTemplate(topLevel)
	addLocation(topLevel)
	addReport(topLevel)
	addReview(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func registerCompletions(cmd *cobra.Command) {
	if cmd.Flags().Lookup("project") != nil {
		_ = cmd.RegisterFlagCompletionFunc("project", projectCompletions)
	}
	for _, c := range cmd.Commands() {
		registerCompletions(c)
	}
}
