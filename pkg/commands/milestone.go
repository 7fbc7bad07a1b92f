package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/milestone"
)

func addMilestone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "milestone",
		Aliases: []string{"milestones", "m"},
		Short:   "Track dated goals for a project.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMilestoneAdd(cmd)
	addMilestoneList(cmd)
	addMilestoneUpdate(cmd)
	addMilestoneToggle(cmd)
	addMilestoneDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addMilestoneAdd(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	due := &options.DateOptions{}
	var description string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a milestone.",
		Example: `
folio milestone add -p "oak chair" Finish joinery --due 2025-04-01
folio milestone add -p "oak chair" First coat of oil --due 4/12
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				d, err := due.Get(s.Service.Now(), s.Service.Location())
				if err != nil {
					return err
				}
				r := milestone.Add{
					Service:     s.Service,
					Printer:     s.Printer,
					JSON:        output.JSON,
					Project:     po.Project,
					Title:       strings.Join(args, " "),
					Description: description,
					Due:         d,
				}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	options.AddDueArgs(cmd, due)
	_ = cmd.MarkFlagRequired("due")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Milestone description.")
	parent.AddCommand(cmd)
}

func addMilestoneList(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	so := &options.IDOptions{}
	var completed, all bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List open milestones soonest first.",
		Example: `
folio milestone list
folio milestone list -p "oak chair" --completed
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				s.Printer.ShowID = so.ShowID
				r := milestone.List{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Project: po.Project, Completed: completed, All: all}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddProjectArg(cmd, po)
	options.AddShowIDArgs(cmd, so)
	cmd.Flags().BoolVar(&completed, "completed", false, "List completed milestones, most recently due first.")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List open and completed milestones.")
	parent.AddCommand(cmd)
}

func addMilestoneUpdate(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	due := &options.DateOptions{}
	var title, description string
	cmd := &cobra.Command{
		Use:   "update <milestone>",
		Short: "Edit a milestone. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := milestone.Update{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Project: po.Project, Ref: args[0]}
				flags := cmd.Flags()
				if flags.Changed("title") {
					r.Title = &title
				}
				if flags.Changed("description") {
					r.Description = &description
				}
				if flags.Changed("due") {
					d, err := due.Get(s.Service.Now(), s.Service.Location())
					if err != nil {
						return err
					}
					r.Due = &d
				}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	options.AddDueArgs(cmd, due)
	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description.")
	parent.AddCommand(cmd)
}

func addMilestoneToggle(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	cmd := &cobra.Command{
		Use:     "toggle <milestone>",
		Aliases: []string{"done"},
		Short:   "Mark a milestone completed, or open again.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := milestone.Toggle{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Project: po.Project, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	parent.AddCommand(cmd)
}

func addMilestoneDelete(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	cmd := &cobra.Command{
		Use:     "delete <milestone>",
		Aliases: []string{"rm"},
		Short:   "Delete a milestone.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := milestone.Delete{Service: s.Service, Project: po.Project, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	parent.AddCommand(cmd)
}
