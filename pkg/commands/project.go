package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/project"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "p"},
		Short:   "Create, list and edit projects.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectList(cmd)
	addProjectShow(cmd)
	addProjectCreate(cmd)
	addProjectUpdate(cmd)
	addProjectDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addProjectList(parent *cobra.Command) {
	var query, status string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects.",
		Example: `
folio project list
folio project list --status "in progress"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := project.List{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Query: query, Status: status}
				return r.Do(cmd.Context())
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only projects whose title or description contains this text.")
	cmd.Flags().StringVar(&status, "status", "", "Only projects with this status: concept, in progress or completed.")
	parent.AddCommand(cmd)
}

func addProjectShow(parent *cobra.Command) {
	so := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:               "show <project>",
		ValidArgsFunction: projectCompletions,
		Short:             "Show a project with its entries and milestones.",
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				s.Printer.ShowID = so.ShowID
				s.Printer.ShowContent = true
				r := project.Show{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, so)
	parent.AddCommand(cmd)
}

func addProjectCreate(parent *cobra.Command) {
	var description, status string
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a project.",
		Example: `
folio project create Oak rocking chair --status "in progress"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := project.Create{
					Service:     s.Service,
					Printer:     s.Printer,
					JSON:        output.JSON,
					Title:       strings.Join(args, " "),
					Description: description,
					Status:      status,
				}
				return r.Do(cmd.Context())
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description.")
	cmd.Flags().StringVar(&status, "status", "", "Concept, in progress or completed. Defaults to concept.")
	parent.AddCommand(cmd)
}

func addProjectUpdate(parent *cobra.Command) {
	var title, description, status string
	cmd := &cobra.Command{
		Use:               "update <project>",
		ValidArgsFunction: projectCompletions,
		Short:             "Change the title, description or status of a project.",
		Example: `
folio project update "oak rocking chair" --status completed
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := project.Update{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Ref: args[0]}
				if cmd.Flags().Changed("title") {
					r.Title = &title
				}
				if cmd.Flags().Changed("description") {
					r.Description = &description
				}
				if cmd.Flags().Changed("status") {
					r.Status = &status
				}
				return r.Do(cmd.Context())
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description.")
	cmd.Flags().StringVar(&status, "status", "", "New status.")
	parent.AddCommand(cmd)
}

func addProjectDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "delete <project>",
		ValidArgsFunction: projectCompletions,
		Aliases:           []string{"rm"},
		Short:             "Delete a project with all of its entries and milestones.",
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := project.Delete{Service: s.Service, Printer: s.Printer, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	parent.AddCommand(cmd)
}
