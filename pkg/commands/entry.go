package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/entry"
)

func addEntry(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "entry",
		Aliases: []string{"entries", "e"},
		Short:   "Write and manage journal entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEntryAdd(cmd)
	addEntryList(cmd)
	addEntryUpdate(cmd)
	addEntryDelete(cmd)
	addEntryAttach(cmd)
	addEntryExport(cmd)

	topLevel.AddCommand(cmd)
}

func addEntryAdd(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	do := &options.DraftOptions{}
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an entry to a project.",
		Example: `
folio entry add -p "oak chair" Glued the legs --tags glue,oak
folio entry add -p "oak chair" Tried a new finish --template "material test" -l workshop
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := entry.Add{
					Service:  s.Service,
					Printer:  s.Printer,
					JSON:     output.JSON,
					Project:  po.Project,
					Title:    strings.Join(args, " "),
					Content:  do.Content,
					Tags:     do.TagList(),
					Location: do.Location,
					Template: do.Template,
				}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	options.AddDraftArgs(cmd, do)
	options.AddTemplateArg(cmd, do)
	parent.AddCommand(cmd)
}

func addEntryList(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	so := &options.IDOptions{}
	wo := &options.WindowOptions{}
	var content bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries, newest first.",
		Example: `
folio entry list
folio entry list -p "oak chair" --since 2w -k
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, _, err := wo.Get()
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd.Context(), func(s *session) error {
				s.Printer.ShowID = so.ShowID
				s.Printer.ShowContent = content
				r := entry.List{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Project: po.Project, Since: window}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddProjectArg(cmd, po)
	options.AddShowIDArgs(cmd, so)
	options.AddWindowArgs(cmd, wo, "")
	cmd.Flags().BoolVarP(&content, "content", "c", false, "Print entry content below each entry.")
	parent.AddCommand(cmd)
}

func addEntryUpdate(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	do := &options.DraftOptions{}
	var title string
	cmd := &cobra.Command{
		Use:   "update <entry>",
		Short: "Edit an entry. Only the flags given are changed.",
		Example: `
folio entry update -p "oak chair" 3f2a --title "Glued and clamped the legs"
folio entry update -p "oak chair" "glued the legs" --tags ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := entry.Update{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Project: po.Project, Ref: args[0]}
				flags := cmd.Flags()
				if flags.Changed("title") {
					r.Title = &title
				}
				if flags.Changed("content") {
					r.Content = &do.Content
				}
				if flags.Changed("tags") {
					tags := do.TagList()
					r.Tags = &tags
				}
				if flags.Changed("location") {
					r.Location = &do.Location
				}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	options.AddDraftArgs(cmd, do)
	cmd.Flags().StringVar(&title, "title", "", "New title.")
	parent.AddCommand(cmd)
}

func addEntryDelete(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	cmd := &cobra.Command{
		Use:     "delete <entry>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := entry.Delete{Service: s.Service, Project: po.Project, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	parent.AddCommand(cmd)
}

func addEntryAttach(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	cmd := &cobra.Command{
		Use:   "attach <entry> <image>",
		Short: "Attach an image to an entry.",
		Example: `
folio entry attach -p "oak chair" "dry fit" ~/Pictures/dry-fit.jpg
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := entry.Attach{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Project: po.Project, Ref: args[0], File: args[1]}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	parent.AddCommand(cmd)
}

func addEntryExport(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	cmd := &cobra.Command{
		Use:   "export <entry>",
		Short: "Export an entry as a text document into the export directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := entry.Export{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Project: po.Project, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddRequiredProjectArg(cmd, po)
	parent.AddCommand(cmd)
}
