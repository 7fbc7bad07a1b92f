package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/catalog"
)

func addTemplate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"templates"},
		Short:   "Manage the templates new entries can start from.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := catalog.Templates{Service: s.Service, Printer: s.Printer, JSON: output.JSON}
				return r.Do(cmd.Context())
			})
		},
	}

	addTemplateShow(cmd)
	addTemplateAdd(cmd)
	addTemplateUpdate(cmd)
	addTemplateDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addTemplateShow(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show <template>",
		Short: "Show the draft a template seeds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := catalog.ShowTemplate{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	parent.AddCommand(cmd)
}

func addTemplateAdd(parent *cobra.Command) {
	do := &options.DraftOptions{}
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a template.",
		Example: `
folio template add Glue up --content "Glue:\n\nClamp time:" --tags glue
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := catalog.AddTemplate{
					Service: s.Service,
					Printer: s.Printer,
					JSON:    output.JSON,
					Name:    strings.Join(args, " "),
					Content: unescape(do.Content),
					Tags:    do.TagList(),
				}
				return r.Do(cmd.Context())
			})
		},
	}
	addTemplateFlags(cmd, do)
	parent.AddCommand(cmd)
}

func addTemplateUpdate(parent *cobra.Command) {
	do := &options.DraftOptions{}
	var name string
	cmd := &cobra.Command{
		Use:   "update <template>",
		Short: "Edit a template. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := catalog.UpdateTemplate{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Ref: args[0]}
				flags := cmd.Flags()
				if flags.Changed("name") {
					r.Name = &name
				}
				if flags.Changed("content") {
					content := unescape(do.Content)
					r.Content = &content
				}
				if flags.Changed("tags") {
					tags := do.TagList()
					r.Tags = &tags
				}
				return r.Do(cmd.Context())
			})
		},
	}
	addTemplateFlags(cmd, do)
	cmd.Flags().StringVar(&name, "name", "", "New name.")
	parent.AddCommand(cmd)
}

func addTemplateDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <template>",
		Aliases: []string{"rm"},
		Short:   "Delete a template. Entries created from it keep their content.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := catalog.DeleteTemplate{Service: s.Service, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	parent.AddCommand(cmd)
}

func addTemplateFlags(cmd *cobra.Command, do *options.DraftOptions) {
	cmd.Flags().StringVarP(&do.Content, "content", "m", "", `Template content. "\n" starts a new line.`)
	cmd.Flags().StringVarP(&do.Tags, "tags", "t", "", "Comma separated default tags.")
}

func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
