package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/runner/search"
	"tableflip.dev/folio/pkg/runner/timeline"
)

func addSearch(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	so := &options.IDOptions{}
	wo := &options.WindowOptions{}
	var tag string
	var tags, content bool
	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Find entries by text and tag, newest first.",
		Long: options.Wrap80("Search matches text against entry titles, content and tags, ignoring case. " +
			"A tag filter matches a whole tag exactly."),
		Example: `
folio search glue
folio search --tag oak -p "oak chair"
folio search --tags
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			window, _, err := wo.Get()
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd.Context(), func(s *session) error {
				s.Printer.ShowID = so.ShowID
				s.Printer.ShowContent = content
				r := search.Search{
					Service:  s.Service,
					Printer:  s.Printer,
					JSON:     output.JSON,
					Project:  po.Project,
					Query:    strings.Join(args, " "),
					Tag:      tag,
					Since:    window,
					ListTags: tags,
				}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddProjectArg(cmd, po)
	options.AddShowIDArgs(cmd, so)
	options.AddWindowArgs(cmd, wo, "")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only entries carrying this exact tag.")
	cmd.Flags().BoolVar(&tags, "tags", false, "List the distinct tags of the matching entries instead.")
	cmd.Flags().BoolVarP(&content, "content", "c", false, "Print entry content below each entry.")
	topLevel.AddCommand(cmd)
}

func addTimeline(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	so := &options.IDOptions{}
	wo := &options.WindowOptions{}
	var tag string
	var content bool
	cmd := &cobra.Command{
		Use:     "timeline [text]",
		Aliases: []string{"tl"},
		Short:   "Show entries grouped by day, newest day first.",
		Example: `
folio timeline
folio timeline -p "oak chair" --since 2w -c
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			window, _, err := wo.Get()
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd.Context(), func(s *session) error {
				s.Printer.ShowID = so.ShowID
				s.Printer.ShowContent = content
				r := timeline.Timeline{
					Service: s.Service,
					Printer: s.Printer,
					JSON:    output.JSON,
					Project: po.Project,
					Query:   strings.Join(args, " "),
					Tag:     tag,
					Since:   window,
				}
				return r.Do(cmd.Context())
			})
		},
	}
	options.AddProjectArg(cmd, po)
	options.AddShowIDArgs(cmd, so)
	options.AddWindowArgs(cmd, wo, "")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only entries carrying this exact tag.")
	cmd.Flags().BoolVarP(&content, "content", "c", false, "Print entry content below each entry.")
	topLevel.AddCommand(cmd)
}
