package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/runner/catalog"
)

func addLocation(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "location",
		Aliases: []string{"locations", "loc"},
		Short:   "Manage the places entries can be tagged with.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := catalog.Locations{Service: s.Service, Printer: s.Printer, JSON: output.JSON}
				return r.Do(cmd.Context())
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a location.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := catalog.AddLocation{Service: s.Service, Printer: s.Printer, JSON: output.JSON, Name: strings.Join(args, " ")}
				return r.Do(cmd.Context())
			})
		},
	}
	del := &cobra.Command{
		Use:     "delete <location>",
		Aliases: []string{"rm"},
		Short:   "Delete a location. Entries keep the copy they were given.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), func(s *session) error {
				r := catalog.DeleteLocation{Service: s.Service, Ref: args[0]}
				return r.Do(cmd.Context())
			})
		},
	}
	cmd.AddCommand(add, del)

	topLevel.AddCommand(cmd)
}
