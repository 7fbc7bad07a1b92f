package commands

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/search"
	"tableflip.dev/folio/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(folio completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(folio completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// projectCompletions offers project titles matching toComplete. It reads the
// workspace directly so completion never seeds catalogs or starts savers.
func projectCompletions(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	p, err := store.Load(settings)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ws, err := p.LoadWorkspace(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, pr := range search.FilterProjects(ws.Projects, toComplete) {
		out = append(out, strconv.Quote(pr.Title))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
