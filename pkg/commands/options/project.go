// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ProjectOptions selects the project a command works on.
type ProjectOptions struct {
	Project string
}

// AddProjectArg registers --project. An empty value means every project for
// commands that allow it.
func AddProjectArg(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVarP(&o.Project, "project", "p", "",
		"Project id, id prefix or title.")
}

// AddRequiredProjectArg registers --project and marks it required.
func AddRequiredProjectArg(cmd *cobra.Command, o *ProjectOptions) {
	AddProjectArg(cmd, o)
	_ = cmd.MarkFlagRequired("project")
}
