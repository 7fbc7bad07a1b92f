package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/entry"
)

// DraftOptions carries the flags that describe an entry.
type DraftOptions struct {
	Content  string
	Tags     string
	Location string
	Template string
}

func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVarP(&o.Content, "content", "m", "",
		"Entry body text.")
	cmd.Flags().StringVarP(&o.Tags, "tags", "t", "",
		`Comma separated tags, example: --tags="wood, glue".`)
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Location id or name from the location catalog.")
}

func AddTemplateArg(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVar(&o.Template, "template", "",
		"Template id or name to seed content and tags from.")
}

// TagList returns the parsed --tags value.
func (o *DraftOptions) TagList() []string {
	return entry.ParseTags(o.Tags)
}
