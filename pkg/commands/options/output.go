package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/app"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// ReportedError wraps a failure that was already written to the output, so
// the caller only has to set the exit status.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// HandleError writes err as a JSON object when JSON output is on. The error
// is still returned so the command exits non-zero.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
			"kind":  errorKind(err),
		}
		b, jerr := json.Marshal(out)
		if jerr != nil {
			return errors.Join(err, jerr)
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return &ReportedError{Err: err}
	}
	return err
}

func errorKind(err error) string {
	var (
		pe *app.PersistenceError
		me *app.MediaUploadError
	)
	switch {
	case app.IsValidation(err):
		return "validation"
	case app.IsNotFound(err):
		return "not_found"
	case errors.As(err, &pe):
		return "persistence"
	case errors.As(err, &me):
		return "media"
	default:
		return "error"
	}
}
