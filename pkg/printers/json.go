package printers

import (
	"encoding/json"
	"fmt"
)

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	enc := json.NewEncoder(pp.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Notice prints a one line status message.
func (pp *PrettyPrint) Notice(format string, args ...any) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", args...)
}
