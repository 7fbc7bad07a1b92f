package printers

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ForStdout returns a PrettyPrint that drops styling when stdout is redirected.
func ForStdout() *PrettyPrint {
	plain := !IsTerminal(os.Stdout)
	if plain {
		color.NoColor = true
	}
	return &PrettyPrint{Plain: plain}
}
