// Package style provides terminal styling for CLI output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	symbol  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	library = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ok      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	fail    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// IsDisabled returns true if colors are disabled via environment.
func IsDisabled() bool {
	return os.Getenv("GNOMESHIM_NO_COLOR") != "" || os.Getenv("NO_COLOR") != ""
}

func render(s lipgloss.Style, text string) string {
	if IsDisabled() {
		return text
	}
	return s.Render(text)
}

// Symbol styles an exported symbol name.
func Symbol(name string) string { return render(symbol, name) }

// Library styles a library name.
func Library(name string) string { return render(library, name) }

// OK styles a success marker.
func OK(text string) string { return render(ok, text) }

// Fail styles a failure marker.
func Fail(text string) string { return render(fail, text) }
