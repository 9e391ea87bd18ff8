// Package output prints styled text to the console.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	badgeStyle   = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("2")).Foreground(lipgloss.Color("15"))
	ruleStyle    = lipgloss.NewStyle().Faint(true)
)

func FprintWarning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintError writes to stderr so it never mixes with menu output
func PrintError(format string, args ...interface{}) {
	FprintError(os.Stderr, format, args...)
}

func FprintError(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}

// Badge renders a short label such as "[description]"
func Badge(label string) string {
	return badgeStyle.Render("[" + label + "]")
}

// Section is a badge line followed by its body
func Section(label, body string) string {
	return Badge(label) + "\n" + strings.TrimRight(body, "\n")
}

// Rule is the separator printed above each menu
func Rule() string {
	return ruleStyle.Render(strings.Repeat("-", 31))
}
