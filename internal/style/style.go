// Package style provides styled terminal output for the hyena CLI,
// built on lipgloss so severity-colored findings and summary lines read
// consistently across terminals.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	noColor bool
)

// SetNoColor disables all styling — called by cmd/hyena with the value of
// its --no-color flag.
func SetNoColor(v bool) {
	noColor = v
}

func render(s lipgloss.Style, prefix, msg string) string {
	if noColor {
		return prefix + msg
	}
	return s.Render(prefix + msg)
}

// Error formats an error-severity line.
func Error(msg string) string { return render(errorStyle, "✗ ", msg) }

// Warning formats a warning-severity line.
func Warning(msg string) string { return render(warningStyle, "! ", msg) }

// Info formats an info-severity line.
func Info(msg string) string { return render(infoStyle, "· ", msg) }

// Success formats a clean-run summary line.
func Success(msg string) string { return render(successStyle, "✓ ", msg) }

// Dim formats a secondary, low-emphasis line.
func Dim(msg string) string { return render(dimStyle, "", msg) }

// Summary formats the counts line printed after a scan unless --quiet is set.
func Summary(files, types, functions, callSites, errs, warns, infos int) string {
	base := fmt.Sprintf(
		"%d files · %d types · %d functions · %d call sites — %d errors, %d warnings, %d info",
		files, types, functions, callSites, errs, warns, infos,
	)
	if errs > 0 {
		return Error(base)
	}
	if warns > 0 {
		return Warning(base)
	}
	return Success(base)
}
