package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	msgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// renderReport formats a report for the terminal.
func renderReport(rep *Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(rep.Mesh))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d faces, %d vertices, checks: %s",
		rep.Faces, rep.Vertices, strings.Join(rep.Checks, ", "))))
	b.WriteString("\n")

	if rep.Status == "ok" {
		b.WriteString(okStyle.Render("PASS"))
		return b.String()
	}

	b.WriteString(failStyle.Render("FAIL (" + rep.Status + ")"))
	for _, msg := range rep.Messages {
		b.WriteString("\n  ")
		b.WriteString(msgStyle.Render(msg))
	}
	return b.String()
}
