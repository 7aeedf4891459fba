package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lintclimate/lintclimate/internal/domain"
)

var (
	accent = lipgloss.Color("#D97706") // amber
	dim    = lipgloss.Color("#6B7280") // muted gray

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle = lipgloss.NewStyle().Foreground(dim)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
)

// RenderSummary renders a finished run as a boxed overview.
func RenderSummary(s *domain.RunSummary) string {
	var b strings.Builder

	verdict := passStyle.Render("PASS")
	if !s.Pass {
		verdict = failStyle.Render("FAIL")
	}
	b.WriteString(titleStyle.Render("lintclimate") + "  " + verdict + "\n\n")

	row(&b, "files", fmt.Sprintf("%d listed, %d linted", s.InputFiles, len(s.Files)))
	row(&b, "errors", countStyle(s.Errors, failStyle))
	row(&b, "warnings", countStyle(s.Warnings, warnStyle))
	if len(s.Issues) > 0 {
		row(&b, "issues", fmt.Sprintf("%d fingerprinted", len(s.Issues)))
	}
	if s.CommitHash != "" {
		row(&b, "commit", shortHash(s.CommitHash))
	}
	b.WriteString("\n" + s.Message)

	return boxStyle.Render(b.String()) + "\n"
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label)), value)
}

func countStyle(n int, style lipgloss.Style) string {
	if n == 0 {
		return "0"
	}
	return style.Render(fmt.Sprintf("%d", n))
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
