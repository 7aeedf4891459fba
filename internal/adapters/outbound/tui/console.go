package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

const prefix = ">> "

// Console implements domain.Reporter for a terminal. Findings and warnings
// go to the error writer; the passing verdict goes to the output writer.
type Console struct {
	out io.Writer
	err io.Writer

	okStyle   lipgloss.Style
	warnStyle lipgloss.Style
	errStyle  lipgloss.Style
	alert     *color.Color
}

// NewConsole creates a Console. Styles follow each writer's color support,
// so redirected output stays plain.
func NewConsole(out, err io.Writer) *Console {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(err)
	return &Console{
		out:       out,
		err:       err,
		okStyle:   outR.NewStyle().Foreground(success),
		warnStyle: errR.NewStyle().Foreground(warning).Bold(true),
		errStyle:  errR.NewStyle().Foreground(danger),
		alert:     color.New(color.FgRed),
	}
}

func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.err, c.warnStyle.Render(prefix)+msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.err, c.errStyle.Render(prefix)+msg)
}

func (c *Console) OK(msg string) {
	fmt.Fprintln(c.out, c.okStyle.Render(prefix)+msg)
}

// Alert writes msg in red without a prefix, the way build tools expect
// MSBuild lines.
func (c *Console) Alert(msg string) {
	c.alert.Fprintln(c.err, msg)
}
