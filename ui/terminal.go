package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// TerminalUI writes results to out and status (spinner, notices) to status,
// so that `lensens text ... > file` only captures the value.
type TerminalUI struct {
	out      io.Writer
	status   io.Writer
	au       aurora.Aurora
	animated bool
}

// NewTerminalUI writes to os.Stdout and os.Stderr. Colours are enabled when
// stdout is a real terminal.
func NewTerminalUI() *TerminalUI {
	colorsEnabled := term.IsTerminal(int(os.Stdout.Fd()))
	return &TerminalUI{
		out:      os.Stdout,
		status:   os.Stderr,
		au:       aurora.NewAurora(colorsEnabled),
		animated: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	default: // SeverityInfo
		return t.Text
	}
}

func (u *TerminalUI) Value(v string) {
	fmt.Fprintln(u.out, v)
}

func (u *TerminalUI) Info(format string, args ...any) {
	fmt.Fprintln(u.out, fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	fmt.Fprintln(u.out, u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	fmt.Fprintln(u.status, u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	fmt.Fprintln(u.status, u.au.Red(fmt.Sprintf(format, args...)).String())
}

// KeyValue pads the label column to the longest label so values line up.
func (u *TerminalUI) KeyValue(rows [][2]string) {
	maxLabel := 0
	for _, r := range rows {
		if len(r[0]) > maxLabel {
			maxLabel = len(r[0])
		}
	}
	for _, r := range rows {
		fmt.Fprintf(u.out, "%-*s  %s\n", maxLabel, r[0], r[1])
	}
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	ncols := len(headers)

	// visible width, ANSI stripped
	cellWidth := func(s string) int {
		return runewidth.StringWidth(ansi.Strip(s))
	}

	widths := make([]int, ncols)
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < ncols && i < len(row); i++ {
			if w := cellWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	pad := func(s string, w int) string {
		visible := cellWidth(s)
		if visible >= w {
			return s
		}
		return s + strings.Repeat(" ", w-visible)
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle := lipgloss.NewStyle().Bold(true)
	border := func(s string) string { return borderStyle.Render(s) }

	dashes := make([]string, ncols)
	for i, w := range widths {
		dashes[i] = strings.Repeat("─", w+2)
	}

	renderRow := func(cells []string, style *lipgloss.Style) string {
		parts := make([]string, ncols)
		for i := 0; i < ncols; i++ {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			if style != nil {
				val = style.Render(val)
			}
			parts[i] = " " + pad(val, widths[i]) + " "
		}
		return border("│") + strings.Join(parts, border("│")) + border("│")
	}

	fmt.Fprintln(u.out, border("┌"+strings.Join(dashes, "┬")+"┐"))
	fmt.Fprintln(u.out, renderRow(headers, &headerStyle))
	fmt.Fprintln(u.out, border("├"+strings.Join(dashes, "┼")+"┤"))
	for _, row := range rows {
		fmt.Fprintln(u.out, renderRow(row, nil))
	}
	fmt.Fprintln(u.out, border("└"+strings.Join(dashes, "┴")+"┘"))
}

// Spinner animates on stderr. When stderr is not a terminal it is a no-op.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.animated {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.status))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
	}
}
