// Package presenter renders decisions and reports for the terminal.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

const maxTitleWidth = 60

// Printer writes human readable output to a writer.
type Printer struct {
	w        io.Writer
	color    bool
	renderer *lipgloss.Renderer

	cyan    *color.Color
	magenta *color.Color
	blue    *color.Color
	green   *color.Color
	yellow  *color.Color
	red     *color.Color
	dim     *color.Color
	bold    *color.Color
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor forces colored output on or off. By default color follows fatih/color's TTY detection.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.color = enabled
	}
}

// New creates a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:       w,
		color:   !color.NoColor,
		cyan:    color.New(color.FgCyan),
		magenta: color.New(color.FgMagenta),
		blue:    color.New(color.FgBlue),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		dim:     color.New(color.Faint),
		bold:    color.New(color.Bold),
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, c := range []*color.Color{p.cyan, p.magenta, p.blue, p.green, p.yellow, p.red, p.dim, p.bold} {
		if p.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	// Table styles follow the color option of this printer.
	p.renderer = lipgloss.NewRenderer(w)
	if p.color {
		p.renderer.SetColorProfile(termenv.ANSI)
	} else {
		p.renderer.SetColorProfile(termenv.Ascii)
	}
	return p
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

// Info prints a plain message.
func (p *Printer) Info(format string, args ...any) {
	p.println(fmt.Sprintf(format, args...))
}

// Success prints a green message.
func (p *Printer) Success(format string, args ...any) {
	p.println(p.green.Sprintf(format, args...))
}

// Notice prints a yellow message, used for empty results.
func (p *Printer) Notice(format string, args ...any) {
	p.println(p.yellow.Sprintf(format, args...))
}

// Error prints a red message.
func (p *Printer) Error(format string, args ...any) {
	p.println(p.red.Sprintf(format, args...))
}

// newTable builds a bordered table. colors maps column index to a foreground color.
func (p *Printer) newTable(colors map[int]string, headers ...string) *table.Table {
	header := p.renderer.NewStyle().Bold(true).Padding(0, 1)
	cell := p.renderer.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.renderer.NewStyle()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if fg, ok := colors[col]; ok {
				return cell.Foreground(lipgloss.Color(fg))
			}
			return cell
		})
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width]) + "..."
}
