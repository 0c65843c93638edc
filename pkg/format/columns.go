// Package format holds beamer's terminal presentation helpers: ls-style
// column layout for mode listings and the colored info/error printers.
package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is assumed when stdout is not a terminal.
const DefaultWidth = 80

var (
	infoColor  = color.New(color.FgGreen, color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
)

// Infof prints a bold green status line.
func Infof(w io.Writer, format string, a ...any) {
	infoColor.Fprintf(w, format+"\n", a...)
}

// Errorf prints a bold red error line.
func Errorf(w io.Writer, format string, a ...any) {
	errorColor.Fprintf(w, format+"\n", a...)
}

// Columns lays items out in terminal-width columns.
func Columns(items []string, indent string) string {
	return ColumnsWidth(items, indent, terminalWidth())
}

// ColumnsWidth lays items out in columns fitting the given width, ls
// style: items run down each column, right-aligned to the longest one.
func ColumnsWidth(items []string, indent string, width int) string {
	if len(items) == 0 {
		return ""
	}

	maxLen := 0
	for _, s := range items {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	sep := " "
	cols := (width - len(indent)) / (maxLen + len(sep))
	if cols < 1 {
		cols = 1
	}
	lines := (len(items) + cols - 1) / cols

	var b strings.Builder
	for line := 0; line < lines; line++ {
		row := make([]string, 0, cols)
		for i := line; i < len(items); i += lines {
			row = append(row, fmt.Sprintf("%*s", maxLen, items[i]))
		}
		if line > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent + strings.Join(row, sep))
	}
	return b.String()
}

func terminalWidth() int {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}
