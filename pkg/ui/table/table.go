// Package table renders catalog views as terminal tables with lipgloss, or
// as Markdown for glamour. Views supply rows through the TableData interface
// rather than building lipgloss tables directly.
package table

import (
	"fmt"
	"os"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	query "github.com/mutablelogic/go-modelsdev/pkg/query"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that views implement to be rendered as a table
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Values are converted to
	// strings via FormatCell. Return nil to skip a row.
	// Wrap a value in Bold{} to render it in bold.
	Row(i int) []any
}

// Bold wraps a cell value so that FormatCell renders it in bold.
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render renders the table for stdout, narrowing it to the terminal width
// when stdout is a terminal narrower than the table.
func Render(data TableData) string {
	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return RenderWidth(data, width)
}

// RenderWidth renders the table with word wrapping inside width columns.
// A width of zero leaves the natural size.
func RenderWidth(data TableData, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v)
		}
		t.Row(cells...)
	}

	// Only constrain the width if the natural render exceeds it
	result := t.Render()
	if width > 0 && widest(result) > width {
		t.Width(width)
		result = t.Render()
	}
	return result
}

// RenderMarkdown renders the table as a GitHub-flavoured Markdown table
func RenderMarkdown(data TableData) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}
	var buf strings.Builder

	buf.WriteString("|")
	for _, h := range header {
		buf.WriteString(" ")
		buf.WriteString(escapeMarkdown(h))
		buf.WriteString(" |")
	}
	buf.WriteString("\n|")
	for range header {
		buf.WriteString(" --- |")
	}

	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		buf.WriteString("\n|")
		for j := range header {
			buf.WriteString(" ")
			if j < len(row) {
				buf.WriteString(formatMarkdownCell(row[j]))
			} else {
				buf.WriteString(query.Placeholder)
			}
			buf.WriteString(" |")
		}
	}
	return buf.String()
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// Truncate shortens s to max runes, collapsing newlines and appending "…"
// if truncated.
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max || max < 1 {
		return s
	}
	return string(r[:max-1]) + "…"
}

// FormatCell converts a value to a display string for a table cell.
// Prices are passed as *float64, flags as bool, and absent values
// display as a placeholder.
func FormatCell(v any) string {
	if b, ok := v.(Bold); ok {
		return boldStyle.Render(FormatCell(b.Value))
	}
	return plain(v)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func formatMarkdownCell(v any) string {
	if b, ok := v.(Bold); ok {
		inner := formatMarkdownCell(b.Value)
		if inner == query.Placeholder {
			return inner
		}
		return "**" + inner + "**"
	}
	return escapeMarkdown(plain(v))
}

func plain(v any) string {
	switch val := v.(type) {
	case nil:
		return query.Placeholder
	case string:
		if val == "" {
			return query.Placeholder
		}
		return val
	case bool:
		return query.FormatBool(val)
	case *float64:
		return query.FormatPrice(val)
	case float64:
		return query.FormatCost(val)
	case fmt.Stringer:
		return plain(val.String())
	default:
		return fmt.Sprint(val)
	}
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "\\|")
}

func widest(s string) int {
	result := 0
	for _, line := range strings.Split(s, "\n") {
		if n := lipgloss.Width(line); n > result {
			result = n
		}
	}
	return result
}
