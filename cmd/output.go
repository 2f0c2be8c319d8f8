package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true).
			PaddingRight(2)

	cellStyle = lipgloss.NewStyle().
			PaddingRight(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))
)

// renderTable lays out rows in left-aligned columns sized to the widest cell.
func renderTable(headers []string, rows [][]string) string {
	widths := columnWidths(len(headers), append([][]string{headers}, rows...))

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(headerStyle, headers, widths))
	for _, row := range rows {
		lines = append(lines, renderRow(cellStyle, row, widths))
	}
	return strings.Join(lines, "\n")
}

// renderPairs renders label/value rows with muted labels.
func renderPairs(rows [][]string) string {
	widths := columnWidths(2, rows)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := mutedStyle.PaddingRight(2).Width(widths[0] + 2).Render(row[0])
		lines = append(lines, label+row[1])
	}
	return strings.Join(lines, "\n")
}

func columnWidths(n int, rows [][]string) []int {
	widths := make([]int, n)
	for _, row := range rows {
		for i, cell := range row {
			if i < n {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

func renderRow(style lipgloss.Style, cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		// Width includes the right padding
		parts[i] = style.Width(widths[i] + 2).Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(format, args...)))
}

func printMuted(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, okStyle.Render(fmt.Sprintf(format, args...)))
}

// formatTemp renders a temperature without trailing zeros, e.g. 112.5 °C.
func formatTemp(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64) + " °C"
}
