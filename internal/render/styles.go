// Package render formats evaluator and edit-distance results for the
// terminal.
package render

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// cellWidth is the column width of one table cell.
const cellWidth = 4

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Right)

	PathCellStyle = CellStyle.
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = CellStyle.
			Foreground(ColorMuted)

	PassStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
