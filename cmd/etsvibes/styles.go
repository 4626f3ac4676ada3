package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")
	borderColor  = lipgloss.Color("#383838")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)

	headerCellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D7FF")).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
	numberCellStyle = cellStyle.Align(lipgloss.Right)
)

// savesTable renders one profile's saves. Columns: Save, Money, XP, Modified.
func savesTable(rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers("Save", "Money", "XP", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCellStyle
			case col == 1:
				return numberCellStyle.Foreground(successColor)
			case col == 2:
				return numberCellStyle.Foreground(warningColor)
			case col == 3:
				return cellStyle.Foreground(mutedColor)
			default:
				return cellStyle
			}
		})
}
