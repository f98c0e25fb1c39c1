// Package cli 命令行入口：serve / summary / upload / export
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#2E75B6")
	successColor = lipgloss.Color("#4ECDC4")
	errorColor   = lipgloss.Color("#FF6B6B")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2).
			Width(34)

	cardNameStyle  = lipgloss.NewStyle().Foreground(subtleColor)
	cardValueStyle = lipgloss.NewStyle().Bold(true)
	cardNoteStyle  = lipgloss.NewStyle().Foreground(subtleColor).Italic(true)

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	subtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)
)
