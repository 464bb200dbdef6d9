// Package ui provides terminal output styling for sb.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft green #86EFAC): vault paths, highlights
// - Muted (gray): secondary info, hints
// - No colored success/error text - unicode symbols carry the status

var (
	// Accent style for vault paths and note paths
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#86EFAC"))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// WarnStyle for warnings that need to stand out
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15"))
)
