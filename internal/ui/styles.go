// Package ui renders the human-facing progress output of stackinit.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Catppuccin Mocha inspired).
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"} // Blue
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	ColorWarning = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"} // Yellow
	ColorError   = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // Red
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"} // Overlay0
)

// Styles holds the lipgloss styles used by Console.
type Styles struct {
	Section lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Detail  lipgloss.Style
	Summary lipgloss.Style
}

// NewStyles returns styles bound to the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Section: r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Error:   r.NewStyle().Foreground(ColorError).Bold(true),
		Detail:  r.NewStyle().Foreground(ColorMuted),
		Summary: r.NewStyle().Bold(true).Foreground(ColorSuccess),
	}
}
