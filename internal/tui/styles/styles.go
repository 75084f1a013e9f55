// Package styles provides Lip Gloss styles for the launcher popup.
package styles

import "github.com/charmbracelet/lipgloss"

// Field is the base style for the single-line input field: a thin border
// around the text, mirroring the original popup window's one-pixel frame.
var Field = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 1)

// FieldWith returns Field with the configured colors applied. Empty values
// leave the terminal defaults in place.
func FieldWith(fg, bg string) lipgloss.Style {
	s := Field
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg)).BorderForeground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	return s
}

// CursorWith returns the block-cursor style: the field colors inverted.
func CursorWith(fg, bg string) lipgloss.Style {
	s := lipgloss.NewStyle().Reverse(true)
	if bg != "" {
		s = s.Foreground(lipgloss.Color(bg))
	}
	if fg != "" {
		s = s.Background(lipgloss.Color(fg))
	}
	return s
}
