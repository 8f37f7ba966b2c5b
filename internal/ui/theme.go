package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/facet/internal/style"
)

// Styles contains pre-built Lipgloss styles for one set of design tokens.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style
	Badge  lipgloss.Style
	Frame  lipgloss.Style
	Modal  lipgloss.Style
	Key    lipgloss.Style

	background lipgloss.Color
}

func color(c style.Color) lipgloss.Color { return lipgloss.Color(string(c)) }

// NewStyles derives the chrome styles from the active theme so the preview
// frame follows SetThemeKind and SetThemeTone.
func NewStyles(t style.Tokens) Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(color(t.Surface)).
			Foreground(color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(color(t.Surface)).
			Foreground(color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(color(t.Surface)).
			Foreground(color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(color(t.Primary)).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Foreground(color(t.Background)).
			Background(color(t.Accent)).
			Padding(0, 1),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(t.Border)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(t.BorderFocus)).
			Background(color(t.Surface)).
			Padding(1, 2),

		Key: lipgloss.NewStyle().
			Foreground(color(t.Warning)).
			Width(12),

		background: color(t.Background),
	}
}

// IntentStyle returns a badge style in the color of an intent.
func (s Styles) IntentStyle(t style.Tokens, i style.Intent) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.background).
		Background(color(t.IntentColor(i))).
		Padding(0, 1)
}
