package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/state"
)

// renderSudo renders the approval dialog for a held action.
func (m Model) renderSudo(p state.Pending) string {
	styles := m.styles

	marker, err := protocol.Format(p.Action)
	if err != nil {
		marker = p.Action.Tag()
	}

	var b strings.Builder
	b.WriteString(styles.WarningText.Bold(true).Render("Approval required"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(p.Reason))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(truncate(marker, 60)))
	b.WriteString("\n\n")
	b.WriteString(styles.SuccessText.Render("y"))
	b.WriteString(styles.MutedText.Render(" approve   "))
	b.WriteString(styles.DangerText.Render("n"))
	b.WriteString(styles.MutedText.Render(" deny"))

	modal := styles.Modal.Width(64).Render(b.String())
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}
