package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderNotes() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(a.state.template().DisplayName)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	meta := styleSubtitle.Render(fmt.Sprintf("Tone: %s", a.state.tone()))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, meta))
	b.WriteString("\n\n")

	// Notes editor
	notesBox := styleBox.Copy().
		Width(min(74, a.width-2)).
		BorderForeground(colorSecondary).
		Render(a.state.notes.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notesBox))
	b.WriteString("\n\n")

	// Spinner while a draft is being generated
	if a.state.generating {
		working := a.state.spin.View() + styleSubtitle.Render(" Writing draft...")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, working))
		b.WriteString("\n\n")
	}

	// Status bar
	statusBar := styleStatusBar.Render("[Ctrl+G] Generate  [Ctrl+O] Drafts  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
