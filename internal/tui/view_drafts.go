package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/draftsmith/draftsmith/internal/template"
)

func (a *App) renderDrafts() string {
	var b strings.Builder

	// Header
	title := styleLogo.Render("Saved Drafts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if len(a.state.drafts) == 0 {
		empty := styleBox.Copy().
			Width(min(70, a.width-4)).
			Foreground(colorMuted).
			Render("No saved drafts yet.\n\nGenerate a document and press Ctrl+S to save it.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
	} else {
		var lines []string
		for i, entry := range a.state.drafts {
			display := template.ByName(entry.TemplateName).DisplayName
			line := fmt.Sprintf("%-34s %-16s %s",
				truncate(entry.Title, 32), display, entry.SavedAt)
			if i == a.state.draftIndex {
				lines = append(lines, lipgloss.NewStyle().
					Foreground(colorSecondary).
					Bold(true).
					Render("> "+line))
			} else {
				lines = append(lines, lipgloss.NewStyle().
					Foreground(colorMuted).
					Render("  "+line))
			}
		}

		listBox := styleBox.Copy().
			Width(min(76, a.width-2)).
			BorderForeground(colorPrimary).
			Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	}
	b.WriteString("\n\n")

	// Status bar
	statusBar := styleStatusBar.Render("[j/k] Navigate  [Enter] Open  [d] Delete  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
