package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Workflow
	workflow := []string{
		"  1. Pick a document type and tone",
		"  2. Type your notes or bullet points",
		"  3. Ctrl+G writes the first draft",
		"  4. Refine it in plain language, as often as you like",
		"  5. Save it, or export to PDF / Word",
	}

	workflowBox := styleBox.Copy().
		Width(58).
		Render(strings.Join(workflow, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, workflowBox))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	shortcuts := []string{
		"  Enter          Select / submit refinement",
		"  Tab            Cycle tone",
		"  Ctrl+G         Generate draft from notes",
		"  Ctrl+S         Save draft",
		"  Ctrl+P         Export PDF",
		"  Ctrl+W         Export Word document",
		"  Ctrl+O         Browse saved drafts",
		"  Ctrl+N         Start over",
		"  Esc            Go back",
		"  Ctrl+C         Quit",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(58).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
