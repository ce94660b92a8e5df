package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderDocument() string {
	var b strings.Builder

	// Header
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(a.state.template().DisplayName)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Document pane, scrolled to the current window
	maxBodyHeight := a.height - 12
	if maxBodyHeight < 5 {
		maxBodyHeight = 5
	}
	lines := strings.Split(a.state.documentText, "\n")
	if a.state.scroll > len(lines)-maxBodyHeight {
		a.state.scroll = len(lines) - maxBodyHeight
	}
	if a.state.scroll < 0 {
		a.state.scroll = 0
	}
	visible := lines[a.state.scroll:min(len(lines), a.state.scroll+maxBodyHeight)]

	docBox := styleBox.Copy().
		Width(min(74, a.width-2)).
		BorderForeground(colorPrimary).
		Render(strings.Join(visible, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, docBox))
	b.WriteString("\n\n")

	// Save prompt or refine input
	switch {
	case a.state.saving:
		label := styleSubtitle.Render("Save as:")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, label))
		b.WriteString("\n")
		titleBox := styleBox.Copy().
			Width(min(60, a.width-4)).
			BorderForeground(colorSuccess).
			Render(a.state.titleInput.View())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, titleBox))
		b.WriteString("\n\n")

	case a.state.generating:
		working := a.state.spin.View() + styleSubtitle.Render(" Applying change...")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, working))
		b.WriteString("\n\n")

	default:
		inputBox := styleBox.Copy().
			Width(min(74, a.width-2)).
			BorderForeground(colorMuted).
			Render(a.state.instruction.View())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
		b.WriteString("\n\n")
	}

	// Outcome of the last save/export/open
	if a.state.status != "" {
		style := lipgloss.NewStyle().Foreground(colorSuccess)
		if a.state.statusErr {
			style = lipgloss.NewStyle().Foreground(colorError)
		}
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, style.Render(truncate(a.state.status, 70))))
		b.WriteString("\n\n")
	}

	// Status bar
	var statusBar string
	if a.state.saving {
		statusBar = styleStatusBar.Render("[Enter] Save  [Esc] Cancel")
	} else {
		statusBar = styleStatusBar.Render("[Enter] Refine  [Ctrl+S] Save  [Ctrl+P] PDF  [Ctrl+W] DOCX  [Ctrl+O] Drafts  [Ctrl+N] New")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
