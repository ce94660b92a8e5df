package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/draftsmith/draftsmith/internal/template"
)

const logo = `
 ██████╗ ██████╗  █████╗ ███████╗████████╗
 ██╔══██╗██╔══██╗██╔══██╗██╔════╝╚══██╔══╝
 ██║  ██║██████╔╝███████║█████╗     ██║
 ██║  ██║██╔══██╗██╔══██║██╔══╝     ██║
 ██████╔╝██║  ██║██║  ██║██║        ██║
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝        ╚═╝
`

func (a *App) renderTemplates() string {
	var b strings.Builder

	// Header
	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n")

	subtitle := styleSubtitle.Render("Notes in, polished documents out")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	// Template list
	var lines []string
	for i, t := range template.Templates {
		cursor := "  "
		if i == a.state.templateIndex {
			cursor = "> "
			lines = append(lines, lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("%s%-16s %s", cursor, t.DisplayName, truncate(t.Description, 42))))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(colorMuted).
				Render(fmt.Sprintf("%s%-16s %s", cursor, t.DisplayName, truncate(t.Description, 42))))
		}
	}

	listBox := styleBox.Copy().
		Width(min(68, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	// Tone
	tone := styleSubtitle.Render("Tone: ") + lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render(a.state.tone())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, tone))
	b.WriteString("\n\n")

	// Status bar
	statusBar := styleStatusBar.Render("[j/k] Navigate  [Tab] Tone  [Enter] Notes  [Ctrl+O] Drafts  [?] Help  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
