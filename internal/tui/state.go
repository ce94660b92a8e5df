package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/draftsmith/draftsmith/internal/store"
	"github.com/draftsmith/draftsmith/internal/template"
)

type state struct {
	// Template picker
	templateIndex int
	toneIndex     int

	// Notes editor
	notes textarea.Model

	// Document pane
	documentText string
	instruction  textinput.Model
	scroll       int

	// Save prompt
	saving     bool
	titleInput textinput.Model

	// Drafts browser
	drafts     []store.Entry
	draftIndex int

	// Generation
	generating bool
	spin       spinner.Model

	// Status line, cleared on the next action
	status    string
	statusErr bool
}

func newState() *state {
	notes := textarea.New()
	notes.Placeholder = template.Templates[0].Placeholder
	notes.CharLimit = 10000
	notes.SetWidth(70)
	notes.SetHeight(12)

	instruction := textinput.New()
	instruction.Placeholder = "Describe a change, e.g. 'make it shorter'..."
	instruction.CharLimit = 2000
	instruction.Width = 60

	title := textinput.New()
	title.Placeholder = "Draft title..."
	title.CharLimit = 200
	title.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorSecondary)

	return &state{
		// Default tone is Professional, matching the writer.
		toneIndex:   1,
		notes:       notes,
		instruction: instruction,
		titleInput:  title,
		spin:        spin,
	}
}

func (s *state) template() template.Template {
	return template.Templates[s.templateIndex]
}

func (s *state) tone() string {
	return template.Tones[s.toneIndex]
}
