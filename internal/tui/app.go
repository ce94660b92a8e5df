package tui

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/draftsmith/draftsmith/internal/export"
	"github.com/draftsmith/draftsmith/internal/store"
	"github.com/draftsmith/draftsmith/internal/template"
	"github.com/draftsmith/draftsmith/internal/writer"
)

type view int

const (
	viewTemplates view = iota
	viewNotes
	viewDocument
	viewDrafts
	viewHelp
)

// generationTimeout bounds one model call from the UI.
const generationTimeout = 120 * time.Second

type App struct {
	width    int
	height   int
	view     view
	prevView view
	state    *state
	quitting bool

	writer   *writer.Writer
	store    *store.Store
	exporter *export.Exporter
}

func NewApp(w *writer.Writer, st *store.Store, ex *export.Exporter) *App {
	return &App{
		view:     viewTemplates,
		state:    newState(),
		writer:   w,
		store:    st,
		exporter: ex,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

type generatedMsg struct{ text string }
type savedMsg struct {
	path string
	err  error
}
type exportedMsg struct {
	format string
	path   string
	err    error
}
type draftsListedMsg struct{ entries []store.Entry }
type draftLoadedMsg struct {
	draft *store.Draft
	err   error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		// A consumed shortcut must not leak into the focused input.
		if handled {
			return a, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.notes.SetWidth(min(70, a.width-6))

	case spinner.TickMsg:
		if a.state.generating {
			var cmd tea.Cmd
			a.state.spin, cmd = a.state.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case generatedMsg:
		a.state.generating = false
		a.state.documentText = msg.text
		a.state.scroll = 0
		a.view = viewDocument
		a.state.instruction.Focus()
		return a, textinput.Blink

	case savedMsg:
		if msg.err != nil {
			a.setStatus("Save failed: "+msg.err.Error(), true)
		} else {
			a.setStatus("Saved "+filepath.Base(msg.path), false)
		}

	case exportedMsg:
		if msg.err != nil {
			a.setStatus(strings.ToUpper(msg.format)+" export failed: "+msg.err.Error(), true)
		} else {
			a.setStatus("Exported "+msg.path, false)
		}

	case draftsListedMsg:
		a.state.drafts = msg.entries
		if a.state.draftIndex >= len(msg.entries) {
			a.state.draftIndex = 0
		}

	case draftLoadedMsg:
		if msg.err != nil {
			a.setStatus("Could not open draft: "+msg.err.Error(), true)
			return a, nil
		}
		a.applyDraft(msg.draft)
		a.view = viewDocument
		a.state.instruction.Focus()
		return a, textinput.Blink
	}

	// Route the message to whichever input owns the current view.
	switch {
	case a.view == viewNotes:
		var cmd tea.Cmd
		a.state.notes, cmd = a.state.notes.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewDocument && a.state.saving:
		var cmd tea.Cmd
		a.state.titleInput, cmd = a.state.titleInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewDocument:
		var cmd tea.Cmd
		a.state.instruction, cmd = a.state.instruction.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewTemplates:
		return a.handleTemplatesKey(msg)
	case viewNotes:
		return a.handleNotesKey(msg)
	case viewDocument:
		return a.handleDocumentKey(msg)
	case viewDrafts:
		return a.handleDraftsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Back) {
			a.view = a.prevView
			return nil, true
		}
	}
	return nil, false
}

func (a *App) handleTemplatesKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit, true
	case key.Matches(msg, keys.Up):
		if a.state.templateIndex > 0 {
			a.state.templateIndex--
		}
		return nil, true
	case key.Matches(msg, keys.Down):
		if a.state.templateIndex < len(template.Templates)-1 {
			a.state.templateIndex++
		}
		return nil, true
	case key.Matches(msg, keys.Tab):
		a.state.toneIndex = (a.state.toneIndex + 1) % len(template.Tones)
		return nil, true
	case key.Matches(msg, keys.Help):
		a.prevView = a.view
		a.view = viewHelp
		return nil, true
	case key.Matches(msg, keys.Drafts):
		return a.openDrafts(), true
	case key.Matches(msg, keys.Enter):
		a.state.notes.Placeholder = a.state.template().Placeholder
		a.state.notes.Focus()
		a.view = viewNotes
		return textinput.Blink, true
	}
	return nil, false
}

func (a *App) handleNotesKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		a.state.notes.Blur()
		a.view = viewTemplates
		return nil, true
	case key.Matches(msg, keys.Generate):
		if a.state.generating {
			return nil, true
		}
		return a.generate(), true
	case key.Matches(msg, keys.Drafts):
		return a.openDrafts(), true
	}
	return nil, false
}

func (a *App) handleDocumentKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if a.state.saving {
		switch {
		case key.Matches(msg, keys.Enter):
			a.state.saving = false
			return a.saveDraft(a.state.titleInput.Value()), true
		case key.Matches(msg, keys.Back):
			a.state.saving = false
			a.state.instruction.Focus()
			return nil, true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewNotes
		a.state.notes.Focus()
		return textinput.Blink, true
	case key.Matches(msg, keys.Enter):
		instruction := strings.TrimSpace(a.state.instruction.Value())
		if instruction == "" || a.state.generating {
			return nil, true
		}
		a.state.instruction.Reset()
		return a.refine(instruction), true
	case key.Matches(msg, keys.Save):
		a.state.saving = true
		a.state.titleInput.SetValue(suggestTitle(a.state.documentText))
		a.state.titleInput.Focus()
		return textinput.Blink, true
	case key.Matches(msg, keys.PDF):
		return a.exportDocument("pdf"), true
	case key.Matches(msg, keys.DOCX):
		return a.exportDocument("docx"), true
	case key.Matches(msg, keys.Drafts):
		return a.openDrafts(), true
	case key.Matches(msg, keys.New):
		a.state.documentText = ""
		a.state.notes.Reset()
		a.state.instruction.Reset()
		a.state.status = ""
		a.view = viewTemplates
		return nil, true
	case msg.String() == "up":
		if a.state.scroll > 0 {
			a.state.scroll--
		}
		return nil, true
	case msg.String() == "down":
		a.state.scroll++
		return nil, true
	}
	return nil, false
}

func (a *App) handleDraftsKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		if a.state.documentText != "" {
			a.view = viewDocument
		} else {
			a.view = viewTemplates
		}
		return nil, true
	case key.Matches(msg, keys.Up):
		if a.state.draftIndex > 0 {
			a.state.draftIndex--
		}
		return nil, true
	case key.Matches(msg, keys.Down):
		if a.state.draftIndex < len(a.state.drafts)-1 {
			a.state.draftIndex++
		}
		return nil, true
	case key.Matches(msg, keys.Enter):
		if len(a.state.drafts) == 0 {
			return nil, true
		}
		entry := a.state.drafts[a.state.draftIndex]
		return a.loadDraft(entry.Filepath), true
	case key.Matches(msg, keys.Delete):
		if len(a.state.drafts) == 0 {
			return nil, true
		}
		entry := a.state.drafts[a.state.draftIndex]
		if a.store.Delete(filepath.Base(entry.Filepath)) {
			a.setStatus("Deleted "+entry.Title, false)
		}
		return a.openDrafts(), true
	}
	return nil, false
}

// --- Commands ---

func (a *App) generate() tea.Cmd {
	a.state.generating = true
	tpl := a.state.template()
	notes := a.state.notes.Value()
	tone := a.state.tone()

	run := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()
		return generatedMsg{a.writer.GenerateDraft(ctx, tpl, notes, tone)}
	}
	return tea.Batch(a.state.spin.Tick, run)
}

func (a *App) refine(instruction string) tea.Cmd {
	a.state.generating = true
	current := a.state.documentText
	name := a.state.template().Name

	run := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()
		return generatedMsg{a.writer.RefineText(ctx, current, instruction, name)}
	}
	return tea.Batch(a.state.spin.Tick, run)
}

func (a *App) saveDraft(title string) tea.Cmd {
	tpl := a.state.template()
	tone := a.state.tone()
	notes := a.state.notes.Value()
	text := a.state.documentText
	return func() tea.Msg {
		path, err := a.store.Save(title, tpl.Name, tone, notes, text)
		return savedMsg{path: path, err: err}
	}
}

func (a *App) exportDocument(format string) tea.Cmd {
	text := a.state.documentText
	title := suggestTitle(text)
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		if format == "pdf" {
			path, err = a.exporter.PDF(text, title, "")
		} else {
			path, err = a.exporter.DOCX(text, title, "")
		}
		return exportedMsg{format: format, path: path, err: err}
	}
}

func (a *App) openDrafts() tea.Cmd {
	a.view = viewDrafts
	return func() tea.Msg {
		return draftsListedMsg{entries: a.store.List()}
	}
}

func (a *App) loadDraft(path string) tea.Cmd {
	return func() tea.Msg {
		draft, err := a.store.Load(path)
		return draftLoadedMsg{draft: draft, err: err}
	}
}

// --- Helpers ---

func (a *App) applyDraft(d *store.Draft) {
	a.state.documentText = d.DocumentText
	a.state.notes.SetValue(d.Notes)
	a.state.scroll = 0
	for i, t := range template.Templates {
		if t.Name == d.TemplateName {
			a.state.templateIndex = i
			break
		}
	}
	for i, t := range template.Tones {
		if t == d.Tone {
			a.state.toneIndex = i
			break
		}
	}
	a.setStatus("Opened "+d.Title, false)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.state.status = msg
	a.state.statusErr = isErr
}

// suggestTitle lifts the first non-blank line of the document as a
// save/export title.
func suggestTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return truncate(line, 60)
		}
	}
	return ""
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewTemplates:
		return a.renderTemplates()
	case viewNotes:
		return a.renderNotes()
	case viewDocument:
		return a.renderDocument()
	case viewDrafts:
		return a.renderDrafts()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderTemplates()
	}
}
