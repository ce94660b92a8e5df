package writer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftsmith/draftsmith/internal/llm"
	"github.com/draftsmith/draftsmith/internal/template"
)

func TestGenerateEmptyNotes(t *testing.T) {
	mock := &llm.MockProvider{Response: "should not be used"}
	w := New(mock, "test-model", nil)

	res := w.Generate(context.Background(), template.ByName("memo"), "   \n\t", "Formal")

	assert.Equal(t, ResultInputMissing, res.Kind)
	assert.Equal(t, "Please enter some notes or bullet points first.", res.Render())
	assert.Zero(t, mock.CallCount(), "collaborator must not be called")
}

func TestGenerateMissingCredential(t *testing.T) {
	w := New(nil, "test-model", nil)

	res := w.Generate(context.Background(), template.ByName("memo"), "some notes", "")

	assert.Equal(t, ResultConfigMissing, res.Kind)
	assert.Contains(t, res.Render(), "no API key configured")
}

func TestGeneratePromptComposition(t *testing.T) {
	mock := &llm.MockProvider{Response: "  MEMO\n\nBody text.  \n"}
	w := New(mock, "test-model", nil)
	tpl := template.ByName("memo")

	res := w.Generate(context.Background(), tpl, "To: staff\nSubject: parking", "Friendly")

	require.Equal(t, ResultOK, res.Kind)
	assert.Equal(t, "MEMO\n\nBody text.", res.Text, "output is trimmed")

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, "test-model", req.Model)
	assert.Equal(t, 4096, req.MaxTokens)
	assert.True(t, strings.HasPrefix(req.System, tpl.SystemPrompt), "system prompt starts with template fragment")
	assert.Contains(t, req.System, "Tone: Friendly")
	assert.Contains(t, req.System, "Output ONLY the document text")
	assert.Contains(t, req.User, "Document type: Memo")
	assert.Contains(t, req.User, "To: staff\nSubject: parking")
}

func TestGenerateDefaultTone(t *testing.T) {
	mock := &llm.MockProvider{Response: "text"}
	w := New(mock, "test-model", nil)

	w.Generate(context.Background(), template.ByName("general"), "notes", "")

	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0].System, "Tone: Professional")
}

func TestGenerateUpstreamFailure(t *testing.T) {
	mock := &llm.MockProvider{Err: errors.New("connection refused")}
	w := New(mock, "test-model", nil)

	res := w.Generate(context.Background(), template.ByName("report"), "notes", "Formal")

	assert.Equal(t, ResultUpstreamFailed, res.Kind)
	rendered := res.Render()
	assert.Contains(t, rendered, "Error generating draft")
	assert.Contains(t, rendered, "connection refused")
}

func TestRefineEmptyText(t *testing.T) {
	mock := &llm.MockProvider{Response: "unused"}
	w := New(mock, "test-model", nil)

	res := w.Refine(context.Background(), "", "make it shorter", "general")

	assert.Equal(t, ResultInputMissing, res.Kind)
	assert.Equal(t, "No text to refine. Generate a draft first.", res.Render())
	assert.Zero(t, mock.CallCount())
}

func TestRefineEmptyInstructionIsNoOp(t *testing.T) {
	mock := &llm.MockProvider{Response: "unused"}
	w := New(mock, "test-model", nil)

	got := w.RefineText(context.Background(), "Keep this text.", "", "general")

	assert.Equal(t, "Keep this text.", got)
	assert.Zero(t, mock.CallCount(), "no-op refinement must not call out")
}

func TestRefinePromptComposition(t *testing.T) {
	mock := &llm.MockProvider{Response: "Shorter text."}
	w := New(mock, "test-model", nil)

	res := w.Refine(context.Background(), "Long document text.", "make it shorter", "memo")

	require.Equal(t, ResultOK, res.Kind)
	assert.Equal(t, "Shorter text.", res.Text)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Contains(t, req.System, "You are a document editor")
	assert.Contains(t, req.User, "Long document text.")
	assert.Contains(t, req.User, "Please make this change: make it shorter")
}

func TestRefineUpstreamFailure(t *testing.T) {
	mock := &llm.MockProvider{Err: errors.New("rate limited")}
	w := New(mock, "test-model", nil)

	got := w.RefineText(context.Background(), "Some text.", "expand", "general")

	assert.Contains(t, got, "Error refining text")
	assert.Contains(t, got, "rate limited")
}
