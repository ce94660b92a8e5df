// Package writer turns rough notes into finished documents and
// applies natural-language edits to existing ones, via a pluggable
// text-generation provider.
package writer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/draftsmith/draftsmith/internal/llm"
	"github.com/draftsmith/draftsmith/internal/template"
)

// plainTextRules is appended to every generation system prompt so the
// model output stays exportable plain text.
const plainTextRules = "Important: Output ONLY the document text. No preamble, no explanations, " +
	"no markdown. Just the finished document ready to read or print."

// refineSystemPrompt is the fixed editor persona for refinements.
const refineSystemPrompt = "You are a document editor. The user has a document and wants changes made. " +
	"Apply the requested changes while preserving the document's overall structure " +
	"and meaning unless told otherwise. " +
	"Output ONLY the revised document text. No preamble, no explanations, no markdown."

// Writer generates and refines documents. A nil provider means no
// credential was configured; calls still succeed but report that.
type Writer struct {
	provider llm.Provider
	model    string
	logger   *slog.Logger
}

func New(provider llm.Provider, model string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		provider: provider,
		model:    model,
		logger:   logger,
	}
}

// Generate produces a document draft from user notes using the
// template's system prompt. Every failure mode is folded into the
// Result tag; nothing is raised to the caller.
func (w *Writer) Generate(ctx context.Context, tpl template.Template, notes, tone string) Result {
	if strings.TrimSpace(notes) == "" {
		return inputMissing("Please enter some notes or bullet points first.")
	}
	if w.provider == nil {
		return configMissing()
	}
	if tone == "" {
		tone = "Professional"
	}

	system := fmt.Sprintf("%s\n\nTone: %s\n%s", tpl.SystemPrompt, tone, plainTextRules)
	user := fmt.Sprintf("Document type: %s\n\nMy notes and bullet points:\n%s", tpl.DisplayName, notes)

	resp, err := w.provider.Complete(ctx, llm.NewRequest(w.model, system, user))
	if err != nil {
		w.logger.Error("failed to generate draft",
			slog.String("template", tpl.Name),
			slog.String("error", err.Error()))
		return upstreamFailed("generating draft", err)
	}

	w.logger.Info("draft generated",
		slog.String("template", tpl.Name),
		slog.String("tone", tone),
		slog.Int("output_tokens", resp.Usage.OutputTokens))
	return ok(strings.TrimSpace(resp.Content))
}

// GenerateDraft is the string boundary over Generate: the document
// pane shows whatever comes back.
func (w *Writer) GenerateDraft(ctx context.Context, tpl template.Template, notes, tone string) string {
	return w.Generate(ctx, tpl, notes, tone).Render()
}

// Refine applies a user instruction to existing document text. An
// empty instruction is a no-op and returns the text unchanged.
func (w *Writer) Refine(ctx context.Context, currentText, instruction, templateName string) Result {
	if strings.TrimSpace(currentText) == "" {
		return inputMissing("No text to refine. Generate a draft first.")
	}
	if strings.TrimSpace(instruction) == "" {
		return ok(currentText)
	}
	if w.provider == nil {
		return configMissing()
	}

	user := fmt.Sprintf("Here is the current document:\n\n%s\n\nPlease make this change: %s",
		currentText, instruction)

	resp, err := w.provider.Complete(ctx, llm.NewRequest(w.model, refineSystemPrompt, user))
	if err != nil {
		w.logger.Error("failed to refine text",
			slog.String("template", templateName),
			slog.String("error", err.Error()))
		return upstreamFailed("refining text", err)
	}

	w.logger.Info("text refined",
		slog.String("template", templateName),
		slog.Int("output_tokens", resp.Usage.OutputTokens))
	return ok(strings.TrimSpace(resp.Content))
}

// RefineText is the string boundary over Refine.
func (w *Writer) RefineText(ctx context.Context, currentText, instruction, templateName string) string {
	return w.Refine(ctx, currentText, instruction, templateName).Render()
}
