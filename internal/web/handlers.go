package web

import (
	"context"
	"crypto/hmac"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/draftsmith/draftsmith/internal/export"
	"github.com/draftsmith/draftsmith/internal/store"
	"github.com/draftsmith/draftsmith/internal/template"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// --- Health & auth ---

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !checkLen(w, "password", req.Password, maxPasswordLen) {
		return
	}

	if s.cfg.Web.Password == "" {
		writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
		return
	}
	if !hmac.Equal([]byte(req.Password), []byte(s.cfg.Web.Password)) {
		writeError(w, http.StatusUnauthorized, "incorrect password")
		return
	}

	token := s.sessions.create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.destroy(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}

// --- Catalog ---

type templateResp struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Placeholder string `json:"placeholder"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	if !s.authed(r) {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	resp := make([]templateResp, 0, len(template.Templates))
	for _, t := range template.Templates {
		resp = append(resp, templateResp{
			Name:        t.Name,
			DisplayName: t.DisplayName,
			Description: t.Description,
			Placeholder: t.Placeholder,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTones(w http.ResponseWriter, r *http.Request) {
	if !s.authed(r) {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, template.Tones)
}

// --- Generate & refine ---

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !s.gateMutating(w, r) {
		return
	}

	var req struct {
		TemplateName string `json:"template_name"`
		Notes        string `json:"notes"`
		Tone         string `json:"tone"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !checkLen(w, "template_name", req.TemplateName, maxTemplateNameLen) ||
		!checkLen(w, "notes", req.Notes, maxNotesLen) ||
		!checkLen(w, "tone", req.Tone, maxToneLen) {
		return
	}

	ctx, done, ok := s.acquireWorker(w, r)
	if !ok {
		return
	}
	defer done()

	text := s.writer.GenerateDraft(ctx, template.ByName(req.TemplateName), req.Notes, req.Tone)
	writeJSON(w, http.StatusOK, map[string]string{"document_text": text})
}

func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	if !s.gateMutating(w, r) {
		return
	}

	var req struct {
		CurrentText  string `json:"current_text"`
		Instruction  string `json:"instruction"`
		TemplateName string `json:"template_name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !checkLen(w, "current_text", req.CurrentText, maxDocumentLen) ||
		!checkLen(w, "instruction", req.Instruction, maxInstructionLen) ||
		!checkLen(w, "template_name", req.TemplateName, maxTemplateNameLen) {
		return
	}

	ctx, done, ok := s.acquireWorker(w, r)
	if !ok {
		return
	}
	defer done()

	text := s.writer.RefineText(ctx, req.CurrentText, req.Instruction, req.TemplateName)
	writeJSON(w, http.StatusOK, map[string]string{"document_text": text})
}

// acquireWorker claims a slot in the bounded generation pool and
// returns the per-call context. The slot is denied, not queued
// forever, when the caller goes away first.
func (s *Server) acquireWorker(w http.ResponseWriter, r *http.Request) (context.Context, func(), bool) {
	select {
	case s.genSem <- struct{}{}:
	case <-r.Context().Done():
		writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for a worker")
		return nil, nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), generationTimeout)
	done := func() {
		cancel()
		<-s.genSem
	}
	return ctx, done, true
}

// --- Drafts ---

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	if !s.gateMutating(w, r) {
		return
	}

	var req struct {
		Title        string `json:"title"`
		TemplateName string `json:"template_name"`
		Tone         string `json:"tone"`
		Notes        string `json:"notes"`
		DocumentText string `json:"document_text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !checkLen(w, "title", req.Title, maxTitleLen) ||
		!checkLen(w, "template_name", req.TemplateName, maxTemplateNameLen) ||
		!checkLen(w, "tone", req.Tone, maxToneLen) ||
		!checkLen(w, "notes", req.Notes, maxNotesLen) ||
		!checkLen(w, "document_text", req.DocumentText, maxDocumentLen) {
		return
	}

	path, err := s.store.Save(req.Title, req.TemplateName, req.Tone, req.Notes, req.DocumentText)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save draft")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"filepath": path,
		"filename": filepath.Base(path),
	})
}

func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	if !s.authed(r) {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	drafts := s.store.List()
	if drafts == nil {
		drafts = []store.Entry{}
	}
	writeJSON(w, http.StatusOK, drafts)
}

func (s *Server) handleLoadDraft(w http.ResponseWriter, r *http.Request) {
	if !s.authed(r) {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	filename := r.PathValue("filename")
	if filepath.Base(filename) != filename {
		writeError(w, http.StatusBadRequest, "invalid draft name")
		return
	}

	draft, err := s.store.Load(filepath.Join(s.store.Dir(), filename))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "draft not found")
	case errors.Is(err, store.ErrCorruptDraft):
		writeError(w, http.StatusUnprocessableEntity, "draft file is unreadable")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to load draft")
	default:
		writeJSON(w, http.StatusOK, draft)
	}
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if !s.gateMutating(w, r) {
		return
	}

	filename := r.PathValue("filename")
	if !s.store.Delete(filename) {
		writeError(w, http.StatusNotFound, "draft not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// --- Export & download ---

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if !s.gateMutating(w, r) {
		return
	}

	format := r.PathValue("format")
	if format != "pdf" && format != "docx" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown export format %q", format))
		return
	}

	var req struct {
		Text  string `json:"text"`
		Title string `json:"title"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !checkLen(w, "text", req.Text, maxDocumentLen) ||
		!checkLen(w, "title", req.Title, maxTitleLen) {
		return
	}
	if req.Title == "" {
		req.Title = "Document"
	}

	var (
		path        string
		contentType string
		err         error
	)
	if format == "pdf" {
		path, err = s.exporter.PDF(req.Text, req.Title, "")
		contentType = "application/pdf"
	} else {
		path, err = s.exporter.DOCX(req.Text, req.Title, "")
		contentType = docxContentType
	}
	if errors.Is(err, export.ErrEmptyDocument) {
		writeError(w, http.StatusBadRequest, "no text to export")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("%s export failed", format))
		return
	}

	// Hand back a one-time GET URL instead of streaming the file from
	// this POST; browsers will not save it otherwise.
	token := s.downloads.put(path, filepath.Base(path), contentType)
	writeJSON(w, http.StatusOK, map[string]string{
		"download_url": "/download/" + token,
		"filename":     filepath.Base(path),
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if !s.authed(r) {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	item, ok := s.downloads.take(r.PathValue("token"))
	if !ok {
		writeError(w, http.StatusNotFound, "download expired or already used")
		return
	}

	w.Header().Set("Content-Type", item.contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.filename))
	http.ServeFile(w, r, item.path)
}

// --- Helpers ---

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func checkLen(w http.ResponseWriter, field, value string, max int) bool {
	if len(value) > max {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s exceeds maximum length of %d", field, max))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
