package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftsmith/draftsmith/internal/config"
	"github.com/draftsmith/draftsmith/internal/export"
	"github.com/draftsmith/draftsmith/internal/llm"
	"github.com/draftsmith/draftsmith/internal/store"
	"github.com/draftsmith/draftsmith/internal/writer"
)

func newTestServer(t *testing.T, password string, provider llm.Provider) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.DefaultConfig()
	cfg.Web.Password = password
	cfg.DraftsDir = t.TempDir()

	st, err := store.New(cfg.DraftsDir, logger)
	require.NoError(t, err)

	srv, err := New(cfg, writer.New(provider, "test-model", logger), st, export.NewExporter(cfg.DraftsDir, logger), logger)
	require.NoError(t, err)
	return srv
}

func newTestClient(t *testing.T, srv *Server) (*httptest.Server, *http.Client) {
	t.Helper()
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, "", &llm.MockProvider{})
	ts, client := newTestClient(t, srv)

	resp, err := client.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t, "hunter2", &llm.MockProvider{})
	ts, client := newTestClient(t, srv)

	// Unauthenticated API access is rejected.
	resp, err := client.Get(ts.URL + "/api/templates")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong password.
	resp = postJSON(t, client, ts.URL+"/login", map[string]string{"password": "wrong"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Correct password sets the session cookie.
	resp = postJSON(t, client, ts.URL+"/login", map[string]string{"password": "hunter2"})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(ts.URL + "/api/templates")
	require.NoError(t, err)
	var templates []templateResp
	decodeBody(t, resp, &templates)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, templates)
	assert.Equal(t, "formal_letter", templates[0].Name)

	// Logout invalidates the session.
	resp = postJSON(t, client, ts.URL+"/logout", map[string]string{})
	resp.Body.Close()

	resp, err = client.Get(ts.URL + "/api/templates")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNoPasswordMeansOpenAccess(t *testing.T) {
	srv := newTestServer(t, "", &llm.MockProvider{})
	ts, client := newTestClient(t, srv)

	resp, err := client.Get(ts.URL + "/api/tones")
	require.NoError(t, err)
	var tones []string
	decodeBody(t, resp, &tones)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, tones, "Professional")
}

func TestSessionInactivityTimeout(t *testing.T) {
	srv := newTestServer(t, "pw", &llm.MockProvider{})
	srv.sessions.timeout = time.Minute
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.sessions.now = func() time.Time { return base }

	token := srv.sessions.create()
	assert.True(t, srv.sessions.valid(token))

	// Activity inside the window slides it.
	srv.sessions.now = func() time.Time { return base.Add(50 * time.Second) }
	assert.True(t, srv.sessions.valid(token))

	srv.sessions.now = func() time.Time { return base.Add(100 * time.Second) }
	assert.True(t, srv.sessions.valid(token), "window slid forward at the 50s touch")

	// Silence past the timeout expires the session.
	srv.sessions.now = func() time.Time { return base.Add(100*time.Second + 2*time.Minute) }
	assert.False(t, srv.sessions.valid(token))
}

func TestGenerate(t *testing.T) {
	mock := &llm.MockProvider{Response: "THE MEMO\n\nBody."}
	srv := newTestServer(t, "", mock)
	ts, client := newTestClient(t, srv)

	resp := postJSON(t, client, ts.URL+"/api/generate", map[string]string{
		"template_name": "memo",
		"notes":         "To: staff",
		"tone":          "Formal",
	})
	var out map[string]string
	decodeBody(t, resp, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "THE MEMO\n\nBody.", out["document_text"])
	assert.Equal(t, 1, mock.CallCount())
}

func TestGenerateRejectsOversizedNotes(t *testing.T) {
	mock := &llm.MockProvider{Response: "unused"}
	srv := newTestServer(t, "", mock)
	ts, client := newTestClient(t, srv)

	resp := postJSON(t, client, ts.URL+"/api/generate", map[string]string{
		"template_name": "memo",
		"notes":         strings.Repeat("x", maxNotesLen+1),
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, mock.CallCount(), "validation must happen before any work")
}

func TestRefine(t *testing.T) {
	mock := &llm.MockProvider{Response: "Shorter."}
	srv := newTestServer(t, "", mock)
	ts, client := newTestClient(t, srv)

	resp := postJSON(t, client, ts.URL+"/api/refine", map[string]string{
		"current_text": "A long document.",
		"instruction":  "make it shorter",
	})
	var out map[string]string
	decodeBody(t, resp, &out)
	assert.Equal(t, "Shorter.", out["document_text"])
}

func TestRateLimitMutatingRoutes(t *testing.T) {
	srv := newTestServer(t, "", &llm.MockProvider{Response: "text"})
	ts, client := newTestClient(t, srv)

	var last int
	for i := 0; i < mutatingPerMinute+1; i++ {
		resp := postJSON(t, client, ts.URL+"/api/generate", map[string]string{
			"template_name": "memo",
			"notes":         "", // guidance path, no model call
		})
		resp.Body.Close()
		last = resp.StatusCode
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestDraftLifecycle(t *testing.T) {
	srv := newTestServer(t, "", &llm.MockProvider{})
	ts, client := newTestClient(t, srv)

	resp := postJSON(t, client, ts.URL+"/api/drafts", map[string]string{
		"title":         "Board Letter",
		"template_name": "formal_letter",
		"tone":          "Formal",
		"notes":         "notes here",
		"document_text": "Dear Board,",
	})
	var saved map[string]string
	decodeBody(t, resp, &saved)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, saved["filename"])

	// List shows it.
	resp, err := client.Get(ts.URL + "/api/drafts")
	require.NoError(t, err)
	var list []store.Entry
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Board Letter", list[0].Title)

	// Load it back.
	resp, err = client.Get(ts.URL + "/api/drafts/" + saved["filename"])
	require.NoError(t, err)
	var draft store.Draft
	decodeBody(t, resp, &draft)
	assert.Equal(t, "Dear Board,", draft.DocumentText)

	// Delete it.
	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/drafts/"+saved["filename"], nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(ts.URL + "/api/drafts/" + saved["filename"])
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportProducesOneTimeDownload(t *testing.T) {
	srv := newTestServer(t, "", &llm.MockProvider{})
	ts, client := newTestClient(t, srv)

	resp := postJSON(t, client, ts.URL+"/api/export/pdf", map[string]string{
		"text":  "SUMMARY\n\nHello.",
		"title": "Export Test",
	})
	var out map[string]string
	decodeBody(t, resp, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(out["download_url"], "/download/"))

	// First fetch succeeds and is a PDF.
	resp, err := client.Get(ts.URL + out["download_url"])
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	// The token is single use.
	resp, err = client.Get(ts.URL + out["download_url"])
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportEmptyText(t *testing.T) {
	srv := newTestServer(t, "", &llm.MockProvider{})
	ts, client := newTestClient(t, srv)

	for _, format := range []string{"pdf", "docx"} {
		resp := postJSON(t, client, fmt.Sprintf("%s/api/export/%s", ts.URL, format), map[string]string{
			"text": "   ",
		})
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	srv := newTestServer(t, "", &llm.MockProvider{})
	ts, client := newTestClient(t, srv)

	resp := postJSON(t, client, ts.URL+"/api/export/odt", map[string]string{"text": "hi"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
