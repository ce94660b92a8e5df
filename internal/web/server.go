// Package web is the browser front end: JSON routes over the same
// writer, store, and export collaborators the terminal UI uses, plus
// session-cookie auth and per-client rate limiting.
package web

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/draftsmith/draftsmith/internal/config"
	"github.com/draftsmith/draftsmith/internal/export"
	"github.com/draftsmith/draftsmith/internal/store"
	"github.com/draftsmith/draftsmith/internal/writer"
)

const (
	sessionCookie = "draftsmith_session"

	// generationTimeout bounds one model call; there is no mid-flight
	// cancellation beyond it.
	generationTimeout = 120 * time.Second

	// maxGenerationWorkers bounds concurrent model calls.
	maxGenerationWorkers = 2

	// Field maxima; oversized input is rejected before any work.
	maxNotesLen        = 10000
	maxDocumentLen     = 10000
	maxTitleLen        = 200
	maxInstructionLen  = 2000
	maxTemplateNameLen = 200
	maxToneLen         = 50
	maxPasswordLen     = 200
)

type Server struct {
	cfg       *config.Config
	writer    *writer.Writer
	store     *store.Store
	exporter  *export.Exporter
	sessions  *sessionStore
	limiter   *clientLimiter
	downloads *downloadStore
	genSem    chan struct{}
	logger    *slog.Logger
}

func New(cfg *config.Config, w *writer.Writer, st *store.Store, ex *export.Exporter, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	if w == nil || st == nil || ex == nil {
		return nil, fmt.Errorf("writer, store, and exporter required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:       cfg,
		writer:    w,
		store:     st,
		exporter:  ex,
		sessions:  newSessionStore(cfg.Web.SessionTimeout),
		limiter:   newClientLimiter(),
		downloads: newDownloadStore(),
		genSem:    make(chan struct{}, maxGenerationWorkers),
		logger:    logger,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)

	mux.HandleFunc("GET /api/templates", s.handleTemplates)
	mux.HandleFunc("GET /api/tones", s.handleTones)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/refine", s.handleRefine)

	mux.HandleFunc("POST /api/drafts", s.handleSaveDraft)
	mux.HandleFunc("GET /api/drafts", s.handleListDrafts)
	mux.HandleFunc("GET /api/drafts/{filename}", s.handleLoadDraft)
	mux.HandleFunc("DELETE /api/drafts/{filename}", s.handleDeleteDraft)

	mux.HandleFunc("POST /api/export/{format}", s.handleExport)
	mux.HandleFunc("GET /download/{token}", s.handleDownload)

	return s.recoverMiddleware(s.logMiddleware(mux))
}

// ListenAndServe binds the configured port, falling back to the next
// free one when it is taken, and serves until the listener fails.
func (s *Server) ListenAndServe() error {
	ln, port, err := listenWithFallback(s.cfg.Web.Port)
	if err != nil {
		return err
	}
	if port != s.cfg.Web.Port {
		s.logger.Info("configured port busy, using fallback",
			slog.Int("configured", s.cfg.Web.Port),
			slog.Int("port", port))
	}
	s.logger.Info("web server listening", slog.Int("port", port))
	if s.cfg.Web.Password == "" {
		s.logger.Warn("no web password set, access is open")
	}
	return http.Serve(ln, s.Routes())
}

func listenWithFallback(start int) (net.Listener, int, error) {
	for port := start; port < start+100; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			return ln, port, nil
		}
	}
	return nil, 0, fmt.Errorf("no free port in range %d-%d", start, start+99)
}

// --- Middleware ---

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("elapsed", time.Since(start)))
	})
}

// recoverMiddleware turns any unanticipated panic into a generic 500
// without leaking internals to the client.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in handler",
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec))
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// --- Gates ---

// authed checks the session cookie. With no password configured the
// UI is open, matching the desktop app.
func (s *Server) authed(r *http.Request) bool {
	if s.cfg.Web.Password == "" {
		return true
	}
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return false
	}
	return s.sessions.valid(cookie.Value)
}

// gateMutating runs the auth and rate-limit checks every mutating
// route needs before doing any work. It reports whether the request
// may proceed, having written the rejection otherwise.
func (s *Server) gateMutating(w http.ResponseWriter, r *http.Request) bool {
	if !s.authed(r) {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return false
	}
	if !s.limiter.allow(clientAddr(r)) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again in a minute")
		return false
	}
	return true
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
