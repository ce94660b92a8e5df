// Package store persists drafts as one JSON file each inside a fixed
// drafts directory. Files are immutable once written and addressed by
// a sanitized-title + timestamp filename.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrNotFound means the draft file does not exist.
	ErrNotFound = errors.New("draft not found")
	// ErrCorruptDraft means the file exists but is not a readable draft.
	ErrCorruptDraft = errors.New("draft file is corrupt")
)

// Draft is a saved snapshot of notes, generated text, and metadata.
type Draft struct {
	Title        string `json:"title"`
	TemplateName string `json:"template_name"`
	Tone         string `json:"tone"`
	Notes        string `json:"notes"`
	DocumentText string `json:"document_text"`
	SavedAt      string `json:"saved_at"`
	Filename     string `json:"filename"`
}

// Entry is one row in a draft listing.
type Entry struct {
	Title        string `json:"title"`
	SavedAt      string `json:"saved_at"`
	Filepath     string `json:"filepath"`
	TemplateName string `json:"template_name"`
}

type Store struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// New creates the store, making the drafts directory if needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create drafts directory: %w", err)
	}
	return &Store{dir: dir, logger: logger, now: time.Now}, nil
}

// Dir returns the drafts directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a draft and returns its absolute path. Filenames are
// {sanitized_title}_{YYYYMMDD_HHMMSS}.json; two saves of the same
// title within one second overwrite each other, which the original
// tool accepted and compatibility preserves.
func (s *Store) Save(title, templateName, tone, notes, documentText string) (string, error) {
	now := s.now()
	filename := fmt.Sprintf("%s_%s.json", SanitizeTitle(title, 40), now.Format("20060102_150405"))

	draft := Draft{
		Title:        title,
		TemplateName: templateName,
		Tone:         tone,
		Notes:        notes,
		DocumentText: documentText,
		SavedAt:      now.Format("2006-01-02T15:04:05"),
		Filename:     filename,
	}

	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize draft: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write draft: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	s.logger.Info("draft saved", slog.String("path", abs))
	return abs, nil
}

// Load reads a draft back from disk.
func (s *Store) Load(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDraft, err)
	}
	if draft.SavedAt == "" {
		return nil, fmt.Errorf("%w: missing saved_at", ErrCorruptDraft)
	}
	return &draft, nil
}

// List returns all readable drafts, newest first. The timestamp
// suffix is zero-padded and fixed width, so lexicographic-descending
// filename order is chronological. Unreadable files are logged and
// skipped, never fatal.
func (s *Store) List() []Entry {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Error("failed to list drafts", slog.String("error", err.Error()))
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var drafts []Entry
	for _, name := range names {
		path := filepath.Join(s.dir, name)
		draft, err := s.Load(path)
		if err != nil {
			s.logger.Warn("skipping unreadable draft",
				slog.String("file", name),
				slog.String("error", err.Error()))
			continue
		}
		title := draft.Title
		if title == "" {
			title = "Untitled"
		}
		tpl := draft.TemplateName
		if tpl == "" {
			tpl = "general"
		}
		drafts = append(drafts, Entry{
			Title:        title,
			SavedAt:      draft.SavedAt,
			Filepath:     path,
			TemplateName: tpl,
		})
	}
	return drafts
}

// Delete removes a draft by file name. Only the base name is used, so
// paths that try to escape the drafts directory are rejected rather
// than resolved.
func (s *Store) Delete(filename string) bool {
	base := filepath.Base(filename)
	if base != filename || base == "." || base == ".." || base == string(filepath.Separator) {
		s.logger.Warn("rejected draft delete outside store", slog.String("filename", filename))
		return false
	}

	if err := os.Remove(filepath.Join(s.dir, base)); err != nil {
		s.logger.Error("failed to delete draft",
			slog.String("file", base),
			slog.String("error", err.Error()))
		return false
	}
	s.logger.Info("draft deleted", slog.String("file", base))
	return true
}

// SanitizeTitle keeps letters, digits, spaces, hyphens, and
// underscores, truncates to maxLen runes, and turns spaces into
// underscores. An empty result becomes "untitled".
func SanitizeTitle(title string, maxLen int) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	clean := []rune(b.String())
	if len(clean) > maxLen {
		clean = clean[:maxLen]
	}
	out := strings.ReplaceAll(strings.TrimSpace(string(clean)), " ", "_")
	if out == "" {
		return "untitled"
	}
	return out
}
