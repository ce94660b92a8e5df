package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// ErrEmptyDocument is returned when there is nothing to export. The
// renderers surface this as an error value rather than a nil result.
var ErrEmptyDocument = errors.New("no text to export")

// Exporter renders documents into the drafts directory (or an
// explicit path) in PDF and DOCX form.
type Exporter struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

func NewExporter(dir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{dir: dir, logger: logger, now: time.Now}
}

// outputPath resolves where a rendered file goes. An explicit path
// wins; otherwise {sanitized_title}_{timestamp}.{ext} inside the
// drafts directory. Parent directories are created either way.
func (e *Exporter) outputPath(explicit, title, ext string) (string, error) {
	path := explicit
	if path == "" {
		filename := fmt.Sprintf("%s_%s.%s", sanitizeName(title, 30), e.now().Format("20060102_150405"), ext)
		path = filepath.Join(e.dir, filename)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return path, nil
}

// sanitizeName is the store's title rule with a shorter cap: keep
// letters, digits, spaces, hyphens, underscores; spaces become
// underscores.
func sanitizeName(title string, maxLen int) string {
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
