// Package export converts generated plain text into formatted PDF and
// Word documents. Both renderers consume the same classified line
// sequence, so structure detection lives here once.
package export

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineKind is the structural role of one line of document text.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeading
	LineSubheading
	LineBullet
	LineNumbered
	LineParagraph
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineHeading:
		return "heading"
	case LineSubheading:
		return "subheading"
	case LineBullet:
		return "bullet"
	case LineNumbered:
		return "numbered"
	default:
		return "paragraph"
	}
}

// Line is one classified line. Text is trimmed; bullet and numbered
// lines have their source marker stripped so renderers assign their
// own glyphs.
type Line struct {
	Kind LineKind
	Text string
}

var numberedPrefix = regexp.MustCompile(`^\d+[\.\)]\s`)

// Classify tags every line of text with its structural role. It is
// pure and total: one Line per input line, first matching rule wins,
// no lookahead past the current line. Rule order matters: an all-caps
// line ending in ":" is a heading, not a subheading.
func Classify(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(raw)
		lines = append(lines, classifyLine(stripped))
	}
	return lines
}

func classifyLine(stripped string) Line {
	length := utf8.RuneCountInString(stripped)

	switch {
	case stripped == "":
		return Line{Kind: LineBlank}
	case isUpperCase(stripped) && length > 3 && length < 80:
		return Line{Kind: LineHeading, Text: stripped}
	case strings.HasSuffix(stripped, ":") && length < 60:
		return Line{Kind: LineSubheading, Text: stripped}
	case strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* "):
		return Line{Kind: LineBullet, Text: stripped[2:]}
	default:
		if m := numberedPrefix.FindString(stripped); m != "" {
			return Line{Kind: LineNumbered, Text: stripped[len(m):]}
		}
		return Line{Kind: LineParagraph, Text: stripped}
	}
}

// isUpperCase reports whether s contains at least one cased letter
// and no lowercase ones, so "NOTE:" qualifies but "2024" does not.
func isUpperCase(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// titleCase renders an all-caps heading the way readers expect:
// "EXECUTIVE SUMMARY" becomes "Executive Summary".
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
