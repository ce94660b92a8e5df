package export

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind LineKind
		wantText string
	}{
		{"empty", "", LineBlank, ""},
		{"whitespace only", "   \t", LineBlank, ""},
		{"all caps heading", "EXECUTIVE SUMMARY", LineHeading, "EXECUTIVE SUMMARY"},
		{"caps too short", "TO", LineParagraph, "TO"},
		{"digits are not a heading", "2024", LineParagraph, "2024"},
		{"subheading", "Key Points:", LineSubheading, "Key Points:"},
		{"dash bullet", "- First item", LineBullet, "First item"},
		{"star bullet", "* Third item", LineBullet, "Third item"},
		{"numbered dot", "1. Do the thing", LineNumbered, "Do the thing"},
		{"numbered paren", "12) Another thing", LineNumbered, "Another thing"},
		{"numbered without space", "1.Do it", LineParagraph, "1.Do it"},
		{"paragraph", "Just a normal sentence.", LineParagraph, "Just a normal sentence."},
		{"paragraph trimmed", "  indented text  ", LineParagraph, "indented text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			if len(got) != 1 {
				t.Fatalf("Classify returned %d lines, want 1", len(got))
			}
			if got[0].Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", got[0].Kind, tt.wantKind)
			}
			if got[0].Text != tt.wantText {
				t.Errorf("text = %q, want %q", got[0].Text, tt.wantText)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// All-caps AND ends with a colon: the heading rule wins because
	// it is checked first.
	got := Classify("NOTE:")
	if got[0].Kind != LineHeading {
		t.Errorf("NOTE: classified as %s, want heading", got[0].Kind)
	}
}

func TestClassifyTotalAndDeterministic(t *testing.T) {
	text := "TITLE HERE\n\nIntro paragraph.\nItems:\n- one\n* two\n3. three\n"

	first := Classify(text)
	second := Classify(text)

	if len(first) != len(second) {
		t.Fatalf("length differs between runs: %d vs %d", len(first), len(second))
	}
	// One record per input line, including the trailing empty line.
	wantLen := 8
	if len(first) != wantLen {
		t.Errorf("got %d lines, want %d", len(first), wantLen)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EXECUTIVE SUMMARY", "Executive Summary"},
		{"Q4 RESULTS", "Q4 Results"},
		{"ACTION ITEMS:", "Action Items:"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
