package template

import (
	"strings"
	"testing"
)

func TestByNameIdentity(t *testing.T) {
	for _, tpl := range Templates {
		got := ByName(tpl.Name)
		if got.Name != tpl.Name {
			t.Errorf("ByName(%q) returned %q", tpl.Name, got.Name)
		}
	}
}

func TestByNameFallback(t *testing.T) {
	tests := []struct {
		name   string
		lookup string
	}{
		{"unknown name", "does_not_exist"},
		{"empty name", ""},
		{"case sensitive", "MEMO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByName(tt.lookup)
			if got.Name != "general" {
				t.Errorf("ByName(%q) = %q, want fallback to general", tt.lookup, got.Name)
			}
		})
	}
}

func TestCatalogShape(t *testing.T) {
	if len(Templates) == 0 {
		t.Fatal("catalog is empty")
	}
	if Templates[len(Templates)-1].Name != "general" {
		t.Errorf("last template is %q, want general", Templates[len(Templates)-1].Name)
	}

	seen := make(map[string]bool)
	for _, tpl := range Templates {
		if tpl.Name == "" || tpl.DisplayName == "" || tpl.SystemPrompt == "" {
			t.Errorf("template %q has empty required fields", tpl.Name)
		}
		if seen[tpl.Name] {
			t.Errorf("duplicate template name %q", tpl.Name)
		}
		seen[tpl.Name] = true

		// Every prompt forbids markdown so the classifier sees plain text.
		if !strings.Contains(tpl.SystemPrompt, "plain text only") {
			t.Errorf("template %q prompt does not pin plain text output", tpl.Name)
		}
	}
}

func TestOrderStableAcrossCalls(t *testing.T) {
	first := make([]string, len(Templates))
	for i, tpl := range Templates {
		first[i] = tpl.Name
	}
	for i, tpl := range Templates {
		if tpl.Name != first[i] {
			t.Fatalf("catalog order changed at index %d", i)
		}
	}
}
