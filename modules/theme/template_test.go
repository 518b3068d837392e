package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildPromptMissingPlaceholderRendersEmpty(t *testing.T) {
	template := "motif: {motif} mystery: {does_not_exist} end"

	prompt, err := BuildPrompt(template, LuxuryDinner, "")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if strings.Contains(prompt, "{does_not_exist}") {
		t.Fatalf("unresolved placeholder left in prompt: %s", prompt)
	}
	if !strings.Contains(prompt, "mystery: end") {
		t.Fatalf("missing key should render as empty string, got: %s", prompt)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	first, err := BuildPrompt(DefaultTemplate, SpringGardenWedding, "")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	second, err := BuildPrompt(DefaultTemplate, SpringGardenWedding, "")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if first != second {
		t.Fatalf("prompt not deterministic:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestBuildPromptEmptyExtraRendersDash(t *testing.T) {
	prompt, err := BuildPrompt(DefaultTemplate, FestiveHoliday, "   ")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if !strings.Contains(prompt, "Extra art direction: —") {
		t.Fatalf("empty extra should render as dash, got: %s", prompt)
	}
}

func TestBuildPromptIncludesExtra(t *testing.T) {
	prompt, err := BuildPrompt(DefaultTemplate, TropicalParty, "add butterflies, warmer gold")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if !strings.Contains(prompt, "add butterflies, warmer gold") {
		t.Fatalf("extra art direction missing from prompt: %s", prompt)
	}
}

func TestBuildPromptCollapsesWhitespace(t *testing.T) {
	template := "a   {motif}\n\n  b\t c"

	prompt, err := BuildPrompt(template, LuxuryDinner, "")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if strings.Contains(prompt, "  ") || strings.Contains(prompt, "\n") || strings.Contains(prompt, "\t") {
		t.Fatalf("whitespace not collapsed: %q", prompt)
	}
}

func TestBuildPromptUnknownTheme(t *testing.T) {
	if _, err := BuildPrompt(DefaultTemplate, Key("disco_inferno"), ""); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestBuildPromptUsesPresetAttributes(t *testing.T) {
	prompt, err := BuildPrompt(DefaultTemplate, LuxuryDinner, "")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if !strings.Contains(prompt, "minimalist geometric center medallion") {
		t.Fatalf("preset motif missing from prompt: %s", prompt)
	}
	if !strings.Contains(prompt, "✨ Luxury Dinner") {
		t.Fatalf("theme label missing from prompt: %s", prompt)
	}
}

func TestLoadTemplateFromFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "napkin.tmpl")
	content := "custom template {motif}"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	if got := LoadTemplate(path); got != content {
		t.Fatalf("unexpected template: %q", got)
	}
}

func TestLoadTemplateFallsBackToDefault(t *testing.T) {
	if got := LoadTemplate("/does/not/exist.tmpl"); got != DefaultTemplate {
		t.Fatal("expected default template for missing file")
	}
	if got := LoadTemplate(""); got != DefaultTemplate {
		t.Fatal("expected default template for empty path")
	}
}
