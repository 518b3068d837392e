package napkin

import (
	"strings"
	"testing"

	"napkin-studio-server/modules/theme"
)

func mustPreset(t *testing.T, key theme.Key) theme.Preset {
	t.Helper()
	preset, ok := theme.Lookup(key)
	if !ok {
		t.Fatalf("missing preset for %s", key)
	}
	return preset
}

func TestResolveRenderSettingsThemeDefaults(t *testing.T) {
	preset := mustPreset(t, theme.SpringGardenWedding)

	settings, err := ResolveRenderSettings(preset, "", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if settings.Size != preset.APISize {
		t.Fatalf("size should fall back to preset default, got %s", settings.Size)
	}
	if settings.Quality != preset.QualityHint {
		t.Fatalf("quality should fall back to preset hint, got %s", settings.Quality)
	}
}

func TestResolveRenderSettingsOverrides(t *testing.T) {
	preset := mustPreset(t, theme.TropicalParty)

	settings, err := ResolveRenderSettings(preset, "1792x1024", "hd")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if settings.Size != "1792x1024" || settings.Quality != "hd" {
		t.Fatalf("overrides not applied: %+v", settings)
	}
}

func TestResolveRenderSettingsInvalid(t *testing.T) {
	preset := mustPreset(t, theme.LuxuryDinner)

	if _, err := ResolveRenderSettings(preset, "512x512", ""); err == nil {
		t.Fatal("expected error for unsupported size")
	}
	if _, err := ResolveRenderSettings(preset, "", "ultra"); err == nil {
		t.Fatal("expected error for unsupported quality")
	}
}

func TestValidateGenerateRequest(t *testing.T) {
	if err := ValidateGenerateRequest(&GenerateRequest{Theme: "festive_holiday"}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := ValidateGenerateRequest(&GenerateRequest{Theme: "  "}); err == nil {
		t.Fatal("expected error for missing theme")
	}
	if err := ValidateGenerateRequest(&GenerateRequest{Theme: "not_a_theme"}); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if err := ValidateGenerateRequest(&GenerateRequest{
		Theme: "festive_holiday",
		Extra: strings.Repeat("x", 2001),
	}); err == nil {
		t.Fatal("expected error for oversized extra")
	}
}

func TestValidateBatchRequest(t *testing.T) {
	if err := ValidateBatchRequest(&GenerateRequest{Theme: "woodland_birthday", Count: MaxBatchCount}); err != nil {
		t.Fatalf("valid batch rejected: %v", err)
	}
	if err := ValidateBatchRequest(&GenerateRequest{Theme: "woodland_birthday", Count: MaxBatchCount + 1}); err == nil {
		t.Fatal("expected error for count over limit")
	}
}

func TestValidateBatchRequestRenderSettings(t *testing.T) {
	// 잘못된 렌더 설정은 접수 시점에 거절 (worker까지 가면 안 됨)
	if err := ValidateBatchRequest(&GenerateRequest{Theme: "woodland_birthday", Size: "512x512", Count: 2}); err == nil {
		t.Fatal("expected error for unsupported size at enqueue time")
	}
	if err := ValidateBatchRequest(&GenerateRequest{Theme: "woodland_birthday", Quality: "ultra", Count: 2}); err == nil {
		t.Fatal("expected error for unsupported quality at enqueue time")
	}
	if err := ValidateBatchRequest(&GenerateRequest{Theme: "woodland_birthday", Size: "1792x1024", Quality: "hd", Count: 2}); err != nil {
		t.Fatalf("valid overrides rejected: %v", err)
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 80); got != "short" {
		t.Fatalf("unexpected: %s", got)
	}
	got := truncateString(strings.Repeat("a", 100), 10)
	if got != strings.Repeat("a", 10)+"..." {
		t.Fatalf("unexpected: %s", got)
	}
}
