package theme

import "testing"

func TestKeysStableOrder(t *testing.T) {
	want := []Key{
		SpringGardenWedding,
		WoodlandBirthday,
		FestiveHoliday,
		LuxuryDinner,
		TropicalParty,
	}

	got := Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key order mismatch at %d: want %s, got %s", i, want[i], got[i])
		}
	}

	// 반환 슬라이스 변조가 내부 순서에 영향 없어야 함
	got[0] = Key("mutated")
	if Keys()[0] != SpringGardenWedding {
		t.Fatal("Keys must return a copy")
	}
}

func TestLookup(t *testing.T) {
	preset, ok := Lookup(SpringGardenWedding)
	if !ok {
		t.Fatal("expected preset for spring_garden_wedding")
	}
	if preset.Label != "🌸 Spring Garden Wedding" {
		t.Fatalf("unexpected label: %s", preset.Label)
	}

	if _, ok := Lookup(Key("nope")); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestIsValidKey(t *testing.T) {
	if !IsValidKey("luxury_dinner") {
		t.Fatal("luxury_dinner should be valid")
	}
	if IsValidKey("") || IsValidKey("Luxury_Dinner") {
		t.Fatal("invalid keys accepted")
	}
}

func TestPresetDefaultsComplete(t *testing.T) {
	for _, key := range Keys() {
		preset, ok := Lookup(key)
		if !ok {
			t.Fatalf("missing preset for %s", key)
		}
		if preset.Label == "" || preset.Motif == "" {
			t.Fatalf("%s: label/motif must not be empty", key)
		}
		if preset.APISize == "" {
			t.Fatalf("%s: default render size must be set", key)
		}
		if preset.QualityHint != "standard" && preset.QualityHint != "hd" {
			t.Fatalf("%s: unexpected quality hint %q", key, preset.QualityHint)
		}
	}
}
