package fallback

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"
)

func TestPlaceholderBytesIsValidPNG(t *testing.T) {
	data := PlaceholderBytes()
	if len(data) == 0 {
		t.Fatal("placeholder bytes empty")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("placeholder is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1 || bounds.Dy() != 1 {
		t.Fatalf("expected 1x1 pixel, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// 반환 슬라이스 변조가 원본에 영향 없어야 함
	data[0] = 0
	if PlaceholderBytes()[0] == 0 {
		t.Fatal("PlaceholderBytes must return a copy")
	}
}

func TestSafeString(t *testing.T) {
	if got := SafeString("hello", "fb"); got != "hello" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := SafeString("  padded  ", "fb"); got != "padded" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := SafeString("   ", "fb"); got != "fb" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := SafeString(nil, "fb"); got != "fb" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := SafeString(42, "fb"); got != "fb" {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestSafeInt(t *testing.T) {
	if got := SafeInt(float64(3), 1); got != 3 {
		t.Fatalf("unexpected: %d", got)
	}
	if got := SafeInt(5, 1); got != 5 {
		t.Fatalf("unexpected: %d", got)
	}
	if got := SafeInt("7", 1); got != 7 {
		t.Fatalf("unexpected: %d", got)
	}
	if got := SafeInt(json.Number("9"), 1); got != 9 {
		t.Fatalf("unexpected: %d", got)
	}
	if got := SafeInt(float64(0), 1); got != 1 {
		t.Fatalf("zero should fall back, got %d", got)
	}
	if got := SafeInt(-2, 1); got != 1 {
		t.Fatalf("negative should fall back, got %d", got)
	}
	if got := SafeInt(nil, 4); got != 4 {
		t.Fatalf("nil should fall back, got %d", got)
	}
}

func TestDefaultQuantity(t *testing.T) {
	if got := DefaultQuantity(0); got != 1 {
		t.Fatalf("unexpected: %d", got)
	}
	if got := DefaultQuantity(-1); got != 1 {
		t.Fatalf("unexpected: %d", got)
	}
	if got := DefaultQuantity(6); got != 6 {
		t.Fatalf("unexpected: %d", got)
	}
}
