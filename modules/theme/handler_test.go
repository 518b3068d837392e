package theme

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func newThemeRouter() *mux.Router {
	h := NewHandler()
	r := mux.NewRouter()
	r.HandleFunc("/api/themes", h.HandleList).Methods("GET")
	r.HandleFunc("/api/themes/{key}", h.HandleDetail).Methods("GET")
	return r
}

func TestHandleList(t *testing.T) {
	router := newThemeRouter()

	req := httptest.NewRequest("GET", "/api/themes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Success bool           `json:"success"`
		Themes  []ThemeSummary `json:"themes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success=true")
	}
	if len(body.Themes) != 5 {
		t.Fatalf("expected 5 themes, got %d", len(body.Themes))
	}
	if body.Themes[0].Key != string(SpringGardenWedding) {
		t.Fatalf("unexpected first theme: %s", body.Themes[0].Key)
	}
	for _, tm := range body.Themes {
		if tm.DefaultSize == "" || tm.DefaultQuality == "" {
			t.Fatalf("theme %s missing render defaults", tm.Key)
		}
	}
}

func TestHandleDetail(t *testing.T) {
	router := newThemeRouter()

	req := httptest.NewRequest("GET", "/api/themes/luxury_dinner", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Key     string `json:"key"`
		Preset  Preset `json:"preset"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Key != "luxury_dinner" {
		t.Fatalf("unexpected key: %s", body.Key)
	}
	if body.Preset.Label != "✨ Luxury Dinner" {
		t.Fatalf("unexpected label: %s", body.Preset.Label)
	}
}

func TestHandleDetailUnknownTheme(t *testing.T) {
	router := newThemeRouter()

	req := httptest.NewRequest("GET", "/api/themes/disco_inferno", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"errorCode"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success || body.ErrorCode != "UNKNOWN_THEME" {
		t.Fatalf("unexpected error payload: %+v", body)
	}
}
