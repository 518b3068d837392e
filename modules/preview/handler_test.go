package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"napkin-studio-server/modules/theme"
)

func newTestRouter() *mux.Router {
	h := &PreviewHandler{template: theme.DefaultTemplate}
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func TestHandlePreview(t *testing.T) {
	router := newTestRouter()

	body := `{"theme":"tropical_party","extra":"more hibiscus"}`
	req := httptest.NewRequest("POST", "/api/napkin/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp PreviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got error: %s", resp.ErrorMessage)
	}
	if !strings.Contains(resp.Prompt, "more hibiscus") {
		t.Fatalf("extra missing from prompt: %s", resp.Prompt)
	}
	if !strings.HasPrefix(resp.PreviewURL, "data:image/png;base64,") {
		t.Fatalf("unexpected preview url: %s", resp.PreviewURL)
	}
}

func TestHandlePreviewUnknownTheme(t *testing.T) {
	router := newTestRouter()

	body := `{"theme":"disco_inferno"}`
	req := httptest.NewRequest("POST", "/api/napkin/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp PreviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.ErrorCode != "UNKNOWN_THEME" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandlePreviewBadBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("POST", "/api/napkin/preview", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
