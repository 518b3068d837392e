package preview

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"napkin-studio-server/modules/common/config"
	"napkin-studio-server/modules/common/fallback"
	"napkin-studio-server/modules/theme"
)

// PreviewHandler composes the final prompt without calling the image API.
type PreviewHandler struct {
	template string
}

type PreviewRequest struct {
	Theme string `json:"theme"`
	Extra string `json:"extra,omitempty"`
}

type PreviewResponse struct {
	Success      bool   `json:"success"`
	Prompt       string `json:"prompt,omitempty"`
	PreviewURL   string `json:"previewUrl,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
}

// NewPreviewHandler creates a handler instance.
func NewPreviewHandler() *PreviewHandler {
	cfg := config.GetConfig()
	return &PreviewHandler{
		template: theme.LoadTemplate(cfg.TemplatePath),
	}
}

// RegisterRoutes wires preview endpoints.
func (h *PreviewHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/napkin/preview", h.handlePreview).Methods("POST", "OPTIONS")
}

// handlePreview returns the composed prompt plus a placeholder thumbnail (transparent 1x1 PNG).
// This keeps the endpoint fast; nothing is billed and nothing is persisted.
func (h *PreviewHandler) handlePreview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Theme) == "" || !theme.IsValidKey(req.Theme) {
		json.NewEncoder(w).Encode(PreviewResponse{
			Success:      false,
			ErrorMessage: "Unknown theme: " + req.Theme,
			ErrorCode:    "UNKNOWN_THEME",
		})
		return
	}

	prompt, err := theme.BuildPrompt(h.template, theme.Key(req.Theme), req.Extra)
	if err != nil {
		json.NewEncoder(w).Encode(PreviewResponse{
			Success:      false,
			ErrorMessage: err.Error(),
			ErrorCode:    "INTERNAL_ERROR",
		})
		return
	}

	resp := PreviewResponse{
		Success:    true,
		Prompt:     prompt,
		PreviewURL: "data:image/png;base64," + fallback.PlaceholderBase64(),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
}
