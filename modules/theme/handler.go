package theme

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// Handler serves the theme preset catalogue.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ThemeSummary - 목록 응답용 (테마 선택 시 기본 렌더 설정 포함)
type ThemeSummary struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	Motif          string `json:"motif"`
	DefaultSize    string `json:"defaultSize"`
	DefaultQuality string `json:"defaultQuality"`
}

// HandleList - GET /api/themes
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summaries := make([]ThemeSummary, 0, len(orderedKeys))
	for _, key := range Keys() {
		preset, _ := Lookup(key)
		summaries = append(summaries, ThemeSummary{
			Key:            string(key),
			Label:          preset.Label,
			Motif:          preset.Motif,
			DefaultSize:    preset.APISize,
			DefaultQuality: preset.QualityHint,
		})
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"themes":  summaries,
	})
}

// HandleDetail - GET /api/themes/{key}
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	key := Key(vars["key"])

	preset, ok := Lookup(key)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      false,
			"errorMessage": "Unknown theme: " + string(key),
			"errorCode":    "UNKNOWN_THEME",
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"key":     string(key),
		"preset":  preset,
	})
}
