package history

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"napkin-studio-server/modules/common/config"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleRecent - GET /api/prompts/recent?limit=N
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// limit 파싱 (없으면 config 기본값)
	limit := config.GetConfig().RecentPromptLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}
	limit = ClampLimit(limit)

	entries, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("❌ [History] Failed to fetch recent prompts: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      false,
			"errorMessage": "Failed to fetch recent prompts",
			"errorCode":    "INTERNAL_ERROR",
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"prompts": entries,
	})
}
