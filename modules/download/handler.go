package download

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"napkin-studio-server/modules/common/storage"
	"napkin-studio-server/modules/common/utils"
)

// Handler - 저장된 냅킨 이미지를 PNG로 내려주는 다운로드 엔드포인트
// Storage에는 WebP로 보관하고, 다운로드 시 PNG로 되돌려준다
type Handler struct {
	storage *storage.Client
}

func NewHandler(storageClient *storage.Client) *Handler {
	return &Handler{
		storage: storageClient,
	}
}

// HandleDownload - GET /api/napkin/download/{attachId}
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attachIDStr := vars["attachId"]

	attachID, err := strconv.Atoi(attachIDStr)
	if err != nil || attachID <= 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      false,
			"errorMessage": "Invalid attach id: " + attachIDStr,
			"errorCode":    "INVALID_REQUEST",
		})
		return
	}

	// Storage에서 WebP 다운로드
	webpData, err := h.storage.DownloadImageFromStorage(attachID)
	if err != nil {
		log.Printf("❌ [Download] Failed to fetch attach %d: %v", attachID, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      false,
			"errorMessage": "Image not found",
			"errorCode":    "NOT_FOUND",
		})
		return
	}

	// WebP → PNG 변환
	pngData, err := utils.ConvertWebPToPNG(webpData)
	if err != nil {
		log.Printf("❌ [Download] Failed to convert attach %d to PNG: %v", attachID, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      false,
			"errorMessage": "Failed to prepare image",
			"errorCode":    "INTERNAL_ERROR",
		})
		return
	}

	fileName := fmt.Sprintf("napkin_%d.png", attachID)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(pngData)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(pngData); err != nil {
		log.Printf("⚠️  [Download] Failed to stream attach %d: %v", attachID, err)
		return
	}

	log.Printf("✅ [Download] Served attach %d as %s (%d bytes)", attachID, fileName, len(pngData))
}
