package napkin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	goredis "github.com/redis/go-redis/v9"

	"napkin-studio-server/modules/common/model"
	"napkin-studio-server/modules/common/redis"
)

type Handler struct {
	service *Service
	rdb     *goredis.Client
}

func NewHandler(service *Service, rdb *goredis.Client) *Handler {
	return &Handler{
		service: service,
		rdb:     rdb,
	}
}

// HandleGenerate - POST /api/napkin/generate
// 동기 생성: 테마 + 렌더 설정 + 추가 디렉션 → 이미지 1장
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Service 확인
	if h.service == nil {
		log.Println("❌ [Napkin] Service not initialized")
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
			ErrorCode:    ErrCodeInternalError,
		})
		return
	}

	// Request 파싱
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Napkin] Invalid request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	// 요청 검증
	if err := ValidateGenerateRequest(&req); err != nil {
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	ctx := r.Context()

	log.Printf("🎨 [Napkin] Processing request: theme=%s, size=%s, quality=%s, extra=%s",
		req.Theme, req.Size, req.Quality, truncateString(req.Extra, 30))

	response := h.service.Generate(ctx, &req)

	log.Printf("✅ [Napkin] Response sent: success=%v, images=%d", response.Success, len(response.Images))

	json.NewEncoder(w).Encode(response)
}

// HandleBatch - POST /api/napkin/batch
// 비동기 배치 생성: Job 생성 후 Redis 대기열에 투입, 즉시 jobId 반환
func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.service == nil || h.rdb == nil {
		json.NewEncoder(w).Encode(BatchResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
			ErrorCode:    ErrCodeInternalError,
		})
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		json.NewEncoder(w).Encode(BatchResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if err := ValidateBatchRequest(&req); err != nil {
		json.NewEncoder(w).Encode(BatchResponse{
			Success:      false,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if req.Count <= 0 {
		req.Count = 1
	}

	ctx := r.Context()
	jobID := uuid.NewString()

	// Job row 생성
	input := model.JobInputData{
		Theme:   req.Theme,
		Size:    req.Size,
		Quality: req.Quality,
		Extra:   req.Extra,
		Count:   req.Count,
		UserID:  req.UserID,
	}
	if err := h.service.Database().CreateJob(ctx, jobID, input); err != nil {
		log.Printf("❌ [Napkin] Failed to create job: %v", err)
		json.NewEncoder(w).Encode(BatchResponse{
			Success:      false,
			ErrorMessage: "Failed to create job",
			ErrorCode:    ErrCodeInternalError,
		})
		return
	}

	// 대기열 투입
	if err := h.rdb.LPush(ctx, redis.JobQueueKey, jobID).Err(); err != nil {
		log.Printf("❌ [Napkin] Failed to enqueue job %s: %v", jobID, err)
		json.NewEncoder(w).Encode(BatchResponse{
			Success:      false,
			ErrorMessage: "Failed to enqueue job",
			ErrorCode:    ErrCodeInternalError,
		})
		return
	}

	log.Printf("📬 [Napkin] Job enqueued: %s (theme=%s, count=%d)", jobID, req.Theme, req.Count)

	json.NewEncoder(w).Encode(BatchResponse{
		Success: true,
		JobID:   jobID,
	})
}

// HandleJobStatus - GET /api/napkin/jobs/{jobId}
func (h *Handler) HandleJobStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	jobID := vars["jobId"]

	job, err := h.service.Database().FetchJob(jobID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(JobStatusResponse{
			Success:      false,
			JobID:        jobID,
			ErrorMessage: "Job not found",
			ErrorCode:    ErrCodeJobNotFound,
		})
		return
	}

	// generated_attach_ids는 JSONB라 숫자 타입 변환 필요
	attachIDs := make([]int, 0, len(job.GeneratedAttachIDs))
	for _, raw := range job.GeneratedAttachIDs {
		if id, ok := raw.(float64); ok {
			attachIDs = append(attachIDs, int(id))
		}
	}

	resp := JobStatusResponse{
		Success:            true,
		JobID:              job.JobID,
		Status:             job.JobStatus,
		TotalImages:        job.TotalImages,
		CompletedImages:    job.CompletedImages,
		FailedImages:       job.FailedImages,
		GeneratedAttachIDs: attachIDs,
	}
	if job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}

	json.NewEncoder(w).Encode(resp)
}

// HandleJobCancel - POST /api/napkin/jobs/{jobId}/cancel
// Redis 취소 플래그 설정 - worker가 이미지 사이마다 확인한다
func (h *Handler) HandleJobCancel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	jobID := vars["jobId"]

	if h.rdb == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      false,
			"errorMessage": "Service unavailable",
			"errorCode":    ErrCodeInternalError,
		})
		return
	}

	ctx := r.Context()
	if err := h.rdb.Set(ctx, redis.CancelKey(jobID), "1", cancelFlagTTL).Err(); err != nil {
		log.Printf("❌ [Napkin] Failed to set cancel flag for %s: %v", jobID, err)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      false,
			"errorMessage": "Failed to cancel job",
			"errorCode":    ErrCodeInternalError,
		})
		return
	}

	log.Printf("🛑 [Napkin] Cancel requested for job: %s", jobID)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"jobId":   jobID,
	})
}
