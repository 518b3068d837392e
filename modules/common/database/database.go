package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"napkin-studio-server/modules/common/config"
	"napkin-studio-server/modules/common/model"
)

type Client struct {
	supabase *supabase.Client
}

// NewClient - Database 클라이언트 생성
func NewClient() *Client {
	cfg := config.GetConfig()

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("❌ Failed to create Supabase client: %v", err)
		return nil
	}

	return &Client{
		supabase: supabaseClient,
	}
}

// SavePrompt - napkin_prompt_log에 프롬프트 추가 (append-only)
func (c *Client) SavePrompt(ctx context.Context, prompt, themeKey, userID string) error {
	insertData := map[string]interface{}{
		"prompt":    prompt,
		"theme_key": themeKey,
	}
	if userID != "" {
		insertData["user_id"] = userID
	}

	_, _, err := c.supabase.From("napkin_prompt_log").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to insert prompt log: %w", err)
	}

	log.Printf("💾 Prompt saved to log (theme: %s, %d chars)", themeKey, len(prompt))
	return nil
}

// FetchRecentPrompts - 최근 프롬프트 N개 조회 (created_at desc)
func (c *Client) FetchRecentPrompts(ctx context.Context, limit int) ([]model.PromptLogEntry, error) {
	data, _, err := c.supabase.From("napkin_prompt_log").
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query prompt log: %w", err)
	}

	var entries []model.PromptLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse prompt log: %w", err)
	}

	return entries, nil
}

// CreateJob - napkin_jobs 테이블에 Job 생성
func (c *Client) CreateJob(ctx context.Context, jobID string, input model.JobInputData) error {
	log.Printf("📝 Creating job: %s (theme: %s, count: %d)", jobID, input.Theme, input.Count)

	insertData := map[string]interface{}{
		"job_id":           jobID,
		"job_status":       model.StatusPending,
		"theme_key":        input.Theme,
		"total_images":     input.Count,
		"completed_images": 0,
		"failed_images":    0,
		"job_input_data": map[string]interface{}{
			"theme":   input.Theme,
			"size":    input.Size,
			"quality": input.Quality,
			"extra":   input.Extra,
			"count":   input.Count,
			"userId":  input.UserID,
		},
	}
	if input.UserID != "" {
		insertData["user_id"] = input.UserID
	}

	_, _, err := c.supabase.From("napkin_jobs").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	log.Printf("✅ Job created: %s", jobID)
	return nil
}

// FetchJob - napkin_jobs에서 Job 데이터 조회
func (c *Client) FetchJob(jobID string) (*model.NapkinJob, error) {
	log.Printf("🔍 Fetching job: %s", jobID)

	var jobs []model.NapkinJob

	data, _, err := c.supabase.From("napkin_jobs").
		Select("*", "exact", false).
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query napkin_jobs: %w", err)
	}

	// JSON 파싱
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}

	job := &jobs[0]
	log.Printf("✅ Job fetched: %s (status: %s, total_images: %d)",
		job.JobID, job.JobStatus, job.TotalImages)

	return job, nil
}

// jobStatusPayload - 상태 업데이트 컬럼 구성
// 모든 종료 상태(completed/failed/user_cancelled)는 completed_at을 기록한다
func jobStatusPayload(status string) map[string]interface{} {
	updateData := map[string]interface{}{
		"job_status": status,
		"updated_at": "now()",
	}

	switch status {
	case model.StatusProcessing:
		updateData["started_at"] = "now()"
	case model.StatusCompleted, model.StatusFailed, model.StatusUserCancelled:
		updateData["completed_at"] = "now()"
	}

	return updateData
}

// UpdateJobStatus - Job 상태 업데이트
func (c *Client) UpdateJobStatus(ctx context.Context, jobID string, status string) error {
	log.Printf("📝 Updating job %s status to: %s", jobID, status)

	_, _, err := c.supabase.From("napkin_jobs").
		Update(jobStatusPayload(status), "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	log.Printf("✅ Job %s status updated to: %s", jobID, status)
	return nil
}

// UpdateJobError - Job 실패 사유 기록
func (c *Client) UpdateJobError(ctx context.Context, jobID string, message string) error {
	updateData := map[string]interface{}{
		"error_message": message,
		"updated_at":    "now()",
	}

	_, _, err := c.supabase.From("napkin_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update job error: %w", err)
	}
	return nil
}

// jobProgressPayload - 진행 상황 업데이트 컬럼 구성 (실패 수도 함께 기록)
func jobProgressPayload(completedImages, failedImages int, generatedAttachIds []int) map[string]interface{} {
	return map[string]interface{}{
		"completed_images":     completedImages,
		"failed_images":        failedImages,
		"generated_attach_ids": generatedAttachIds,
		"updated_at":           "now()",
	}
}

// UpdateJobProgress - Job 진행 상황 업데이트
func (c *Client) UpdateJobProgress(ctx context.Context, jobID string, completedImages, failedImages int, generatedAttachIds []int) error {
	log.Printf("📊 Updating job progress: %d completed, %d failed (%d attach ids)",
		completedImages, failedImages, len(generatedAttachIds))

	_, _, err := c.supabase.From("napkin_jobs").
		Update(jobProgressPayload(completedImages, failedImages, generatedAttachIds), "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update job progress: %w", err)
	}

	log.Printf("✅ Job progress updated: %d completed, %d failed", completedImages, failedImages)
	return nil
}

// FetchAttachInfo - napkin_attach 테이블에서 파일 정보 조회
func (c *Client) FetchAttachInfo(attachID int) (*model.Attach, error) {
	log.Printf("🔍 Fetching attach info: %d", attachID)

	var attaches []model.Attach

	data, _, err := c.supabase.From("napkin_attach").
		Select("*", "exact", false).
		Eq("attach_id", fmt.Sprintf("%d", attachID)).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query napkin_attach: %w", err)
	}

	// JSON 파싱
	if err := json.Unmarshal(data, &attaches); err != nil {
		return nil, fmt.Errorf("failed to parse attach response: %w", err)
	}

	if len(attaches) == 0 {
		return nil, fmt.Errorf("attach not found: %d", attachID)
	}

	attach := &attaches[0]
	if attach.AttachFilePath != nil {
		log.Printf("✅ Attach info fetched: ID=%d, Path=%s", attach.AttachID, *attach.AttachFilePath)
	} else {
		log.Printf("✅ Attach info fetched: ID=%d, Path=null", attach.AttachID)
	}

	return attach, nil
}

// CreateAttachRecord - napkin_attach 테이블에 레코드 생성
func (c *Client) CreateAttachRecord(ctx context.Context, filePath string, fileSize int64) (int, error) {
	log.Printf("💾 Creating attach record for: %s", filePath)

	fileName := filePath
	if idx := strings.LastIndexByte(filePath, '/'); idx >= 0 {
		fileName = filePath[idx+1:]
	}

	insertData := map[string]interface{}{
		"attach_original_name": fileName,
		"attach_file_name":     fileName,
		"attach_file_path":     filePath,
		"attach_file_size":     fileSize,
		"attach_file_type":     "image/webp",
		"attach_storage_type":  "supabase",
	}

	data, _, err := c.supabase.From("napkin_attach").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return 0, fmt.Errorf("failed to insert attach record: %w", err)
	}

	// attach_id 추출
	var attaches []model.Attach
	if err := json.Unmarshal(data, &attaches); err != nil {
		return 0, fmt.Errorf("failed to parse attach response: %w", err)
	}

	if len(attaches) == 0 {
		return 0, fmt.Errorf("no attach record returned")
	}

	attachID := int(attaches[0].AttachID)
	log.Printf("✅ Attach record created: ID=%d", attachID)

	return attachID, nil
}
