package model

import "time"

// NapkinJob - napkin_jobs 테이블 구조
type NapkinJob struct {
	JobID              string                 `json:"job_id"`
	JobStatus          string                 `json:"job_status"`
	ThemeKey           string                 `json:"theme_key"`
	TotalImages        int                    `json:"total_images"`
	CompletedImages    int                    `json:"completed_images"`
	FailedImages       int                    `json:"failed_images"`
	JobInputData       map[string]interface{} `json:"job_input_data"`
	GeneratedAttachIDs []interface{}          `json:"generated_attach_ids"`
	ErrorMessage       *string                `json:"error_message"`
	CreatedAt          time.Time              `json:"created_at"`
	StartedAt          *time.Time             `json:"started_at"`
	CompletedAt        *time.Time             `json:"completed_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	UserID             *string                `json:"user_id"`
}

// JobInputData - job_input_data JSONB 구조
type JobInputData struct {
	Theme   string `json:"theme"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	Extra   string `json:"extra"`
	Count   int    `json:"count"`
	UserID  string `json:"userId"`
}

// PromptLogEntry - napkin_prompt_log 테이블 구조 (append-only)
type PromptLogEntry struct {
	ID        int64     `json:"id"`
	Prompt    string    `json:"prompt"`
	ThemeKey  string    `json:"theme_key"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Attach - napkin_attach 테이블 구조
type Attach struct {
	AttachID           int64     `json:"attach_id"`
	CreatedAt          time.Time `json:"created_at"`
	AttachOriginalName *string   `json:"attach_original_name"`
	AttachFileName     *string   `json:"attach_file_name"`
	AttachFilePath     *string   `json:"attach_file_path"`
	AttachFileSize     *int64    `json:"attach_file_size"`
	AttachFileType     *string   `json:"attach_file_type"`
	AttachStorageType  *string   `json:"attach_storage_type"`
}

const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusCompleted     = "completed"
	StatusFailed        = "failed"
	StatusUserCancelled = "user_cancelled"
)
