package napkin

// GenerateRequest - 냅킨 이미지 생성 요청
type GenerateRequest struct {
	Theme   string `json:"theme"`             // 테마 키 (필수)
	Size    string `json:"size,omitempty"`    // 비어있으면 테마 기본값
	Quality string `json:"quality,omitempty"` // 비어있으면 테마 기본값
	Extra   string `json:"extra,omitempty"`   // 추가 아트 디렉션 (자유 텍스트)
	UserID  string `json:"userId,omitempty"`
	Count   int    `json:"count,omitempty"` // 배치 전용. sync 생성은 항상 1장
}

// GeneratedImage - 생성 결과 이미지 1장
type GeneratedImage struct {
	AttachID    int    `json:"attachId,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ImageBase64 string `json:"imageBase64,omitempty"` // PNG base64
}

// GenerateResponse - 생성 응답
type GenerateResponse struct {
	Success      bool             `json:"success"`
	Prompt       string           `json:"prompt,omitempty"`
	Images       []GeneratedImage `json:"images,omitempty"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	ErrorCode    string           `json:"errorCode,omitempty"`
}

// BatchResponse - 비동기 배치 생성 접수 응답
type BatchResponse struct {
	Success      bool   `json:"success"`
	JobID        string `json:"jobId,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
}

// JobStatusResponse - 배치 Job 상태 조회 응답
type JobStatusResponse struct {
	Success            bool   `json:"success"`
	JobID              string `json:"jobId"`
	Status             string `json:"status,omitempty"`
	TotalImages        int    `json:"totalImages,omitempty"`
	CompletedImages    int    `json:"completedImages,omitempty"`
	FailedImages       int    `json:"failedImages,omitempty"`
	GeneratedAttachIDs []int  `json:"generatedAttachIds,omitempty"`
	ErrorMessage       string `json:"errorMessage,omitempty"`
	ErrorCode          string `json:"errorCode,omitempty"`
}

// Error codes
const (
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
	ErrCodeUnknownTheme        = "UNKNOWN_THEME"
	ErrCodeGenerationFailed    = "GENERATION_FAILED"
	ErrCodeNoImageReturned     = "NO_IMAGE_RETURNED"
	ErrCodeUnrecognizedFormat  = "UNRECOGNIZED_FORMAT"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeJobNotFound         = "JOB_NOT_FOUND"
)

// 허용되는 렌더 설정 (form field 그대로)
var ValidSizes = map[string]bool{
	"1024x1024": true,
	"1024x1792": true,
	"1792x1024": true,
}

var ValidQualities = map[string]bool{
	"standard": true,
	"hd":       true,
}

// 배치 생성 한도
const MaxBatchCount = 10
