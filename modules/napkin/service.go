package napkin

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"napkin-studio-server/modules/common/config"
	"napkin-studio-server/modules/common/database"
	openaiRetry "napkin-studio-server/modules/common/openai"
	"napkin-studio-server/modules/common/storage"
	"napkin-studio-server/modules/common/utils"
	"napkin-studio-server/modules/feed"
	"napkin-studio-server/modules/history"
	"napkin-studio-server/modules/submodule/gemini"
	"napkin-studio-server/modules/theme"
)

type Service struct {
	db       *database.Client
	storage  *storage.Client
	hist     *history.Service
	fallback *gemini.Service // nil이면 fallback 비활성화
	template string
}

func NewService(rdb *goredis.Client, hub *feed.Hub) *Service {
	cfg := config.GetConfig()

	dbClient := database.NewClient()
	if dbClient == nil {
		log.Println("❌ Failed to initialize database client")
		return nil
	}

	log.Println("✅ Napkin service initialized")
	return &Service{
		db:       dbClient,
		storage:  storage.NewClient(dbClient),
		hist:     history.NewService(dbClient, rdb, hub),
		fallback: gemini.NewService(),
		template: theme.LoadTemplate(cfg.TemplatePath),
	}
}

// History - 프롬프트 로그 서비스 (handler 공유용)
func (s *Service) History() *history.Service {
	return s.hist
}

// Generate - 동기 생성: 프롬프트 조합 → API 호출 → 저장 → 응답 (1장)
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) *GenerateResponse {
	key := theme.Key(req.Theme)

	preset, ok := theme.Lookup(key)
	if !ok {
		return &GenerateResponse{
			Success:      false,
			ErrorMessage: "Unknown theme: " + req.Theme,
			ErrorCode:    ErrCodeUnknownTheme,
		}
	}

	// 렌더 설정 (테마 기본값 + override)
	settings, err := ResolveRenderSettings(preset, req.Size, req.Quality)
	if err != nil {
		return &GenerateResponse{
			Success:      false,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrCodeInvalidRequest,
		}
	}

	// 프롬프트 조합
	prompt, err := theme.BuildPrompt(s.template, key, req.Extra)
	if err != nil {
		return &GenerateResponse{
			Success:      false,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrCodeUnknownTheme,
		}
	}

	// 프롬프트 로그 저장 (생성 시도 자체를 기록)
	if err := s.hist.Save(ctx, prompt, req.Theme, req.UserID); err != nil {
		log.Printf("⚠️  Failed to save prompt log: %v", err)
	}

	log.Printf("🎨 Generating napkin: theme=%s, size=%s, quality=%s, prompt=%s",
		req.Theme, settings.Size, settings.Quality, truncateString(prompt, 80))

	// 이미지 생성
	pngImages, genErr := s.generateImages(ctx, prompt, settings)
	if genErr != nil {
		return &GenerateResponse{
			Success:      false,
			Prompt:       prompt,
			ErrorMessage: genErr.message,
			ErrorCode:    genErr.code,
		}
	}

	// 저장 및 응답 조립
	images := make([]GeneratedImage, 0, len(pngImages))
	for i, pngData := range pngImages {
		result := GeneratedImage{
			ImageBase64: utils.ConvertImageToBase64(pngData),
		}

		filePath, webpSize, err := s.storage.UploadImageToStorage(ctx, pngData, req.UserID, utils.ConvertPNGToWebP)
		if err != nil {
			// 저장 실패해도 생성된 이미지는 응답에 포함
			log.Printf("⚠️  Failed to upload image %d: %v", i+1, err)
			images = append(images, result)
			continue
		}

		attachID, err := s.db.CreateAttachRecord(ctx, filePath, webpSize)
		if err != nil {
			log.Printf("⚠️  Failed to create attach record for image %d: %v", i+1, err)
			images = append(images, result)
			continue
		}

		result.AttachID = attachID
		result.ImageURL = storage.PublicURL(filePath)
		images = append(images, result)
	}

	return &GenerateResponse{
		Success: true,
		Prompt:  prompt,
		Images:  images,
	}
}

// genError - 생성 실패 분류 (사용자 메시지 + 에러 코드)
type genError struct {
	message string
	code    string
}

// generateImages - 외부 API 호출 + 응답 해석, PNG 바이너리 반환
// 응답 아이템은 base64 또는 URL 중 하나를 싣는다. 둘 다 없으면 명시적 에러.
func (s *Service) generateImages(ctx context.Context, prompt string, settings RenderSettings) ([][]byte, *genError) {
	cfg := config.GetConfig()

	imageReq := openai.ImageRequest{
		Model:          cfg.OpenAIImageModel,
		Prompt:         prompt,
		Size:           settings.Size,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		N:              1,
	}
	// standard는 API 기본값 - 요청에 싣지 않는다
	if settings.Quality != "standard" {
		imageReq.Quality = settings.Quality
	}

	resp, err := openaiRetry.CreateImageWithRetry(ctx, cfg.OpenAIAPIKeys, imageReq)
	if err != nil {
		log.Printf("❌ Image API call failed: %v", err)

		// Fallback provider 시도
		if s.fallback != nil {
			log.Println("🔁 Trying Gemini fallback provider...")
			pngData, fbErr := s.fallback.GenerateImage(ctx, prompt, settings.Size)
			if fbErr == nil {
				return [][]byte{pngData}, nil
			}
			log.Printf("❌ Fallback provider failed: %v", fbErr)
		}

		return nil, &genError{
			message: fmt.Sprintf("Could not generate the image: %v", err),
			code:    ErrCodeGenerationFailed,
		}
	}

	return s.interpretImageResponse(ctx, resp)
}

// interpretImageResponse - API 응답 해석
// 빈 응답, base64, URL, 그 외(인식 불가) 케이스를 구분한다
func (s *Service) interpretImageResponse(ctx context.Context, resp openai.ImageResponse) ([][]byte, *genError) {
	if len(resp.Data) == 0 {
		return nil, &genError{
			message: "No image returned. Try a different theme or simplify extras.",
			code:    ErrCodeNoImageReturned,
		}
	}

	images := make([][]byte, 0, len(resp.Data))
	failedItems := 0
	for i, item := range resp.Data {
		switch {
		case item.B64JSON != "":
			pngData, err := utils.DecodeBase64Image(item.B64JSON)
			if err != nil {
				log.Printf("⚠️  Result %d: base64 decode failed: %v", i+1, err)
				failedItems++
				continue
			}
			images = append(images, pngData)

		case item.URL != "":
			pngData, err := storage.DownloadImageFromURL(ctx, item.URL)
			if err != nil {
				log.Printf("⚠️  Result %d: URL download failed: %v", i+1, err)
				failedItems++
				continue
			}
			images = append(images, pngData)

		default:
			log.Printf("⚠️  Result %d: unrecognized response format (no base64, no URL)", i+1)
		}
	}

	if len(images) == 0 {
		// payload가 있었는데 전부 decode/download에 실패한 경우와
		// 아예 payload가 없는 응답을 구분한다
		if failedItems > 0 {
			return nil, &genError{
				message: "Could not process the generated images.",
				code:    ErrCodeGenerationFailed,
			}
		}
		return nil, &genError{
			message: "Unrecognized response format.",
			code:    ErrCodeUnrecognizedFormat,
		}
	}

	return images, nil
}

// GenerateOneForJob - 배치 worker용 단건 생성 (프롬프트는 이미 조합된 상태)
// 성공 시 attach ID 반환
func (s *Service) GenerateOneForJob(ctx context.Context, prompt string, settings RenderSettings, userID string) (int, error) {
	pngImages, genErr := s.generateImages(ctx, prompt, settings)
	if genErr != nil {
		return 0, fmt.Errorf("%s", genErr.message)
	}

	pngData := pngImages[0]

	filePath, webpSize, err := s.storage.UploadImageToStorage(ctx, pngData, userID, utils.ConvertPNGToWebP)
	if err != nil {
		return 0, fmt.Errorf("failed to upload image: %w", err)
	}

	attachID, err := s.db.CreateAttachRecord(ctx, filePath, webpSize)
	if err != nil {
		return 0, fmt.Errorf("failed to create attach record: %w", err)
	}

	return attachID, nil
}

// BuildJobPrompt - 배치 Job 입력으로 최종 프롬프트 조합 (worker에서 사용)
func (s *Service) BuildJobPrompt(themeKey string, extra string) (string, error) {
	return theme.BuildPrompt(s.template, theme.Key(themeKey), extra)
}

// Database - DB 클라이언트 (worker/handler 공유용)
func (s *Service) Database() *database.Client {
	return s.db
}
