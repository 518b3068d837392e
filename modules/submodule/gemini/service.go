package gemini

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"napkin-studio-server/modules/common/config"
)

// Service - Gemini 이미지 생성 fallback provider
// DALL-E 호출이 실패했을 때 한 번 더 시도하는 용도
type Service struct {
	genaiClient *genai.Client
}

func NewService() *Service {
	cfg := config.GetConfig()

	if cfg.GeminiAPIKey == "" {
		// fallback 미설정 - 서비스 비활성화
		return nil
	}

	// Genai 클라이언트 초기화
	ctx := context.Background()
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("❌ [Gemini] Failed to create Genai client: %v", err)
		return nil
	}

	log.Println("✅ [Gemini] Fallback provider initialized")
	return &Service{
		genaiClient: genaiClient,
	}
}

// GenerateImage - 프롬프트 기반 이미지 생성, PNG 바이너리 반환
// size는 DALL-E 사이즈 문자열 ("1024x1024" 등) - aspect ratio로 변환
func (s *Service) GenerateImage(ctx context.Context, prompt string, size string) ([]byte, error) {
	cfg := config.GetConfig()

	aspectRatio := aspectRatioForSize(size)

	log.Printf("🎨 [Gemini] Generating fallback image - model: %s, ratio: %s", cfg.GeminiModel, aspectRatio)

	content := &genai.Content{
		Parts: []*genai.Part{
			genai.NewPartFromText(prompt),
		},
	}

	result, err := s.genaiClient.Models.GenerateContent(
		ctx,
		cfg.GeminiModel,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: aspectRatio,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	// 응답에서 이미지 추출
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				log.Printf("✅ [Gemini] Image generated: %d bytes", len(part.InlineData.Data))
				return part.InlineData.Data, nil
			}
		}
	}

	return nil, fmt.Errorf("no image generated from Gemini")
}

// aspectRatioForSize - DALL-E 사이즈 → Gemini aspect ratio
func aspectRatioForSize(size string) string {
	switch size {
	case "1792x1024":
		return "16:9"
	case "1024x1792":
		return "9:16"
	default:
		return "1:1"
	}
}
