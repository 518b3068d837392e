package napkin

import (
	"fmt"
	"strings"

	"napkin-studio-server/modules/theme"
)

// RenderSettings - 최종 렌더 설정 (테마 기본값 + 사용자 override)
type RenderSettings struct {
	Size    string
	Quality string
}

// ResolveRenderSettings - 빈 값은 테마 프리셋 기본값으로 채운다
// 테마 선택 시 size/quality가 프리셋과 일치하는 이유가 이 함수다
func ResolveRenderSettings(preset theme.Preset, size, quality string) (RenderSettings, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		size = preset.APISize
	}
	if !ValidSizes[size] {
		return RenderSettings{}, fmt.Errorf("invalid size: %s", size)
	}

	quality = strings.TrimSpace(quality)
	if quality == "" {
		quality = preset.QualityHint
	}
	if !ValidQualities[quality] {
		return RenderSettings{}, fmt.Errorf("invalid quality: %s", quality)
	}

	return RenderSettings{Size: size, Quality: quality}, nil
}

// ValidateGenerateRequest - 생성 요청 기본 검증
func ValidateGenerateRequest(req *GenerateRequest) error {
	if strings.TrimSpace(req.Theme) == "" {
		return fmt.Errorf("theme is required")
	}
	if !theme.IsValidKey(req.Theme) {
		return fmt.Errorf("unknown theme: %s", req.Theme)
	}
	if len(req.Extra) > 2000 {
		return fmt.Errorf("extra too long (max 2000 characters)")
	}
	return nil
}

// ValidateBatchRequest - 배치 요청 검증 (count + 렌더 설정 추가 확인)
// 잘못된 size/quality는 여기서 거절한다 - worker까지 가서 실패할 Job을 만들지 않도록
func ValidateBatchRequest(req *GenerateRequest) error {
	if err := ValidateGenerateRequest(req); err != nil {
		return err
	}

	preset, ok := theme.Lookup(theme.Key(req.Theme))
	if !ok {
		return fmt.Errorf("unknown theme: %s", req.Theme)
	}
	if _, err := ResolveRenderSettings(preset, req.Size, req.Quality); err != nil {
		return err
	}

	if req.Count > MaxBatchCount {
		return fmt.Errorf("count too large (max %d)", MaxBatchCount)
	}
	return nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
