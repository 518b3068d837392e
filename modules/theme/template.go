package theme

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

// DefaultTemplate - 내장 기본 냅킨 프롬프트 템플릿
// {placeholder}는 프리셋 속성으로 치환된다. 없는 키는 빈 문자열.
const DefaultTemplate = `Premium paper napkin design for "{theme_label}".
Center motif: {motif}.
Background treatment: {background_treatment}, chosen from {background_library}.
Illustration style: {illustration_style}.
Botanical motifs: {botanical_motifs}. Animal motifs: {animal_motifs}.
Rim: {rim_style}. Border: {border_style}.
Base tones: {base_tones}. Accent colors: {accent_colors}. Metallic finish: {metallic_finish}.
Decorative florals: {decorative_florals}. Decorative icons: {decorative_icons}.
Finish: {finish_spec}.
Typography: {typography_style}, {typography_placement}, in {typography_color} (use typography: {use_typography}; copy: {typography_copy}).
Aspect: {aspect}, flat top-down product view, single napkin centered, no table setting, no hands.
Art direction notes: {theme_notes}
Extra art direction: {extra}`

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// LoadTemplate - 템플릿 로드 (path가 비어있으면 내장 기본값)
func LoadTemplate(path string) string {
	if path == "" {
		return DefaultTemplate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  Failed to read template file %s, using default: %v", path, err)
		return DefaultTemplate
	}

	log.Printf("✅ Prompt template loaded from %s (%d bytes)", path, len(data))
	return string(data)
}

// BuildPrompt - 프리셋 + 사용자 추가 지시문으로 최종 프롬프트 생성
// 치환은 항상 성공한다: 알 수 없는 placeholder는 빈 문자열로 렌더링되고,
// 결과의 공백은 한 칸으로 정규화된다. 같은 입력이면 항상 같은 출력.
func BuildPrompt(template string, key Key, extra string) (string, error) {
	preset, ok := Lookup(key)
	if !ok {
		return "", fmt.Errorf("unknown theme: %s", key)
	}

	values := preset.attributes()

	// 빈 extra는 "—"로 표기 (비워두면 모델이 placeholder 문구를 그리는 사고 방지)
	extra = strings.TrimSpace(extra)
	if extra == "" {
		extra = "—"
	}
	values["extra"] = extra

	rendered := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		return strings.TrimSpace(values[name]) // 없는 키는 "" 반환
	})

	// 공백 정규화 (개행 포함 → 단일 스페이스)
	return strings.Join(strings.Fields(rendered), " "), nil
}
