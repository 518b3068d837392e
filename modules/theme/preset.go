package theme

// Key - 테마 식별자 (고정된 프리셋 테이블의 키)
type Key string

const (
	SpringGardenWedding Key = "spring_garden_wedding"
	WoodlandBirthday    Key = "woodland_birthday"
	FestiveHoliday      Key = "festive_holiday"
	LuxuryDinner        Key = "luxury_dinner"
	TropicalParty       Key = "tropical_party"
)

// Preset - 테마별 고정 스타일 속성 묶음
// 사용자는 테마만 고르고 나머지 brief는 프리셋이 결정한다
type Preset struct {
	Label                string `json:"label"`
	Motif                string `json:"motif"`
	BackgroundTreatment  string `json:"backgroundTreatment"`
	IllustrationStyle    string `json:"illustrationStyle"`
	BotanicalMotifs      string `json:"botanicalMotifs"`
	AnimalMotifs         string `json:"animalMotifs"`
	RimStyle             string `json:"rimStyle"`
	BackgroundLibrary    string `json:"backgroundLibrary"`
	BaseTones            string `json:"baseTones"`
	AccentColors         string `json:"accentColors"`
	MetallicFinish       string `json:"metallicFinish"`
	DecorativeFlorals    string `json:"decorativeFlorals"`
	DecorativeIcons      string `json:"decorativeIcons"`
	BorderStyle          string `json:"borderStyle"`
	FinishSpec           string `json:"finishSpec"`
	Aspect               string `json:"aspect"`
	APISize              string `json:"apiSize"`      // 테마 기본 렌더 사이즈
	QualityHint          string `json:"qualityHint"`  // 테마 기본 품질
	TypographyStyle      string `json:"typographyStyle"`
	TypographyPlacement  string `json:"typographyPlacement"`
	TypographyColor      string `json:"typographyColor"`
	ThemeNotes           string `json:"themeNotes"`
	UseTypography        string `json:"useTypography"`
	TypographyCopy       string `json:"typographyCopy"`
}

// presets - 고정 프리셋 테이블 (keys unique)
var presets = map[Key]Preset{
	SpringGardenWedding: {
		Label:               "🌸 Spring Garden Wedding",
		Motif:               "watercolor peony-and-lavender floral wreath",
		BackgroundTreatment: "soft blush pastel wash",
		IllustrationStyle:   "hand-painted watercolor with delicate linework",
		BotanicalMotifs:     "lavender sprigs, peonies, eucalyptus",
		AnimalMotifs:        "none",
		RimStyle:            "scalloped rim with subtle gold foil edge",
		BackgroundLibrary:   "pastel wash, faint diagonal stripes",
		BaseTones:           "blush pink, cream, ivory",
		AccentColors:        "sage green, lavender",
		MetallicFinish:      "gold foil accents",
		DecorativeFlorals:   "flowing natural sprigs",
		DecorativeIcons:     "tiny bows or petals (sparingly)",
		BorderStyle:         "gold rim with sparse floral repeats",
		FinishSpec:          "matte base with selective glossy floral highlights",
		Aspect:              "square",
		APISize:             "1024x1024",
		QualityHint:         "hd",
		TypographyStyle:     "calligraphic script",
		TypographyPlacement: "subtle rim placement",
		TypographyColor:     "metallic gold",
		ThemeNotes:          "Wedding elegance; keep palette airy and romantic.",
		UseTypography:       "no",
		TypographyCopy:      "",
	},
	WoodlandBirthday: {
		Label:               "🐇 Woodland Birthday",
		Motif:               "whimsical bunny illustration with floral sprigs",
		BackgroundTreatment: "soft diagonal stripe",
		IllustrationStyle:   "realistic sketch with soft watercolor fill",
		BotanicalMotifs:     "wildflowers, lavender",
		AnimalMotifs:        "bunny, small songbirds",
		RimStyle:            "rounded rim with thin gold foil edge",
		BackgroundLibrary:   "soft stripes, pastel wash",
		BaseTones:           "pastels—lavender, blush, cream",
		AccentColors:        "sunshine yellow, turquoise",
		MetallicFinish:      "gold shimmer accents",
		DecorativeFlorals:   "hand-painted sprigs",
		DecorativeIcons:     "stars and tiny bows",
		BorderStyle:         "gold rim with tiny star repeats",
		FinishSpec:          "matte with glossy highlights on motif",
		Aspect:              "square",
		APISize:             "1024x1024",
		QualityHint:         "standard",
		TypographyStyle:     "rounded friendly",
		TypographyPlacement: "small banner below motif",
		TypographyColor:     "deep green",
		ThemeNotes:          "Child-friendly but elegant; avoid clutter.",
		UseTypography:       "no",
		TypographyCopy:      "",
	},
	FestiveHoliday: {
		Label:               "🦌 Festive Holiday",
		Motif:               "regal deer with holly vines and red berries",
		BackgroundTreatment: "ivory with subtle gradient fade",
		IllustrationStyle:   "detailed watercolor with precise linework",
		BotanicalMotifs:     "holly, evergreen sprigs",
		AnimalMotifs:        "deer, winter birds",
		RimStyle:            "circular rim with bold gold foil",
		BackgroundLibrary:   "muted gradient, light pastel wash",
		BaseTones:           "ivory, taupe",
		AccentColors:        "berry red, deep green",
		MetallicFinish:      "rich gold foil",
		DecorativeFlorals:   "holly sprigs",
		DecorativeIcons:     "snowflakes (minimal)",
		BorderStyle:         "gold rim with holly berry repeats (very subtle)",
		FinishSpec:          "glossy highlights on metallics, matte base",
		Aspect:              "square",
		APISize:             "1024x1024",
		QualityHint:         "hd",
		TypographyStyle:     "elegant calligraphy",
		TypographyPlacement: "integrated along the rim",
		TypographyColor:     "metallic gold or berry red",
		ThemeNotes:          "Premium holiday tone; emphasize contrast and foil.",
		UseTypography:       "no",
		TypographyCopy:      "",
	},
	LuxuryDinner: {
		Label:               "✨ Luxury Dinner",
		Motif:               "minimalist geometric center medallion",
		BackgroundTreatment: "deep charcoal black",
		IllustrationStyle:   "modern vector with subtle bevel",
		BotanicalMotifs:     "none",
		AnimalMotifs:        "none",
		RimStyle:            "precise thin gold rim",
		BackgroundLibrary:   "flat or micro-texture",
		BaseTones:           "black, charcoal",
		AccentColors:        "gold only, minimal",
		MetallicFinish:      "high-polish gold",
		DecorativeFlorals:   "none",
		DecorativeIcons:     "none",
		BorderStyle:         "gold rim, no repeats",
		FinishSpec:          "glossy metallic on matte base",
		Aspect:              "square",
		APISize:             "1024x1024",
		QualityHint:         "hd",
		TypographyStyle:     "none",
		TypographyPlacement: "none",
		TypographyColor:     "gold",
		ThemeNotes:          "Keep ultra-minimal; rely on contrast and finish.",
		UseTypography:       "no",
		TypographyCopy:      "",
	},
	TropicalParty: {
		Label:               "🌴 Tropical Party",
		Motif:               "palm leaves and hibiscus floral ring",
		BackgroundTreatment: "turquoise wash with subtle grain",
		IllustrationStyle:   "vibrant watercolor + vector clean-up",
		BotanicalMotifs:     "palm, monstera, hibiscus",
		AnimalMotifs:        "butterflies or tropical birds (sparingly)",
		RimStyle:            "gold rim with sparse floral accents",
		BackgroundLibrary:   "pastel wash, subtle grain, soft stripes",
		BaseTones:           "turquoise, ivory",
		AccentColors:        "sunshine yellow, berry red",
		MetallicFinish:      "gold foil accents",
		DecorativeFlorals:   "loose hand-painted leaves",
		DecorativeIcons:     "tiny stars (optional)",
		BorderStyle:         "gold rim with tiny hibiscus repeats",
		FinishSpec:          "matte base with selective glossy floral highlights",
		Aspect:              "square",
		APISize:             "1024x1024",
		QualityHint:         "standard",
		TypographyStyle:     "friendly rounded",
		TypographyPlacement: "subtle banner or lower rim",
		TypographyColor:     "gold or deep green",
		ThemeNotes:          "Lively and premium; avoid over-saturation.",
		UseTypography:       "no",
		TypographyCopy:      "",
	},
}

// orderedKeys - UI 노출 순서 고정
var orderedKeys = []Key{
	SpringGardenWedding,
	WoodlandBirthday,
	FestiveHoliday,
	LuxuryDinner,
	TropicalParty,
}

// Keys returns theme keys in stable display order.
func Keys() []Key {
	out := make([]Key, len(orderedKeys))
	copy(out, orderedKeys)
	return out
}

// Lookup returns the preset for a key.
func Lookup(key Key) (Preset, bool) {
	p, ok := presets[key]
	return p, ok
}

// IsValidKey - 테마 키 유효성 검사
func IsValidKey(key string) bool {
	_, ok := presets[Key(key)]
	return ok
}

// attributes - 프롬프트 템플릿 치환용 placeholder 맵
func (p Preset) attributes() map[string]string {
	return map[string]string{
		"theme_label":          p.Label,
		"motif":                p.Motif,
		"background_treatment": p.BackgroundTreatment,
		"illustration_style":   p.IllustrationStyle,
		"botanical_motifs":     p.BotanicalMotifs,
		"animal_motifs":        p.AnimalMotifs,
		"rim_style":            p.RimStyle,
		"background_library":   p.BackgroundLibrary,
		"base_tones":           p.BaseTones,
		"accent_colors":        p.AccentColors,
		"metallic_finish":      p.MetallicFinish,
		"decorative_florals":   p.DecorativeFlorals,
		"decorative_icons":     p.DecorativeIcons,
		"border_style":         p.BorderStyle,
		"finish_spec":          p.FinishSpec,
		"aspect":               p.Aspect,
		"api_size":             p.APISize,
		"quality_hint":         p.QualityHint,
		"typography_style":     p.TypographyStyle,
		"typography_placement": p.TypographyPlacement,
		"typography_color":     p.TypographyColor,
		"theme_notes":          p.ThemeNotes,
		"use_typography":       p.UseTypography,
		"typography_copy":      p.TypographyCopy,
	}
}
