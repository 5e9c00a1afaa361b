package wordcloud

import (
	"sync/atomic"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// BoxPadding is added on every side of a measured word.
	BoxPadding = 6

	DefaultFontFamily       = "Inter, system-ui, sans-serif"
	DefaultMeasureCacheSize = 4096

	estimateCharWidth  = 0.55
	estimateLineHeight = 1.2
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextSpec is everything a font backend needs to measure one run of text.
type TextSpec struct {
	Text          string
	FontFamily    string
	FontSize      float64
	FontWeight    int
	LetterSpacing float64 // em
}

// FontBackend measures rendered text precisely. Implementations return the
// bare glyph box; padding is added by TextMeasurer.
type FontBackend interface {
	MeasureText(spec TextSpec) (Size, error)
}

// Measurer returns the padded bounding box of a word rendered at fontSize
// with the tier's typography.
type Measurer interface {
	Measure(word string, fontSize float64, tier Tier) Size
}

// MeasurerConfig configures a TextMeasurer.
type MeasurerConfig struct {
	FontFamily string
	CacheSize  int
}

type measureKey struct {
	word     string
	fontSize float64
	tier     Tier
}

// TextMeasurer applies tier typography, asks the backend for a precise size
// and falls back to an average-character-width estimate when the backend is
// missing or fails. Results are memoized; it is safe for concurrent use.
type TextMeasurer struct {
	backend   FontBackend
	family    string
	cache     *lru.Cache[measureKey, Size]
	fallbacks atomic.Int64
}

// NewTextMeasurer builds a measurer. backend may be nil, in which case every
// word is estimated.
func NewTextMeasurer(backend FontBackend, cfg MeasurerConfig) *TextMeasurer {
	if cfg.FontFamily == "" {
		cfg.FontFamily = DefaultFontFamily
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultMeasureCacheSize
	}
	cache, err := lru.New[measureKey, Size](cfg.CacheSize)
	if err != nil {
		// lru.New only fails for non-positive sizes
		panic(err)
	}
	return &TextMeasurer{
		backend: backend,
		family:  cfg.FontFamily,
		cache:   cache,
	}
}

// NewEstimateMeasurer measures every word with the deterministic estimate.
func NewEstimateMeasurer() *TextMeasurer {
	return NewTextMeasurer(nil, MeasurerConfig{})
}

func (m *TextMeasurer) Measure(word string, fontSize float64, tier Tier) Size {
	key := measureKey{word: word, fontSize: fontSize, tier: tier}
	if size, ok := m.cache.Get(key); ok {
		return size
	}
	size := m.measure(word, fontSize, tier)
	m.cache.Add(key, size)
	return size
}

func (m *TextMeasurer) measure(word string, fontSize float64, tier Tier) Size {
	if m.backend == nil {
		return EstimateSize(word, fontSize, tier)
	}
	glyphs, err := m.backend.MeasureText(TextSpec{
		Text:          tier.Display(word),
		FontFamily:    m.family,
		FontSize:      fontSize,
		FontWeight:    tier.FontWeight(),
		LetterSpacing: tier.LetterSpacing(),
	})
	if err != nil || glyphs.Width <= 0 || glyphs.Height <= 0 {
		m.fallbacks.Add(1)
		return EstimateSize(word, fontSize, tier)
	}
	return Size{
		Width:  glyphs.Width + BoxPadding*2,
		Height: glyphs.Height + BoxPadding*2,
	}
}

// Fallbacks counts backend measurements that failed and were estimated.
func (m *TextMeasurer) Fallbacks() int64 {
	return m.fallbacks.Load()
}

// EstimateSize is the language-agnostic approximation used when no precise
// measurement is available. It measures the word as the tier displays it,
// includes the tier's letter spacing after every character and adds padding.
func EstimateSize(word string, fontSize float64, tier Tier) Size {
	chars := float64(utf8.RuneCountInString(tier.Display(word)))
	return Size{
		Width:  chars*fontSize*(estimateCharWidth+tier.LetterSpacing()) + BoxPadding*2,
		Height: fontSize*estimateLineHeight + BoxPadding*2,
	}
}
