// Package wordcloud lays out timestamped transcript words as kinetic-typography
// screens: words are grouped into screens, given a visual tier, fitted to the
// canvas and packed into centered rows.
//
// Everything in this package is pure computation. The same input always yields
// the same screens, so results can be cached by input identity.
package wordcloud

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is a word's visual importance class.
type Tier string

const (
	TierHero   Tier = "hero"
	TierStrong Tier = "strong"
	TierNormal Tier = "normal"
)

// ParseTier accepts hero, strong or normal (case-insensitive).
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierHero:
		return TierHero, nil
	case TierStrong:
		return TierStrong, nil
	case TierNormal:
		return TierNormal, nil
	}
	return "", fmt.Errorf("unknown tier %q", s)
}

// Valid reports whether t is one of the three tiers.
func (t Tier) Valid() bool {
	return t == TierHero || t == TierStrong || t == TierNormal
}

// FontWeight is the CSS weight the tier renders with.
func (t Tier) FontWeight() int {
	switch t {
	case TierHero:
		return 900
	case TierStrong:
		return 700
	}
	return 600
}

// LetterSpacing in em.
func (t Tier) LetterSpacing() float64 {
	if t == TierHero {
		return 0.05
	}
	return 0.02
}

// Display applies the tier's case transform.
func (t Tier) Display(word string) string {
	if t == TierHero {
		return strings.ToUpper(word)
	}
	return word
}

// importance assigned to authored tiers
func (t Tier) importance() int {
	switch t {
	case TierHero:
		return 100
	case TierStrong:
		return 70
	}
	return 40
}

// WordTiming is one spoken word with optional authoring hints.
// GroupID is a pointer because 0 is a valid group id.
type WordTiming struct {
	Word    string  `json:"word"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Tier    Tier    `json:"tier,omitempty"`
	GroupID *int    `json:"groupId,omitempty"`
}

// WordGroup is the cluster of words shown together on one screen.
type WordGroup struct {
	Words     []WordTiming `json:"words"`
	StartTime float64      `json:"startTime"`
	EndTime   float64      `json:"endTime"`
}

func newWordGroup(words []WordTiming) WordGroup {
	return WordGroup{
		Words:     words,
		StartTime: words[0].Start,
		EndTime:   words[len(words)-1].End,
	}
}

// PlacedWord is a word after layout. Coordinates are pixels from the top-left
// corner of the canvas.
type PlacedWord struct {
	Word       string  `json:"word"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	FontSize   float64 `json:"fontSize"`
	Tier       Tier    `json:"tier"`
	Importance int     `json:"importance"`
	Timestamp  float64 `json:"timestamp"`
}

// ComputedScreen is one group after layout.
type ComputedScreen struct {
	Layout     []PlacedWord `json:"layout"`
	StartTime  float64      `json:"startTime"`
	EndTime    float64      `json:"endTime"`
	GroupIndex int          `json:"groupIndex"`
}

const (
	DefaultHeroFontSize     = 140
	DefaultStrongFontSize   = 90
	DefaultNormalFontSize   = 60
	DefaultSpacingRatio     = 0.25
	DefaultMinFontSize      = 30
	DefaultGapThreshold     = 0.4
	DefaultMaxWordsPerGroup = 6
)

// LayoutOptions tune font sizes, margins and flow direction. SpacingRatio is
// the inter-word gap as a fraction of the word's font size. Zero font sizes,
// spacing ratio and minimum font size fall back to the package defaults.
type LayoutOptions struct {
	HeroFontSize   float64 `json:"heroFontSize,omitempty"`
	StrongFontSize float64 `json:"strongFontSize,omitempty"`
	NormalFontSize float64 `json:"normalFontSize,omitempty"`
	MarginX        float64 `json:"marginX,omitempty"`
	MarginY        float64 `json:"marginY,omitempty"`
	RTL            bool    `json:"rtl,omitempty"`
	SpacingRatio   float64 `json:"spacingRatio,omitempty"`
	MinFontSize    float64 `json:"minFontSize,omitempty"`
}

// DefaultLayoutOptions returns the options used when nothing is configured.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		HeroFontSize:   DefaultHeroFontSize,
		StrongFontSize: DefaultStrongFontSize,
		NormalFontSize: DefaultNormalFontSize,
		SpacingRatio:   DefaultSpacingRatio,
		MinFontSize:    DefaultMinFontSize,
	}
}

// WithDefaults fills unset fields from DefaultLayoutOptions.
func (o LayoutOptions) WithDefaults() LayoutOptions {
	d := DefaultLayoutOptions()
	if o.HeroFontSize <= 0 {
		o.HeroFontSize = d.HeroFontSize
	}
	if o.StrongFontSize <= 0 {
		o.StrongFontSize = d.StrongFontSize
	}
	if o.NormalFontSize <= 0 {
		o.NormalFontSize = d.NormalFontSize
	}
	if o.SpacingRatio <= 0 {
		o.SpacingRatio = d.SpacingRatio
	}
	if o.MinFontSize <= 0 {
		o.MinFontSize = d.MinFontSize
	}
	return o
}

// ErrInvalidLayout is wrapped by every LayoutOptions and grouping
// validation error.
var ErrInvalidLayout = errors.New("invalid layout")

const (
	MinSpacingRatio = 0.25
	MaxSpacingRatio = 0.35
)

// Validate checks o against a canvas. It does not fill defaults, so a zero
// font size is an error; call WithDefaults first where zero means default.
func (o LayoutOptions) Validate(canvasWidth, canvasHeight float64) error {
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return fmt.Errorf("%w: canvas must be positive (got %vx%v)", ErrInvalidLayout, canvasWidth, canvasHeight)
	}
	sizes := []struct {
		name  string
		value float64
	}{
		{"hero font size", o.HeroFontSize},
		{"strong font size", o.StrongFontSize},
		{"normal font size", o.NormalFontSize},
		{"min font size", o.MinFontSize},
	}
	for _, s := range sizes {
		if s.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0 (got %v)", ErrInvalidLayout, s.name, s.value)
		}
	}
	if o.MarginX < 0 || o.MarginY < 0 {
		return fmt.Errorf("%w: margins must be >= 0 (got %v, %v)", ErrInvalidLayout, o.MarginX, o.MarginY)
	}
	if o.MarginX*2 >= canvasWidth || o.MarginY*2 >= canvasHeight {
		return fmt.Errorf("%w: margins %v, %v leave no room on a %vx%v canvas", ErrInvalidLayout, o.MarginX, o.MarginY, canvasWidth, canvasHeight)
	}
	if o.SpacingRatio < MinSpacingRatio || o.SpacingRatio > MaxSpacingRatio {
		return fmt.Errorf("%w: spacing ratio must be within [%v, %v] (got %v)", ErrInvalidLayout, MinSpacingRatio, MaxSpacingRatio, o.SpacingRatio)
	}
	return nil
}

// ValidateGrouping checks the heuristic grouping parameters.
func ValidateGrouping(gapThreshold float64, maxWordsPerGroup int) error {
	if gapThreshold <= 0 {
		return fmt.Errorf("%w: gap threshold must be > 0 (got %v)", ErrInvalidLayout, gapThreshold)
	}
	if maxWordsPerGroup < 0 {
		return fmt.Errorf("%w: max words per group must be >= 0 (got %d)", ErrInvalidLayout, maxWordsPerGroup)
	}
	return nil
}

// FontSize is the base size for a tier.
func (o LayoutOptions) FontSize(t Tier) float64 {
	switch t {
	case TierHero:
		return o.HeroFontSize
	case TierStrong:
		return o.StrongFontSize
	}
	return o.NormalFontSize
}
