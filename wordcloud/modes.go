package wordcloud

import (
	"math"
	"slices"
	"unicode/utf8"
)

// LayoutMode selects how tiers are assigned before packing. Consecutive
// screens rotate through modes for visual variety.
type LayoutMode int

const (
	ModeHeroCenter LayoutMode = iota
	ModeAllEqual
	ModeStacked
	ModeScattered
	ModeLeftAnchor
	ModeRightAnchor
)

// LayoutModes lists every mode in rotation order.
var LayoutModes = []LayoutMode{
	ModeHeroCenter,
	ModeAllEqual,
	ModeStacked,
	ModeScattered,
	ModeLeftAnchor,
	ModeRightAnchor,
}

var shortGroupModes = []LayoutMode{ModeStacked, ModeHeroCenter, ModeAllEqual}

func (m LayoutMode) String() string {
	switch m {
	case ModeHeroCenter:
		return "hero-center"
	case ModeAllEqual:
		return "all-equal"
	case ModeStacked:
		return "stacked"
	case ModeScattered:
		return "scattered"
	case ModeLeftAnchor:
		return "left-anchor"
	case ModeRightAnchor:
		return "right-anchor"
	}
	return "unknown"
}

// PickLayoutMode chooses a mode from the screen index and its word count.
func PickLayoutMode(groupIndex, wordCount int) LayoutMode {
	if groupIndex < 0 {
		groupIndex = -groupIndex
	}
	switch {
	case wordCount <= 2:
		return ModeAllEqual
	case wordCount == 3:
		return shortGroupModes[groupIndex%len(shortGroupModes)]
	}
	return LayoutModes[groupIndex%len(LayoutModes)]
}

// heroBand is how close to the top score a word must be to become hero.
const heroBand = 5

// strongScore is the absolute score at which a word becomes strong.
const strongScore = 60

// AssignTiers maps importance scores (in reading order) to tiers.
func (m LayoutMode) AssignTiers(scores []int) []Tier {
	tiers := make([]Tier, len(scores))
	switch m {
	case ModeAllEqual:
		for i := range tiers {
			tiers[i] = TierStrong
		}
	case ModeStacked:
		for i := range tiers {
			switch {
			case i == 0:
				tiers[i] = TierHero
			case i < 3:
				tiers[i] = TierStrong
			default:
				tiers[i] = TierNormal
			}
		}
	default:
		if len(scores) == 0 {
			return tiers
		}
		top := slices.Max(scores)
		for i, s := range scores {
			switch {
			case s >= top-heroBand:
				tiers[i] = TierHero
			case s >= strongScore:
				tiers[i] = TierStrong
			default:
				tiers[i] = TierNormal
			}
		}
	}
	return tiers
}

// sizeVariation gives authored screens a wall-of-blocks texture: sizes
// alternate around the tier base in a fixed pattern.
var sizeVariation = []float64{0, 0.12, -0.1, 0.05, -0.08, 0.15, -0.05, 0.08}

// variedFontSize is the desired size for the index-th authored word.
func variedFontSize(base float64, word string, index int) float64 {
	lengthFactor := 0.0
	switch n := utf8.RuneCountInString(word); {
	case n > 5:
		lengthFactor = -0.08
	case n < 3:
		lengthFactor = 0.1
	}
	return math.Round(base * (1 + sizeVariation[index%len(sizeVariation)] + lengthFactor))
}
