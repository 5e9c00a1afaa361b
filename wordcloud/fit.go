package wordcloud

import "math"

// FitFontSize returns the largest font size not above desired at which word
// fits within availableWidth. When even minSize overflows, minSize is returned
// anyway: a word is shrunk to the floor, never hidden.
func FitFontSize(m Measurer, word string, tier Tier, desired, availableWidth, minSize float64) float64 {
	if m.Measure(word, desired, tier).Width <= availableWidth {
		return desired
	}

	low := int(math.Ceil(minSize))
	high := int(math.Floor(desired))
	best := minSize

	for low <= high {
		mid := (low + high) / 2
		if m.Measure(word, float64(mid), tier).Width <= availableWidth {
			best = float64(mid)
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return best
}
