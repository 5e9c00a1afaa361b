package wordcloud

const (
	// LeadIn is how long before its first word a screen starts fading in.
	LeadIn = 0.15
	// FadeInEnd is when, relative to the screen start, it is fully opaque.
	FadeInEnd = 0.2
	// FadeOutDelay is the hold after the screen ends before fading out.
	FadeOutDelay = 0.05
	// Linger is how long after its end a screen stays visible.
	Linger = 0.4
)

// ActiveScreen is a screen visible at some playback time.
type ActiveScreen struct {
	Screen  ComputedScreen
	Index   int
	Opacity float64
}

// Visible reports whether s is on screen at time t (seconds). Screens overlap
// during crossfades.
func (s ComputedScreen) Visible(t float64) bool {
	return t >= s.StartTime-LeadIn && t <= s.EndTime+Linger
}

// ScreenOpacity is the crossfade opacity of s at time t, in [0, 1].
func ScreenOpacity(s ComputedScreen, t float64) float64 {
	fadeIn := ramp(t, s.StartTime-LeadIn, s.StartTime+FadeInEnd)
	fadeOut := 1 - ramp(t, s.EndTime+FadeOutDelay, s.EndTime+Linger)
	return min(fadeIn, fadeOut)
}

// ramp is 0 before from, 1 after to and linear in between.
func ramp(t, from, to float64) float64 {
	switch {
	case t <= from:
		return 0
	case t >= to:
		return 1
	}
	return (t - from) / (to - from)
}

// ActiveScreens returns the screens visible at t in screen order.
func ActiveScreens(screens []ComputedScreen, t float64) []ActiveScreen {
	var active []ActiveScreen
	for i, s := range screens {
		if !s.Visible(t) {
			continue
		}
		active = append(active, ActiveScreen{
			Screen:  s,
			Index:   i,
			Opacity: ScreenOpacity(s, t),
		})
	}
	return active
}

// PrimaryScreenIndex picks the screen that drives colors at time t: the last
// visible screen, or during a pause the screen before the next one. Before
// any screen it is 0 and after all screens it is the last one. It returns -1
// when there are no screens.
func PrimaryScreenIndex(screens []ComputedScreen, t float64) int {
	if len(screens) == 0 {
		return -1
	}
	if active := ActiveScreens(screens, t); len(active) > 0 {
		return active[len(active)-1].Index
	}
	for i, s := range screens {
		if t < s.StartTime {
			return max(0, i-1)
		}
	}
	return len(screens) - 1
}

// VisibleWords returns the words of s already spoken at t.
func VisibleWords(s ComputedScreen, t float64) []PlacedWord {
	var words []PlacedWord
	for _, w := range s.Layout {
		if t >= w.Timestamp {
			words = append(words, w)
		}
	}
	return words
}
