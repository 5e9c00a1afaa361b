// Package theme holds the color schemes screens are rendered with.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"kinetic/wordcloud"
)

// Rotate selects the palette by screen index instead of a fixed scheme.
const Rotate = -1

type Palette struct {
	Background colorful.Color
	Text       colorful.Color
	Accent     colorful.Color
	Hero       colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func palette(bg, text, accent, hero string) Palette {
	return Palette{
		Background: mustHex(bg),
		Text:       mustHex(text),
		Accent:     mustHex(accent),
		Hero:       mustHex(hero),
	}
}

var Palettes = []Palette{
	palette("#0a0a0a", "#ffffff", "#6366f1", "#a855f7"), // indigo
	palette("#1a1a2e", "#ffffff", "#3b82f6", "#60a5fa"), // blue
	palette("#0f172a", "#ffffff", "#22c55e", "#4ade80"), // green
	palette("#1a1a1a", "#ffffff", "#f59e0b", "#fbbf24"), // amber
	palette("#0a1a0a", "#ffffff", "#ec4899", "#f472b6"), // pink
	palette("#0d0d1a", "#ffffff", "#ef4444", "#f87171"), // red
	palette("#0a0f0a", "#ffffff", "#10b981", "#34d399"), // emerald
	palette("#1a0a1a", "#ffffff", "#8b5cf6", "#a78bfa"), // violet
}

// For returns the palette of a screen. scheme is a palette index, or Rotate
// to cycle palettes with the screen index.
func For(screenIndex, scheme int) Palette {
	i := scheme
	if scheme < 0 {
		i = screenIndex
	}
	i %= len(Palettes)
	if i < 0 {
		i += len(Palettes)
	}
	return Palettes[i]
}

// TierColor is the text color of a word: hero words use the hero color,
// strong words the accent and everything else the plain text color.
func (p Palette) TierColor(t wordcloud.Tier) colorful.Color {
	switch t {
	case wordcloud.TierHero:
		return p.Hero
	case wordcloud.TierStrong:
		return p.Accent
	}
	return p.Text
}

// Glow is the shadow color behind a word.
func (p Palette) Glow(t wordcloud.Tier) colorful.Color {
	if t == wordcloud.TierHero {
		return p.Hero
	}
	return p.Accent
}

// FCPColor formats c as the "r g b a" string Final Cut Pro text styles use.
func FCPColor(c colorful.Color) string {
	c = c.Clamped()
	return fmt.Sprintf("%.3f %.3f %.3f 1", c.R, c.G, c.B)
}
