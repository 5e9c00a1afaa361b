package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"kinetic/config"
	"kinetic/transcript"
	"kinetic/wordcloud"
)

// addLayoutFlags registers the flags that override the canvas, layout,
// grouping and measure sections of the config.
func addLayoutFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("width", 1080, "Canvas width in pixels")
	f.Float64("height", 1920, "Canvas height in pixels")
	f.Float64("hero-size", wordcloud.DefaultHeroFontSize, "Hero font size")
	f.Float64("strong-size", wordcloud.DefaultStrongFontSize, "Strong font size")
	f.Float64("normal-size", wordcloud.DefaultNormalFontSize, "Normal font size")
	f.Float64("min-size", wordcloud.DefaultMinFontSize, "Smallest font size a word may shrink to")
	f.Float64("margin-x", 0, "Horizontal margin in pixels")
	f.Float64("margin-y", 0, "Vertical margin in pixels")
	f.Float64("spacing", wordcloud.DefaultSpacingRatio, "Word spacing as a fraction of font size")
	f.String("direction", config.DirectionAuto, "Flow direction: ltr, rtl or auto")
	f.Float64("gap", wordcloud.DefaultGapThreshold, "Silence in seconds that starts a new screen")
	f.Int("max-words", 8, "Maximum words per screen (0 for no limit)")
	f.String("measure", config.BackendEstimate, "Text measurement backend: estimate or browser")
}

// applyLayoutFlags copies explicitly set flags over the loaded config and
// validates the result.
func applyLayoutFlags(f *pflag.FlagSet, c *config.Config) error {
	floats := map[string]*float64{
		"width":       &c.Canvas.Width,
		"height":      &c.Canvas.Height,
		"hero-size":   &c.Layout.HeroFontSize,
		"strong-size": &c.Layout.StrongFontSize,
		"normal-size": &c.Layout.NormalFontSize,
		"min-size":    &c.Layout.MinFontSize,
		"margin-x":    &c.Layout.MarginX,
		"margin-y":    &c.Layout.MarginY,
		"spacing":     &c.Layout.SpacingRatio,
		"gap":         &c.Grouping.GapThreshold,
	}
	for name, dst := range floats {
		if f.Changed(name) {
			*dst, _ = f.GetFloat64(name)
		}
	}
	if f.Changed("direction") {
		c.Layout.Direction, _ = f.GetString("direction")
	}
	if f.Changed("max-words") {
		c.Grouping.MaxWordsPerGroup, _ = f.GetInt("max-words")
	}
	if f.Changed("measure") {
		c.Measure.Backend, _ = f.GetString("measure")
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// layoutOptions resolves the auto direction against the words being laid out.
func layoutOptions(c *config.Config, words []wordcloud.WordTiming) wordcloud.LayoutOptions {
	opts := c.LayoutOptions()
	if c.Layout.Direction == config.DirectionAuto {
		opts.RTL = transcript.DetectRTL(words)
	}
	return opts
}
