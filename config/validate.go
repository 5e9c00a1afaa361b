package config

import (
	"fmt"

	"kinetic/wordcloud"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading or after applying overrides; Load calls it
// automatically.
func (c *Config) Validate() error {
	if err := c.LayoutOptions().Validate(c.Canvas.Width, c.Canvas.Height); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	switch c.Layout.Direction {
	case DirectionAuto, DirectionLTR, DirectionRTL:
	default:
		return fmt.Errorf("layout: direction must be auto, ltr or rtl (got %q)", c.Layout.Direction)
	}
	if err := wordcloud.ValidateGrouping(c.Grouping.GapThreshold, c.Grouping.MaxWordsPerGroup); err != nil {
		return fmt.Errorf("grouping: %w", err)
	}
	switch c.Measure.Backend {
	case BackendEstimate, BackendBrowser:
	default:
		return fmt.Errorf("measure.backend must be %q or %q (got %q)", BackendEstimate, BackendBrowser, c.Measure.Backend)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.Measure.CacheSize <= 0 {
		return fmt.Errorf("measure.cache_size must be > 0 (got %d)", c.Measure.CacheSize)
	}
	return nil
}
