// Package config loads kinetic settings from YAML and the environment.
package config

import (
	"fmt"
	"strconv"
	"time"

	"kinetic/wordcloud"
)

// Config is the root configuration.
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Layout   LayoutConfig   `yaml:"layout"`
	Grouping GroupingConfig `yaml:"grouping"`
	Measure  MeasureConfig  `yaml:"measure"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
}

// CanvasConfig is the frame size in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"  env:"CANVAS_WIDTH"  env-default:"1080"`
	Height float64 `yaml:"height" env:"CANVAS_HEIGHT" env-default:"1920"`
}

// LayoutConfig holds font sizes, margins and flow direction. Direction is
// ltr, rtl or auto; auto picks rtl when most transcript words are Hebrew or
// Arabic.
type LayoutConfig struct {
	HeroFontSize   float64 `yaml:"hero_font_size"   env:"LAYOUT_HERO_FONT_SIZE"   env-default:"140"`
	StrongFontSize float64 `yaml:"strong_font_size" env:"LAYOUT_STRONG_FONT_SIZE" env-default:"90"`
	NormalFontSize float64 `yaml:"normal_font_size" env:"LAYOUT_NORMAL_FONT_SIZE" env-default:"60"`
	MinFontSize    float64 `yaml:"min_font_size"    env:"LAYOUT_MIN_FONT_SIZE"    env-default:"30"`
	MarginX        float64 `yaml:"margin_x"         env:"LAYOUT_MARGIN_X"         env-default:"0"`
	MarginY        float64 `yaml:"margin_y"         env:"LAYOUT_MARGIN_Y"         env-default:"0"`
	SpacingRatio   float64 `yaml:"spacing_ratio"    env:"LAYOUT_SPACING_RATIO"    env-default:"0.25"`
	Direction      string  `yaml:"direction"        env:"LAYOUT_DIRECTION"        env-default:"auto"`
}

// GroupingConfig controls heuristic screen splitting.
type GroupingConfig struct {
	GapThreshold     float64 `yaml:"gap_threshold"       env:"GROUPING_GAP_THRESHOLD"       env-default:"0.4"`
	MaxWordsPerGroup int     `yaml:"max_words_per_group" env:"GROUPING_MAX_WORDS_PER_GROUP" env-default:"8"`
}

// MeasureConfig selects the text measurement backend.
type MeasureConfig struct {
	Backend        string        `yaml:"backend"         env:"MEASURE_BACKEND"         env-default:"estimate"`
	FontFamily     string        `yaml:"font_family"     env:"MEASURE_FONT_FAMILY"     env-default:"Inter, system-ui, sans-serif"`
	CacheSize      int           `yaml:"cache_size"      env:"MEASURE_CACHE_SIZE"      env-default:"4096"`
	BrowserTimeout time.Duration `yaml:"browser_timeout" env:"MEASURE_BROWSER_TIMEOUT" env-default:"30s"`
}

// ExportConfig controls FCPXML export. ColorScheme is a palette index or
// "rotate" to cycle palettes per screen.
type ExportConfig struct {
	ColorScheme string `yaml:"color_scheme" env:"EXPORT_COLOR_SCHEME" env-default:"rotate"`
	ProjectName string `yaml:"project_name" env:"EXPORT_PROJECT_NAME" env-default:"Kinetic Captions"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxWords        int           `yaml:"max_words"        env:"SERVER_MAX_WORDS"        env-default:"5000"`
}

const (
	BackendEstimate = "estimate"
	BackendBrowser  = "browser"

	DirectionAuto = "auto"
	DirectionLTR  = "ltr"
	DirectionRTL  = "rtl"

	SchemeRotate = "rotate"
)

// LayoutOptions converts the layout section for the layout engine.
func (c *Config) LayoutOptions() wordcloud.LayoutOptions {
	return wordcloud.LayoutOptions{
		HeroFontSize:   c.Layout.HeroFontSize,
		StrongFontSize: c.Layout.StrongFontSize,
		NormalFontSize: c.Layout.NormalFontSize,
		MarginX:        c.Layout.MarginX,
		MarginY:        c.Layout.MarginY,
		RTL:            c.Layout.Direction == DirectionRTL,
		SpacingRatio:   c.Layout.SpacingRatio,
		MinFontSize:    c.Layout.MinFontSize,
	}
}

// MeasurerConfig converts the measure section for the layout engine.
func (c *Config) MeasurerConfig() wordcloud.MeasurerConfig {
	return wordcloud.MeasurerConfig{
		FontFamily: c.Measure.FontFamily,
		CacheSize:  c.Measure.CacheSize,
	}
}

// Palette returns the configured color scheme index, or -1 to rotate.
func (c *Config) Palette() (int, error) {
	if c.Export.ColorScheme == SchemeRotate {
		return -1, nil
	}
	i, err := strconv.Atoi(c.Export.ColorScheme)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("export.color_scheme must be %q or a palette index (got %q)", SchemeRotate, c.Export.ColorScheme)
	}
	return i, nil
}
