package fcp

import (
	"errors"
	"fmt"
	"strconv"

	"kinetic/theme"
	"kinetic/wordcloud"
)

const (
	textEffectName = "Text"
	textEffectUID  = ".../Titles.localized/Basic Text.localized/Text.localized/Text.moti"

	positionKey  = "9999/999166631/999166633/1/100/101"
	flatKey      = "9999/999166631/999166633/1/999166650/999166651"
	alignmentKey = "9999/999166631/999166633/2/354/999169573/401"

	// glow blur as a fraction of the font size
	glowRadius = 0.15
)

var ErrNoScreens = errors.New("no screens to export")

// ScreenExportOptions describe the target project. ColorScheme is a palette
// index or theme.Rotate.
type ScreenExportOptions struct {
	Width       int
	Height      int
	Name        string
	ColorScheme int
	FontFamily  string
}

func (o ScreenExportOptions) withDefaults() ScreenExportOptions {
	if o.Width <= 0 {
		o.Width = 1080
	}
	if o.Height <= 0 {
		o.Height = 1920
	}
	if o.Name == "" {
		o.Name = "Kinetic Captions"
	}
	if o.FontFamily == "" {
		o.FontFamily = "Inter"
	}
	return o
}

// BuildScreensFCPXML turns computed screens into a project with one title per
// word. Every title hangs off a single gap spanning the whole timeline, starts
// when its word is spoken and lasts until its screen has faded out. Words of
// one screen sit on separate lanes, and consecutive screens alternate between
// two lane bands so their crossfades never collide.
func BuildScreensFCPXML(screens []wordcloud.ComputedScreen, opts ScreenExportOptions) (FCPXML, error) {
	if len(screens) == 0 {
		return FCPXML{}, ErrNoScreens
	}
	opts = opts.withDefaults()

	ids := NewIDGenerator()
	formatID := ids.ReserveID()
	effectID := ids.ReserveID()

	stride := 0
	for _, s := range screens {
		stride = max(stride, len(s.Layout))
	}

	var titles []Title
	for _, s := range screens {
		palette := theme.For(s.GroupIndex, opts.ColorScheme)
		band := (s.GroupIndex % 2) * stride
		until := s.EndTime + wordcloud.Linger

		for i, w := range s.Layout {
			styleID := ids.ReserveStyleID()
			titles = append(titles, Title{
				Ref:      effectID,
				Lane:     strconv.Itoa(band + i + 1),
				Offset:   FormatSecondsForFCPXML(w.Timestamp),
				Name:     fmt.Sprintf("%s - Screen %d", w.Word, s.GroupIndex+1),
				Duration: FormatSecondsForFCPXML(until - w.Timestamp),
				Params: []Param{
					{Name: "Position", Key: positionKey, Value: position(w, opts.Width, opts.Height)},
					{Name: "Flat", Key: flatKey, Value: "1"},
					{Name: "Alignment", Key: alignmentKey, Value: "1 (Center)"},
				},
				Text: &TitleText{
					TextStyle: TextStyleRef{
						Ref:  styleID,
						Text: w.Tier.Display(w.Word),
					},
				},
				TextStyleDef: &TextStyleDef{
					ID:        styleID,
					TextStyle: textStyle(w, palette, opts.FontFamily),
				},
			})
		}
	}

	last := screens[len(screens)-1]
	total := FormatSecondsForFCPXML(last.EndTime + wordcloud.Linger)

	return FCPXML{
		Version: "1.11",
		Resources: Resources{
			Formats: []Format{
				{
					ID:            formatID,
					FrameDuration: "1001/30000s",
					Width:         strconv.Itoa(opts.Width),
					Height:        strconv.Itoa(opts.Height),
					ColorSpace:    "1-1-1 (Rec. 709)",
				},
			},
			Effects: []Effect{
				{ID: effectID, Name: textEffectName, UID: textEffectUID},
			},
		},
		Library: Library{
			Events: []Event{
				{
					Name: opts.Name,
					UID:  GenerateUID("event:" + opts.Name),
					Projects: []Project{
						{
							Name: opts.Name,
							UID:  GenerateUID("project:" + opts.Name),
							Sequences: []Sequence{
								{
									Format:      formatID,
									Duration:    total,
									TCStart:     "0s",
									TCFormat:    "NDF",
									AudioLayout: "stereo",
									AudioRate:   "48k",
									Spine: Spine{
										Gaps: []Gap{
											{
												Name:     "Gap",
												Offset:   "0s",
												Duration: total,
												Start:    "0s",
												Titles:   titles,
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}, nil
}

// position converts a top-left pixel box to the title's Position parameter:
// the box center relative to the frame center, with y pointing up.
func position(w wordcloud.PlacedWord, width, height int) string {
	cx := w.X + w.Width/2 - float64(width)/2
	cy := float64(height)/2 - (w.Y + w.Height/2)
	return fmt.Sprintf("%.1f %.1f", cx, cy)
}

// textStyle gives hero and strong words a centered glow shadow in the
// palette's glow color.
func textStyle(w wordcloud.PlacedWord, palette theme.Palette, font string) TextStyle {
	style := TextStyle{
		Font:      font,
		FontSize:  strconv.FormatFloat(w.FontSize, 'f', -1, 64),
		FontFace:  fontFace(w.Tier),
		FontColor: theme.FCPColor(palette.TierColor(w.Tier)),
		Alignment: "center",
	}
	if w.Tier == wordcloud.TierHero || w.Tier == wordcloud.TierStrong {
		style.ShadowColor = theme.FCPColor(palette.Glow(w.Tier))
		style.ShadowOffset = "0 0"
		style.ShadowBlurRadius = strconv.FormatFloat(w.FontSize*glowRadius, 'f', 1, 64)
	}
	return style
}

func fontFace(t wordcloud.Tier) string {
	switch t {
	case wordcloud.TierHero:
		return "Black"
	case wordcloud.TierStrong:
		return "Bold"
	}
	return "Semibold"
}
