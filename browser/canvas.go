package browser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"kinetic/wordcloud"
)

var ErrNoMetrics = errors.New("canvas returned no font metrics")

// measureJS reuses one 2D context per page. fontBoundingBox* covers the
// whole font's ascent and descent, so every word of a size gets one height.
const measureJS = `(font, text) => {
	window.__kineticCtx = window.__kineticCtx || document.createElement('canvas').getContext('2d');
	const ctx = window.__kineticCtx;
	ctx.font = font;
	const m = ctx.measureText(text);
	return {
		width: m.width,
		ascent: m.fontBoundingBoxAscent || m.actualBoundingBoxAscent || 0,
		descent: m.fontBoundingBoxDescent || m.actualBoundingBoxDescent || 0,
	};
}`

// CanvasBackend measures text with the browser's canvas, which shapes text
// the same way the rendered video does. It is safe for concurrent use.
type CanvasBackend struct {
	session *BrowserSession
}

func NewCanvasBackend(session *BrowserSession) *CanvasBackend {
	return &CanvasBackend{session: session}
}

// FontShorthand is the CSS font shorthand for spec, e.g.
// "900 140px Inter, system-ui, sans-serif".
func FontShorthand(spec wordcloud.TextSpec) string {
	return fmt.Sprintf("%d %gpx %s", spec.FontWeight, spec.FontSize, spec.FontFamily)
}

func (b *CanvasBackend) MeasureText(spec wordcloud.TextSpec) (wordcloud.Size, error) {
	res, err := b.session.CallPage().Eval(measureJS, FontShorthand(spec), spec.Text)
	if err != nil {
		return wordcloud.Size{}, fmt.Errorf("measure %q: %w", spec.Text, err)
	}

	width := res.Value.Get("width").Num()
	height := res.Value.Get("ascent").Num() + res.Value.Get("descent").Num()
	if width <= 0 || height <= 0 {
		return wordcloud.Size{}, fmt.Errorf("measure %q: %w", spec.Text, ErrNoMetrics)
	}

	return wordcloud.Size{
		Width:  width + LetterSpacingWidth(spec),
		Height: height,
	}, nil
}

// LetterSpacingWidth is the extra advance CSS letter-spacing adds: the
// spacing follows every character.
func LetterSpacingWidth(spec wordcloud.TextSpec) float64 {
	return spec.LetterSpacing * spec.FontSize * float64(utf8.RuneCountInString(spec.Text))
}
