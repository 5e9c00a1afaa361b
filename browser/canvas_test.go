package browser

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinetic/wordcloud"
)

func TestFontShorthand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "900 140px Inter, system-ui, sans-serif", FontShorthand(wordcloud.TextSpec{
		FontFamily: wordcloud.DefaultFontFamily,
		FontSize:   140,
		FontWeight: 900,
	}))
	assert.Equal(t, "600 62.5px Anton", FontShorthand(wordcloud.TextSpec{
		FontFamily: "Anton",
		FontSize:   62.5,
		FontWeight: 600,
	}))
}

func TestLetterSpacingWidth(t *testing.T) {
	t.Parallel()

	spec := wordcloud.TextSpec{Text: "RISE", FontSize: 100, LetterSpacing: 0.05}
	assert.InDelta(t, 20, LetterSpacingWidth(spec), 1e-9)

	spec = wordcloud.TextSpec{Text: "שלום", FontSize: 50, LetterSpacing: 0.02}
	assert.InDelta(t, 4, LetterSpacingWidth(spec), 1e-9)
}

// Launching Chromium is slow and needs a browser binary; opt in with
// KINETIC_BROWSER_TESTS=1.
func requireBrowser(t *testing.T) {
	t.Helper()
	if os.Getenv("KINETIC_BROWSER_TESTS") == "" {
		t.Skip("set KINETIC_BROWSER_TESTS=1 to run headless browser tests")
	}
}

func TestCanvasBackend(t *testing.T) {
	requireBrowser(t)

	session, err := NewBrowserSession(0)
	require.NoError(t, err)
	t.Cleanup(session.Close)

	m := wordcloud.NewTextMeasurer(NewCanvasBackend(session), wordcloud.MeasurerConfig{})

	small := m.Measure("focus", 60, wordcloud.TierNormal)
	large := m.Measure("focus", 120, wordcloud.TierNormal)
	hero := m.Measure("focus", 60, wordcloud.TierHero)

	assert.Greater(t, small.Width, 2.0*wordcloud.BoxPadding)
	assert.Greater(t, large.Width, small.Width)
	assert.Greater(t, hero.Width, small.Width)
	assert.Zero(t, m.Fallbacks())
}

func TestCanvasBackend_TimeoutIsPerCall(t *testing.T) {
	requireBrowser(t)

	session, err := NewBrowserSession(time.Second)
	require.NoError(t, err)
	t.Cleanup(session.Close)

	m := wordcloud.NewTextMeasurer(NewCanvasBackend(session), wordcloud.MeasurerConfig{})
	m.Measure("before", 60, wordcloud.TierNormal)

	// outlive the session timeout; later calls still get their own deadline
	time.Sleep(1500 * time.Millisecond)
	m.Measure("after", 60, wordcloud.TierNormal)

	assert.Zero(t, m.Fallbacks())
}
