package cmd

import (
	"kinetic/browser"
	"kinetic/config"
	"kinetic/wordcloud"
)

// newMeasurer builds the configured measurer. The browser backend falls back
// to the estimate with a warning when no browser can be launched. The returned
// func releases the browser and logs how many words were estimated.
func newMeasurer(c *config.Config) (*wordcloud.TextMeasurer, func()) {
	if c.Measure.Backend != config.BackendBrowser {
		return wordcloud.NewTextMeasurer(nil, c.MeasurerConfig()), func() {}
	}

	session, err := browser.NewBrowserSession(c.Measure.BrowserTimeout)
	if err != nil {
		logger.Warn().Err(err).Msg("browser unavailable, estimating text sizes")
		return wordcloud.NewTextMeasurer(nil, c.MeasurerConfig()), func() {}
	}

	m := wordcloud.NewTextMeasurer(browser.NewCanvasBackend(session), c.MeasurerConfig())
	return m, func() {
		if n := m.Fallbacks(); n > 0 {
			logger.Warn().Int64("words", n).Msg("browser measurement failed, used estimates")
		}
		session.Close()
	}
}
