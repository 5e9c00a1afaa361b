// Package server exposes the layout engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kinetic/transcript"
	"kinetic/wordcloud"
)

var ErrTooManyWords = errors.New("too many words")

// Defaults are applied to request fields left unset.
type Defaults struct {
	Width            float64
	Height           float64
	GapThreshold     float64
	MaxWordsPerGroup int
	Options          wordcloud.LayoutOptions
	// AutoRTL sets Options.RTL from the request's words unless the request
	// sets rtl itself.
	AutoRTL bool
}

// Handler serves screen computations. The measurer is shared by all requests
// and must be safe for concurrent use.
type Handler struct {
	logger   zerolog.Logger
	measurer wordcloud.Measurer
	defaults Defaults
	maxWords int
}

func NewHandler(logger zerolog.Logger, measurer wordcloud.Measurer, defaults Defaults, maxWords int) *Handler {
	if measurer == nil {
		measurer = wordcloud.NewEstimateMeasurer()
	}
	defaults.Options = defaults.Options.WithDefaults()
	return &Handler{
		logger:   logger,
		measurer: measurer,
		defaults: defaults,
		maxWords: maxWords,
	}
}

// ScreensRequest is the body of POST /v1/screens. Pointer fields distinguish
// "unset" from zero.
type ScreensRequest struct {
	Words            []wordcloud.WordTiming `json:"words"`
	Width            float64                `json:"width"`
	Height           float64                `json:"height"`
	GapThreshold     *float64               `json:"gapThreshold"`
	MaxWordsPerGroup *int                   `json:"maxWordsPerGroup"`
	Options          *LayoutOverrides       `json:"options"`
}

// LayoutOverrides replaces the configured layout options field by field.
type LayoutOverrides struct {
	HeroFontSize   *float64 `json:"heroFontSize"`
	StrongFontSize *float64 `json:"strongFontSize"`
	NormalFontSize *float64 `json:"normalFontSize"`
	MarginX        *float64 `json:"marginX"`
	MarginY        *float64 `json:"marginY"`
	RTL            *bool    `json:"rtl"`
	SpacingRatio   *float64 `json:"spacingRatio"`
	MinFontSize    *float64 `json:"minFontSize"`
}

// Apply returns base with every set field of o replaced. A nil o leaves base
// unchanged.
func (o *LayoutOverrides) Apply(base wordcloud.LayoutOptions) wordcloud.LayoutOptions {
	if o == nil {
		return base
	}
	floats := []struct {
		src *float64
		dst *float64
	}{
		{o.HeroFontSize, &base.HeroFontSize},
		{o.StrongFontSize, &base.StrongFontSize},
		{o.NormalFontSize, &base.NormalFontSize},
		{o.MarginX, &base.MarginX},
		{o.MarginY, &base.MarginY},
		{o.SpacingRatio, &base.SpacingRatio},
		{o.MinFontSize, &base.MinFontSize},
	}
	for _, f := range floats {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	if o.RTL != nil {
		base.RTL = *o.RTL
	}
	return base
}

type ScreensResponse struct {
	Screens []wordcloud.ComputedScreen `json:"screens"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) RegisterRoutes(g *gin.Engine) {
	g.GET("/healthz", h.Health)
	g.POST("/v1/screens", h.Screens)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Screens(c *gin.Context) {
	var req ScreensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, fmt.Errorf("invalid body: %w", err))
		return
	}
	if h.maxWords > 0 && len(req.Words) > h.maxWords {
		h.badRequest(c, fmt.Errorf("%w: %d > %d", ErrTooManyWords, len(req.Words), h.maxWords))
		return
	}
	if err := transcript.Validate(req.Words); err != nil {
		h.badRequest(c, err)
		return
	}

	width, height := h.defaults.Width, h.defaults.Height
	if req.Width > 0 {
		width = req.Width
	}
	if req.Height > 0 {
		height = req.Height
	}

	gap := h.defaults.GapThreshold
	if req.GapThreshold != nil {
		gap = *req.GapThreshold
	}
	maxPerGroup := h.defaults.MaxWordsPerGroup
	if req.MaxWordsPerGroup != nil {
		maxPerGroup = *req.MaxWordsPerGroup
	}
	opts := h.defaults.Options
	if h.defaults.AutoRTL && (req.Options == nil || req.Options.RTL == nil) {
		opts.RTL = transcript.DetectRTL(req.Words)
	}
	opts = req.Options.Apply(opts)

	if err := opts.Validate(width, height); err != nil {
		h.badRequest(c, err)
		return
	}
	if err := wordcloud.ValidateGrouping(gap, maxPerGroup); err != nil {
		h.badRequest(c, err)
		return
	}

	screens := wordcloud.NewCompiler(h.measurer, opts).
		ComputeAllScreens(req.Words, width, height, gap, maxPerGroup)

	h.logger.Debug().
		Int("words", len(req.Words)).
		Int("screens", len(screens)).
		Msg("computed screens")

	c.JSON(http.StatusOK, ScreensResponse{Screens: screens})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	h.logger.Warn().Err(err).Str("path", c.FullPath()).Msg("rejected request")
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// RequestLogger logs one line per request with a generated request id.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := uuid.NewString()
		c.Header("X-Request-ID", id)

		c.Next()

		logger.Info().
			Str("request_id", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// NewRouter builds the gin engine with recovery, request logging and routes.
func NewRouter(logger zerolog.Logger, h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))
	_ = router.SetTrustedProxies(nil)
	h.RegisterRoutes(router)
	return router
}

// Config holds listener settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, logger zerolog.Logger, cfg Config, router http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
