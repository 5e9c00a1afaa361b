package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinetic/wordcloud"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(maxWords int) *gin.Engine {
	h := NewHandler(zerolog.Nop(), nil, Defaults{
		Width:            1080,
		Height:           1920,
		GapThreshold:     0.4,
		MaxWordsPerGroup: 8,
	}, maxWords)
	return NewRouter(zerolog.Nop(), h)
}

func post(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/screens", &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestScreens(t *testing.T) {
	words := []wordcloud.WordTiming{
		{Word: "hello", Start: 0, End: 0.3},
		{Word: "world", Start: 0.35, End: 0.6},
		{Word: "again", Start: 2, End: 2.4},
	}
	rec := post(t, newTestRouter(0), ScreensRequest{Words: words, Width: 800, Height: 600})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ScreensResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Screens, 2)
	assert.Len(t, resp.Screens[0].Layout, 2)
	assert.Len(t, resp.Screens[1].Layout, 1)
	assert.Equal(t, 1, resp.Screens[1].GroupIndex)

	want := wordcloud.ComputeAllScreens(words, 800, 600, 0.4, 8, wordcloud.LayoutOptions{})
	assert.Equal(t, want, resp.Screens)
}

func TestScreensOverrides(t *testing.T) {
	gap := 10.0
	one := 1
	words := []wordcloud.WordTiming{
		{Word: "a", Start: 0, End: 0.1},
		{Word: "b", Start: 5, End: 5.1},
	}

	rec := post(t, newTestRouter(0), ScreensRequest{Words: words, GapThreshold: &gap})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ScreensResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Screens, 1)

	rec = post(t, newTestRouter(0), ScreensRequest{Words: words, GapThreshold: &gap, MaxWordsPerGroup: &one})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Screens, 2)
}

func TestScreensMergesOptions(t *testing.T) {
	configured := wordcloud.LayoutOptions{HeroFontSize: 200, NormalFontSize: 50}
	h := NewHandler(zerolog.Nop(), nil, Defaults{
		Width:            1080,
		Height:           1920,
		GapThreshold:     0.4,
		MaxWordsPerGroup: 8,
		Options:          configured,
	}, 0)
	words := []wordcloud.WordTiming{
		{Word: "go", Start: 0, End: 0.3, Tier: wordcloud.TierHero},
		{Word: "now", Start: 0.35, End: 0.6},
	}

	rec := post(t, NewRouter(zerolog.Nop(), h), `{"words":[
		{"word":"go","start":0,"end":0.3,"tier":"hero"},
		{"word":"now","start":0.35,"end":0.6}
	],"options":{"rtl":true}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ScreensResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	merged := configured
	merged.RTL = true
	want := wordcloud.ComputeAllScreens(words, 1080, 1920, 0.4, 8, merged)
	assert.Equal(t, want, resp.Screens)

	placed := resp.Screens[0].Layout
	require.Len(t, placed, 2)
	// configured hero size survives the partial override
	assert.Greater(t, placed[0].FontSize, wordcloud.DefaultHeroFontSize+0.0)
	assert.Greater(t, placed[0].X, placed[1].X)
}

func TestLayoutOverridesApply(t *testing.T) {
	base := wordcloud.DefaultLayoutOptions()
	assert.Equal(t, base, (*LayoutOverrides)(nil).Apply(base))

	margin := 40.0
	rtl := true
	got := (&LayoutOverrides{MarginX: &margin, RTL: &rtl}).Apply(base)
	assert.Equal(t, 40.0, got.MarginX)
	assert.True(t, got.RTL)
	assert.Equal(t, base.HeroFontSize, got.HeroFontSize)
	assert.Equal(t, base.SpacingRatio, got.SpacingRatio)
}

func TestScreensEmpty(t *testing.T) {
	rec := post(t, newTestRouter(0), `{"words":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"screens":[]}`, rec.Body.String())
}

func TestScreensRejects(t *testing.T) {
	tests := []struct {
		name     string
		maxWords int
		body     any
		contains string
	}{
		{
			name:     "malformed json",
			body:     `{"words":`,
			contains: "invalid body",
		},
		{
			name: "end before start",
			body: ScreensRequest{Words: []wordcloud.WordTiming{
				{Word: "late", Start: 1, End: 0.5},
			}},
			contains: "word 0",
		},
		{
			name: "unknown tier",
			body: ScreensRequest{Words: []wordcloud.WordTiming{
				{Word: "loud", Start: 0, End: 1, Tier: "mega"},
			}},
			contains: "tier",
		},
		{
			name:     "negative margin",
			body:     `{"words":[{"word":"attention","start":0,"end":1}],"options":{"marginX":-400}}`,
			contains: "margins",
		},
		{
			name:     "spacing ratio out of range",
			body:     `{"words":[{"word":"attention","start":0,"end":1}],"options":{"spacingRatio":3}}`,
			contains: "spacing ratio",
		},
		{
			name:     "non-positive font size",
			body:     `{"words":[{"word":"attention","start":0,"end":1}],"options":{"heroFontSize":-10}}`,
			contains: "hero font size",
		},
		{
			name:     "negative gap threshold",
			body:     `{"words":[{"word":"a","start":0,"end":1}],"gapThreshold":-1}`,
			contains: "gap threshold",
		},
		{
			name:     "negative max words per group",
			body:     `{"words":[{"word":"a","start":0,"end":1}],"maxWordsPerGroup":-1}`,
			contains: "max words per group",
		},
		{
			name:     "too many words",
			maxWords: 1,
			body: ScreensRequest{Words: []wordcloud.WordTiming{
				{Word: "one", Start: 0, End: 1},
				{Word: "two", Start: 1, End: 2},
			}},
			contains: ErrTooManyWords.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, newTestRouter(tt.maxWords), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.contains)
		})
	}
}

func TestScreensAutoRTL(t *testing.T) {
	h := NewHandler(zerolog.Nop(), nil, Defaults{Width: 1080, Height: 1920, GapThreshold: 0.4, AutoRTL: true}, 0)
	router := NewRouter(zerolog.Nop(), h)
	words := []wordcloud.WordTiming{
		{Word: "שלום", Start: 0, End: 0.3},
		{Word: "עולם", Start: 0.35, End: 0.6},
	}

	rec := post(t, router, ScreensRequest{Words: words})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ScreensResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Screens, 1)

	layout := resp.Screens[0].Layout
	require.Len(t, layout, 2)
	// both fit one row; the first word sits on the right
	assert.Greater(t, layout[0].X, layout[1].X)
}
