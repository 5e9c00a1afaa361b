package wordcloud

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const speech = `Your attention is the greatest superpower you have. Stop! Guard it
like it matters, because it does. Every notification is stealing a piece of your
focus. Create space for deep work today and watch what you become. Are you ready?
The future belongs to the undivided mind. Rise NOW and build your legacy`

func speechTimings() []WordTiming {
	var words []WordTiming
	t := 0.0
	for i, w := range strings.Fields(speech) {
		if i%9 == 8 {
			t += 0.7
		}
		words = append(words, WordTiming{Word: w, Start: t, End: t + 0.28})
		t += 0.32
	}
	return words
}

func overlaps(a, b PlacedWord) bool {
	const eps = 1e-6
	return a.X+eps < b.X+b.Width && b.X+eps < a.X+a.Width &&
		a.Y+eps < b.Y+b.Height && b.Y+eps < a.Y+a.Height
}

func TestComputeAllScreens_LayoutInvariants(t *testing.T) {
	t.Parallel()

	canvases := []struct {
		name          string
		width, height float64
		opts          LayoutOptions
	}{
		{name: "portrait", width: 1080, height: 1920},
		{name: "landscape", width: 1920, height: 1080},
		{name: "margins", width: 1080, height: 1920, opts: LayoutOptions{MarginX: 80, MarginY: 120}},
		{name: "rtl", width: 1080, height: 1920, opts: LayoutOptions{RTL: true}},
	}
	words := speechTimings()

	for _, c := range canvases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			screens := ComputeAllScreens(words, c.width, c.height, DefaultGapThreshold, DefaultMaxWordsPerGroup, c.opts)
			require.NotEmpty(t, screens)

			total := 0
			for i, s := range screens {
				assert.Equal(t, i, s.GroupIndex)
				total += len(s.Layout)

				for a := range s.Layout {
					p := s.Layout[a]
					assert.GreaterOrEqual(t, p.X, c.opts.MarginX-1e-6, p.Word)
					assert.LessOrEqual(t, p.X+p.Width, c.width-c.opts.MarginX+1e-6, p.Word)
					assert.GreaterOrEqual(t, p.Y, c.opts.MarginY-1e-6, p.Word)
					assert.LessOrEqual(t, p.Y+p.Height, c.height-c.opts.MarginY+1e-6, p.Word)
					assert.True(t, p.Tier.Valid())
					assert.GreaterOrEqual(t, p.Importance, 0)
					assert.LessOrEqual(t, p.Importance, 100)

					for b := a + 1; b < len(s.Layout); b++ {
						assert.False(t, overlaps(p, s.Layout[b]), "%q overlaps %q on screen %d", p.Word, s.Layout[b].Word, i)
					}
				}
			}
			assert.Equal(t, len(words), total)
		})
	}
}

func TestComputeAllScreens_Deterministic(t *testing.T) {
	t.Parallel()

	words := speechTimings()
	first, err := json.Marshal(ComputeAllScreens(words, 1080, 1920, 0.4, 8, LayoutOptions{}))
	require.NoError(t, err)
	second, err := json.Marshal(ComputeAllScreens(words, 1080, 1920, 0.4, 8, LayoutOptions{}))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestComputeAllScreens_Empty(t *testing.T) {
	t.Parallel()

	screens := ComputeAllScreens(nil, 1080, 1920, 0.4, 6, LayoutOptions{})
	require.NotNil(t, screens)
	assert.Empty(t, screens)
}

func TestComputeAllScreens_ExplicitTiers(t *testing.T) {
	t.Parallel()

	words := []WordTiming{
		{Word: "guard", Start: 0, End: 0.3, Tier: TierStrong},
		{Word: "your", Start: 0.35, End: 0.5},
		{Word: "focus", Start: 0.55, End: 0.9, Tier: TierHero},
	}
	screens := ComputeAllScreens(words, 1080, 1920, 0.4, 6, LayoutOptions{})
	require.Len(t, screens, 1)

	placed := byWord(screens[0].Layout)
	assert.Equal(t, TierStrong, placed["guard"].Tier)
	assert.Equal(t, 70, placed["guard"].Importance)
	assert.Equal(t, 90.0, placed["guard"].FontSize)

	assert.Equal(t, TierNormal, placed["your"].Tier)
	assert.Equal(t, 40, placed["your"].Importance)
	assert.Equal(t, 67.0, placed["your"].FontSize)

	assert.Equal(t, TierHero, placed["focus"].Tier)
	assert.Equal(t, 100, placed["focus"].Importance)
	assert.Equal(t, 126.0, placed["focus"].FontSize)
	assert.Equal(t, 0.55, placed["focus"].Timestamp)
}

func TestComputeAllScreens_ExplicitGroups(t *testing.T) {
	t.Parallel()

	words := timeline(6)
	for i, id := range []int{1, 1, 2, 2, 2, 3} {
		words[i].GroupID = gid(id)
	}
	screens := ComputeAllScreens(words, 1080, 1920, 0.4, 6, LayoutOptions{})

	require.Len(t, screens, 3)
	assert.Len(t, screens[0].Layout, 2)
	assert.Len(t, screens[1].Layout, 3)
	assert.Len(t, screens[2].Layout, 1)
	assert.Equal(t, words[2].Start, screens[1].StartTime)
	assert.Equal(t, words[4].End, screens[1].EndTime)
}

func TestComputeAllScreens_HeuristicModes(t *testing.T) {
	t.Parallel()

	words := []WordTiming{
		{Word: "pure", Start: 0, End: 0.3},
		{Word: "magic", Start: 0.35, End: 0.6},
		// pause: second screen has three words and uses hero-center
		{Word: "we", Start: 2, End: 2.2},
		{Word: "rise", Start: 2.25, End: 2.5},
		{Word: "together", Start: 2.55, End: 2.9},
	}
	screens := ComputeAllScreens(words, 1080, 1920, 0.4, 6, LayoutOptions{})
	require.Len(t, screens, 2)

	for _, p := range screens[0].Layout {
		assert.Equal(t, TierStrong, p.Tier, p.Word)
	}

	second := byWord(screens[1].Layout)
	assert.Equal(t, TierHero, second["rise"].Tier)
	assert.Equal(t, 80, second["rise"].Importance)
	assert.Equal(t, TierNormal, second["we"].Tier)
	assert.Equal(t, TierStrong, second["together"].Tier)
}

func TestCompiler_FitsLongWordsToCanvas(t *testing.T) {
	t.Parallel()

	c := NewCompiler(nil, LayoutOptions{MarginX: 40})
	words := []WordTiming{{Word: "Unstoppable!", Start: 0, End: 1, Tier: TierHero}}

	screens := c.ComputeAllScreens(words, 720, 1280, 0.4, 6)
	require.Len(t, screens, 1)
	require.Len(t, screens[0].Layout, 1)

	p := screens[0].Layout[0]
	assert.Less(t, p.FontSize, 140.0)
	assert.GreaterOrEqual(t, p.FontSize, float64(DefaultMinFontSize))
	assert.LessOrEqual(t, p.Width, 640.0)
}

func TestCompiler_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	c := NewCompiler(NewEstimateMeasurer(), DefaultLayoutOptions())
	words := speechTimings()
	want := c.ComputeAllScreens(words, 1080, 1920, 0.4, 8)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			got := c.ComputeAllScreens(words, 1080, 1920, 0.4, 8)
			if !assert.Equal(t, want, got) {
				return assert.AnError
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
