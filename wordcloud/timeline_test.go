package wordcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenOpacity(t *testing.T) {
	t.Parallel()

	s := ComputedScreen{StartTime: 1, EndTime: 2}
	tests := []struct {
		t       float64
		visible bool
		opacity float64
	}{
		{t: 0.5, visible: false, opacity: 0},
		{t: 0.86, visible: true, opacity: 0.01 / 0.35},
		{t: 1.025, visible: true, opacity: 0.5},
		{t: 1.5, visible: true, opacity: 1},
		{t: 2.05, visible: true, opacity: 1},
		{t: 2.225, visible: true, opacity: 0.5},
		{t: 2.39, visible: true, opacity: 0.01 / 0.35},
		{t: 2.5, visible: false, opacity: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.visible, s.Visible(tt.t), "visible at %v", tt.t)
		assert.InDelta(t, tt.opacity, ScreenOpacity(s, tt.t), 1e-9, "opacity at %v", tt.t)
	}
}

func TestActiveScreens_Crossfade(t *testing.T) {
	t.Parallel()

	screens := []ComputedScreen{
		{StartTime: 1, EndTime: 2, GroupIndex: 0},
		{StartTime: 2.2, EndTime: 3, GroupIndex: 1},
	}

	active := ActiveScreens(screens, 2.2)
	require.Len(t, active, 2)
	assert.Equal(t, 0, active[0].Index)
	assert.Equal(t, 1, active[1].Index)
	assert.Less(t, active[0].Opacity, 1.0)
	assert.Greater(t, active[1].Opacity, 0.0)

	assert.Empty(t, ActiveScreens(screens, 10))
}

func TestPrimaryScreenIndex(t *testing.T) {
	t.Parallel()

	screens := []ComputedScreen{
		{StartTime: 1, EndTime: 2},
		{StartTime: 3, EndTime: 4},
		{StartTime: 4.1, EndTime: 5},
	}
	tests := []struct {
		t    float64
		want int
	}{
		{t: 0, want: 0},
		{t: 1.5, want: 0},
		{t: 2.7, want: 0},
		{t: 3.5, want: 1},
		{t: 4.05, want: 2},
		{t: 9, want: 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrimaryScreenIndex(screens, tt.t), "at %v", tt.t)
	}
	assert.Equal(t, -1, PrimaryScreenIndex(nil, 1))
}

func TestVisibleWords(t *testing.T) {
	t.Parallel()

	s := ComputedScreen{Layout: []PlacedWord{
		{Word: "one", Timestamp: 1},
		{Word: "two", Timestamp: 1.4},
		{Word: "three", Timestamp: 1.9},
	}}

	assert.Empty(t, VisibleWords(s, 0.9))
	assert.Len(t, VisibleWords(s, 1.4), 2)
	assert.Len(t, VisibleWords(s, 5), 3)
}
