package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinetic/wordcloud"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "array", data: `[{"word":"hi","start":0,"end":0.2},{"word":"there","start":0.3,"end":0.6}]`},
		{name: "words", data: `{"words":[{"word":"hi","start":0,"end":0.2},{"word":"there","start":0.3,"end":0.6}]}`},
		{name: "segments", data: `{"segments":[
			{"words":[{"text":"hi","start":0,"end":0.2},{"text":" ","type":"spacing","start":0.2,"end":0.3}]},
			{"words":[{"text":"there","start":0.3,"end":0.6}]}
		]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Decode([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, []wordcloud.WordTiming{
				{Word: "hi", Start: 0, End: 0.2},
				{Word: "there", Start: 0.3, End: 0.6},
			}, words)
		})
	}
}

func TestDecode_KeepsAuthoring(t *testing.T) {
	t.Parallel()

	words, err := Decode([]byte(`[{"word":"rise","start":1,"end":1.4,"tier":"hero","groupId":3}]`))
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, wordcloud.TierHero, words[0].Tier)
	require.NotNil(t, words[0].GroupID)
	assert.Equal(t, 3, *words[0].GroupID)
}

func TestDecode_NormalizesTier(t *testing.T) {
	t.Parallel()

	words, err := Decode([]byte(`[
		{"word":"rise","start":0,"end":0.4,"tier":" Hero "},
		{"word":"up","start":0.5,"end":0.8,"tier":"giant"}
	]`))
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, wordcloud.TierHero, words[0].Tier)
	assert.Equal(t, wordcloud.Tier("giant"), words[1].Tier)
	assert.ErrorIs(t, Validate(words), ErrUnknownTier)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"title":"nothing here"}`))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"words":[{"word":"now","start":0,"end":0.5}]}`), 0o644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, words, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ok := []wordcloud.WordTiming{
		{Word: "a", Start: 0, End: 0.2},
		{Word: "b", Start: 0.2, End: 0.2},
		{Word: "c", Start: 0.5, End: 0.9, Tier: wordcloud.TierStrong},
	}
	require.NoError(t, Validate(ok))
	require.NoError(t, Validate(nil))

	tests := []struct {
		name  string
		words []wordcloud.WordTiming
		want  error
	}{
		{name: "empty word", words: []wordcloud.WordTiming{{Word: "", Start: 0, End: 1}}, want: ErrEmptyWord},
		{name: "negative start", words: []wordcloud.WordTiming{{Word: "a", Start: -1, End: 1}}, want: ErrNegativeStart},
		{name: "end before start", words: []wordcloud.WordTiming{{Word: "a", Start: 2, End: 1}}, want: ErrEndBeforeStart},
		{name: "decreasing", words: []wordcloud.WordTiming{{Word: "a", Start: 2, End: 3}, {Word: "b", Start: 1, End: 3}}, want: ErrStartDecreasing},
		{name: "tier", words: []wordcloud.WordTiming{{Word: "a", Start: 0, End: 1, Tier: "giant"}}, want: ErrUnknownTier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.words), tt.want)
		})
	}
}

func TestDetectRTL(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRTL("שלום"))
	assert.True(t, IsRTL("مرحبا"))
	assert.False(t, IsRTL("hello"))

	hebrew := []wordcloud.WordTiming{{Word: "שלום"}, {Word: "עולם"}, {Word: "AI"}}
	assert.True(t, DetectRTL(hebrew))
	assert.False(t, DetectRTL([]wordcloud.WordTiming{{Word: "hello"}, {Word: "שלום"}}))
	assert.False(t, DetectRTL(nil))
}
