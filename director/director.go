// Package director merges a director's script (planned screens and emphasis)
// with transcribed word timings.
package director

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"kinetic/wordcloud"
)

var ErrNoGroups = errors.New("director script has no groups")

type Script struct {
	Version      string        `json:"version"`
	Title        string        `json:"title,omitempty"`
	Groups       []Group       `json:"groups"`
	VisualAssets []VisualAsset `json:"visual_assets,omitempty"`
}

// Group is one planned screen. Emphasis maps a word (as written or
// normalized) to hero or strong.
type Group struct {
	ID       int               `json:"id"`
	Words    []string          `json:"words"`
	Emphasis map[string]string `json:"emphasis,omitempty"`
	Style    string            `json:"style,omitempty"`
}

// VisualAsset is an image cut planned after a group.
type VisualAsset struct {
	AfterGroup      int     `json:"after_group"`
	DurationSeconds float64 `json:"duration_seconds"`
	Description     string  `json:"description"`
	Purpose         string  `json:"purpose"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read director script: %w", err)
	}
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode director script %s: %w", path, err)
	}
	if len(s.Groups) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoGroups)
	}
	return &s, nil
}

// Result is the merged timeline plus what could not be matched.
type Result struct {
	Words []wordcloud.WordTiming
	// Unmatched lists director words not found in the transcript.
	Unmatched []string
	// Leftover counts transcript words after the last match.
	Leftover   int
	TierCounts map[wordcloud.Tier]int
}

// Merge walks director words in order and matches each to the next transcript
// word with the same normalized text. Matched words keep their transcript
// text and timing and gain the group id and emphasis tier. Transcript words
// skipped over while searching are dropped.
func Merge(script *Script, transcript []wordcloud.WordTiming) Result {
	res := Result{
		Words: make([]wordcloud.WordTiming, 0, len(transcript)),
		TierCounts: map[wordcloud.Tier]int{
			wordcloud.TierHero:   0,
			wordcloud.TierStrong: 0,
			wordcloud.TierNormal: 0,
		},
	}

	next := 0
	for _, g := range script.Groups {
		for _, dw := range g.Words {
			norm := wordcloud.CleanWord(dw)
			match := -1
			for i := next; i < len(transcript); i++ {
				if wordcloud.CleanWord(transcript[i].Word) == norm {
					match = i
					break
				}
			}
			if match < 0 {
				res.Unmatched = append(res.Unmatched, dw)
				continue
			}

			tier := g.tier(dw, norm)
			id := g.ID
			tw := transcript[match]
			res.Words = append(res.Words, wordcloud.WordTiming{
				Word:    tw.Word,
				Start:   tw.Start,
				End:     tw.End,
				Tier:    tier,
				GroupID: &id,
			})
			res.TierCounts[tier]++
			next = match + 1
		}
	}
	res.Leftover = len(transcript) - next
	return res
}

// tier looks up emphasis by the word as written, then normalized. Values are
// matched case-insensitively; unknown values mean normal.
func (g Group) tier(word, norm string) wordcloud.Tier {
	for _, key := range []string{word, norm} {
		value, ok := g.Emphasis[key]
		if !ok {
			continue
		}
		if t, err := wordcloud.ParseTier(value); err == nil {
			return t
		}
	}
	return wordcloud.TierNormal
}
