// Package transcript reads word-timing files produced by transcription tools
// and validates them before layout.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"kinetic/wordcloud"
)

var (
	ErrEmptyWord       = errors.New("empty word")
	ErrNegativeStart   = errors.New("negative start time")
	ErrEndBeforeStart  = errors.New("end before start")
	ErrStartDecreasing = errors.New("start times decrease")
	ErrUnknownTier     = errors.New("unknown tier")
	ErrUnknownFormat   = errors.New("unrecognized transcript format")
)

// rawWord accepts both the "word" key and the "text" key used by Scribe.
type rawWord struct {
	Word    string         `json:"word"`
	Text    string         `json:"text"`
	Start   float64        `json:"start"`
	End     float64        `json:"end"`
	Tier    wordcloud.Tier `json:"tier,omitempty"`
	GroupID *int           `json:"groupId,omitempty"`
	Type    string         `json:"type,omitempty"`
}

func (r rawWord) timing() wordcloud.WordTiming {
	text := r.Word
	if text == "" {
		text = r.Text
	}
	// known tiers are normalized; anything else is left for Validate to reject
	tier := r.Tier
	if t, err := wordcloud.ParseTier(string(r.Tier)); err == nil {
		tier = t
	}
	return wordcloud.WordTiming{
		Word:    text,
		Start:   r.Start,
		End:     r.End,
		Tier:    tier,
		GroupID: r.GroupID,
	}
}

type wordsDoc struct {
	Words    []rawWord `json:"words"`
	Segments []struct {
		Words []rawWord `json:"words"`
	} `json:"segments"`
}

// Decode reads one of the supported layouts:
//
//	[{"word": "...", "start": 0.1, "end": 0.4}, ...]
//	{"words": [...]}
//	{"segments": [{"words": [...]}, ...]}
//
// Scribe spacing entries ({"type": "spacing"}) are dropped.
func Decode(data []byte) ([]wordcloud.WordTiming, error) {
	var list []rawWord
	if err := json.Unmarshal(data, &list); err == nil {
		return collect(list), nil
	}

	var doc wordsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	switch {
	case doc.Words != nil:
		return collect(doc.Words), nil
	case doc.Segments != nil:
		var all []rawWord
		for _, seg := range doc.Segments {
			all = append(all, seg.Words...)
		}
		return collect(all), nil
	}
	return nil, ErrUnknownFormat
}

func collect(raw []rawWord) []wordcloud.WordTiming {
	words := make([]wordcloud.WordTiming, 0, len(raw))
	for _, r := range raw {
		if r.Type == "spacing" {
			continue
		}
		words = append(words, r.timing())
	}
	return words
}

// Load reads and decodes a transcript file.
func Load(path string) ([]wordcloud.WordTiming, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	words, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Validate checks the timing contract the layout engine relies on. The
// returned error wraps one of the Err* sentinels and names the word index.
func Validate(words []wordcloud.WordTiming) error {
	for i, w := range words {
		var err error
		switch {
		case w.Word == "":
			err = ErrEmptyWord
		case w.Start < 0:
			err = ErrNegativeStart
		case w.End < w.Start:
			err = ErrEndBeforeStart
		case i > 0 && w.Start < words[i-1].Start:
			err = ErrStartDecreasing
		case w.Tier != "" && !w.Tier.Valid():
			err = fmt.Errorf("%w %q", ErrUnknownTier, w.Tier)
		}
		if err != nil {
			return fmt.Errorf("word %d (%q): %w", i, w.Word, err)
		}
	}
	return nil
}

// Hebrew, Arabic and Arabic Supplement
var rtlPattern = regexp.MustCompile(`[\x{0590}-\x{05FF}\x{0600}-\x{06FF}\x{0750}-\x{077F}]`)

// IsRTL reports whether s contains right-to-left script.
func IsRTL(s string) bool {
	return rtlPattern.MatchString(s)
}

// DetectRTL reports whether most words are written in a right-to-left script.
func DetectRTL(words []wordcloud.WordTiming) bool {
	rtl := 0
	for _, w := range words {
		if IsRTL(w.Word) {
			rtl++
		}
	}
	return rtl*2 > len(words)
}
