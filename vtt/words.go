package vtt

import (
	"regexp"
	"strings"
	"time"

	"kinetic/wordcloud"
)

// Inline word stamps look like "<00:00:01.240><c> word</c>".
var stampRegex = regexp.MustCompile(`<(\d{2}:\d{2}:\d{2}\.\d{3})>`)

type stampedChunk struct {
	start time.Duration
	text  string
}

// Words converts cues to word timings.
//
// When any cue carries inline word stamps, only stamped lines are used: the
// text before the first stamp starts at the cue start and every word ends
// where the next one starts (the last at the cue end). Rolling duplicate
// lines that YouTube repeats without stamps are thereby ignored. Files
// without stamps spread each cue's words evenly across the cue.
func Words(cues []Cue) []wordcloud.WordTiming {
	stamped := false
	for _, c := range cues {
		for _, line := range c.Lines {
			if stampRegex.MatchString(line) {
				stamped = true
			}
		}
	}

	var words []wordcloud.WordTiming
	for _, c := range cues {
		if !stamped {
			words = append(words, spread(c.Text(), c.StartTime, c.EndTime)...)
			continue
		}

		var chunks []stampedChunk
		for _, line := range c.Lines {
			if stampRegex.MatchString(line) {
				chunks = append(chunks, splitStamps(line, c.StartTime)...)
			}
		}
		for i, chunk := range chunks {
			end := c.EndTime
			if i+1 < len(chunks) {
				end = chunks[i+1].start
			}
			words = append(words, spread(chunk.text, chunk.start, end)...)
		}
	}
	return words
}

// splitStamps cuts a cue line at its inline stamps.
func splitStamps(line string, cueStart time.Duration) []stampedChunk {
	locs := stampRegex.FindAllStringSubmatchIndex(line, -1)
	chunks := []stampedChunk{{start: cueStart, text: line}}
	if len(locs) == 0 {
		return chunks
	}

	chunks[0].text = line[:locs[0][0]]
	for i, loc := range locs {
		start, err := ParseTime(line[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		end := len(line)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunks = append(chunks, stampedChunk{start: start, text: line[loc[1]:end]})
	}
	return chunks
}

// spread divides [start, end) evenly among the words of text.
func spread(text string, start, end time.Duration) []wordcloud.WordTiming {
	fields := strings.Fields(tagRegex.ReplaceAllString(text, ""))
	if len(fields) == 0 {
		return nil
	}
	if end < start {
		end = start
	}
	step := (end - start) / time.Duration(len(fields))

	words := make([]wordcloud.WordTiming, len(fields))
	for i, f := range fields {
		s := start + time.Duration(i)*step
		e := s + step
		if i == len(fields)-1 {
			e = end
		}
		words[i] = wordcloud.WordTiming{Word: f, Start: s.Seconds(), End: e.Seconds()}
	}
	return words
}
