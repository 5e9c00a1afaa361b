// Package vtt reads WebVTT captions, including the word-level timestamps that
// YouTube auto-captions embed in cue text.
package vtt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Cue is one caption block. Lines keep their inline tags.
type Cue struct {
	StartTime time.Duration
	EndTime   time.Duration
	Lines     []string
}

// Text is the cue text with all tags removed.
func (c Cue) Text() string {
	var parts []string
	for _, line := range c.Lines {
		if clean := strings.TrimSpace(tagRegex.ReplaceAllString(line, "")); clean != "" {
			parts = append(parts, clean)
		}
	}
	return strings.Join(parts, " ")
}

var (
	// Regex to match timestamp lines like "00:00:00.160 --> 00:00:02.350"
	timeRegex = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}\.\d{3})\s+-->\s+(\d{2}:\d{2}:\d{2}\.\d{3})`)
	tagRegex  = regexp.MustCompile(`<[^>]*>`)
)

func ParseTime(timeStr string) (time.Duration, error) {
	// Parse format like "00:00:02.350"
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time format: %s", timeStr)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %s: %w", timeStr, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %s: %w", timeStr, err)
	}
	secondsParts := strings.Split(parts[2], ".")
	seconds, err := strconv.Atoi(secondsParts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in %s: %w", timeStr, err)
	}
	milliseconds := 0
	if len(secondsParts) > 1 {
		// Pad or truncate to 3 digits
		msStr := secondsParts[1]
		if len(msStr) > 3 {
			msStr = msStr[:3]
		} else {
			for len(msStr) < 3 {
				msStr += "0"
			}
		}
		milliseconds, err = strconv.Atoi(msStr)
		if err != nil {
			return 0, fmt.Errorf("invalid milliseconds in %s: %w", timeStr, err)
		}
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(milliseconds)*time.Millisecond, nil
}

// Parse reads every cue from r. Header, NOTE and STYLE blocks are skipped
// because they carry no timestamp line.
func Parse(r io.Reader) ([]Cue, error) {
	var cues []Cue
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		matches := timeRegex.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}
		startTime, err := ParseTime(matches[1])
		if err != nil {
			return nil, err
		}
		endTime, err := ParseTime(matches[2])
		if err != nil {
			return nil, err
		}

		cue := Cue{StartTime: startTime, EndTime: endTime}
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				break
			}
			cue.Lines = append(cue.Lines, line)
		}
		if len(cue.Lines) > 0 {
			cues = append(cues, cue)
		}
	}

	return cues, scanner.Err()
}

func ParseFile(vttPath string) ([]Cue, error) {
	file, err := os.Open(vttPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}
