package wordcloud

import (
	"strings"
	"unicode/utf8"
)

// Keywords are thematic words that always score high.
var Keywords = map[string]struct{}{
	"stop": {}, "focus": {}, "power": {}, "superpower": {}, "magic": {}, "unstoppable": {},
	"dreams": {}, "impact": {}, "legacy": {}, "rise": {}, "attention": {}, "deep": {},
	"greatest": {}, "stealing": {}, "noise": {}, "create": {}, "matters": {}, "becoming": {},
	"pure": {}, "undivided": {}, "guard": {}, "future": {}, "now": {}, "today": {},
}

var punctuation = strings.NewReplacer(
	".", "", ",", "", "!", "", "?", "", ";", "", ":", "", "'", "", `"`, "",
)

// CleanWord strips punctuation and lower-cases a word for comparisons.
func CleanWord(word string) string {
	return strings.ToLower(punctuation.Replace(word))
}

// Score rates a word's importance from 0 to 100 using its punctuation,
// keyword membership, casing, length and position within its context.
func Score(word string, index, total int) int {
	score := 40
	clean := CleanWord(word)

	if strings.HasSuffix(word, "!") {
		score += 30
	}
	if strings.HasSuffix(word, "?") {
		score += 25
	}
	if _, ok := Keywords[clean]; ok {
		score += 40
	}
	if index == total-1 {
		score += 15
	}
	if isShouted(word) {
		score += 20
	}
	if utf8.RuneCountInString(clean) >= 7 {
		score += 10
	}

	return min(score, 100)
}

// isShouted reports an all-caps word longer than two characters. Scripts
// without case (Hebrew, digits) never count as shouted.
func isShouted(word string) bool {
	if utf8.RuneCountInString(word) <= 2 {
		return false
	}
	return word == strings.ToUpper(word) && word != strings.ToLower(word)
}
