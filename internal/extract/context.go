package extract

import (
	"strings"
	"unicode/utf8"
)

// contextWindow returns the trimmed substring of text within radius bytes
// around [start, end), clipped to the text bounds and snapped outward from
// multi-byte runes so the window is always valid UTF-8
func contextWindow(text string, start, end, radius int) string {
	s := start - radius
	if s < 0 {
		s = 0
	}
	e := end + radius
	if e > len(text) {
		e = len(text)
	}
	for s < len(text) && !utf8.RuneStart(text[s]) {
		s++
	}
	for e > s && e < len(text) && !utf8.RuneStart(text[e]) {
		e--
	}
	return strings.TrimSpace(text[s:e])
}
