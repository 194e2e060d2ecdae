package prodmd

import (
	"strings"
	"unicode/utf8"
)

// invisibleMarks are stripped before any other normalization step:
// LRM, RLM, zero-width space, soft hyphen, ZWNJ and ZWJ.
var invisibleMarks = strings.NewReplacer(
	"\u200e", "",
	"\u200f", "",
	"\u200b", "",
	"\u00ad", "",
	"\u200c", "",
	"\u200d", "",
)

// entities are decoded in order, one pass each, so "&amp;lt;" becomes "<".
var entities = [][2]string{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&nbsp;", " "},
	{"&#39;", "'"},
	{"&quot;", `"`},
}

// Normalize canonicalizes raw page text: invisible and bidi marks are
// removed, a fixed set of HTML entities is decoded, every whitespace run
// (including no-break spaces, newlines and tabs) collapses to one space and
// the result is trimmed. Invalid UTF-8 bytes are dropped.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
	}
	s := invisibleMarks.Replace(text)
	for _, e := range entities {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return strings.Join(strings.Fields(s), " ")
}

// Length returns the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Ellipsis marks a value that was cut to fit its cap.
const Ellipsis = "..."

// Truncate cuts s to at most max characters. A cut value keeps its first
// max-3 characters followed by Ellipsis, so it is exactly max long.
func Truncate(s string, max int) string {
	if max <= 0 || Length(s) <= max {
		return s
	}
	keep := max - len(Ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string([]rune(s)[:keep]) + Ellipsis
}
