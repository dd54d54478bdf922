// Package verse implements the #N verse-reference markup used in comment
// text, and verse-line extraction from chapter content.
package verse

import (
	"regexp"
	"strconv"
	"strings"
)

// Chapter content is one verse per line: "4 For God so loved..." or
// "4\tFor God so loved...".
var verseLineRe = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// referenceRe matches inline verse references like "#12".
var referenceRe = regexp.MustCompile(`#(\d+)`)

// Reference is a single #N occurrence in comment text. Start and End are
// byte offsets suitable for slicing the original string.
type Reference struct {
	Verse int `json:"verse"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// Segment is one span of comment content. Verse is 0 for plain text and the
// referenced verse number for a #N span; Text is always the raw slice of the
// original input.
type Segment struct {
	Text  string `json:"text"`
	Verse int    `json:"verse,omitempty"`
}

// GetVerseText scans chapter content for the first line whose leading verse
// number equals verseNumber and returns it as "<number> <trimmed text>".
// Returns "" when no line matches; a missing verse is not an error, callers
// render their own fallback.
func GetVerseText(content string, verseNumber int) string {
	if content == "" {
		return ""
	}

	for _, line := range strings.Split(content, "\n") {
		m := verseLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		if num == verseNumber {
			return strconv.Itoa(verseNumber) + " " + strings.TrimSpace(m[2])
		}
	}

	return ""
}

// ParseReferences returns every non-overlapping #N occurrence in text, in
// left-to-right order.
func ParseReferences(text string) []Reference {
	var refs []Reference

	for _, m := range referenceRe.FindAllStringSubmatchIndex(text, -1) {
		num, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		refs = append(refs, Reference{
			Verse: num,
			Start: m[0],
			End:   m[1],
		})
	}

	return refs
}

// SplitContent splits comment text into alternating plain-text and
// verse-reference segments. The segments cover the input exactly:
// concatenating every segment's Text reproduces the original string. Empty
// text segments are never emitted, so adjacent references sit next to each
// other directly.
func SplitContent(text string) []Segment {
	refs := ParseReferences(text)
	if len(refs) == 0 {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	last := 0

	for _, ref := range refs {
		if ref.Start > last {
			segments = append(segments, Segment{Text: text[last:ref.Start]})
		}
		segments = append(segments, Segment{
			Text:  text[ref.Start:ref.End],
			Verse: ref.Verse,
		})
		last = ref.End
	}

	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}

	return segments
}
