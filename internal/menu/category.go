package menu

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxHeadingLen is the longest text (in runes) still considered a category
// heading.
const maxHeadingLen = 40

// Tracker assigns items to the nearest preceding category heading during an
// ordered walk of page fragments. The zero value is ready to use; items seen
// before any heading get an empty category.
type Tracker struct {
	current string
}

// Observe records a heading, making it the category for subsequent items.
func (t *Tracker) Observe(heading string) {
	t.current = strings.TrimSpace(heading)
}

// Current returns the most recently observed heading, or "".
func (t *Tracker) Current() string {
	return t.current
}

// Track applies the heading heuristic to a fragment and records it when it
// qualifies. structural marks fragments carried by a heading-level container
// (h1..h6), which counts as emphasis on its own.
func (t *Tracker) Track(text string, structural bool) bool {
	if !IsHeading(text, structural) {
		return false
	}
	t.Observe(text)
	return true
}

// IsHeading reports whether a fragment reads like a category heading: short,
// free of price tokens, and either structurally emphasized or distinctively
// cased.
func IsHeading(text string, structural bool) bool {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > maxHeadingLen {
		return false
	}
	if _, ok := FindPrice(text); ok {
		return false
	}
	if strings.ContainsAny(text, "0123456789") {
		return false
	}
	return structural || distinctiveCasing(text)
}

// distinctiveCasing reports title case or all caps across every word.
func distinctiveCasing(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
