package menu

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Item line shapes: a name segment, a separator run, a trailing price token.
// Leader runs (dots or dashes) are explicit enough that a bare number counts
// as the price; plain whitespace padding additionally needs a currency glyph
// or a decimal part before the token is believed.
var (
	leaderLineRe = regexp.MustCompile(`^(.{2,}?)\s*[.·•\-–_]{2,}\s*([₺$€£]?\s?[0-9][0-9.,]*\s?[₺$€£]?)$`)
	paddedLineRe = regexp.MustCompile(`^(.{2,}?)\s{2,}([₺$€£]\s?[0-9][0-9.,]*|[0-9][0-9.,]*\s?[₺$€£]|[0-9]+[.,][0-9]{2})$`)

	spaceRunRe = regexp.MustCompile(`[ \t]{2,}`)
)

// ExtractText scans plain text, line by line, for menu item patterns. Lines
// that fail the pattern but read like headings drive the category tracker.
// This is the lowest-precision strategy and is merged last.
func ExtractText(text string) []MenuItem {
	var items []MenuItem
	tracker := &Tracker{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 200 {
			continue
		}

		if item, ok := matchItemLine(line); ok {
			item.Category = tracker.Current()
			items = append(items, item)
			continue
		}

		tracker.Track(line, false)
	}

	return items
}

// matchItemLine tries the two line shapes in order of confidence.
func matchItemLine(line string) (MenuItem, bool) {
	for _, re := range []*regexp.Regexp{leaderLineRe, paddedLineRe} {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		price, ok := ParsePrice(m[2])
		if !ok {
			continue
		}
		name := strings.TrimRight(strings.TrimSpace(m[1]), " .·•-–_")
		if name == "" {
			continue
		}
		return MenuItem{Name: name, Price: price.String()}, true
	}
	return MenuItem{}, false
}

// FlattenLines renders a parsed document as one text line per block-level
// element, preserving the reading order the line matcher depends on. Script,
// style and other non-content elements are dropped first.
func FlattenLines(doc *goquery.Document) []string {
	doc = goquery.CloneDocument(doc)
	doc.Find("script, style, noscript, iframe, svg").Remove()

	var lines []string
	doc.Find("p, li, td, h1, h2, h3, h4, h5, h6, div").Each(func(_ int, s *goquery.Selection) {
		line := trimLine(blockText(s))
		if line != "" {
			lines = append(lines, line)
		}
	})

	if len(lines) == 0 {
		// Plain-text input parses to a body with no block elements; fall
		// back to its raw lines.
		for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
			if line = trimLine(line); line != "" {
				lines = append(lines, line)
			}
		}
	}

	return lines
}

// blockText joins an element's direct text nodes and inline children. Inline
// boundaries become double spaces so "name <span>price</span>" markup keeps a
// separator run the line matcher can see.
func blockText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			b.WriteString(c.Text())
		case "span", "b", "strong", "em", "i", "a", "small", "sup", "sub":
			b.WriteString("  ")
			b.WriteString(strings.TrimSpace(c.Text()))
		}
	})
	return b.String()
}

// trimLine trims a line and squeezes whitespace runs down to two spaces,
// keeping padding separators distinguishable from word spacing.
func trimLine(line string) string {
	line = strings.Join(strings.FieldsFunc(line, func(r rune) bool { return r == '\n' || r == '\r' }), " ")
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(line, "  "))
}
