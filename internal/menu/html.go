package menu

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// containerSelector lists the element kinds that can act as menu containers
// or item groupings.
const containerSelector = "div, section, article, ul, ol, table"

const (
	minDescriptionLen = 10
	maxDescriptionLen = 500
)

// ExtractHTML walks the element tree for containers whose class/id suggests a
// menu and pulls name/price/description out of their child groupings.
// Groupings that yield no name are discarded silently.
func ExtractHTML(doc *goquery.Document, kw Keywords) []MenuItem {
	var items []MenuItem

	doc.Find(containerSelector).Each(func(_ int, s *goquery.Selection) {
		if !matchesContainer(s, kw) {
			return
		}
		// Only the innermost matching container is processed, so nested
		// matches do not extract the same items twice.
		if hasMatchingDescendant(s, kw) {
			return
		}

		tracker := &Tracker{}
		walkGrouping(s, tracker, kw, &items)
	})

	return items
}

// matchesContainer tests class and id attributes against the container
// keyword set. Elements marked as single entries ("menu-item" and friends)
// never count as containers, so they cannot shadow their parent under the
// innermost-container rule.
func matchesContainer(s *goquery.Selection, kw Keywords) bool {
	if looksLikeItem(s) {
		return false
	}
	class, _ := s.Attr("class")
	id, _ := s.Attr("id")
	return matchAny(class, kw.Container) || matchAny(id, kw.Container)
}

// hasMatchingDescendant reports whether any descendant also matches the
// container heuristic.
func hasMatchingDescendant(s *goquery.Selection, kw Keywords) bool {
	found := false
	s.Find(containerSelector).EachWithBreak(func(_ int, d *goquery.Selection) bool {
		if matchesContainer(d, kw) {
			found = true
			return false
		}
		return true
	})
	return found
}

// walkGrouping iterates a container's children in document order. Headings
// advance the category tracker; wrapper elements are descended into; anything
// else is treated as one item grouping.
func walkGrouping(s *goquery.Selection, tracker *Tracker, kw Keywords, out *[]MenuItem) {
	s.Children().Each(func(_ int, child *goquery.Selection) {
		tag := goquery.NodeName(child)
		text := cleanText(child.Text())

		switch tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			tracker.Track(text, true)
			return
		case "ul", "ol", "table", "tbody":
			walkGrouping(child, tracker, kw, out)
			return
		}

		// A wrapper with element children but no text of its own is a
		// grouping level, not an item. Exactly one price token means the
		// element is a single entry even when it nests further markup.
		if cleanText(ownText(child)) == "" && !looksLikeItem(child) &&
			child.ChildrenFiltered(containerSelector).Length() > 0 &&
			len(priceTokenRe.FindAllString(text, 2)) != 1 {
			walkGrouping(child, tracker, kw, out)
			return
		}

		if text == "" {
			return
		}
		if tracker.Track(text, false) {
			return
		}
		if item, ok := extractItem(child, tracker.Current(), kw); ok {
			*out = append(*out, item)
		}
	})
}

// itemMarkers are class fragments that mark an element as one menu entry.
var itemMarkers = []string{"item", "product", "card"}

// looksLikeItem reports whether an element's own class marks it as a single
// menu entry, which stops both container candidacy and the wrapper descent.
func looksLikeItem(s *goquery.Selection) bool {
	class, _ := s.Attr("class")
	return matchAny(class, itemMarkers)
}

// extractItem pulls name, price and description from one grouping.
func extractItem(s *goquery.Selection, category string, kw Keywords) (MenuItem, bool) {
	item := MenuItem{Category: category}

	// Name: heading-like child, name-classed child or bold text, falling
	// back to the first text line of the grouping.
	nameSel := s.Find("h1, h2, h3, h4, h5, h6").First()
	if nameSel.Length() == 0 {
		nameSel = classMatch(s, kw.Name).First()
	}
	if nameSel.Length() == 0 {
		nameSel = s.Find("strong, b").First()
	}
	if nameSel.Length() > 0 {
		item.Name = cleanText(nameSel.Text())
	}

	text := cleanText(s.Text())
	if item.Name == "" {
		item.Name = firstLine(text)
	}

	// Price: price-classed child first, then any price token in the text.
	var price Price
	var havePrice bool
	if ps := classMatch(s, kw.Price).First(); ps.Length() > 0 {
		price, havePrice = ParsePrice(cleanText(ps.Text()))
	}
	if !havePrice {
		price, havePrice = FindPrice(text)
	}
	if havePrice {
		item.Price = price.String()
		item.Name = stripPriceToken(item.Name)
	}

	if item.Name == "" {
		return MenuItem{}, false
	}

	// Description: dedicated child or leftover text once name and price are
	// removed.
	desc := ""
	if ds := classMatch(s, kw.Description).First(); ds.Length() > 0 {
		desc = cleanText(ds.Text())
	} else if p := s.Find("p").First(); p.Length() > 0 && cleanText(p.Text()) != item.Name {
		desc = cleanText(p.Text())
	} else {
		desc = leftoverText(text, item.Name, price, havePrice)
	}
	if desc == item.Name {
		desc = ""
	}
	if len(desc) >= minDescriptionLen {
		if len(desc) > maxDescriptionLen {
			cut := maxDescriptionLen
			for cut > 0 && !utf8.RuneStart(desc[cut]) {
				cut--
			}
			desc = desc[:cut]
		}
		item.Description = desc
	}

	return item, true
}

// classMatch finds descendants whose class contains any keyword.
func classMatch(s *goquery.Selection, keywords []string) *goquery.Selection {
	return s.Find("[class]").FilterFunction(func(_ int, d *goquery.Selection) bool {
		class, _ := d.Attr("class")
		return matchAny(class, keywords)
	})
}

// leftoverText removes the name and price token from a grouping's text and
// returns what remains.
func leftoverText(text, name string, price Price, havePrice bool) string {
	text = strings.Replace(text, name, "", 1)
	if havePrice {
		if tok := priceTokenRe.FindString(text); tok != "" {
			text = strings.Replace(text, tok, "", 1)
		} else {
			text = strings.Replace(text, price.Amount, "", 1)
		}
	}
	return cleanText(strings.Trim(text, " .-–—·:"))
}

// stripPriceToken drops a trailing price token and separator run from a name.
func stripPriceToken(name string) string {
	if tok := priceTokenRe.FindString(name); tok != "" {
		name = strings.Replace(name, tok, "", 1)
	}
	return strings.TrimRight(strings.TrimSpace(name), " .-–—·")
}

// ownText returns the text of s's direct text nodes only.
func ownText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(c.Text())
		}
	})
	return b.String()
}

// firstLine returns the first non-empty line of text.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// cleanText collapses runs of whitespace into single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
