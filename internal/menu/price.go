package menu

import (
	"regexp"
	"strings"
)

// currencyGlyphs are the recognized currency symbols, in prefix or suffix
// position.
const currencyGlyphs = "₺$€£"

// Price is a normalized price token: the original currency glyph (possibly
// empty) and a cleaned numeric amount such as "150" or "12.50".
type Price struct {
	Currency string
	Amount   string
	suffix   bool // glyph trailed the amount in the source token
}

// String renders the price with the glyph in its original position.
func (p Price) String() string {
	if p.Currency == "" {
		return p.Amount
	}
	if p.suffix {
		return p.Amount + p.Currency
	}
	return p.Currency + p.Amount
}

var (
	digitRunRe = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)*`)

	// priceTokenRe matches a price embedded in longer text. A currency glyph
	// is required on one side so that phone numbers, years and addresses in
	// free-running prose are not mistaken for prices.
	priceTokenRe = regexp.MustCompile(`[₺$€£]\s*[0-9]+(?:[.,][0-9]+)*|[0-9]+(?:[.,][0-9]+)*\s*[₺$€£]`)
)

// ParsePrice normalizes a short token suspected to contain a price. The
// second return value is false when no digit sequence is present; malformed
// or ambiguous tokens degrade the same way rather than guessing.
func ParsePrice(token string) (Price, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Price{}, false
	}

	loc := digitRunRe.FindStringIndex(token)
	if loc == nil {
		return Price{}, false
	}

	p := Price{Amount: normalizeAmount(token[loc[0]:loc[1]])}

	if idx := strings.IndexAny(token[:loc[0]], currencyGlyphs); idx >= 0 {
		p.Currency = firstGlyph(token[:loc[0]][idx:])
	} else if idx := strings.IndexAny(token[loc[1]:], currencyGlyphs); idx >= 0 {
		p.Currency = firstGlyph(token[loc[1]:][idx:])
		p.suffix = true
	}

	return p, true
}

// FindPrice scans free text for the first recognizable price token. Unlike
// ParsePrice it insists on a currency glyph, since bare digit runs inside
// prose are rarely prices.
func FindPrice(text string) (Price, bool) {
	token := priceTokenRe.FindString(text)
	if token == "" {
		return Price{}, false
	}
	return ParsePrice(token)
}

// normalizeAmount disambiguates thousands grouping from decimal separators:
// a single separator followed by exactly two digits is a decimal point;
// repeated identical separators are grouping and are removed; mixed
// separators keep only a trailing two-digit group as the decimal part.
func normalizeAmount(run string) string {
	groups := strings.FieldsFunc(run, func(r rune) bool { return r == '.' || r == ',' })
	if len(groups) == 1 {
		return groups[0]
	}

	seps := make([]byte, 0, len(groups)-1)
	for i := 0; i < len(run); i++ {
		if run[i] == '.' || run[i] == ',' {
			seps = append(seps, run[i])
		}
	}

	last := groups[len(groups)-1]
	decimal := len(last) == 2 && (len(seps) == 1 || seps[len(seps)-1] != seps[0])
	if decimal {
		return strings.Join(groups[:len(groups)-1], "") + "." + last
	}
	return strings.Join(groups, "")
}

// firstGlyph returns the first rune of s as a string.
func firstGlyph(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
