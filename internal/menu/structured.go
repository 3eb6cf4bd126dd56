package menu

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// schemaTypes are the JSON-LD @type values (substring, casefolded) that mark
// a block as restaurant metadata.
var schemaTypes = []string{"restaurant", "menu", "foodestablishment"}

// StructuredResult is the output of the structured-data strategy: the items
// declared by the metadata plus the first raw matching block, retained for
// downstream consumers.
type StructuredResult struct {
	Items []MenuItem
	Raw   map[string]any
}

// ExtractStructured scans ld+json script blocks for Restaurant, Menu or
// FoodEstablishment declarations and copies their menu items verbatim.
// Malformed blocks are skipped individually.
func ExtractStructured(doc *goquery.Document) StructuredResult {
	var res StructuredResult

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return
		}

		for _, block := range schemaBlocks(data) {
			if res.Raw == nil {
				res.Raw = block
			}
			tracker := &Tracker{}
			collectMenuItems(block, tracker, &res.Items)
		}
	})

	return res
}

// schemaBlocks returns the restaurant-typed objects in a decoded ld+json
// payload, which may be a single object or a list.
func schemaBlocks(data any) []map[string]any {
	var blocks []map[string]any
	switch v := data.(type) {
	case map[string]any:
		if hasSchemaType(v) {
			blocks = append(blocks, v)
		}
	case []any:
		for _, entry := range v {
			if m, ok := entry.(map[string]any); ok && hasSchemaType(m) {
				blocks = append(blocks, m)
			}
		}
	}
	return blocks
}

// hasSchemaType checks @type, which may be a string or a list of strings.
func hasSchemaType(block map[string]any) bool {
	switch t := block["@type"].(type) {
	case string:
		return isSchemaType(t)
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && isSchemaType(s) {
				return true
			}
		}
	}
	return false
}

func isSchemaType(t string) bool {
	t = strings.ToLower(t)
	for _, want := range schemaTypes {
		if strings.Contains(t, want) {
			return true
		}
	}
	return false
}

// collectMenuItems walks a schema block following hasMenu, hasMenuSection and
// hasMenuItem. Section names drive the category tracker so nested sections
// group their items.
func collectMenuItems(block map[string]any, tracker *Tracker, out *[]MenuItem) {
	for _, child := range asList(block["hasMenu"]) {
		if m, ok := child.(map[string]any); ok {
			collectMenuItems(m, tracker, out)
		}
	}

	for _, child := range asList(block["hasMenuSection"]) {
		m, ok := child.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := m["name"].(string); ok && strings.TrimSpace(name) != "" {
			tracker.Observe(name)
		}
		collectMenuItems(m, tracker, out)
	}

	for _, child := range asList(block["hasMenuItem"]) {
		m, ok := child.(map[string]any)
		if !ok {
			continue
		}
		if item, ok := structuredItem(m, tracker.Current()); ok {
			*out = append(*out, item)
		}
	}
}

// structuredItem copies a MenuItem declaration into the engine's model.
func structuredItem(m map[string]any, category string) (MenuItem, bool) {
	name, _ := m["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return MenuItem{}, false
	}

	item := MenuItem{Name: name, Category: category}
	if desc, ok := m["description"].(string); ok {
		item.Description = strings.TrimSpace(desc)
	}

	raw, currency := offeredPrice(m)
	if raw != "" {
		if p, ok := ParsePrice(raw); ok {
			if p.Currency == "" {
				p.Currency = currencyGlyph(currency)
			}
			item.Price = p.String()
		}
	}

	return item, true
}

// offeredPrice pulls price and priceCurrency from the item or its offers.
func offeredPrice(m map[string]any) (price, currency string) {
	read := func(src map[string]any) {
		switch v := src["price"].(type) {
		case string:
			price = v
		case float64:
			// Two decimals for fractional values so the normalizer reads
			// the separator as a decimal point.
			if v == math.Trunc(v) {
				price = strconv.FormatFloat(v, 'f', 0, 64)
			} else {
				price = strconv.FormatFloat(v, 'f', 2, 64)
			}
		}
		if c, ok := src["priceCurrency"].(string); ok {
			currency = c
		}
	}

	read(m)
	if price == "" {
		for _, offer := range asList(m["offers"]) {
			if o, ok := offer.(map[string]any); ok {
				read(o)
				if price != "" {
					break
				}
			}
		}
	}
	return price, currency
}

// currencyGlyph maps ISO currency codes to the glyphs the normalizer keeps.
func currencyGlyph(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "TRY", "TL":
		return "₺"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	}
	return ""
}

// asList wraps single values so callers can range uniformly.
func asList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}
