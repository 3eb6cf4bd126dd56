// Package menu implements the menu extraction engine: given already-fetched
// page content it recovers a structured, deduplicated menu document by running
// a fixed sequence of extraction strategies and merging their output.
//
// The engine performs no network I/O and holds no state between invocations;
// concurrent use on independent inputs is safe without locking.
package menu

import "strings"

// Source tags where a document's content came from.
type Source string

const (
	SourceWebsite        Source = "website"
	SourceGoogleMaps     Source = "google_maps"
	SourceStructuredData Source = "structured_data"
)

// Strategy identifies which extractor produced an item. Lower values win
// merge conflicts.
type Strategy int

const (
	StrategyStructured Strategy = iota
	StrategyHTML
	StrategyText
)

// String returns the strategy name for logging.
func (s Strategy) String() string {
	switch s {
	case StrategyStructured:
		return "structured"
	case StrategyHTML:
		return "html"
	case StrategyText:
		return "text"
	}
	return "unknown"
}

// MenuItem is a single extracted menu entry. Name is always non-empty and
// trimmed; the other fields are optional.
//
// The JSON field names are a durable interchange contract shared with
// downstream persistence. Do not rename them.
type MenuItem struct {
	Name        string `json:"name" yaml:"name"`
	Price       string `json:"price,omitempty" yaml:"price,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// identity returns the dedup identity: casefolded name plus normalized price.
func (m MenuItem) identity() string {
	return strings.ToLower(strings.TrimSpace(m.Name)) + "\x00" + m.Price
}

// MenuDocument is the canonical extraction result for one restaurant page.
// A document with zero items is a valid "no menu found" outcome.
type MenuDocument struct {
	Source         Source         `json:"source" yaml:"source"`
	URL            string         `json:"url" yaml:"url"`
	Items          []MenuItem     `json:"items" yaml:"items"`
	Categories     []string       `json:"categories" yaml:"categories"`
	StructuredData map[string]any `json:"structured_data,omitempty" yaml:"structured_data,omitempty"`
}

// builder accumulates items across strategies and pages, enforcing the dedup
// and priority invariants.
type builder struct {
	doc        MenuDocument
	seen       map[string]struct{} // dedup identities
	owner      map[string]Strategy // casefolded name -> best contributing strategy
	categories map[string]struct{}
	structured bool // a structured-data item survived the merge
}

func newBuilder(source Source, url string) *builder {
	return &builder{
		doc: MenuDocument{
			Source:     source,
			URL:        url,
			Items:      []MenuItem{},
			Categories: []string{},
		},
		seen:       make(map[string]struct{}),
		owner:      make(map[string]Strategy),
		categories: make(map[string]struct{}),
	}
}

// add merges one item. First-seen identity wins, and a name already
// contributed by a higher-priority strategy blocks later strategies even at a
// different price, so structured-data fields always beat heuristic fields.
func (b *builder) add(item MenuItem, from Strategy) bool {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return false
	}

	id := item.identity()
	if _, dup := b.seen[id]; dup {
		return false
	}

	name := strings.ToLower(item.Name)
	if prev, ok := b.owner[name]; ok && prev < from {
		return false
	}

	b.seen[id] = struct{}{}
	if prev, ok := b.owner[name]; !ok || from < prev {
		b.owner[name] = from
	}
	if from == StrategyStructured {
		b.structured = true
	}

	item.Category = strings.TrimSpace(item.Category)
	if item.Category != "" {
		if _, ok := b.categories[item.Category]; !ok {
			b.categories[item.Category] = struct{}{}
			b.doc.Categories = append(b.doc.Categories, item.Category)
		}
	}

	b.doc.Items = append(b.doc.Items, item)
	return true
}

// document finalizes the merge. The source tag reflects the highest-priority
// strategy that contributed at least one item.
func (b *builder) document() MenuDocument {
	if b.structured {
		b.doc.Source = SourceStructuredData
	}
	return b.doc
}
