package menu

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/menuharvest/menuharvest/internal/logger"
)

// Page is one unit of already-fetched input. Content may be HTML or plain
// text; empty content is the same as "nothing could be fetched" and yields a
// zero-item document rather than an error.
type Page struct {
	URL     string
	Source  Source
	Content string
}

// ContentFunc supplies the content of a located menu page. The engine never
// fetches anything itself; callers wire a fetch collaborator through this.
// An error or empty result just skips that page.
type ContentFunc func(ctx context.Context, url string) (string, error)

// Config holds engine tuning. The zero value is not usable; use
// DefaultConfig.
type Config struct {
	Keywords     Keywords
	MaxMenuPages int `validate:"gte=0,lte=10"`
}

// DefaultConfig returns the built-in keyword sets and page bound.
func DefaultConfig() Config {
	return Config{
		Keywords:     DefaultKeywords(),
		MaxMenuPages: DefaultMaxMenuPages,
	}
}

// Engine runs the extraction strategies and merges their output. It is
// stateless: one Engine may serve concurrent extractions.
type Engine struct {
	cfg Config
}

// New creates an Engine, falling back to defaults for zero-valued fields.
func New(cfg Config) *Engine {
	if len(cfg.Keywords.Container) == 0 {
		cfg.Keywords = DefaultKeywords()
	}
	if cfg.MaxMenuPages <= 0 {
		cfg.MaxMenuPages = DefaultMaxMenuPages
	}
	return &Engine{cfg: cfg}
}

// Extract runs the full pipeline: strategies over the starting page, then
// over any located menu pages in rank order. fetch may be nil, in which case
// only the starting page is processed. The result always satisfies the dedup
// invariant; zero items means "no extractable menu found".
func (e *Engine) Extract(ctx context.Context, page Page, fetch ContentFunc) MenuDocument {
	if page.Source == "" {
		page.Source = SourceWebsite
	}
	b := newBuilder(page.Source, page.URL)

	startDoc := e.processPage(b, page.URL, page.Content)

	if fetch != nil && startDoc != nil {
		links := OutboundLinks(startDoc, page.URL)
		for _, candidate := range RankMenuLinks(links, e.cfg.Keywords, e.cfg.MaxMenuPages) {
			if ctx.Err() != nil {
				break
			}
			content, err := fetch(ctx, candidate)
			if err != nil || strings.TrimSpace(content) == "" {
				logger.Debug("menu page skipped", "url", candidate, "error", err)
				continue
			}
			logger.Debug("processing menu page", "url", candidate)
			e.processPage(b, candidate, content)
		}
	}

	doc := b.document()
	logger.Debug("extraction complete",
		"url", page.URL,
		"source", doc.Source,
		"items", len(doc.Items),
		"categories", len(doc.Categories))
	return doc
}

// ExtractDocument is the single-page form: strategies over one page, no link
// following.
func (e *Engine) ExtractDocument(page Page) MenuDocument {
	return e.Extract(context.Background(), page, nil)
}

// processPage runs the three strategies in priority order over one page's
// content, merging into b. It returns the parsed document of the page so the
// caller can reuse it for link location, or nil when parsing failed.
func (e *Engine) processPage(b *builder, pageURL, content string) *goquery.Document {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Not parseable as markup; the text strategy still gets a chance.
		for _, item := range ExtractText(content) {
			b.add(item, StrategyText)
		}
		return nil
	}

	structured := ExtractStructured(doc)
	for _, item := range structured.Items {
		b.add(item, StrategyStructured)
	}
	if structured.Raw != nil && b.doc.StructuredData == nil {
		b.doc.StructuredData = map[string]any{"json_ld": structured.Raw}
	}

	for _, item := range ExtractHTML(doc, e.cfg.Keywords) {
		b.add(item, StrategyHTML)
	}

	lines := FlattenLines(doc)
	for _, item := range ExtractText(strings.Join(lines, "\n")) {
		b.add(item, StrategyText)
	}

	logger.Debug("page processed",
		"url", pageURL,
		"structured_items", len(structured.Items),
		"total_items", len(b.doc.Items))
	return doc
}
