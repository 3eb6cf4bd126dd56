package menu

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxMenuPages bounds how many candidate menu pages the orchestrator
// will visit beyond the starting page.
const DefaultMaxMenuPages = 3

// Link is one outbound link: its anchor text and resolved absolute URL.
type Link struct {
	Text string
	URL  string
}

// OutboundLinks collects the anchors of a page, resolved against baseURL.
// Fragment-only and javascript links are skipped.
func OutboundLinks(doc *goquery.Document, baseURL string) []Link {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var links []Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}
		if !linkURL.IsAbs() && base != nil {
			linkURL = base.ResolveReference(linkURL)
		}
		linkURL.Fragment = ""

		links = append(links, Link{
			Text: cleanText(s.Text()),
			URL:  linkURL.String(),
		})
	})

	return links
}

// RankMenuLinks scores outbound links against the link keyword set and
// returns the top-n distinct-path candidates, ties broken by order of
// appearance. An empty result is normal and means the starting page is the
// only page worth processing.
func RankMenuLinks(links []Link, kw Keywords, n int) []string {
	if n <= 0 {
		n = DefaultMaxMenuPages
	}

	type scored struct {
		url   string
		score int
		order int
	}

	var candidates []scored
	byPath := make(map[string]int)

	for i, link := range links {
		parsed, err := url.Parse(link.URL)
		if err != nil {
			continue
		}

		score := 0
		if matchAny(link.Text, kw.Link) {
			score += 2
		}
		if matchAny(parsed.Path, kw.Link) {
			score++
		}
		if score == 0 {
			continue
		}

		// Repeat links to the same path keep the best score seen, so a
		// later, better-anchored link still ranks the path correctly.
		path := normalizePath(parsed)
		if pos, dup := byPath[path]; dup {
			if score > candidates[pos].score {
				candidates[pos].score = score
				candidates[pos].url = link.URL
			}
			continue
		}
		byPath[path] = len(candidates)

		candidates = append(candidates, scored{url: link.URL, score: score, order: i})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].order < candidates[b].order
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	urls := make([]string, 0, len(candidates))
	for _, c := range candidates {
		urls = append(urls, c.url)
	}
	return urls
}

// normalizePath is the distinct-path key: host plus path without a trailing
// slash.
func normalizePath(u *url.URL) string {
	path := u.Path
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return u.Host + path
}
