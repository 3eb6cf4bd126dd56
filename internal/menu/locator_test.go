package menu

import (
	"reflect"
	"testing"
)

func TestOutboundLinks_ResolvesRelative(t *testing.T) {
	doc := parseHTML(t, `<body>
		<a href="/menu">Menü</a>
		<a href="https://other.example/food">Yemekler</a>
		<a href="#top">Başa dön</a>
		<a href="javascript:void(0)">Aç</a>
		<a href="/about#team">Hakkımızda</a>
	</body>`)

	links := OutboundLinks(doc, "https://lokanta.example")
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d: %+v", len(links), links)
	}
	if links[0].URL != "https://lokanta.example/menu" || links[0].Text != "Menü" {
		t.Errorf("first link = %+v", links[0])
	}
	if links[1].URL != "https://other.example/food" {
		t.Errorf("second link = %+v", links[1])
	}
	if links[2].URL != "https://lokanta.example/about" {
		t.Errorf("fragment should be stripped, got %+v", links[2])
	}
}

func TestRankMenuLinks_ScoresTextOverPath(t *testing.T) {
	links := []Link{
		{Text: "Hakkımızda", URL: "https://lokanta.example/about"},
		{Text: "Fiyat listesi", URL: "https://lokanta.example/menu"},
		{Text: "Menü", URL: "https://lokanta.example/liste"},
		{Text: "Menü", URL: "https://lokanta.example/yemek-menu"},
	}

	got := RankMenuLinks(links, DefaultKeywords(), 3)
	want := []string{
		"https://lokanta.example/yemek-menu", // text + path
		"https://lokanta.example/liste",      // text only
		"https://lokanta.example/menu",       // path only
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ranked = %v, want %v", got, want)
	}
}

func TestRankMenuLinks_DistinctPaths(t *testing.T) {
	links := []Link{
		{Text: "Menü", URL: "https://lokanta.example/menu"},
		{Text: "Menü", URL: "https://lokanta.example/menu/"},
		{Text: "Menü", URL: "https://lokanta.example/menu#kebap"},
	}

	got := RankMenuLinks(links, DefaultKeywords(), 3)
	if len(got) != 1 {
		t.Errorf("expected duplicates collapsed to 1 candidate, got %v", got)
	}
}

func TestRankMenuLinks_BestScorePerPath(t *testing.T) {
	// The first link to /menu scores on its path alone; the later one also
	// scores on its anchor text. The path must rank with the better score.
	links := []Link{
		{Text: "Fiyatlar", URL: "https://lokanta.example/menu"},
		{Text: "Menü", URL: "https://lokanta.example/liste"},
		{Text: "Menü", URL: "https://lokanta.example/menu"},
	}

	got := RankMenuLinks(links, DefaultKeywords(), 1)
	want := []string{"https://lokanta.example/menu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ranked = %v, want %v", got, want)
	}
}

func TestRankMenuLinks_CapsAtN(t *testing.T) {
	links := []Link{
		{Text: "Menü", URL: "https://lokanta.example/menu-1"},
		{Text: "Menü", URL: "https://lokanta.example/menu-2"},
		{Text: "Menü", URL: "https://lokanta.example/menu-3"},
		{Text: "Menü", URL: "https://lokanta.example/menu-4"},
	}

	if got := RankMenuLinks(links, DefaultKeywords(), 2); len(got) != 2 {
		t.Errorf("expected 2 candidates, got %v", got)
	}
}

func TestRankMenuLinks_TiesKeepDocumentOrder(t *testing.T) {
	links := []Link{
		{Text: "Yemekler", URL: "https://lokanta.example/a"},
		{Text: "Menü", URL: "https://lokanta.example/b"},
	}

	got := RankMenuLinks(links, DefaultKeywords(), 3)
	want := []string{"https://lokanta.example/a", "https://lokanta.example/b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ranked = %v, want %v", got, want)
	}
}

func TestRankMenuLinks_NoCandidates(t *testing.T) {
	links := []Link{
		{Text: "İletişim", URL: "https://lokanta.example/contact"},
	}
	if got := RankMenuLinks(links, DefaultKeywords(), 3); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}
