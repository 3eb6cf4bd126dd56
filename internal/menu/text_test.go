package menu

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestExtractText_LeaderLines(t *testing.T) {
	text := strings.Join([]string{
		"Ana Yemekler",
		"Adana Kebap .... ₺150",
		"Urfa Kebap .... ₺145",
	}, "\n")

	items := ExtractText(text)

	want := []MenuItem{
		{Name: "Adana Kebap", Price: "₺150", Category: "Ana Yemekler"},
		{Name: "Urfa Kebap", Price: "₺145", Category: "Ana Yemekler"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %+v, want %+v", items, want)
	}
}

func TestExtractText_CategorySwitch(t *testing.T) {
	text := strings.Join([]string{
		"Ana Yemekler",
		"Adana Kebap .... ₺150",
		"Urfa Kebap ...... ₺145",
		"Salatalar",
		"Çoban Salata -- ₺60",
	}, "\n")

	items := ExtractText(text)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %+v", len(items), items)
	}
	if items[0].Category != "Ana Yemekler" || items[1].Category != "Ana Yemekler" {
		t.Errorf("first two items categorized %q/%q, want Ana Yemekler", items[0].Category, items[1].Category)
	}
	if items[2].Category != "Salatalar" {
		t.Errorf("third item category = %q, want Salatalar", items[2].Category)
	}
}

func TestExtractText_PaddedSeparatorNeedsConfidentPrice(t *testing.T) {
	// A glyph or a decimal part qualifies; a bare integer after plain
	// spaces does not.
	items := ExtractText("Mercimek Çorbası  ₺45\nMasa  12")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Mercimek Çorbası" || items[0].Price != "₺45" {
		t.Errorf("item = %+v", items[0])
	}
}

func TestExtractText_BareNumberAfterLeader(t *testing.T) {
	items := ExtractText("Ayran ...... 25")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Ayran" || items[0].Price != "25" {
		t.Errorf("item = %+v", items[0])
	}
}

func TestExtractText_EmptyInput(t *testing.T) {
	if items := ExtractText(""); len(items) != 0 {
		t.Errorf("expected no items, got %+v", items)
	}
}

func TestExtractText_IgnoresLongLines(t *testing.T) {
	long := strings.Repeat("çok uzun açıklama ", 20) + ".... ₺100"
	if items := ExtractText(long); len(items) != 0 {
		t.Errorf("expected over-long line to be skipped, got %+v", items)
	}
}

func TestFlattenLines_BlocksBecomeLines(t *testing.T) {
	html := `<html><body>
		<h2>Ana Yemekler</h2>
		<ul>
			<li>Adana Kebap .... ₺150</li>
			<li>Urfa Kebap .... ₺145</li>
		</ul>
		<script>var x = 1;</script>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	lines := FlattenLines(doc)
	joined := strings.Join(lines, "\n")

	for _, want := range []string{"Ana Yemekler", "Adana Kebap .... ₺150", "Urfa Kebap .... ₺145"} {
		if !strings.Contains(joined, want) {
			t.Errorf("lines missing %q:\n%s", want, joined)
		}
	}
	if strings.Contains(joined, "var x") {
		t.Errorf("script content leaked into lines:\n%s", joined)
	}
}

func TestFlattenLines_PlainTextFallback(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("Ana Yemekler\nAdana Kebap .... ₺150"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	lines := FlattenLines(doc)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "Ana Yemekler" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestFlattenLines_InlinePriceKeepsSeparator(t *testing.T) {
	html := `<ul class="m"><li>Mercimek Çorbası <span>₺45</span></li></ul>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	items := ExtractText(strings.Join(FlattenLines(doc), "\n"))
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Mercimek Çorbası" || items[0].Price != "₺45" {
		t.Errorf("item = %+v", items[0])
	}
}
