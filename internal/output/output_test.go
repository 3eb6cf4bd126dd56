package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/menuharvest/menuharvest/internal/menu"
)

func sampleDocument(url string) menu.MenuDocument {
	return menu.MenuDocument{
		Source:     menu.SourceWebsite,
		URL:        url,
		Items:      []menu.MenuItem{{Name: "Adana Kebap", Price: "₺150", Category: "Kebaplar"}},
		Categories: []string{"Kebaplar"},
	}
}

func TestJSONWriter_SingleDocument(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	if err := w.Write(sampleDocument("https://lokanta.example")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	var decoded menu.MenuDocument
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("single document must decode as an object: %v\n%s", err, buf.String())
	}
	if decoded.URL != "https://lokanta.example" {
		t.Errorf("url = %q", decoded.URL)
	}
}

func TestJSONWriter_MultipleDocumentsBecomeArray(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSON)

	for _, url := range []string{"https://a.example", "https://b.example"} {
		if err := w.Write(sampleDocument(url)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	var decoded []menu.MenuDocument
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("multiple documents must decode as an array: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 || decoded[1].URL != "https://b.example" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestJSONLWriter_OneLinePerDocument(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSONL)

	for _, url := range []string{"https://a.example", "https://b.example"} {
		if err := w.Write(sampleDocument(url)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		var decoded menu.MenuDocument
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Errorf("line does not decode: %v\n%s", err, line)
		}
	}
}

func TestYAMLWriter_SingleDocument(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatYAML)

	if err := w.Write(sampleDocument("https://lokanta.example")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	var decoded menu.MenuDocument
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("yaml decode: %v\n%s", err, buf.String())
	}
	if len(decoded.Items) != 1 || decoded.Items[0].Price != "₺150" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, Format("xml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestNewWriter_DefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Write(sampleDocument("https://lokanta.example")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("default output is not JSON:\n%s", buf.String())
	}
}
