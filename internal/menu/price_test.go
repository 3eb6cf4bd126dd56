package menu

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		ok       bool
		currency string
		amount   string
		rendered string
	}{
		{name: "plain integer with lira prefix", token: "₺125", ok: true, currency: "₺", amount: "125", rendered: "₺125"},
		{name: "decimal", token: "12.50", ok: true, amount: "12.50", rendered: "12.50"},
		{name: "comma decimal", token: "12,50", ok: true, amount: "12.50", rendered: "12.50"},
		{name: "thousands grouping", token: "1.250", ok: true, amount: "1250", rendered: "1250"},
		{name: "grouping plus decimal", token: "1.250,50", ok: true, amount: "1250.50", rendered: "1250.50"},
		{name: "repeated grouping", token: "1.250.500", ok: true, amount: "1250500", rendered: "1250500"},
		{name: "suffix glyph", token: "150₺", ok: true, currency: "₺", amount: "150", rendered: "150₺"},
		{name: "glyph with space", token: "$ 9.99", ok: true, currency: "$", amount: "9.99", rendered: "$9.99"},
		{name: "euro prefix", token: "€24", ok: true, currency: "€", amount: "24", rendered: "€24"},
		{name: "no digits", token: "Special", ok: false},
		{name: "empty", token: "", ok: false},
		{name: "whitespace only", token: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParsePrice(tt.token)
			if ok != tt.ok {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if !ok {
				return
			}
			if p.Currency != tt.currency {
				t.Errorf("currency = %q, want %q", p.Currency, tt.currency)
			}
			if p.Amount != tt.amount {
				t.Errorf("amount = %q, want %q", p.Amount, tt.amount)
			}
			if got := p.String(); got != tt.rendered {
				t.Errorf("String() = %q, want %q", got, tt.rendered)
			}
		})
	}
}

func TestFindPrice_RequiresGlyph(t *testing.T) {
	if _, ok := FindPrice("call 05321234567 for reservations"); ok {
		t.Error("expected bare digit run in prose to be rejected")
	}

	p, ok := FindPrice("Adana Kebap servisi ₺150 olarak güncellendi")
	if !ok {
		t.Fatal("expected a price to be found")
	}
	if p.String() != "₺150" {
		t.Errorf("price = %q, want ₺150", p.String())
	}
}

func TestFindPrice_NoDigits(t *testing.T) {
	if _, ok := FindPrice("no price here"); ok {
		t.Error("expected no price")
	}
}
