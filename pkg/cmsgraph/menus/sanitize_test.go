package menus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTarget(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"https", "https://example.com/a", "https://example.com/a"},
		{"http upper-case scheme", "HTTP://example.com", "HTTP://example.com"},
		{"mailto", "mailto:biuro@example.com", "mailto:biuro@example.com"},
		{"tel", "tel:+48123456789", "tel:+48123456789"},
		{"fragment", "#kontakt", "#kontakt"},
		{"root relative", "/pl/kontakt", "/pl/kontakt/"},
		{"root relative with slash", "/pl/kontakt/", "/pl/kontakt/"},
		{"query", "/foo?x=1", "/foo/?x=1"},
		{"fragment suffix", "/foo#bar", "/foo/#bar"},
		{"file", "/files/cennik.pdf", "/files/cennik.pdf"},
		{"root", "/", "/"},
		{"javascript", "javascript:alert(1)", "/pl/kontakt/"},
		{"data", "data:text/html,x", "/pl/kontakt/"},
		{"protocol relative", "//evil.example", "/pl/kontakt/"},
		{"backslash after slash", `/\evil.example`, "/pl/kontakt/"},
		{"leading backslash", `\\evil.example`, "/pl/kontakt/"},
		{"tab inside slashes", "/\t/evil.example", "/pl/kontakt/"},
		{"relative", "kontakt", "/pl/kontakt/"},
		{"empty", "  ", "/pl/kontakt/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTarget(tt.target, "pl", "Kontakt"))
		})
	}
}

func TestGeneratedTargetFallsBackToItem(t *testing.T) {
	assert.Equal(t, "/en/item/", GeneratedTarget("en", "!!!"))
}

func TestGeneratedTargetTransliterates(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Usługi", "/pl/uslugi/"},
		{"Łódź Kontakt", "/pl/lodz-kontakt/"},
		{"Контакты", "/pl/kontakty/"},
		{"Zażółć gęślą jaźń", "/pl/zazolc-gesla-jazn/"},
		{"O nas / Zespół", "/pl/o-nas-zespol/"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, GeneratedTarget("pl", tt.label))
		})
	}
	assert.Equal(t, "/pl/uslugi/", SanitizeTarget("javascript:alert(1)", "pl", "Usługi"))
}

func TestSanitizeLabel(t *testing.T) {
	assert.Equal(t, "Kontakt", SanitizeLabel("  Kontakt \n"))

	long := strings.Repeat("ż", MaxLabelLength+10)
	got := SanitizeLabel(long)
	assert.Equal(t, MaxLabelLength, len([]rune(got)))
}
