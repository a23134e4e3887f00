package helpers

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Floral Embroidered Shirt", "floral-embroidered-shirt"},
		{"  Silk & Gold Thread  ", "silk-and-gold-thread"},
		{"Kurta #3", "kurta-3"},
	}
	for _, tt := range tests {
		if got := GenerateSlug(tt.in); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{2500, "Rs 2,500"},
		{0, "Rs 0"},
		{1250000, "Rs 1,250,000"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.amount); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestNormalizePhoneE164(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0300-1234567", "+923001234567"},
		{"923001234567", "+923001234567"},
		{"+92 300 1234567", "+923001234567"},
		{"3001234567", "+923001234567"},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhoneE164(tt.in); got != tt.want {
			t.Errorf("NormalizePhoneE164(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("0300-1234567", "Ahmad Rafay Handwork", "Floral Shirt")
	if !strings.HasPrefix(link, "https://wa.me/923001234567?text=") {
		t.Errorf("Unexpected link prefix: %q", link)
	}
	if !strings.Contains(link, "Floral%20Shirt") {
		t.Errorf("Product name missing from message: %q", link)
	}

	general := WhatsAppLink("0300-1234567", "Ahmad Rafay Handwork", "")
	if strings.Contains(general, "Floral") {
		t.Errorf("General inquiry should not mention a product: %q", general)
	}
	if !strings.HasPrefix(general, "https://wa.me/923001234567?text=") {
		t.Errorf("Unexpected general link: %q", general)
	}

	if got := WhatsAppLink("", "Ahmad Rafay Handwork", "Floral Shirt"); got != "" {
		t.Errorf("Expected empty link for empty phone, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate should leave short text alone, got %q", got)
	}
	got := Truncate("a fairly long description of handwork", 10)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis, got %q", got)
	}
	if len([]rune(got)) > 13 {
		t.Errorf("Truncated text too long: %q", got)
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash := HashPassword("s3cret")
	if hash == "" {
		t.Fatal("HashPassword returned empty string")
	}
	if !PasswordCompare(hash, []byte("s3cret")) {
		t.Error("Expected matching password to compare true")
	}
	if PasswordCompare(hash, []byte("wrong")) {
		t.Error("Expected wrong password to compare false")
	}
}
