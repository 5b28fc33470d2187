package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/paravaly/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	supported := []string{"en", "de", "pt-BR"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "de", "de"},
		{"case insensitive", "PT-br", "pt-br"},
		{"quality order", "fr;q=0.9, de;q=0.8, en;q=0.7", "de"},
		{"exact beats base", "de-AT, en", "en"},
		{"base fallback", "de-AT, fr", "de"},
		{"zero quality is refused", "de;q=0, fr", "en"},
		{"malformed quality defaults to one", "de;q=abc, en;q=0.5", "de"},
		{"nothing supported", "fr, es", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("de", nil, "en"))
	})

	t.Run("oversized header is truncated", func(t *testing.T) {
		header := "de," + strings.Repeat("x", 5000)
		assert.Equal(t, "de", i18n.ParseAcceptLanguage(header, supported, "en"))
	})
}
