package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds the header length that is parsed.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang := normalizeLang(tag)
		if lang == "" {
			continue
		}

		q := 1.0
		if qv, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if parsed, err := strconv.ParseFloat(qv, 64); err == nil && parsed >= 0 && parsed <= 1 {
				q = parsed
			}
		}
		languages = append(languages, langWithQ{lang: lang, q: q})
	}

	// Stable keeps header order among equal weights.
	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// ParseAcceptLanguage picks the supported language that best fits an
// Accept-Language header. Exact matches win over base-language matches
// ("en-US" -> "en"); defaultLang is returned when nothing matches.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}

	normalized := make([]string, len(supported))
	for i, lang := range supported {
		normalized[i] = normalizeLang(lang)
	}

	languages := parseAcceptLanguageHeader(header)
	for _, lq := range languages {
		if lq.q > 0 && slices.Contains(normalized, lq.lang) {
			return lq.lang
		}
	}
	for _, lq := range languages {
		if base, _, ok := strings.Cut(lq.lang, "-"); ok && lq.q > 0 && slices.Contains(normalized, base) {
			return base
		}
	}
	return defaultLang
}
