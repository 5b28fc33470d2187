package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/paravaly/pkg/validator"
)

// DefaultLanguage is used when a requested language has no translations.
const DefaultLanguage = "en"

// Catalog resolves translation keys to messages and renders validation
// failures in a given language.
type Catalog struct {
	source      Source
	defaultLang string
	logger      *slog.Logger
	logMissing  bool

	mu       sync.RWMutex
	messages map[string]map[string]any
}

// NewCatalog loads translations from source.
func NewCatalog(ctx context.Context, source Source, opts ...Option) (*Catalog, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	c := &Catalog{
		source:      source,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload reads the source again and swaps the translations in on success.
func (c *Catalog) Reload(ctx context.Context) error {
	loaded, err := c.source.Load(ctx)
	if err != nil {
		return err
	}

	messages := make(map[string]map[string]any, len(loaded))
	for lang, m := range loaded {
		lang = normalizeLang(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		if m == nil {
			return fmt.Errorf("%w: nil messages for %q", ErrInvalidTranslation, lang)
		}
		if messages[lang] == nil {
			messages[lang] = make(map[string]any, len(m))
		}
		mergeMessages(messages[lang], m)
	}

	c.mu.Lock()
	c.messages = messages
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", c.Languages()))
	return nil
}

// Languages returns the loaded language codes, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Match picks the best loaded language for an Accept-Language header.
func (c *Catalog) Match(acceptLanguage string) string {
	return ParseAcceptLanguage(acceptLanguage, c.Languages(), c.defaultLang)
}

// Has reports whether key is translated for exactly lang.
func (c *Catalog) Has(lang, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := lookup(c.messages[normalizeLang(lang)], key)
	return ok
}

// T translates key, substituting %{name} placeholders from params.
// A language without translations falls back to its base language
// ("de-AT" -> "de") and then to the default language. A missing key is
// returned as is.
func (c *Catalog) T(lang, key string, params map[string]string) string {
	if msg, ok := c.translate(lang, key, params); ok {
		return msg
	}
	return substitute(key, params)
}

// Message renders a validation failure. Failures without a translation keep
// their own message.
func (c *Catalog) Message(lang string, f validator.ValidationError) string {
	if f.TranslationKey == "" {
		return f.Message
	}
	if msg, ok := c.translate(lang, f.TranslationKey, params(lang, f)); ok {
		return msg
	}
	return f.Message
}

// Localize renders every validation failure in err, grouped by field in
// report order. It returns nil when err carries no validation failures.
func (c *Catalog) Localize(lang string, err error) map[string][]string {
	failures := validator.ExtractValidationErrors(err)
	if len(failures) == 0 {
		return nil
	}

	out := make(map[string][]string, len(failures))
	for _, f := range failures {
		out[f.Field] = append(out[f.Field], c.Message(lang, f))
	}
	return out
}

func (c *Catalog) translate(lang, key string, params map[string]string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range c.candidates(lang) {
		val, ok := lookup(c.messages[candidate], key)
		if !ok {
			continue
		}
		if s, ok := val.(string); ok {
			return substitute(s, params), true
		}
		if c.logMissing {
			c.logger.Warn("translation is not a string",
				slog.String("lang", candidate),
				slog.String("key", key),
				slog.String("type", fmt.Sprintf("%T", val)),
			)
		}
		return "", false
	}

	if c.logMissing {
		c.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

func (c *Catalog) candidates(lang string) []string {
	lang = normalizeLang(lang)
	out := make([]string, 0, 3)
	if lang != "" {
		out = append(out, lang)
		if base, _, ok := strings.Cut(lang, "-"); ok {
			out = append(out, base)
		}
	}
	if !slices.Contains(out, c.defaultLang) {
		out = append(out, c.defaultLang)
	}
	return out
}

// lookup walks dot-separated keys through nested maps.
func lookup(m map[string]any, key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	var current any = m
	for part := range strings.SplitSeq(key, ".") {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			current = v
		case map[any]any:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			current = v
		default:
			return nil, false
		}
	}
	return current, true
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with params[name]; unknown names are kept.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

// params renders translation values; numbers use the grouping of lang.
func params(lang string, f validator.ValidationError) map[string]string {
	printer := message.NewPrinter(language.Make(lang))
	out := make(map[string]string, len(f.TranslationValues)+1)
	for k, v := range f.TranslationValues {
		out[k] = stringify(printer, v)
	}
	if _, ok := out["field"]; !ok && f.Field != "" {
		out["field"] = f.Field
	}
	return out
}

func stringify(p *message.Printer, v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringify(p, rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return p.Sprintf("%d", v)
	case reflect.Float32, reflect.Float64:
		return p.Sprintf("%v", v)
	}
	return fmt.Sprint(v)
}

func normalizeLang(lang string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(lang)), "_", "-")
}
