package i18n

import "log/slog"

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the last-resort language. Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang = normalizeLang(lang); lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every key that cannot be
// resolved. Off by default.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}
