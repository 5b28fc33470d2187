package i18n

import "errors"

var (
	ErrNilSource          = errors.New("translation source is nil")
	ErrNoTranslations     = errors.New("no translations found")
	ErrEmptyLanguage      = errors.New("empty language code")
	ErrUnsupportedFormat  = errors.New("unsupported translation file format")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrInvalidTranslation = errors.New("invalid translation structure")
)
