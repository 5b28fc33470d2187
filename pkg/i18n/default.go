package i18n

import (
	"context"
	"embed"
	"sync"
)

//go:embed locales/*.yaml
var locales embed.FS

// Locales returns the built-in validation messages as a Source, to be layered
// under application translations with Layered.
func Locales() Source {
	return FSSource{FS: locales, Dir: "locales"}
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return NewCatalog(context.Background(), Locales())
})

// Default returns a shared catalog of the built-in validation messages.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic("i18n: built-in locales are broken: " + err.Error())
	}
	return c
}

// Layered merges sources in order; later sources override earlier keys.
func Layered(sources ...Source) Source {
	return layered(sources)
}

type layered []Source

func (l layered) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, s := range l {
		if s == nil {
			return nil, ErrNilSource
		}
		translations, err := s.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(all, translations)
	}
	if len(all) == 0 {
		return nil, ErrNoTranslations
	}
	return all, nil
}
