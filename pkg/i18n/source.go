package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// Source loads translations keyed by language.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves translations from memory.
type MapSource map[string]map[string]any

func (s MapSource) Load(context.Context) (map[string]map[string]any, error) {
	return s, nil
}

// FileSource reads one translation file. The parser is picked by extension
// when Parser is nil.
type FileSource struct {
	Path   string
	Parser Parser
}

func (s FileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	parser := s.Parser
	if parser == nil {
		parser = ParserForFile(s.Path)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.Path)
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	translations, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", s.Path, err))
	}
	return translations, nil
}

// FSSource reads every supported file in Dir of FS, such as an embed.FS.
// Files are merged in directory order; files with other extensions are skipped.
type FSSource struct {
	FS  fs.FS
	Dir string
}

func (s FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if s.FS == nil {
		return nil, ErrNilSource
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}

		name := path.Join(dir, entry.Name())
		parser := ParserForFile(name)
		if parser == nil {
			continue
		}

		content, err := fs.ReadFile(s.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}
		merge(all, translations)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslations, dir)
	}
	return all, nil
}

// merge copies src into dst; nested maps are merged key by key.
func merge(dst, src map[string]map[string]any) {
	for lang, messages := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(messages))
		}
		mergeMessages(dst[lang], messages)
	}
}

func mergeMessages(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		existing, isMap := dst[k].(map[string]any)
		if !isMap {
			existing = make(map[string]any, len(sub))
			dst[k] = existing
		}
		mergeMessages(existing, sub)
	}
}
