package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads catalogues keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogues from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter reads a single catalogue file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(a.path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrFailedToReadFile, a.path)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", a.path, err))
	}
	return translations, nil
}

// FSAdapter reads every catalogue file in a directory of an fs.FS and
// merges them. Subdirectories are not visited.
type FSAdapter struct {
	fsys   fs.FS
	dir    string
	parser Parser
}

// NewFSAdapter reads dir of fsys. When parser is nil the parser is chosen per
// file by extension and files of unknown formats are skipped.
func NewFSAdapter(fsys fs.FS, dir string, parser Parser) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir, parser: parser}
}

// NewDirectoryAdapter reads a directory on disk. See NewFSAdapter.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	return NewFSAdapter(os.DirFS(dir), ".", parser)
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	found := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := a.parserFor(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}
		mergeCatalogues(all, translations)
		found = true
	}

	if !found {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslations, a.dir)
	}
	return all, nil
}

func (a *FSAdapter) parserFor(name string) Parser {
	if a.parser == nil {
		return NewParserForFile(name)
	}
	if a.parser.SupportsFileExtension(filepath.Ext(name)) {
		return a.parser
	}
	return nil
}

// MultiAdapter merges the catalogues of several adapters. Later adapters
// override keys of earlier ones; nested sections are merged key by key.
type MultiAdapter []TranslationAdapter

func (m MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, adapter := range m {
		if adapter == nil {
			continue
		}
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeCatalogues(all, translations)
	}
	return all, nil
}

func mergeCatalogues(dst, src map[string]map[string]any) {
	for lang, catalogue := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(catalogue))
		}
		mergeSection(dst[lang], catalogue)
	}
}

func mergeSection(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcIsMap := asMap(val)
		dstMap, dstIsMap := asMap(dst[key])
		if srcIsMap && dstIsMap {
			merged := make(map[string]any, len(dstMap)+len(srcMap))
			mergeSection(merged, dstMap)
			mergeSection(merged, srcMap)
			dst[key] = merged
			continue
		}
		dst[key] = val
	}
}
