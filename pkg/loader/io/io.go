package io

import (
	"context"
	"fmt"
	"os"

	"github.com/OFFIS-RIT/lingraph/pkg/loader"
)

// IODocumentLoader reads document exports from the local filesystem. Reads
// are cached per file until Forget is called.
type IODocumentLoader struct {
	cache *loader.TextCache
}

func NewIODocumentLoader() *IODocumentLoader {
	return &IODocumentLoader{cache: loader.NewTextCache()}
}

// GetFileText returns the raw bytes at file.FilePath.
func (l *IODocumentLoader) GetFileText(ctx context.Context, file loader.DocumentFile) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.cache.Load(file, func() ([]byte, error) {
		b, err := os.ReadFile(file.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.FilePath, err)
		}
		return b, nil
	})
}

// Forget drops the cached content of file so the next read hits the disk.
func (l *IODocumentLoader) Forget(file loader.DocumentFile) {
	l.cache.Forget(file)
}
