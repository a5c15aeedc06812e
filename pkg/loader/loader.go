package loader

import (
	"context"
	"fmt"

	"github.com/OFFIS-RIT/lingraph/pkg/common"
)

type DocumentSource string

const (
	DocumentSourceInline DocumentSource = "inline"
	DocumentSourceFile   DocumentSource = "file"
	DocumentSourceS3     DocumentSource = "s3"
)

// DocumentFile points at a parsed document stored as JSON. The actual
// content is retrieved via the associated DocumentLoader.
type DocumentFile struct {
	ID       string
	FilePath string
	Source   DocumentSource
	Loader   DocumentLoader
}

// NewDocumentFileParams defines the input parameters for creating a new
// DocumentFile.
type NewDocumentFileParams struct {
	ID       string
	FilePath string
	Loader   DocumentLoader
}

// NewLocalDocumentFile creates a DocumentFile read from the local filesystem.
func NewLocalDocumentFile(params NewDocumentFileParams) DocumentFile {
	return DocumentFile{
		ID:       params.ID,
		FilePath: params.FilePath,
		Source:   DocumentSourceFile,
		Loader:   params.Loader,
	}
}

// NewS3DocumentFile creates a DocumentFile stored in an S3 bucket. FilePath
// is the object key.
func NewS3DocumentFile(params NewDocumentFileParams) DocumentFile {
	return DocumentFile{
		ID:       params.ID,
		FilePath: params.FilePath,
		Source:   DocumentSourceS3,
		Loader:   params.Loader,
	}
}

// GetText retrieves the raw JSON content of the file using its Loader.
func (f *DocumentFile) GetText(ctx context.Context) ([]byte, error) {
	if f.Loader == nil {
		return nil, fmt.Errorf("no loader configured for %s document %s", f.Source, f.FilePath)
	}
	return f.Loader.GetFileText(ctx, *f)
}

// GetDocument loads, decodes and validates the document. A document without
// an id inherits the file id.
//
// Example:
//
//	file := loader.NewLocalDocumentFile(loader.NewDocumentFileParams{
//		ID:       "doc-1",
//		FilePath: "testdata/doc.json",
//		Loader:   io.NewIODocumentLoader(),
//	})
//	doc, err := file.GetDocument(ctx)
func (f *DocumentFile) GetDocument(ctx context.Context) (*common.Document, error) {
	raw, err := f.GetText(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", f.FilePath, err)
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}
	if doc.ID == "" {
		doc.ID = f.ID
	}
	return doc, nil
}

// DocumentLoader defines the interface for loading the contents of a
// DocumentFile. Implementations may load files from disk, cloud storage, or
// other sources.
type DocumentLoader interface {
	GetFileText(ctx context.Context, file DocumentFile) ([]byte, error)
}
