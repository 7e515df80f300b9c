package filesystem

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// Ensure FileList implements the interface.
var _ driven.Source = (*FileList)(nil)

// FileList is a Source over an explicit list of files.
// Paths may be bare paths or file:// URIs.
type FileList struct {
	paths []string
}

// NewFileList creates a file list source.
func NewFileList(paths ...string) *FileList {
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		resolved = append(resolved, ResolvePath(p))
	}
	return &FileList{paths: resolved}
}

// Type returns the source type identifier.
func (f *FileList) Type() string {
	return "files"
}

// Paths returns the resolved file paths.
func (f *FileList) Paths() []string {
	return f.paths
}

// Validate only checks for cancellation; unreadable files are reported
// per file by Documents.
func (f *FileList) Validate(ctx context.Context) error {
	return ctx.Err()
}

// Documents yields the contents of each listed file in order.
func (f *FileList) Documents(ctx context.Context) iter.Seq2[*domain.RawDocument, error] {
	return func(yield func(*domain.RawDocument, error) bool) {
		for _, path := range f.paths {
			if ctx.Err() != nil {
				return
			}
			info, err := os.Stat(path)
			if err == nil && !info.Mode().IsRegular() {
				err = fmt.Errorf("%w: not a regular file", domain.ErrInvalidInput)
			}
			if err != nil {
				if !yield(&domain.RawDocument{URI: path}, err) {
					return
				}
				continue
			}
			if !yield(readFile(path)) {
				return
			}
		}
	}
}
