package filesystem

import "github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"

// Ensure Factory implements the interface.
var _ driven.SourceFactory = Factory{}

// Factory creates filesystem sources.
type Factory struct{}

// Directory returns a source over the table files of a directory.
func (Factory) Directory(path string) driven.Source {
	return New(ResolvePath(path))
}

// Files returns a source over an explicit list of files.
func (Factory) Files(paths ...string) driven.Source {
	return NewFileList(paths...)
}
