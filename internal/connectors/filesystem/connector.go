// Package filesystem provides sources over table files on the local disk.
package filesystem

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// Extension is the file extension of table files.
const Extension = ".html"

// Ensure Connector implements the interface.
var _ driven.Source = (*Connector)(nil)

// Connector is a Source over the table files directly inside one directory.
// Subdirectories, hidden files and non-regular entries are skipped.
type Connector struct {
	rootPath string
}

// New creates a directory source.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// Type returns the source type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// RootPath returns the directory the source reads from.
func (c *Connector) RootPath() string {
	return c.rootPath
}

// Validate checks the root path is an accessible directory.
func (c *Connector) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(c.rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: path does not exist: %s", domain.ErrNotFound, c.rootPath)
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w: permission denied: %s", domain.ErrInvalidInput, c.rootPath)
		}
		return fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: path is not a directory: %s", domain.ErrInvalidInput, c.rootPath)
	}
	return nil
}

// Documents yields the contents of every table file in the directory,
// in name order.
func (c *Connector) Documents(ctx context.Context) iter.Seq2[*domain.RawDocument, error] {
	return func(yield func(*domain.RawDocument, error) bool) {
		paths, err := c.list()
		if err != nil {
			yield(&domain.RawDocument{URI: c.rootPath}, err)
			return
		}
		for _, path := range paths {
			if ctx.Err() != nil {
				return
			}
			if !yield(readFile(path)) {
				return
			}
		}
	}
}

// list returns the table file paths of the directory.
func (c *Connector) list() ([]string, error) {
	entries, err := os.ReadDir(c.rootPath)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !isTableFile(entry.Name()) {
			continue
		}
		path := filepath.Join(c.rootPath, entry.Name())
		// Stat follows symlinks so linked table files are included.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// readFile loads one file. The URI is set even when reading fails.
func readFile(path string) (*domain.RawDocument, error) {
	raw := &domain.RawDocument{URI: path}
	content, err := os.ReadFile(path)
	if err != nil {
		return raw, fmt.Errorf("read file: %w", err)
	}
	raw.Content = content
	return raw, nil
}

// isTableFile reports whether a file name has the table extension and is not hidden.
func isTableFile(name string) bool {
	base := filepath.Base(name)
	return filepath.Ext(base) == Extension && !strings.HasPrefix(base, ".")
}

// isHidden checks if a path contains hidden components.
func isHidden(path string) bool {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}
