// Package materialize writes rendered artifacts to a filesystem. It is
// the only package that touches disk on the generation path; everything
// upstream works on in-memory bytes, which keeps plans testable and runs
// all-or-nothing until this boundary.
package materialize

import (
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Writer persists files onto a billy filesystem, creating parent
// directories as needed. It satisfies the generator's sink contract.
type Writer struct {
	fs billy.Filesystem
}

// NewWriter returns a writer over the given filesystem.
func NewWriter(fs billy.Filesystem) *Writer {
	return &Writer{fs: fs}
}

// NewDirWriter returns a writer rooted at the given directory on the
// host filesystem. Paths written through it cannot escape the root.
func NewDirWriter(root string) *Writer {
	return &Writer{fs: osfs.New(root)}
}

// WriteFile writes content to the slash-separated path, replacing any
// existing file.
func (w *Writer) WriteFile(name string, content []byte) error {
	if dir := path.Dir(name); dir != "." && dir != "/" {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("materialize: creating %s: %w", dir, err)
		}
	}
	f, err := w.fs.Create(name)
	if err != nil {
		return fmt.Errorf("materialize: creating %s: %w", name, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("materialize: writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("materialize: closing %s: %w", name, err)
	}
	return nil
}
