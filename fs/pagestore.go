package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitegist"
)

// Ensure PageStore implements sitegist.PageWriter at compile time.
var _ sitegist.PageWriter = (*PageStore)(nil)

// PageStore implements sitegist.PageWriter with atomic update semantics.
// Pages are written to a temporary directory, then moved atomically on
// Commit, so an interrupted crawl never leaves a half-written dump behind.
type PageStore struct {
	baseDir string
	name    string
}

// NewPageStore creates a new PageStore.
// baseDir is the parent directory, name is the output directory name.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewPageStore(baseDir, name string) *PageStore {
	return &PageStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *PageStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *PageStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WritePage writes a page into the temporary directory.
func (s *PageStore) WritePage(ctx context.Context, page *sitegist.ScrapedPage) error {
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatPage(page)), 0644)
}

// Commit atomically replaces the final directory with the temporary one.
func (s *PageStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

// Abort discards the temporary directory.
func (s *PageStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
