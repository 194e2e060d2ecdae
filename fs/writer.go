// Package fs stores rendered product documents as files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/prodmd"
)

// FileName returns the file name of a document: the product ASIN when the
// address carries one, else a digest of the address.
// Example: https://www.amazon.fr/dp/B0ABCDEF12 → B0ABCDEF12.md
func FileName(rawURL string, format prodmd.Format) string {
	if asin := prodmd.ASIN(rawURL); asin != "" {
		return asin + format.Ext()
	}
	return "product-" + strconv.FormatUint(xxhash.Sum64String(rawURL), 16) + format.Ext()
}

// Ensure Writer implements prodmd.DocumentWriter at compile time.
var _ prodmd.DocumentWriter = (*Writer)(nil)

// Writer writes documents to a directory, one file per product.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes out to disk. The file is replaced atomically, so a
// reader never sees a partial document.
func (w *Writer) WriteDocument(ctx context.Context, out *prodmd.Output) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if out == nil || out.Content == "" {
		return prodmd.Errorf(prodmd.EINVALID, "empty document")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	fullPath := filepath.Join(w.baseDir, FileName(out.URL, out.Format))
	tmp, err := os.CreateTemp(w.baseDir, ".prodmd-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(out.Content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", fullPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", fullPath, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", fullPath, err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return fmt.Errorf("writing %s: %w", fullPath, err)
	}
	return nil
}
