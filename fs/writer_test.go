package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fwojciec/prodmd"
	"github.com/fwojciec/prodmd/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		format prodmd.Format
		want   string
	}{
		{
			name:   "markdown named by ASIN",
			url:    "https://www.amazon.fr/dp/B0ABCDEF12",
			format: prodmd.FormatMarkdown,
			want:   "B0ABCDEF12.md",
		},
		{
			name:   "json named by ASIN",
			url:    "https://www.amazon.fr/Widget/dp/B0ABCDEF12?th=1",
			format: prodmd.FormatJSON,
			want:   "B0ABCDEF12.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.FileName(tt.url, tt.format))
		})
	}

	t.Run("digests addresses without ASIN", func(t *testing.T) {
		t.Parallel()

		a := fs.FileName("https://www.amazon.fr/gp/help", prodmd.FormatMarkdown)
		b := fs.FileName("https://www.amazon.fr/gp/other", prodmd.FormatMarkdown)

		assert.Regexp(t, regexp.MustCompile(`^product-[0-9a-f]+\.md$`), a)
		assert.NotEqual(t, a, b)
		assert.Equal(t, a, fs.FileName("https://www.amazon.fr/gp/help", prodmd.FormatMarkdown))
	})
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes the document under its file name", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		w := fs.NewWriter(dir)

		err := w.WriteDocument(context.Background(), &prodmd.Output{
			URL:     "https://www.amazon.fr/dp/B0ABCDEF12",
			Format:  prodmd.FormatMarkdown,
			Content: "# Widget Pro 3000",
		})

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "B0ABCDEF12.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Widget Pro 3000", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temp files are left behind")
	})

	t.Run("replaces an existing document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		out := &prodmd.Output{URL: "https://www.amazon.fr/dp/B0ABCDEF12", Format: prodmd.FormatJSON, Content: "{}"}

		require.NoError(t, w.WriteDocument(context.Background(), out))
		out.Content = `{"title":"Widget"}`
		require.NoError(t, w.WriteDocument(context.Background(), out))

		data, err := os.ReadFile(filepath.Join(dir, "B0ABCDEF12.json"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Widget"}`, string(data))
	})

	t.Run("rejects empty documents", func(t *testing.T) {
		t.Parallel()

		err := fs.NewWriter(t.TempDir()).WriteDocument(context.Background(), &prodmd.Output{URL: "https://www.amazon.fr/dp/B0ABCDEF12"})

		assert.Equal(t, prodmd.EINVALID, prodmd.ErrorCode(err))
	})

	t.Run("respects a canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fs.NewWriter(t.TempDir()).WriteDocument(ctx, &prodmd.Output{Content: "x"})

		require.ErrorIs(t, err, context.Canceled)
	})
}
