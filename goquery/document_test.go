package goquery_test

import (
	"testing"

	"github.com/fwojciec/prodmd"
	"github.com/fwojciec/prodmd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Document implements prodmd.Document at compile time.
var _ prodmd.Document = (*goquery.Document)(nil)

func TestDocument_Find(t *testing.T) {
	t.Parallel()

	t.Run("returns matches in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(`<ul>
	<li class="a">one</li>
	<li class="b">two</li>
	<li class="a">three</li>
</ul>`)
		require.NoError(t, err)

		els, err := doc.Find("li.a, li.b")

		require.NoError(t, err)
		require.Len(t, els, 3)
		assert.Equal(t, "one", els[0].Text())
		assert.Equal(t, "two", els[1].Text())
		assert.Equal(t, "three", els[2].Text())
	})

	t.Run("reports invalid selectors", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(`<p>x</p>`)
		require.NoError(t, err)

		_, err = doc.Find("p[")

		require.Error(t, err)
		assert.Equal(t, prodmd.EINVALID, prodmd.ErrorCode(err))
	})

	t.Run("reuses compiled selectors across documents", func(t *testing.T) {
		t.Parallel()

		for _, page := range []string{`<p class="x">one</p>`, `<p class="x">two</p><p class="x">three</p>`} {
			doc, err := goquery.NewDocumentFromString(page)
			require.NoError(t, err)

			els, err := doc.Find("p.x")
			require.NoError(t, err)
			assert.NotEmpty(t, els)

			_, err = doc.Find("p.x[")
			assert.Equal(t, prodmd.EINVALID, prodmd.ErrorCode(err))
		}
	})

	t.Run("scopes element queries to descendants", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(`<div id="a"><span>in</span></div><span>out</span>`)
		require.NoError(t, err)

		root := prodmd.First(doc, "#a")
		require.NotNil(t, root)
		spans, err := root.Find("span")

		require.NoError(t, err)
		require.Len(t, spans, 1)
		assert.Equal(t, "in", spans[0].Text())
	})

	t.Run("reads attributes", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(`<img id="landingImage" src="https://img.example.com/a.jpg">`)
		require.NoError(t, err)

		img := prodmd.First(doc, "#landingImage")
		require.NotNil(t, img)
		src, ok := img.Attr("src")
		assert.True(t, ok)
		assert.Equal(t, "https://img.example.com/a.jpg", src)
		_, ok = img.Attr("alt")
		assert.False(t, ok)
	})
}

func TestDocument_Location(t *testing.T) {
	t.Parallel()

	t.Run("uses explicit location", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(
			`<link rel="canonical" href="https://www.amazon.fr/x/dp/B000000001">`,
			goquery.WithLocation("https://www.amazon.fr/dp/B000000002?th=1"),
		)
		require.NoError(t, err)

		assert.Equal(t, "https://www.amazon.fr/dp/B000000002?th=1", doc.Location())
	})

	t.Run("falls back to canonical link", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(`<html><head>
<link rel="canonical" href=" https://www.amazon.fr/Widget/dp/B000000001 ">
<meta property="og:url" content="https://www.amazon.fr/og">
</head><body></body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "https://www.amazon.fr/Widget/dp/B000000001", doc.Location())
	})

	t.Run("falls back to og:url", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(`<html><head>
<meta property="og:url" content="https://www.amazon.fr/og">
</head><body></body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "https://www.amazon.fr/og", doc.Location())
	})

	t.Run("empty when the page declares nothing", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(`<p>x</p>`)
		require.NoError(t, err)

		assert.Empty(t, doc.Location())
	})
}
