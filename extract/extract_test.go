package extract_test

import (
	"testing"

	"github.com/fwojciec/prodmd"
	"github.com/fwojciec/prodmd/extract"
	"github.com/fwojciec/prodmd/goquery"
	"github.com/fwojciec/prodmd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productLocation = "https://www.amazon.fr/Widget-Pro-3000/dp/B0ABCDEF12?ref=sr_1_1"

const productPage = `<html><head><title>Amazon.fr</title></head><body>
<div id="ppd">
  <div id="centerCol">
    <span id="productTitle">
      Widget Pro 3000
    </span>
    <a id="bylineInfo" class="a-link-normal" href="/stores/Acme">Visiter la boutique Acme</a>
    <div id="averageCustomerReviews">
      <span id="acrPopover" title="4,5 sur 5 étoiles">
        <span class="a-icon-alt">4,5 sur 5 étoiles</span>
      </span>
      <span id="acrCustomerReviewText">128 évaluations</span>
    </div>
    <div id="corePrice_feature_div">
      <span class="a-price"><span class="a-offscreen">12,99&nbsp;€</span></span>
    </div>
    <div id="feature-bullets">
      <ul>
        <li><span class="a-list-item">Batterie longue durée</span></li>
        <li><span class="a-list-item">ok</span></li>
        <li><span class="a-list-item">Boîtier en aluminium</span></li>
      </ul>
    </div>
  </div>
  <div id="imageBlock"><img id="landingImage" src="https://m.media-amazon.com/images/I/widget.jpg"></div>
</div>
<div id="productDescription">
  <p>Un widget robuste conçu pour durer des années.</p>
  <p>12,99</p>
  <p>.css { display: none }</p>
</div>
<table id="productDetails_techSpec_section_1">
  <tr><th>Marque :</th><td>Acme</td></tr>
  <tr><th>Classement des meilleures ventes</th><td>#1 en Widgets</td></tr>
</table>
<table id="productDetails_techSpec_section_2">
  <tr><th>Poids</th><td>200 g</td></tr>
</table>
<div data-hook="review-body"><span>Très bon produit, je le recommande vivement.</span><span class="a-expander-prompt">Lire la suite</span></div>
<div data-hook="review-body"><span>Bof</span></div>
<div class="a-carousel">
  <div id="averageCustomerReviews"><span id="acrPopover" title="1,0 sur 5 étoiles"></span></div>
</div>
</body></html>`

func newDocument(t *testing.T, page string) prodmd.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromString(page, goquery.WithLocation(productLocation))
	require.NoError(t, err)
	return doc
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	x := extract.NewExtractor(prodmd.DefaultConfig())

	ext := x.Extract(newDocument(t, productPage))

	raw := ext.Raw
	assert.Equal(t, "Widget Pro 3000", raw.Title)
	assert.Equal(t, "12,99 €", raw.Price)
	assert.Equal(t, "https://m.media-amazon.com/images/I/widget.jpg", raw.Image)
	assert.Equal(t, "4,5 sur 5 étoiles", raw.Rating)
	assert.Equal(t, "128 avis", raw.ReviewCount)
	assert.Equal(t, "https://www.amazon.fr/dp/B0ABCDEF12", raw.URL)
	assert.Equal(t, []string{"Batterie longue durée", "Boîtier en aluminium"}, raw.AboutItem)
	assert.Equal(t, []string{"Un widget robuste conçu pour durer des années."}, raw.TechnicalDescription)
	assert.Equal(t, []prodmd.SpecPair{
		{Key: "Marque", Value: "Acme"},
		{Key: "Poids", Value: "200 g"},
	}, raw.TechnicalSpecs)
	assert.Equal(t, []string{"Très bon produit, je le recommande vivement."}, raw.Reviews)
	assert.Empty(t, raw.Authors)
	require.NotNil(t, raw.Brand)
	assert.Equal(t, "Acme", *raw.Brand)

	assert.Empty(t, ext.Faults)
	assert.Equal(t, "productTitle", ext.Sources[prodmd.FieldTitle])
	assert.Equal(t, "offscreen", ext.Sources[prodmd.FieldPrice])
	assert.Equal(t, "popover-title", ext.Sources[prodmd.FieldRating])
	assert.Equal(t, "asin", ext.Sources[prodmd.FieldURL])
	assert.Equal(t, "tech-spec", ext.Sources[prodmd.FieldTechnicalSpecs])
	assert.Equal(t, "byline", ext.Sources[prodmd.FieldBrand])
	assert.NotContains(t, ext.Sources, prodmd.FieldAuthors)
}

func TestExtractor_Extract_EmptyPage(t *testing.T) {
	t.Parallel()

	x := extract.NewExtractor(prodmd.DefaultConfig())

	ext := x.Extract(newDocument(t, `<html><body><p>Rien ici</p></body></html>`))

	raw := ext.Raw
	assert.Empty(t, raw.Title)
	assert.Empty(t, raw.Price)
	assert.Empty(t, raw.Rating)
	assert.Empty(t, raw.ReviewCount)
	assert.NotNil(t, raw.AboutItem)
	assert.NotNil(t, raw.TechnicalDescription)
	assert.NotNil(t, raw.TechnicalSpecs)
	assert.NotNil(t, raw.Reviews)
	assert.NotNil(t, raw.Authors)
	assert.Nil(t, raw.Brand)
	assert.Equal(t, 1, ext.Found(), "only the address is found")
}

func TestExtractor_Extract_NilDocument(t *testing.T) {
	t.Parallel()

	ext := extract.NewExtractor(prodmd.DefaultConfig()).Extract(nil)

	require.NotNil(t, ext.Raw)
	assert.Zero(t, ext.Found())
}

func TestExtractor_Extract_RecoversFieldFaults(t *testing.T) {
	t.Parallel()

	doc := &mock.Document{
		FindFn: func(selector string) ([]prodmd.Element, error) {
			if selector == "#averageCustomerReviews" {
				panic("query host crashed")
			}
			if selector == "#productTitle" {
				return []prodmd.Element{&mock.Element{
					TextFn: func() string { return " Widget " },
				}}, nil
			}
			return nil, nil
		},
		LocationFn: func() string { return productLocation },
	}

	ext := extract.NewExtractor(prodmd.DefaultConfig()).Extract(doc)

	require.Len(t, ext.Faults, 2)
	assert.Equal(t, prodmd.EINTERNAL, prodmd.ErrorCode(ext.Faults[prodmd.FieldRating]))
	assert.Equal(t, prodmd.EINTERNAL, prodmd.ErrorCode(ext.Faults[prodmd.FieldReviewCount]))
	assert.Empty(t, ext.Raw.Rating)
	assert.Equal(t, "Widget", ext.Raw.Title, "sibling fields are unaffected")
	assert.Equal(t, "https://www.amazon.fr/dp/B0ABCDEF12", ext.Raw.URL)
}

func TestExtractor_Extract_PanickingCandidateFindsNothing(t *testing.T) {
	t.Parallel()

	doc := &mock.Document{
		FindFn: func(selector string) ([]prodmd.Element, error) {
			switch selector {
			case "#productTitle":
				panic("broken lookup")
			case ".product-title-word-break":
				return []prodmd.Element{&mock.Element{
					TextFn: func() string { return "Titre alternatif" },
				}}, nil
			}
			return nil, nil
		},
		LocationFn: func() string { return "" },
	}

	ext := extract.NewExtractor(prodmd.DefaultConfig()).Extract(doc)

	assert.Equal(t, "Titre alternatif", ext.Raw.Title)
	assert.Equal(t, "title-class", ext.Sources[prodmd.FieldTitle])
	assert.Empty(t, ext.Faults)
}

func TestExtractor_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "falls back to the title class",
			page: `<h2 class="product-title-word-break">Classe</h2>`,
			want: "Classe",
		},
		{
			name: "falls back to the heading span",
			page: `<h1>Ignoré <span>Dans le span</span></h1>`,
			want: "Dans le span",
		},
		{
			name: "falls back to the heading text",
			page: `<h1>  Titre   du   livre </h1>`,
			want: "Titre du livre",
		},
		{
			name: "prefers the product title element",
			page: `<h1>Autre</h1><span id="productTitle">Principal</span>`,
			want: "Principal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ext := extract.NewExtractor(prodmd.DefaultConfig()).Extract(newDocument(t, tt.page))

			assert.Equal(t, tt.want, ext.Raw.Title)
		})
	}
}

func TestExtractor_Image(t *testing.T) {
	t.Parallel()

	page := `<div class="imgTagWrapper"><img src="https://example.com/wrapper.jpg"></div>
<div id="imageBlock"><img src="https://example.com/block.jpg"></div>`

	ext := extract.NewExtractor(prodmd.DefaultConfig()).Extract(newDocument(t, page))

	assert.Equal(t, "https://example.com/wrapper.jpg", ext.Raw.Image)
	assert.Equal(t, "image-wrapper", ext.Sources[prodmd.FieldImage])
}

func TestExtractor_URL_WithoutASIN(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromString(`<p></p>`, goquery.WithLocation("https://www.amazon.fr/gp/help"))
	require.NoError(t, err)

	ext := extract.NewExtractor(prodmd.DefaultConfig()).Extract(doc)

	assert.Equal(t, "https://www.amazon.fr/gp/help", ext.Raw.URL)
	assert.Equal(t, "location", ext.Sources[prodmd.FieldURL])
}
