package extract_test

import (
	"testing"

	"github.com/fwojciec/prodmd"
	"github.com/fwojciec/prodmd/extract"
	"github.com/stretchr/testify/assert"
)

func TestExtractor_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       string
		wantPrice  string
		wantSource string
	}{
		{
			name: "assembles whole and fraction when the offscreen price lacks a currency",
			page: `<div id="centerCol"><div id="corePrice_feature_div">
	<span class="a-offscreen">12,99</span>
	<span class="a-price-whole">1.212,</span><span class="a-price-fraction">99</span>
</div></div>`,
			wantPrice:  "1212,99 €",
			wantSource: "whole-fraction",
		},
		{
			name:       "defaults the fraction to zero cents",
			page:       `<div id="ppd"><div id="price"><span class="a-price-whole">7</span></div></div>`,
			wantPrice:  "7,00 €",
			wantSource: "whole-fraction",
		},
		{
			name:       "ignores prices outside the primary column",
			page:       `<div id="corePrice_feature_div"><span class="a-price-whole">99</span></div>`,
			wantPrice:  "",
			wantSource: "",
		},
		{
			name: "skips swatch labels without digits",
			page: `<div id="centerCol"><div id="tmmSwatches"><span class="a-button-selected">
	<span class="a-color-base">Broché</span>
</span></div><span class="offer-price">8,50 €</span></div>`,
			wantPrice:  "8,50 €",
			wantSource: "offer-price",
		},
		{
			name: "skips swatch labels with only non-ASCII digits",
			page: `<div id="centerCol"><div id="tmmSwatches"><span class="a-button-selected">
	<span class="a-color-base">Tome ٣</span>
</span></div><span class="offer-price">8,50 €</span></div>`,
			wantPrice:  "8,50 €",
			wantSource: "offer-price",
		},
		{
			name:       "reads the slot price",
			page:       `<div id="centerCol"><span class="slot-price"><span>  15,00   € </span></span></div>`,
			wantPrice:  "15,00 €",
			wantSource: "slot-price",
		},
		{
			name: "searches the accordion root with its own symbol",
			page: `<div id="centerCol"><div id="apex_desktop_newAccordionRow">
	<span class="a-price-symbol">€</span><span class="a-price-whole">21</span><span class="a-price-fraction">90</span>
</div></div>`,
			wantPrice:  "21,90 €",
			wantSource: "scoped",
		},
		{
			name:       "reports an unavailable product",
			page:       `<div id="availability"><span>Actuellement non disponible.</span></div>`,
			wantPrice:  prodmd.PlaceholderPrice,
			wantSource: "unavailable",
		},
		{
			name: "prefers the offscreen price anywhere on the page",
			page: `<div id="corePrice_feature_div"><span class="a-offscreen">4,99 €</span></div>
<div id="centerCol"><span class="offer-price">5,99 €</span></div>`,
			wantPrice:  "4,99 €",
			wantSource: "offscreen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ext := extract.NewExtractor(prodmd.DefaultConfig()).Extract(newDocument(t, tt.page))

			assert.Equal(t, tt.wantPrice, ext.Raw.Price)
			assert.Equal(t, tt.wantSource, ext.Sources[prodmd.FieldPrice])
		})
	}
}
