package extract

import (
	"strings"

	"github.com/fwojciec/prodmd"
)

const (
	offscreenPriceSelector = "#corePrice_feature_div .a-offscreen, " +
		"#tmmSwatches .a-button-selected .a-offscreen, " +
		"#mediaTab_content_landing .a-offscreen, " +
		".swatchElement.selected .a-offscreen"
	priceWholeSelector    = "#corePrice_feature_div .a-price-whole, #price .a-price-whole"
	priceFractionSelector = "#corePrice_feature_div .a-price-fraction, #price .a-price-fraction"
)

// priceScopes are searched in order once every direct lookup failed.
var priceScopes = []string{
	"#corePrice_feature_div",
	"#apex_desktop_newAccordionRow",
	"#price_inside_buybox",
}

// unavailablePhrases in the availability block mean the product has no price.
var unavailablePhrases = []string{"non disponible", "aucune offre"}

// price locates the product price. Except for the offscreen lookup, every
// candidate must sit in the primary product column.
func (x *Extractor) price(doc prodmd.Document) (string, string) {
	currency := x.config.Currency

	price, src := firstOf(doc,
		candidate[string]{name: "offscreen", find: func(doc prodmd.Document) (string, bool) {
			el := prodmd.First(doc, offscreenPriceSelector)
			if el == nil {
				return "", false
			}
			t := prodmd.Normalize(el.Text())
			return t, t != "" && strings.Contains(t, currency)
		}},
		candidate[string]{name: "whole-fraction", find: func(doc prodmd.Document) (string, bool) {
			whole := prodmd.First(doc, priceWholeSelector)
			if !prodmd.IsInPrimaryColumn(doc, whole) {
				return "", false
			}
			w := strings.NewReplacer(".", "", ",", "").Replace(prodmd.Normalize(whole.Text()))
			if w == "" {
				return "", false
			}
			f := prodmd.TextOf(doc, priceFractionSelector)
			if f == "" {
				f = "00"
			}
			return w + "," + f + " " + currency, true
		}},
		primaryTextCandidate("slot-price", ".slot-price span", false),
		primaryTextCandidate("swatch-slot-price", "#tmmSwatches .a-button-selected .slot-price", false),
		primaryTextCandidate("swatch-color", "#tmmSwatches .a-button-selected span.a-color-base", true),
		primaryTextCandidate("price-block", "#price", true),
		primaryTextCandidate("offer-price", ".offer-price", true),
		candidate[string]{name: "scoped", find: func(doc prodmd.Document) (string, bool) {
			for _, scope := range priceScopes {
				if p, ok := scopedPrice(doc, prodmd.First(doc, scope), currency); ok {
					return p, true
				}
			}
			return "", false
		}},
		candidate[string]{name: "unavailable", find: func(doc prodmd.Document) (string, bool) {
			availability := strings.ToLower(prodmd.TextOf(doc, "#availability"))
			for _, phrase := range unavailablePhrases {
				if strings.Contains(availability, phrase) {
					return prodmd.PlaceholderPrice, true
				}
			}
			return "", false
		}},
	)
	return tidyPrice(price), src
}

// primaryTextCandidate looks up the text of the first match of selector,
// accepted only inside the primary column and, when needDigit is set, only
// when it contains a digit.
func primaryTextCandidate(name, selector string, needDigit bool) candidate[string] {
	return candidate[string]{
		name: name,
		find: func(doc prodmd.Document) (string, bool) {
			el := prodmd.First(doc, selector)
			if !prodmd.IsInPrimaryColumn(doc, el) {
				return "", false
			}
			t := prodmd.Normalize(el.Text())
			if t == "" || (needDigit && !hasDigit(t)) {
				return "", false
			}
			return t, true
		},
	}
}

// scopedPrice searches one fallback root for a whole/fraction pair, a
// legacy price block or an offscreen price.
func scopedPrice(doc prodmd.Document, root prodmd.Element, currency string) (string, bool) {
	if root == nil {
		return "", false
	}

	if whole := prodmd.First(root, ".a-price-whole"); prodmd.IsInPrimaryColumn(doc, whole) {
		if w := prodmd.Normalize(whole.Text()); w != "" {
			price := w
			if f := prodmd.TextOf(root, ".a-price-fraction"); f != "" {
				price += "," + f
			}
			symbol := prodmd.TextOf(root, ".a-price-symbol")
			if symbol == "" {
				symbol = currency
			}
			return price + " " + symbol, true
		}
	}

	for _, selector := range []string{"#priceblock_ourprice", ".a-price .a-offscreen"} {
		el := prodmd.First(root, selector)
		if !prodmd.IsInPrimaryColumn(doc, el) {
			continue
		}
		if t := prodmd.Normalize(el.Text()); t != "" {
			return t, true
		}
	}
	return "", false
}

// tidyPrice folds repeated commas and whitespace.
func tidyPrice(s string) string {
	for strings.Contains(s, ",,") {
		s = strings.ReplaceAll(s, ",,", ",")
	}
	return strings.Join(strings.Fields(s), " ")
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return '0' <= r && r <= '9' })
}
