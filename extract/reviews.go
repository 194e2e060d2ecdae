package extract

import (
	"strings"

	"github.com/fwojciec/prodmd"
)

const (
	reviewBodySelector     = `[data-hook="review-body"]`
	reviewContentSelector  = ".review-text-content span"
	reviewGenomeSelector   = `[data-hook="genome-widget"]`
	reviewExpanderSelector = "span:not(.a-expander-prompt)"
)

// reviews gathers excerpts from the review bodies, then tops up from the
// alternate review selectors while fewer than the cap were found.
func (x *Extractor) reviews(doc prodmd.Document) ([]string, string) {
	var (
		out     []string
		sources []string
	)
	gather := func(name string, els []prodmd.Element, text func(prodmd.Element) string) {
		before := len(out)
		for _, el := range els {
			if len(out) >= x.config.MaxReviews {
				break
			}
			if excerpt, ok := x.reviewExcerpt(text(el)); ok {
				out = append(out, excerpt)
			}
		}
		if len(out) > before {
			sources = append(sources, name)
		}
	}

	gather("review-body", prodmd.All(doc, reviewBodySelector), reviewBodyText)
	if len(out) < x.config.MaxReviews {
		gather("review-text-content", prodmd.All(doc, reviewContentSelector), elementText)
	}
	if len(out) < x.config.MaxReviews {
		gather("genome-widget", prodmd.All(doc, reviewGenomeSelector), elementText)
	}
	return out, strings.Join(sources, "+")
}

// reviewExcerpt strips the expander label, rejects short reviews and
// truncates long ones.
func (x *Extractor) reviewExcerpt(text string) (string, bool) {
	text = prodmd.StripReadMore(prodmd.Normalize(text))
	if prodmd.Length(text) < x.config.MinReviewLength {
		return "", false
	}
	return prodmd.Truncate(text, x.config.MaxReviewLength), true
}

// reviewBodyText returns the first non-empty of: the joined non-expander
// spans, the review text node, the joined unclassed spans, the whole body.
func reviewBodyText(body prodmd.Element) string {
	if t := joinTexts(prodmd.All(body, reviewExpanderSelector)); t != "" {
		return t
	}
	if t := prodmd.TextOf(body, ".reviewText"); t != "" {
		return t
	}
	if t := joinTexts(prodmd.All(body, `span[class=""]`)); t != "" {
		return t
	}
	return elementText(body)
}

func joinTexts(els []prodmd.Element) string {
	var parts []string
	for _, el := range els {
		if t := prodmd.Normalize(el.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func elementText(el prodmd.Element) string {
	return prodmd.Normalize(el.Text())
}
