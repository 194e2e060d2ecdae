package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/prodmd"
)

const reviewsBlockSelector = "#averageCustomerReviews"

var outOfFiveRe = regexp.MustCompile(`(?i)sur\s*5|out of 5`)

// reviewsBlock returns the product's own rating block. Blocks that are
// hidden or sit in a carousel belong to other products and are ignored.
func reviewsBlock(doc prodmd.Document) prodmd.Element {
	for _, el := range prodmd.All(doc, reviewsBlockSelector) {
		if prodmd.IsAuthoritative(doc, el) {
			return el
		}
	}
	return nil
}

func (x *Extractor) rating(doc prodmd.Document) (string, string) {
	block := reviewsBlock(doc)
	if block == nil {
		return "", ""
	}
	return firstOf(doc,
		candidate[string]{name: "popover-title", find: func(doc prodmd.Document) (string, bool) {
			popover := prodmd.First(block, "#acrPopover")
			if !prodmd.IsAuthoritative(doc, popover) {
				return "", false
			}
			t, _ := popover.Attr("title")
			t = prodmd.Normalize(t)
			lower := strings.ToLower(t)
			return t, strings.Contains(lower, "sur") || strings.Contains(lower, "out of")
		}},
		candidate[string]{name: "icon-alt", find: func(doc prodmd.Document) (string, bool) {
			for _, el := range prodmd.All(block, "span.a-icon-alt") {
				if !prodmd.IsAuthoritative(doc, el) {
					continue
				}
				if t := prodmd.Normalize(el.Text()); outOfFiveRe.MatchString(t) {
					return t, true
				}
			}
			return "", false
		}},
	)
}

func (x *Extractor) reviewCount(doc prodmd.Document) (string, string) {
	block := reviewsBlock(doc)
	if block == nil {
		return "", ""
	}
	return firstOf(doc,
		candidate[string]{name: "review-text", find: func(doc prodmd.Document) (string, bool) {
			el := prodmd.First(block, "#acrCustomerReviewText")
			if !prodmd.IsAuthoritative(doc, el) {
				return "", false
			}
			c := prodmd.FormatReviewCount(el.Text())
			return c, c != ""
		}},
	)
}
