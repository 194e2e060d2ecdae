package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/prodmd"
)

const (
	bylineSelector      = "#bylineInfo"
	breadcrumbsSelector = "#wayfinding-breadcrumbs_feature_div"

	// bookMarker in the breadcrumbs identifies a book page.
	bookMarker = "livre"
)

var (
	parentheticalRe = regexp.MustCompile(`\(.*?\)`)
	brandLabelRe    = regexp.MustCompile(`(?i)Marque\s*:|Visitez la boutique|Visiter la boutique`)
)

func isBookPage(doc prodmd.Document) bool {
	if prodmd.First(doc, bylineSelector) != nil {
		return true
	}
	return strings.Contains(strings.ToLower(prodmd.TextOf(doc, breadcrumbsSelector)), bookMarker)
}

// authors is only attempted on book pages.
func (x *Extractor) authors(doc prodmd.Document) ([]string, string) {
	if !isBookPage(doc) {
		return nil, ""
	}
	return firstOf(doc,
		candidate[[]string]{name: "author-links", find: func(doc prodmd.Document) ([]string, bool) {
			names := collectTexts(prodmd.All(doc, ".author .a-link-normal"), func(string) bool { return true }, x.config.MaxAuthors)
			return names, len(names) > 0
		}},
		candidate[[]string]{name: "byline-author", find: func(doc prodmd.Document) ([]string, bool) {
			el := prodmd.First(doc, "#bylineInfo .author")
			if el == nil {
				return nil, false
			}
			name := prodmd.Normalize(parentheticalRe.ReplaceAllString(el.Text(), ""))
			return []string{name}, name != ""
		}},
	)
}

// brand reads the byline; the specification table fallback is applied
// during canonicalization.
func (x *Extractor) brand(doc prodmd.Document) (*string, string) {
	return firstOf(doc,
		candidate[*string]{name: "byline-link", find: func(doc prodmd.Document) (*string, bool) {
			t := prodmd.TextOf(doc, "#bylineInfo .a-link-normal")
			return &t, t != ""
		}},
		candidate[*string]{name: "byline", find: func(doc prodmd.Document) (*string, bool) {
			el := prodmd.First(doc, bylineSelector)
			if el == nil {
				return nil, false
			}
			t := prodmd.Normalize(brandLabelRe.ReplaceAllString(el.Text(), ""))
			return &t, t != ""
		}},
	)
}
