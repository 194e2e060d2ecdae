package extract

import "github.com/fwojciec/prodmd"

func (x *Extractor) title(doc prodmd.Document) (string, string) {
	return firstOf(doc,
		textCandidate("productTitle", "#productTitle"),
		textCandidate("title-class", ".product-title-word-break"),
		candidate[string]{name: "heading-span", find: func(doc prodmd.Document) (string, bool) {
			t := prodmd.TextOf(prodmd.First(doc, "h1"), "span")
			return t, t != ""
		}},
		candidate[string]{name: "heading", find: func(doc prodmd.Document) (string, bool) {
			h1 := prodmd.First(doc, "h1")
			if h1 == nil {
				return "", false
			}
			t := prodmd.Normalize(h1.Text())
			return t, t != ""
		}},
	)
}

func (x *Extractor) image(doc prodmd.Document) (string, string) {
	return firstOf(doc,
		attrCandidate("landingImage", "#landingImage", "src"),
		attrCandidate("image-wrapper", ".imgTagWrapper img", "src"),
		attrCandidate("image-block", "#imageBlock img", "src"),
	)
}
