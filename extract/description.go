package extract

import "github.com/fwojciec/prodmd"

var descriptionSelectors = []struct{ name, selector string }{
	{"product-description", "#productDescription p"},
	{"aplus-v2", "#aplus_feature_div .aplus-v2"},
	{"aplus", "#aplus p"},
	{"description-div", "#productDescription_feature_div p"},
	{"description-wrapper", ".productDescriptionWrapper p"},
}

// technicalDescription collects prose paragraphs, skipping numeric
// fragments and leaked stylesheet or script text.
func (x *Extractor) technicalDescription(doc prodmd.Document) ([]string, string) {
	keep := func(t string) bool {
		return prodmd.Length(t) >= x.config.MinDescriptionLength &&
			!prodmd.IsDigitsOrSymbols(t) &&
			!prodmd.LooksLikeCode(t)
	}
	candidates := make([]candidate[[]string], 0, len(descriptionSelectors))
	for _, s := range descriptionSelectors {
		candidates = append(candidates, candidate[[]string]{
			name: s.name,
			find: func(doc prodmd.Document) ([]string, bool) {
				paras := collectTexts(prodmd.All(doc, s.selector), keep, x.config.MaxDescriptions)
				for i, p := range paras {
					paras[i] = prodmd.Truncate(p, x.config.MaxDescriptionLength)
				}
				return paras, len(paras) > 0
			},
		})
	}
	return firstOf(doc, candidates...)
}
