package extract

import "github.com/fwojciec/prodmd"

// aboutSelectors are tried in order; the first yielding a usable item wins.
var aboutSelectors = []struct{ name, selector string }{
	{"feature-bullets", "#feature-bullets .a-list-item"},
	{"featurebullets-div", "#featurebullets_feature_div .a-list-item"},
	{"mini-list", ".a-unordered-list.a-vertical.a-spacing-mini li span"},
	{"facts-expander", "#productFactsDesktopExpander .a-list-item"},
}

func (x *Extractor) aboutItem(doc prodmd.Document) ([]string, string) {
	candidates := make([]candidate[[]string], 0, len(aboutSelectors))
	for _, s := range aboutSelectors {
		candidates = append(candidates, candidate[[]string]{
			name: s.name,
			find: func(doc prodmd.Document) ([]string, bool) {
				items := collectTexts(prodmd.All(doc, s.selector), func(t string) bool {
					return prodmd.Length(t) >= x.config.MinAboutItemLength
				}, x.config.MaxAboutItems)
				return items, len(items) > 0
			},
		})
	}
	return firstOf(doc, candidates...)
}

// collectTexts returns the normalized texts of els accepted by keep, in
// order, stopping at max entries.
func collectTexts(els []prodmd.Element, keep func(string) bool, max int) []string {
	var out []string
	for _, el := range els {
		if len(out) >= max {
			break
		}
		t := prodmd.Normalize(el.Text())
		if t == "" || !keep(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
