package prodmd

// ForbiddenContainers mark regions dedicated to other products:
// carousels, "frequently bought" and "similar items" panels.
var ForbiddenContainers = []string{
	".a-carousel",
	"#purchase-sims-feature",
	"#similarities_feature_div",
	"#anonCarousel",
}

// PrimaryColumns mark the regions describing the product the page is about.
var PrimaryColumns = []string{
	"#centerCol",
	"#ppd",
}

// IsVisible reports whether el is rendered. A nil element or a failed
// visibility computation counts as not visible.
func IsVisible(el Element) bool {
	if el == nil {
		return false
	}
	visible, err := el.Visible()
	if err != nil {
		return false
	}
	return visible
}

// IsForbidden reports whether el sits inside one of the ForbiddenContainers
// of doc. A nil element or any query failure counts as forbidden.
func IsForbidden(doc Document, el Element) bool {
	if doc == nil || el == nil {
		return true
	}
	for _, selector := range ForbiddenContainers {
		containers, err := doc.Find(selector)
		if err != nil {
			return true
		}
		for _, c := range containers {
			inside, err := c.Contains(el)
			if err != nil || inside {
				return true
			}
		}
	}
	return false
}

// IsInPrimaryColumn reports whether el sits inside one of the PrimaryColumns
// of doc. A nil element or any query failure returns false.
func IsInPrimaryColumn(doc Document, el Element) bool {
	if doc == nil || el == nil {
		return false
	}
	for _, selector := range PrimaryColumns {
		col := First(doc, selector)
		if col == nil {
			continue
		}
		inside, err := col.Contains(el)
		if err != nil {
			return false
		}
		if inside {
			return true
		}
	}
	return false
}

// IsAuthoritative reports whether el is a visible element outside every
// forbidden container. Rating and review count only accept such elements.
func IsAuthoritative(doc Document, el Element) bool {
	return IsVisible(el) && !IsForbidden(doc, el)
}
