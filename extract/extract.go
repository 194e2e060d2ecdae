// Package extract locates product fields inside a loaded page. Every field
// has an ordered list of candidate lookups; the first candidate that yields
// a non-empty value passing the field's guards wins.
package extract

import "github.com/fwojciec/prodmd"

// Ensure Extractor implements prodmd.Extractor at compile time.
var _ prodmd.Extractor = (*Extractor)(nil)

// Extractor runs every field extractor against a document.
type Extractor struct {
	config prodmd.Config
}

// NewExtractor returns an Extractor using the thresholds of cfg.
func NewExtractor(cfg prodmd.Config) *Extractor {
	return &Extractor{config: cfg}
}

// Extract runs each field extractor exactly once. A field whose extractor
// panics keeps its empty value and is reported in Extraction.Faults; the
// other fields are unaffected.
func (x *Extractor) Extract(doc prodmd.Document) *prodmd.Extraction {
	ext := &prodmd.Extraction{
		Raw:     prodmd.NewRawRecord(),
		Sources: make(map[prodmd.Field]string),
		Faults:  make(map[prodmd.Field]error),
	}
	if doc == nil {
		return ext
	}
	raw := ext.Raw

	x.run(ext, prodmd.FieldTitle, func() (src string) {
		raw.Title, src = x.title(doc)
		return src
	})
	x.run(ext, prodmd.FieldPrice, func() (src string) {
		raw.Price, src = x.price(doc)
		return src
	})
	x.run(ext, prodmd.FieldImage, func() (src string) {
		raw.Image, src = x.image(doc)
		return src
	})
	x.run(ext, prodmd.FieldRating, func() (src string) {
		raw.Rating, src = x.rating(doc)
		return src
	})
	x.run(ext, prodmd.FieldReviewCount, func() (src string) {
		raw.ReviewCount, src = x.reviewCount(doc)
		return src
	})
	x.run(ext, prodmd.FieldURL, func() (src string) {
		raw.URL, src = pageURL(doc)
		return src
	})
	x.run(ext, prodmd.FieldAboutItem, func() string {
		items, src := x.aboutItem(doc)
		raw.AboutItem = nonNil(items)
		return src
	})
	x.run(ext, prodmd.FieldTechnicalDescription, func() string {
		paras, src := x.technicalDescription(doc)
		raw.TechnicalDescription = nonNil(paras)
		return src
	})
	x.run(ext, prodmd.FieldTechnicalSpecs, func() string {
		specs, src := x.technicalSpecs(doc)
		if specs != nil {
			raw.TechnicalSpecs = specs
		}
		return src
	})
	x.run(ext, prodmd.FieldReviews, func() string {
		reviews, src := x.reviews(doc)
		raw.Reviews = nonNil(reviews)
		return src
	})
	x.run(ext, prodmd.FieldAuthors, func() string {
		authors, src := x.authors(doc)
		raw.Authors = nonNil(authors)
		return src
	})
	x.run(ext, prodmd.FieldBrand, func() (src string) {
		raw.Brand, src = x.brand(doc)
		return src
	})

	return ext
}

// run invokes one field extractor, recording the winning candidate or the
// recovered failure.
func (x *Extractor) run(ext *prodmd.Extraction, field prodmd.Field, fn func() string) {
	defer func() {
		if r := recover(); r != nil {
			ext.Faults[field] = prodmd.Errorf(prodmd.EINTERNAL, "%s extractor failed: %v", field, r)
		}
	}()
	if src := fn(); src != "" {
		ext.Sources[field] = src
	}
}

// pageURL reduces the page address to its canonical /dp/<ASIN> form when
// it carries an ASIN.
func pageURL(doc prodmd.Document) (string, string) {
	location := doc.Location()
	if u, ok := prodmd.CanonicalURL(location); ok {
		return u, "asin"
	}
	if location == "" {
		return "", ""
	}
	return location, "location"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
