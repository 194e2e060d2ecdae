package prodmd

// Placeholders replace empty canonical values.
const (
	PlaceholderTitle       = "Titre non disponible"
	PlaceholderPrice       = "Prix non disponible"
	PlaceholderRating      = "Aucune note"
	PlaceholderReviewCount = "0 avis"
)

// ReviewUnit suffixes canonical review counts.
const ReviewUnit = "avis"

// Field names a semantic product field.
type Field string

// Extracted fields.
const (
	FieldTitle                Field = "title"
	FieldPrice                Field = "price"
	FieldImage                Field = "image"
	FieldRating               Field = "rating"
	FieldReviewCount          Field = "reviewCount"
	FieldURL                  Field = "url"
	FieldAboutItem            Field = "aboutItem"
	FieldTechnicalDescription Field = "technicalDescription"
	FieldTechnicalSpecs       Field = "technicalSpecs"
	FieldReviews              Field = "reviews"
	FieldAuthors              Field = "authors"
	FieldBrand                Field = "brand"
)

// Fields lists every extracted field in rendering order.
var Fields = []Field{
	FieldTitle,
	FieldPrice,
	FieldImage,
	FieldRating,
	FieldReviewCount,
	FieldURL,
	FieldAboutItem,
	FieldTechnicalDescription,
	FieldTechnicalSpecs,
	FieldReviews,
	FieldAuthors,
	FieldBrand,
}

// SpecPair is one row of the technical specification table.
type SpecPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RawRecord holds the values found on a page before validation. Missing
// values are empty strings, empty slices or a nil Brand; never absent.
type RawRecord struct {
	Title                string     `json:"title"`
	Price                string     `json:"price"`
	Image                string     `json:"image"`
	Rating               string     `json:"rating"`
	ReviewCount          string     `json:"reviewCount"`
	URL                  string     `json:"url"`
	AboutItem            []string   `json:"aboutItem"`
	TechnicalDescription []string   `json:"technicalDescription"`
	TechnicalSpecs       []SpecPair `json:"technicalSpecs"`
	Reviews              []string   `json:"reviews"`
	Authors              []string   `json:"authors"`
	Brand                *string    `json:"brand"`
}

// NewRawRecord returns a RawRecord with every list field non-nil.
func NewRawRecord() *RawRecord {
	return &RawRecord{
		AboutItem:            []string{},
		TechnicalDescription: []string{},
		TechnicalSpecs:       []SpecPair{},
		Reviews:              []string{},
		Authors:              []string{},
	}
}

// CanonicalRecord is a RawRecord after validation: every field satisfies
// its business rule and placeholders replace empty scalar values.
type CanonicalRecord struct {
	Title                string     `json:"title"`
	Price                string     `json:"price"`
	Image                string     `json:"image"`
	Rating               string     `json:"rating"`
	ReviewCount          string     `json:"reviewCount"`
	URL                  string     `json:"url"`
	AboutItem            []string   `json:"aboutItem"`
	TechnicalDescription []string   `json:"technicalDescription"`
	TechnicalSpecs       []SpecPair `json:"technicalSpecs"`
	Reviews              []string   `json:"reviews"`
	Authors              []string   `json:"authors"`
	Brand                *string    `json:"brand"`
}

// HasRating reports whether the record carries a real rating.
func (r *CanonicalRecord) HasRating() bool {
	return r.Rating != PlaceholderRating
}

// Extraction is the outcome of running every field extractor once on a page.
type Extraction struct {
	Raw *RawRecord

	// Sources names the candidate lookup that produced each found field.
	Sources map[Field]string

	// Faults holds the recovered failure of each field whose extractor
	// broke. The field keeps its empty value.
	Faults map[Field]error
}

// Found returns the number of fields with a winning candidate.
func (e *Extraction) Found() int {
	if e == nil {
		return 0
	}
	return len(e.Sources)
}

// Extractor runs every field extractor against a document.
type Extractor interface {
	// Extract never fails: broken or empty fields degrade to their empty
	// value and are reported in Extraction.Faults.
	Extract(doc Document) *Extraction
}
