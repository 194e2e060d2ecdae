package prodmd

// Config enumerates every tunable threshold of the pipeline. Lengths count
// characters after normalization.
type Config struct {
	// Site is the host product pages must belong to.
	Site string `yaml:"site" validate:"required,hostname"`

	// Currency is the symbol a price must carry.
	Currency string `yaml:"currency" validate:"required"`

	MinTitleLength int `yaml:"min_title_length" validate:"gte=0"`
	MaxTitleLength int `yaml:"max_title_length" validate:"gte=4,gtefield=MinTitleLength"`

	MaxAboutItems      int `yaml:"max_about_items" validate:"gte=0"`
	MinAboutItemLength int `yaml:"min_about_item_length" validate:"gte=0"`

	MaxDescriptions      int `yaml:"max_descriptions" validate:"gte=0"`
	MinDescriptionLength int `yaml:"min_description_length" validate:"gte=0"`
	MaxDescriptionLength int `yaml:"max_description_length" validate:"gte=4"`

	MaxSpecs      int `yaml:"max_specs" validate:"gte=0"`
	MinSpecLength int `yaml:"min_spec_length" validate:"gte=0"`

	MaxReviews      int `yaml:"max_reviews" validate:"gte=0"`
	MinReviewLength int `yaml:"min_review_length" validate:"gte=0"`
	MaxReviewLength int `yaml:"max_review_length" validate:"gte=4"`

	MaxAuthors     int `yaml:"max_authors" validate:"gte=0"`
	MaxBrandLength int `yaml:"max_brand_length" validate:"gte=1"`
}

// DefaultConfig returns the thresholds of the most complete pipeline variant.
func DefaultConfig() Config {
	return Config{
		Site:     "amazon.fr",
		Currency: "€",

		MinTitleLength: 3,
		MaxTitleLength: 150,

		MaxAboutItems:      7,
		MinAboutItemLength: 5,

		MaxDescriptions:      3,
		MinDescriptionLength: 10,
		MaxDescriptionLength: 500,

		MaxSpecs:      15,
		MinSpecLength: 3,

		MaxReviews:      3,
		MinReviewLength: 15,
		MaxReviewLength: 150,

		MaxAuthors:     3,
		MaxBrandLength: 50,
	}
}
