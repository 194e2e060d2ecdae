package prodmd

import (
	"regexp"
	"strings"
	"unicode"
)

// BrandSpecKey is the specification key word that holds the brand.
const BrandSpecKey = "marque"

var (
	ratingRe       = regexp.MustCompile(`(?i)^([\d,.]+)\s*(?:sur|out of)`)
	zeroReviewsRe  = regexp.MustCompile(`(?i)^0+\s*avis\s*$`)
	noReviewsRe    = regexp.MustCompile(`(?i)aucun`)
	parenRe        = regexp.MustCompile(`\s*[()]+`)
	reviewNumberRe = regexp.MustCompile(`\d[\d\s]*`)
	doubledUnitRe  = regexp.MustCompile(`(?i)avis avis`)
	leadingZeroRe  = regexp.MustCompile(`^0+(\d)`)
)

// FormatReviewCount extracts the numeric portion of a review count text and
// suffixes it with ReviewUnit, e.g. "1 234 (évaluations)" becomes
// "1 234 avis". It returns an empty string when text holds no digit.
func FormatReviewCount(text string) string {
	s := Normalize(parenRe.ReplaceAllString(text, " "))
	num := strings.Join(strings.Fields(reviewNumberRe.FindString(s)), " ")
	if num == "" {
		return ""
	}
	out := doubledUnitRe.ReplaceAllString(num+" "+ReviewUnit, ReviewUnit)
	return leadingZeroRe.ReplaceAllString(out, "$1")
}

// Canonicalize applies the business rules of every field to raw and returns
// a record ready for rendering. location is the live page address, used
// when raw.URL carries no ASIN. Canonicalize is total: missing data maps to
// placeholders, never to an error.
func Canonicalize(raw *RawRecord, location string, cfg Config) *CanonicalRecord {
	if raw == nil {
		raw = NewRawRecord()
	}

	rating, reviewCount := canonicalRating(raw.Rating, raw.ReviewCount)

	return &CanonicalRecord{
		Title:                canonicalTitle(raw.Title, cfg),
		Price:                canonicalPrice(raw.Price, cfg),
		Image:                canonicalImage(raw.Image),
		Rating:               rating,
		ReviewCount:          reviewCount,
		URL:                  canonicalAddress(raw.URL, location),
		AboutItem:            canonicalAboutItem(raw.AboutItem, cfg),
		TechnicalDescription: canonicalDescription(raw.TechnicalDescription, cfg),
		TechnicalSpecs:       CanonicalSpecs(raw.TechnicalSpecs, cfg),
		Reviews:              canonicalReviews(raw.Reviews, cfg),
		Authors:              canonicalAuthors(raw.Authors, cfg),
		Brand:                canonicalBrand(raw.Brand, raw.TechnicalSpecs, cfg),
	}
}

func canonicalTitle(s string, cfg Config) string {
	title := Normalize(s)
	if title == "" || Length(title) < cfg.MinTitleLength {
		return PlaceholderTitle
	}
	return Truncate(title, cfg.MaxTitleLength)
}

func canonicalPrice(s string, cfg Config) string {
	price := strings.Map(func(r rune) rune {
		switch {
		case isDigit(r), r == ',', unicode.IsSpace(r):
			return r
		case strings.ContainsRune(cfg.Currency, r):
			return r
		}
		return -1
	}, Normalize(s))
	price = collapseCommas(strings.Join(strings.Fields(price), " "))
	if !strings.ContainsFunc(price, isDigit) {
		return PlaceholderPrice
	}
	if !strings.Contains(price, cfg.Currency) {
		price += " " + cfg.Currency
	}
	return price
}

// isDigit accepts ASCII digits only.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// collapseCommas folds comma runs into one comma.
func collapseCommas(s string) string {
	for strings.Contains(s, ",,") {
		s = strings.ReplaceAll(s, ",,", ",")
	}
	return s
}

// canonicalRating applies the joint rating/review-count rule. Whenever one
// side is missing, or the page reports no reviews, both collapse to their
// placeholders.
func canonicalRating(rawRating, rawCount string) (string, string) {
	rating := Normalize(rawRating)
	count := Normalize(rawCount)

	if count == "" || zeroReviewsRe.MatchString(count) || noReviewsRe.MatchString(count) {
		return PlaceholderRating, PlaceholderReviewCount
	}
	if rating == "" {
		return PlaceholderRating, PlaceholderReviewCount
	}

	if m := ratingRe.FindStringSubmatch(rating); m != nil {
		rating = strings.TrimSpace(m[1]) + "/5"
	} else if !strings.Contains(rating, "/5") {
		rating += "/5"
	}

	count = FormatReviewCount(count)
	if count == "" {
		return PlaceholderRating, PlaceholderReviewCount
	}
	return rating, count
}

func canonicalImage(s string) string {
	image := Normalize(s)
	if !IsHTTPURL(image) {
		return ""
	}
	return image
}

func canonicalAddress(rawURL, location string) string {
	if u, ok := CanonicalURL(rawURL); ok {
		if origin := Origin(location); origin != "" {
			return origin + "/dp/" + ASIN(rawURL)
		}
		return u
	}
	if u, ok := CanonicalURL(location); ok {
		return u
	}
	if location != "" {
		return location
	}
	return rawURL
}

// CanonicalSpecs caps specs and keeps only pairs whose normalized key and
// value are long enough and whose key is not ignored.
func CanonicalSpecs(specs []SpecPair, cfg Config) []SpecPair {
	out := []SpecPair{}
	for _, s := range capped(specs, cfg.MaxSpecs) {
		key := Normalize(s.Key)
		value := Normalize(s.Value)
		if Length(key) < cfg.MinSpecLength || Length(value) < cfg.MinSpecLength {
			continue
		}
		if IsIgnoredSpecKey(key) {
			continue
		}
		out = append(out, SpecPair{Key: key, Value: value})
	}
	return out
}

func canonicalAboutItem(items []string, cfg Config) []string {
	out := []string{}
	for _, item := range items {
		t := Normalize(item)
		if Length(t) < cfg.MinAboutItemLength {
			continue
		}
		out = append(out, t)
	}
	return capped(out, cfg.MaxAboutItems)
}

func canonicalDescription(paras []string, cfg Config) []string {
	out := []string{}
	for _, p := range paras {
		t := Normalize(p)
		if Length(t) < cfg.MinDescriptionLength || IsDigitsOrSymbols(t) || LooksLikeCode(t) {
			continue
		}
		out = append(out, t)
	}
	out = capped(out, cfg.MaxDescriptions)
	for i, t := range out {
		out[i] = Truncate(t, cfg.MaxDescriptionLength)
	}
	return out
}

func canonicalReviews(reviews []string, cfg Config) []string {
	out := []string{}
	for _, r := range reviews {
		t := StripReadMore(Normalize(r))
		if Length(t) < cfg.MinReviewLength {
			continue
		}
		out = append(out, t)
	}
	out = capped(out, cfg.MaxReviews)
	for i, t := range out {
		out[i] = Truncate(t, cfg.MaxReviewLength)
	}
	return out
}

func canonicalAuthors(authors []string, cfg Config) []string {
	out := []string{}
	for _, a := range authors {
		if t := Normalize(a); t != "" {
			out = append(out, t)
		}
	}
	return capped(out, cfg.MaxAuthors)
}

func canonicalBrand(raw *string, specs []SpecPair, cfg Config) *string {
	var brand string
	if raw != nil {
		brand = Normalize(*raw)
	}
	if brand == "" {
		for _, s := range specs {
			if strings.Contains(strings.ToLower(s.Key), BrandSpecKey) {
				brand = Normalize(s.Value)
				break
			}
		}
	}
	if brand == "" || Length(brand) > cfg.MaxBrandLength {
		return nil
	}
	return &brand
}

// capped returns at most n leading elements of s.
func capped[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
