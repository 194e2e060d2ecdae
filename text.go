package prodmd

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	digitsOrSymbolsRe = regexp.MustCompile(`^[\d.,;:€$%+\-*/\s]+$`)
	ignoredSpecKeyRe  = regexp.MustCompile(`(?i)commentaires client|classement|étoiles|meilleures ventes`)
	readMoreRe        = regexp.MustCompile(`(?i)\s*(Lire la suite|Read more|Voir plus)\s*$`)
)

// codeTokens betray stylesheet or script text leaking into a paragraph.
var codeTokens = []string{"display:", "margin:", "padding:", "{", "}", "function("}

// IsDigitsOrSymbols reports whether s carries no prose: fewer than ten
// non-space characters, or only digits and punctuation.
func IsDigitsOrSymbols(s string) bool {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if Length(compact) < 10 {
		return true
	}
	return digitsOrSymbolsRe.MatchString(s)
}

// LooksLikeCode reports whether a paragraph is CSS or script text rather
// than a product description. Short paragraphs are rejected as well.
func LooksLikeCode(s string) bool {
	if Length(s) <= 20 {
		return true
	}
	if strings.HasPrefix(s, ".") || strings.HasPrefix(s, "#") {
		return true
	}
	for _, tok := range codeTokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// IsIgnoredSpecKey reports whether a specification key carries ranking or
// review metadata instead of a product property. Empty keys are ignored.
func IsIgnoredSpecKey(key string) bool {
	if key == "" {
		return true
	}
	return ignoredSpecKeyRe.MatchString(key)
}

// StripReadMore removes a trailing "read more" expander label.
func StripReadMore(s string) string {
	return strings.TrimSpace(readMoreRe.ReplaceAllString(s, ""))
}
