package procuracao

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// FallbackSlug replaces names that are empty once cleaned.
	FallbackSlug = "Cliente_Autor"
	// FallbackSurname completes single-word names.
	FallbackSurname = "Autor"
)

// Slug turns "Juliano Garbuggio da Silva" into "Juliano_Garbuggio".
// Accents are folded, anything outside [A-Za-z0-9 ] is dropped, and only the
// first and last words are kept.
func Slug(fullName string) string {
	cleaned := strings.TrimSpace(keepSlugRunes(foldAccents(fullName)))
	if cleaned == "" {
		return FallbackSlug
	}

	parts := strings.Fields(cleaned)
	first := Capitalize(parts[0])
	last := FallbackSurname
	if len(parts) > 1 {
		last = Capitalize(parts[len(parts)-1])
	}
	return first + "_" + last
}

// Capitalize upper-cases the first character and lower-cases the rest,
// so "McDONALD" becomes "Mcdonald".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func keepSlugRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
