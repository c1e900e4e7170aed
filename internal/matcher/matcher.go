// Package matcher resolves free-text title and showtime input against the
// movie catalog. Title matching is case-, whitespace-, and
// punctuation-insensitive; showtime matching is an exact case-insensitive
// string compare with no normalization of the time value itself.
package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/cinetix/booking-engine/internal/domain"
)

type Matcher struct {
	catalog domain.CatalogRepository
}

func New(catalog domain.CatalogRepository) *Matcher {
	return &Matcher{catalog: catalog}
}

// Resolve matches rawTitle against exactly one catalog movie and
// rawShowtime against one of that movie's showtimes. It returns ok=false
// when either side fails to resolve; it never returns an error.
func (m *Matcher) Resolve(rawTitle, rawShowtime string) (domain.Movie, string, bool) {
	if !ValidTitle(rawTitle) {
		return domain.Movie{}, "", false
	}

	want := NormalizeTitle(rawTitle)
	if want == "" {
		return domain.Movie{}, "", false
	}

	for _, movie := range m.catalog.All() {
		if NormalizeTitle(movie.Title) != want {
			continue
		}

		showtime := strings.TrimSpace(rawShowtime)
		for _, t := range movie.Showtimes {
			if strings.EqualFold(t, showtime) {
				return movie, t, true
			}
		}

		// The title resolved but the showtime did not; catalog titles
		// are unique after normalization, so stop here.
		return domain.Movie{}, "", false
	}

	return domain.Movie{}, "", false
}

// ValidTitle reports whether a raw title is even a candidate for
// matching: it must contain at least one letter and no symbol-category or
// unassigned runes (this is what rejects emoji).
func ValidTitle(raw string) bool {
	hasLetter := false

	for _, r := range raw {
		if unicode.IsSymbol(r) {
			return false
		}
		if !unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}

	return hasLetter
}

// NormalizeTitle trims, collapses whitespace runs to single spaces,
// case-folds locale-independently, and drops every rune that is not a
// letter, digit, or space.
func NormalizeTitle(raw string) string {
	folded := cases.Fold().String(strings.TrimSpace(raw))

	folded = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, folded)

	return strings.Join(strings.Fields(folded), " ")
}
