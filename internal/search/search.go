// Package search implements keyword matching over the book catalog and
// rendering of match sets into response text.
package search

import (
	"strings"

	"github.com/kosho/kosho/internal/catalog"
	"github.com/kosho/kosho/internal/i18n"
)

// DefaultLimit is the number of results returned when a query does not
// specify a limit.
const DefaultLimit = 5

// Match returns the books whose title, author, or description contains
// keyword, compared case-insensitively. Matching one field is enough.
//
// Results preserve catalog order and are truncated to at most limit
// entries. A limit of zero or less yields no results; an empty keyword
// matches every book.
func Match(books []catalog.Book, keyword string, limit int) []catalog.Book {
	if limit <= 0 {
		return nil
	}

	folded := strings.ToLower(keyword)

	var matches []catalog.Book
	for _, b := range books {
		if !contains(b, folded) {
			continue
		}
		matches = append(matches, b)
		if len(matches) == limit {
			break
		}
	}
	return matches
}

// contains reports whether the case-folded keyword appears in any of
// the book's searchable fields.
func contains(b catalog.Book, folded string) bool {
	return strings.Contains(strings.ToLower(b.Title), folded) ||
		strings.Contains(strings.ToLower(b.Author), folded) ||
		strings.Contains(strings.ToLower(b.Description), folded)
}

// Render formats a match set as a single text block in the active
// language. An empty match set renders a "no results" message; anything
// else renders a header naming the keyword followed by one block per
// book, blocks separated by a blank line, in match order.
func Render(keyword string, matches []catalog.Book) string {
	if len(matches) == 0 {
		return i18n.Sprintf("search.no_results", keyword)
	}

	var sb strings.Builder
	sb.WriteString(i18n.Sprintf("search.header", keyword))
	sb.WriteString("\n\n")
	for _, b := range matches {
		sb.WriteString(i18n.Sprintf("search.book", b.Title, b.Author, b.Year, b.ISBN, b.Description))
		sb.WriteString("\n\n")
	}
	return sb.String()
}
