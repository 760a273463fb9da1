package search

import (
	"strings"
	"testing"

	"github.com/kosho/kosho/internal/catalog"
	"github.com/kosho/kosho/internal/i18n"
)

func TestMatch_KeywordInTitle(t *testing.T) {
	matches := Match(catalog.Books(), "量子", DefaultLimit)

	if len(matches) != 1 {
		t.Fatalf("Match(量子) returned %d books, want 1", len(matches))
	}
	if matches[0].Title != "量子コンピュータで料理する方法" {
		t.Errorf("Match(量子) returned %q, want the quantum cooking book", matches[0].Title)
	}
}

func TestMatch_KeywordInAuthor(t *testing.T) {
	matches := Match(catalog.Books(), "会計士", DefaultLimit)

	if len(matches) != 1 {
		t.Fatalf("Match(会計士) returned %d books, want 1", len(matches))
	}
	if matches[0].ISBN != "978-0-123456-47-12" {
		t.Errorf("Match(会計士) returned ISBN %q, want the time-travel tax book", matches[0].ISBN)
	}
}

func TestMatch_KeywordInDescription(t *testing.T) {
	matches := Match(catalog.Books(), "植物", DefaultLimit)

	if len(matches) != 1 {
		t.Fatalf("Match(植物) returned %d books, want 1", len(matches))
	}
	if matches[0].Title != "火星での園芸入門" {
		t.Errorf("Match(植物) returned %q, want the Mars gardening book", matches[0].Title)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	// The first book's author field contains "Dr." with mixed case.
	upper := Match(catalog.Books(), "DR.", DefaultLimit)
	lower := Match(catalog.Books(), "dr.", DefaultLimit)

	if len(upper) != 1 || len(lower) != 1 {
		t.Fatalf("Match(DR.)=%d books, Match(dr.)=%d books, want 1 each", len(upper), len(lower))
	}
	if upper[0] != lower[0] {
		t.Errorf("case variants matched different books: %+v vs %+v", upper[0], lower[0])
	}
}

func TestMatch_EmptyKeywordMatchesEverything(t *testing.T) {
	books := catalog.Books()

	matches := Match(books, "", 2)
	if len(matches) != 2 {
		t.Fatalf("Match(\"\", limit=2) returned %d books, want 2", len(matches))
	}
	if matches[0] != books[0] || matches[1] != books[1] {
		t.Error("Match(\"\", limit=2) did not return the first two catalog records in order")
	}
}

func TestMatch_NoResults(t *testing.T) {
	if matches := Match(catalog.Books(), "xyz-nonexistent", DefaultLimit); len(matches) != 0 {
		t.Errorf("Match(xyz-nonexistent) returned %d books, want 0", len(matches))
	}
}

func TestMatch_LimitTruncates(t *testing.T) {
	// 解説 appears in several descriptions.
	all := Match(catalog.Books(), "解説", len(catalog.Books()))
	if len(all) < 2 {
		t.Fatalf("expected multiple books matching 解説, got %d", len(all))
	}

	one := Match(catalog.Books(), "解説", 1)
	if len(one) != 1 {
		t.Fatalf("Match(解説, limit=1) returned %d books, want 1", len(one))
	}
	if one[0] != all[0] {
		t.Error("truncation changed which book comes first")
	}
}

func TestMatch_ZeroAndNegativeLimit(t *testing.T) {
	// Non-positive limits yield an empty result, never an error.
	for _, limit := range []int{0, -1, -100} {
		if matches := Match(catalog.Books(), "", limit); len(matches) != 0 {
			t.Errorf("Match(limit=%d) returned %d books, want 0", limit, len(matches))
		}
	}
}

func TestMatch_LimitLargerThanCatalog(t *testing.T) {
	matches := Match(catalog.Books(), "", 1000)
	if len(matches) != len(catalog.Books()) {
		t.Errorf("Match(limit=1000) returned %d books, want %d", len(matches), len(catalog.Books()))
	}
}

// TestMatch_Properties checks the matcher invariants for a spread of
// keywords: every result contains the folded keyword in a searchable
// field, the result count respects limit and catalog size, and catalog
// order is preserved.
func TestMatch_Properties(t *testing.T) {
	books := catalog.Books()
	keywords := []string{"", "量子", "解説", "dr.", "DR.", "xyz", "火星", "の", "978"}

	for _, kw := range keywords {
		for _, limit := range []int{1, 2, DefaultLimit, 100} {
			matches := Match(books, kw, limit)

			if len(matches) > limit {
				t.Errorf("Match(%q, %d) returned %d books, exceeds limit", kw, limit, len(matches))
			}
			if len(matches) > len(books) {
				t.Errorf("Match(%q, %d) returned more books than the catalog holds", kw, limit)
			}

			folded := strings.ToLower(kw)
			lastIdx := -1
			for _, m := range matches {
				if !contains(m, folded) {
					t.Errorf("Match(%q) returned non-matching book %q", kw, m.Title)
				}
				idx := indexOf(books, m)
				if idx <= lastIdx {
					t.Errorf("Match(%q) broke catalog order at %q", kw, m.Title)
				}
				lastIdx = idx
			}
		}
	}
}

func indexOf(books []catalog.Book, b catalog.Book) int {
	for i := range books {
		if books[i] == b {
			return i
		}
	}
	return -1
}

func TestRender_NoResults(t *testing.T) {
	i18n.Init(i18n.LangJA)

	got := Render("xyz-nonexistent", nil)
	want := "キーワード 'xyz-nonexistent' に一致する本が見つかりませんでした。"
	if got != want {
		t.Errorf("Render(no matches) = %q, want %q", got, want)
	}
}

func TestRender_SingleMatch(t *testing.T) {
	i18n.Init(i18n.LangJA)

	b := catalog.Books()[0]
	got := Render("量子", []catalog.Book{b})

	want := "キーワード '量子' の検索結果:\n\n" +
		"タイトル: 量子コンピュータで料理する方法\n" +
		"著者: Dr. スーパーサイエンティスト\n" +
		"出版年: 2157\n" +
		"ISBN: 978-0-123456-47-11\n" +
		"説明: 量子コンピュータを使用して、分子レベルで料理を再構築する革新的な方法を解説\n\n"

	if got != want {
		t.Errorf("Render(量子) = %q, want %q", got, want)
	}
}

func TestRender_MultipleMatchesSeparatedByBlankLine(t *testing.T) {
	i18n.Init(i18n.LangJA)

	books := catalog.Books()[:3]
	got := Render("", books)

	if !strings.HasPrefix(got, "キーワード '' の検索結果:\n\n") {
		t.Errorf("Render missing header, got %q", got)
	}
	for _, b := range books {
		if !strings.Contains(got, "タイトル: "+b.Title+"\n") {
			t.Errorf("Render missing block for %q", b.Title)
		}
	}
	if blocks := strings.Count(got, "タイトル: "); blocks != len(books) {
		t.Errorf("Render produced %d blocks, want %d", blocks, len(books))
	}
}

// Empty and non-empty renderings must differ structurally, not just in
// wording: only the non-empty form carries the header line.
func TestRender_EmptyVersusNonEmptyStructure(t *testing.T) {
	i18n.Init(i18n.LangJA)

	empty := Render("量子", nil)
	nonEmpty := Render("量子", catalog.Books()[:1])

	if strings.Contains(empty, "の検索結果:") {
		t.Error("empty rendering contains the results header")
	}
	if !strings.Contains(nonEmpty, "の検索結果:") {
		t.Error("non-empty rendering is missing the results header")
	}
}

func TestRender_English(t *testing.T) {
	i18n.Init(i18n.LangEN)
	t.Cleanup(func() { i18n.Init(i18n.LangJA) })

	got := Render("mars", nil)
	want := "No books matched the keyword 'mars'."
	if got != want {
		t.Errorf("Render(en, no matches) = %q, want %q", got, want)
	}
}
