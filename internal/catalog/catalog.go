// Package catalog holds the fixed in-memory collection of fictional
// books served by the search tool.
//
// The catalog is seeded once, on first access, and is never mutated or
// reloaded afterwards. Callers treat the returned slice as read-only;
// search results are views into it, not copies.
package catalog

import "sync"

// Book is a single record in the fictional book catalog.
// Year values are fictional and may lie far outside any real
// publication range.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	ISBN        string `json:"isbn"`
}

// Books returns the catalog in insertion order. The slice is built
// exactly once, even under concurrent first access, and the same
// backing array is returned on every call.
var Books = sync.OnceValue(func() []Book {
	return []Book{
		{
			Title:       "量子コンピュータで料理する方法",
			Author:      "Dr. スーパーサイエンティスト",
			Year:        2157,
			Description: "量子コンピュータを使用して、分子レベルで料理を再構築する革新的な方法を解説",
			ISBN:        "978-0-123456-47-11",
		},
		{
			Title:       "タイムトラベルと税金対策",
			Author:      "未来の会計士",
			Year:        3000,
			Description: "タイムトラベルを活用した効率的な税金対策を解説",
			ISBN:        "978-0-123456-47-12",
		},
		{
			Title:       "火星での園芸入門",
			Author:      "火星の園芸家",
			Year:        2250,
			Description: "火星の特殊な環境で植物を育てる方法を解説。",
			ISBN:        "978-0-123456-47-13",
		},
		{
			Title:       "AIと恋愛の心理学",
			Author:      "ロボット心理学者",
			Year:        2200,
			Description: "AIとの恋愛関係における心理学的な考察と実践的なアドバイス。",
			ISBN:        "978-0-123456-47-14",
		},
		{
			Title:       "テレパシーでプログラミング",
			Author:      "サイキックエンジニア",
			Year:        2300,
			Description: "テレパシー能力を使用してコードを書く方法を解説。",
			ISBN:        "978-0-123456-47-15",
		},
	}
})
