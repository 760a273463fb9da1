package i18n

// loadJapaneseMessages loads all Japanese translations.
func loadJapaneseMessages() {
	messages[LangJA] = map[string]string{
		// Server metadata
		"server.instructions": "架空の本のデータベースを検索するサーバーです。タイトル、著者、説明文で検索できます。",

		// Search responses
		"search.no_results": "キーワード '%s' に一致する本が見つかりませんでした。",
		"search.header":     "キーワード '%s' の検索結果:",
		"search.book":       "タイトル: %s\n著者: %s\n出版年: %d\nISBN: %s\n説明: %s",
	}
}
