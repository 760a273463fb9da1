package i18n

// loadEnglishMessages loads all English translations.
func loadEnglishMessages() {
	messages[LangEN] = map[string]string{
		// Server metadata
		"server.instructions": "A server that searches a database of fictional books. Search by title, author, or description.",

		// Search responses
		"search.no_results": "No books matched the keyword '%s'.",
		"search.header":     "Search results for keyword '%s':",
		"search.book":       "Title: %s\nAuthor: %s\nYear: %d\nISBN: %s\nDescription: %s",
	}
}
