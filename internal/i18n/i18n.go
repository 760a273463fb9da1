// Package i18n provides the message catalog for user-visible text.
//
// Response rendering keeps its structure (header plus per-record
// blocks) in code and pulls the phrasing from here, so the served
// language can change without touching the search path.
package i18n

import (
	"fmt"
	"os"
	"strings"
)

// Supported languages.
const (
	LangJA = "ja"
	LangEN = "en"
)

// Japanese is the default: the catalog itself is Japanese-language
// data, as are the server instructions.
var currentLang = LangJA

// messages stores all translations, keyed by language then message key.
var messages = make(map[string]map[string]string)

func init() {
	loadMessages()
}

// Init sets the active language. Unrecognized codes fall back to the
// KOSHO_LANG environment variable, then to Japanese.
func Init(lang string) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "ja", "jp", "japanese":
		currentLang = LangJA
	case "en", "en-us", "english":
		currentLang = LangEN
	default:
		if envLang := os.Getenv("KOSHO_LANG"); envLang != "" && !strings.EqualFold(envLang, lang) {
			Init(envLang)
			return
		}
		currentLang = LangJA
	}
}

// Language returns the active language code.
func Language() string {
	return currentLang
}

// Supported returns the supported language codes.
func Supported() []string {
	return []string{LangJA, LangEN}
}

// T returns the translation for key in the active language, falling
// back to Japanese, then to the key itself.
func T(key string) string {
	if msg, ok := messages[currentLang][key]; ok {
		return msg
	}
	if msg, ok := messages[LangJA][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats the translation for key with args.
func Sprintf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

func loadMessages() {
	loadJapaneseMessages()
	loadEnglishMessages()
}
