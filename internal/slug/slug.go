package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultBaseURL = "https://www.universitego.com"
	PathSuffix     = "-2024-taban-puanlari-ve-basari-siralamalari/"
)

// replacer holds the transliteration table. Order matters for the two-rune "i̇" key.
var replacer = strings.NewReplacer(
	"Ç", "c", "ç", "c",
	"Ğ", "g", "ğ", "g",
	"I", "i", "ı", "i",
	"İ", "i", "i̇", "i",
	"Ö", "o", "ö", "o",
	"Ş", "s", "ş", "s",
	"Ü", "u", "ü", "u",
	" ", "-",
	"é", "e",
)

// Build converts a department name such as "Bilgisayar Mühendisliği" into
// "bilgisayar-muhendisligi".
func Build(department string) string {
	lower := cases.Lower(language.Turkish).String(department)
	return replacer.Replace(lower)
}

// URL returns the ranking page for a department under baseURL.
// An empty baseURL falls back to DefaultBaseURL.
func URL(baseURL, department string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + Build(department) + PathSuffix
}
