package transliterate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Result reports whether the input needed transliteration and its
// latin-folded form.
type Result struct {
	RequiresTransliteration bool   `json:"requires_transliteration"`
	Transliterated          string `json:"transliterated"`
}

// Transliterator converts text into a provider-safe ASCII variant.
type Transliterator interface {
	Transliterate(text string) Result
}

// LatinFolder strips combining marks after NFD decomposition, mapping
// e.g. "José" to "Jose". Characters with no latin decomposition are kept
// as-is; the requires flag only reports whether the output differs.
type LatinFolder struct {
	chain transform.Transformer
}

// NewLatinFolder creates a Transliterator backed by unicode normalization.
func NewLatinFolder() *LatinFolder {
	return &LatinFolder{
		chain: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Transliterate folds text to its unaccented form.
func (l *LatinFolder) Transliterate(text string) Result {
	folded, _, err := transform.String(l.chain, text)
	if err != nil {
		return Result{RequiresTransliteration: false, Transliterated: text}
	}
	folded = replaceSpecials(folded)
	return Result{
		RequiresTransliteration: folded != text,
		Transliterated:          folded,
	}
}

// replaceSpecials handles the few latin letters NFD leaves untouched.
func replaceSpecials(s string) string {
	replacer := strings.NewReplacer(
		"ß", "ss",
		"Æ", "AE",
		"æ", "ae",
		"Ø", "O",
		"ø", "o",
		"Đ", "D",
		"đ", "d",
		"Þ", "Th",
		"þ", "th",
		"Ł", "L",
		"ł", "l",
	)
	return replacer.Replace(s)
}
