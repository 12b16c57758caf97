// Tokenization turns raw text into the normalized term stream that feeds
// both the indexer and the query-time scorers.
//
// Adapted from Zeeeepa-blaze's analyzer.go: that pipeline runs
// tokenize -> lowercase -> stopword filter -> length filter -> stem. This
// corpus's tokenizer drops the stopword and length filters (the original
// Python tokenizer has neither: `re.sub(r"\W+", " ", text).lower().split()`
// plus an optional stem), and treats underscore as a word character to
// match the `\W` (non-word) complement the spec defines the splitter on.
package ctiscore

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// Tokenize splits text into normalized terms: runs of non-word characters
// become a single delimiter, tokens are lowercased, and — when stem is
// true — passed through the Porter-style snowball stemmer. Tokenize is
// total: empty input yields an empty, non-nil slice.
func Tokenize(text string, stem bool) []string {
	tokens := splitWords(text)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}
	if stem {
		for i, tok := range tokens {
			tokens[i] = snowballeng.Stem(tok, false)
		}
	}
	return tokens
}

// splitWords implements the spec's "word character" class: Unicode
// letters, digits, and underscore. Every other rune is a delimiter, and
// runs of delimiters collapse to one split point (strings.FieldsFunc never
// produces empty tokens).
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
