// Query-biased snippet generation (spec §4.I): pull the best 3 sentences
// out of a document's text body relative to a query. No direct teacher
// equivalent exists (Zeeeepa-blaze returns raw matches, not snippets); this
// follows the original implementation's search.py `compute_sentence_score`
// / `get_graphic` / `display_results` heuristics, expressed with this
// repo's regexp/tokenizer primitives.
package ctiscore

import (
	"strings"
)

// minSnippetSentenceWords is the sentence-length floor (spec §4.I).
const minSnippetSentenceWords = 5

// snippetSentenceLimit is the number of sentences returned.
const snippetSentenceLimit = 3

// snippetFallbackChars is how much of a fallback field is shown before the
// ellipsis (spec §4.I).
const snippetFallbackChars = 50

// Snippet builds a query-biased extract from a document's raw text.
func Snippet(rawText string, queryTokens []string) []string {
	body := extractTag(textTagPattern, rawText)
	sentences := splitSentences(body)

	queryset := make(map[string]bool, len(queryTokens))
	for _, t := range queryTokens {
		queryset[t] = true
	}

	scores := make(map[string]*scoredSentence)
	var order []string
	for i, s := range sentences {
		words := splitWords(s)
		if len(words) < minSnippetSentenceWords {
			continue
		}
		score := sentenceScore(words, i == 0, queryset)
		if _, seen := scores[s]; !seen {
			order = append(order, s)
		}
		scores[s] = &scoredSentence{sentence: s, score: score}
	}

	ranked := make([]*scoredSentence, 0, len(order))
	for _, s := range order {
		ranked = append(ranked, scores[s])
	}
	stableSortByScoreDesc(ranked)

	limit := snippetSentenceLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = ranked[i].sentence
	}
	return out
}

func sentenceScore(words []string, isFirst bool, queryset map[string]bool) int {
	score := 0
	if isFirst {
		score += 2
	}

	wordset := make(map[string]bool, len(words))
	for _, w := range words {
		wordset[strings.ToLower(w)] = true
	}

	for _, w := range words {
		if queryset[strings.ToLower(w)] {
			score++
		}
	}
	for token := range queryset {
		if wordset[token] {
			score++
		}
	}
	for i := 0; i+1 < len(words); i++ {
		a, b := strings.ToLower(words[i]), strings.ToLower(words[i+1])
		if queryset[a] && queryset[b] {
			score++
		}
	}
	return score
}

// scoredSentence pairs a snippet candidate sentence with its heuristic
// score (spec §4.I).
type scoredSentence struct {
	sentence string
	score    int
}

// stableSortByScoreDesc sorts by descending score, preserving relative
// order for ties (spec §4.I "ties broken by insertion order").
func stableSortByScoreDesc(items []*scoredSentence) {
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && items[j-1].score < items[j].score {
			items[j-1], items[j] = items[j], items[j-1]
			j--
		}
	}
}

func splitSentences(body string) []string {
	matches := sentencePattern.FindAllString(body, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// DisplayFallback implements the headline-then-text-then-graphic ellipsis
// fallback for presenting a document when no headline is available (spec
// §4.I).
func DisplayFallback(headline, text, graphic string) string {
	if headline != "" {
		return headline
	}
	if text != "" {
		return truncateWithEllipsis(text, snippetFallbackChars)
	}
	return truncateWithEllipsis(graphic, snippetFallbackChars)
}

func truncateWithEllipsis(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
