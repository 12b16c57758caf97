// BM25 ranking (spec §4.G). Grounded on Zeeeepa-blaze's search.go BM25Search
// (accumulate per-document score over query terms, then sort and take the
// top N) but replaces the teacher's smoothed, always-positive IDF
// (`log((N-df+0.5)/(df+0.5)+1.0)`) with the spec's unsmoothed, unclamped
// form: the original implementation this spec distills uses plain
// `ln((N-df+0.5)/(df+0.5))`, which can go negative for very common terms,
// and that sign is preserved deliberately rather than floored at zero.
package ctiscore

import (
	"math"
	"sort"
)

const (
	bm25K1 = 1.2
	bm25B  = 0.75

	// RetrievedResultsLimit caps the BM25 result list (spec §4.G step 4).
	RetrievedResultsLimit = 10
)

// Match is one scored document from a BM25 ranking pass.
type Match struct {
	DocID int
	Score float64
}

// RankBM25 scores query against the corpus described by lexicon, index,
// and lens, returning the top cfg.RetrievedResultsLimit documents by
// descending score. Ties are broken by ascending DocId, a reproducible
// stand-in for "iteration order of the scoring pass" (spec §4.G step 4).
// Query tokens are never stemmed (spec §4.G step 1); tokens absent from
// the lexicon are dropped (step 2), and an all-dropped query yields nil.
// A term repeated in the query is scored once.
func RankBM25(query string, lexicon *Lexicon, index *InvertedIndex, lens *DocLengths, cfg Config) []Match {
	tokens := Tokenize(query, false)

	termIDs := make([]int, 0, len(tokens))
	seen := make(map[int]bool, len(tokens))
	for _, tok := range tokens {
		if id, ok := lexicon.Lookup(tok); ok && !seen[id] {
			seen[id] = true
			termIDs = append(termIDs, id)
		}
	}
	if len(termIDs) == 0 {
		return nil
	}

	n := float64(lens.Len())
	avgdl := lens.Average()
	k1, b := cfg.BM25.K1, cfg.BM25.B

	scores := make(map[int]float64)
	for _, termID := range termIDs {
		postings, err := index.PostingsFor(termID)
		if err != nil {
			continue
		}
		df := float64(len(postings))
		idf := math.Log((n - df + 0.5) / (df + 0.5))

		for _, p := range postings {
			length, _ := lens.LengthOf(p.DocID)
			k := k1 * ((1 - b) + b*float64(length)/avgdl)
			delta := (float64(p.Freq) / (float64(p.Freq) + k)) * idf
			scores[p.DocID] += delta
		}
	}

	matches := make([]Match, 0, len(scores))
	for docID, score := range scores {
		matches = append(matches, Match{DocID: docID, Score: score})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].DocID < matches[j].DocID
	})

	limit := cfg.RetrievedResultsLimit
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
