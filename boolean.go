// Boolean-AND retrieval (spec §4.H): intersect the posting-list document
// sets of every query term, per topic. Grounded on Zeeeepa-blaze's use of
// roaring.Bitmap for DocBitmaps/set operations (index.go, search.go);
// this repo reuses roaring's And for the intersection itself rather than
// hand-rolling set intersection.
package ctiscore

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// BooleanSkipTopics is the hardcoded topic exclusion set (spec §4.H).
var BooleanSkipTopics = map[string]bool{
	"416": true,
	"423": true,
	"437": true,
	"444": true,
	"447": true,
}

// BooleanRunTag is the literal runtag the boolean-AND producer emits.
const BooleanRunTag = "ctiscareAND"

// BooleanResult is one output line of a boolean-AND run (spec §4.H).
type BooleanResult struct {
	TopicID string
	Docno   string
	Rank    int
	Score   int
}

// RunBooleanAND evaluates every topic in topics (ordered by topicOrder,
// since a map has no stable iteration order) against lexicon, index, and
// registry, skipping any topic in skipTopics (cfg.BooleanSkipTopics).
// Topics with no lexicon hits contribute no results.
func RunBooleanAND(topicOrder []string, topics map[string]string, lexicon *Lexicon, index *InvertedIndex, registry *DocnoRegistry, skipTopics []string) []BooleanResult {
	skip := make(map[string]bool, len(skipTopics))
	for _, id := range skipTopics {
		skip[id] = true
	}

	var results []BooleanResult
	for _, topicID := range topicOrder {
		if skip[topicID] {
			continue
		}
		query, ok := topics[topicID]
		if !ok {
			continue
		}
		results = append(results, booleanANDForTopic(topicID, query, lexicon, index, registry)...)
	}
	return results
}

func booleanANDForTopic(topicID, query string, lexicon *Lexicon, index *InvertedIndex, registry *DocnoRegistry) []BooleanResult {
	tokens := Tokenize(query, false)

	var bitmaps []*roaring.Bitmap
	for _, tok := range tokens {
		id, ok := lexicon.Lookup(tok)
		if !ok {
			continue
		}
		bm := index.DocIDsFor(id)
		if bm == nil {
			continue
		}
		bitmaps = append(bitmaps, bm)
	}
	if len(bitmaps) == 0 {
		return nil
	}

	intersection := bitmaps[0].Clone()
	for _, bm := range bitmaps[1:] {
		intersection = roaring.And(intersection, bm)
	}

	docIDs := make([]int, 0, intersection.GetCardinality())
	it := intersection.Iterator()
	for it.HasNext() {
		docIDs = append(docIDs, int(it.Next()))
	}

	total := len(docIDs)
	results := make([]BooleanResult, 0, total)
	for i, docID := range docIDs {
		docno, ok := registry.DocnoFor(docID)
		if !ok {
			continue
		}
		rank := i + 1
		results = append(results, BooleanResult{
			TopicID: topicID,
			Docno:   docno,
			Rank:    rank,
			Score:   total - (rank - 1),
		})
	}
	return results
}

// SortedTopicIDs returns topic ids in ascending order, for callers that
// want a deterministic RunBooleanAND ordering without tracking original
// input order.
func SortedTopicIDs(topics map[string]string) []string {
	ids := make([]string, 0, len(topics))
	for id := range topics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
