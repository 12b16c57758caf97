// PostingList is an ordered (DocId, TermFrequency) sequence for one term
// (spec §3). It is adapted from Zeeeepa-blaze's skiplist.go: that file's
// Position{DocumentID, Offset} skip list exists to support phrase and
// proximity search, a Non-goal here (spec §1). This repo keeps the same
// node/tower/random-height skip-list scaffolding — it is genuinely useful
// for an append-heavy, order-preserving sequence — but narrows the key to
// a single DocId (no Offset) and drops FindLessThan/FindGreaterThan/Delete,
// which existed only to support phrase adjacency.
package ctiscore

import (
	"fmt"
	"math/rand"
)

const maxPostingHeight = 32

// Posting is one (DocId, TermFrequency) pair.
type Posting struct {
	DocID int
	Freq  int
}

type postingNode struct {
	posting Posting
	tower   [maxPostingHeight]*postingNode
}

// PostingList is a skip list ordered by ascending DocId.
type PostingList struct {
	head    *postingNode
	height  int
	hasLast bool
	lastID  int
}

// NewPostingList returns an empty posting list.
func NewPostingList() *PostingList {
	return &PostingList{head: &postingNode{}, height: 1}
}

// Append adds (docID, freq) to the list. docID must be strictly greater
// than every previously appended docID for this term (spec §4.D); this is
// the invariant that lets ingest build posting lists in a single forward
// pass over the document stream.
func (pl *PostingList) Append(docID, freq int) error {
	if pl.hasLast && docID <= pl.lastID {
		return fmt.Errorf("postings: doc id %d does not follow %d in ascending order", docID, pl.lastID)
	}

	var journey [maxPostingHeight]*postingNode
	current := pl.head
	for level := pl.height - 1; level >= 0; level-- {
		for current.tower[level] != nil && current.tower[level].posting.DocID < docID {
			current = current.tower[level]
		}
		journey[level] = current
	}

	node := &postingNode{posting: Posting{DocID: docID, Freq: freq}}
	height := randomPostingHeight()
	for level := 0; level < height; level++ {
		pred := journey[level]
		if pred == nil {
			pred = pl.head
		}
		node.tower[level] = pred.tower[level]
		pred.tower[level] = node
	}
	if height > pl.height {
		pl.height = height
	}

	pl.hasLast = true
	pl.lastID = docID
	return nil
}

// Len returns the number of postings (the document frequency of the term
// this list belongs to).
func (pl *PostingList) Len() int {
	n := 0
	for cur := pl.head.tower[0]; cur != nil; cur = cur.tower[0] {
		n++
	}
	return n
}

// Postings returns every (DocId, TermFrequency) pair in ascending DocId
// order.
func (pl *PostingList) Postings() []Posting {
	out := make([]Posting, 0, pl.Len())
	for cur := pl.head.tower[0]; cur != nil; cur = cur.tower[0] {
		out = append(out, cur.posting)
	}
	return out
}

// randomPostingHeight is the teacher's coin-flip height generator
// (skiplist.go randomHeight), unchanged.
func randomPostingHeight() int {
	height := 1
	for rand.Float64() < 0.5 && height < maxPostingHeight {
		height++
	}
	return height
}

// FlatInterleaved returns the [d0, f0, d1, f1, ...] form spec §4.D
// mandates for `inverted_index.json`.
func (pl *PostingList) FlatInterleaved() []int {
	postings := pl.Postings()
	flat := make([]int, 0, len(postings)*2)
	for _, p := range postings {
		flat = append(flat, p.DocID, p.Freq)
	}
	return flat
}

// PostingListFromFlat rebuilds a PostingList from the on-disk interleaved
// form, for query-time loading.
func PostingListFromFlat(flat []int) (*PostingList, error) {
	pl := NewPostingList()
	for i := 0; i+1 < len(flat); i += 2 {
		if err := pl.Append(flat[i], flat[i+1]); err != nil {
			return nil, err
		}
	}
	return pl, nil
}
