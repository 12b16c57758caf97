package ctiscore

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// TestTokenCountConservation checks Σ over all terms of Σ over postings of
// freq == Σ over docs of doc length (spec §8).
func TestTokenCountConservation(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "idx")
	ix, err := NewIndexer(dest, false, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("NewIndexer() error = %v", err)
	}
	corpus := `<DOC>
<DOCNO> LA010189-0001 </DOCNO>
<TEXT>Cats and dogs. Dogs bark.</TEXT>
</DOC>
<DOC>
<DOCNO> LA010189-0002 </DOCNO>
<TEXT>Cats purr quietly in the sun.</TEXT>
</DOC>
`
	if err := ix.IndexStream(gzipCorpus(t, corpus)); err != nil {
		t.Fatalf("IndexStream() error = %v", err)
	}
	if err := ix.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	artifacts, err := LoadIndexArtifacts(dest)
	if err != nil {
		t.Fatalf("LoadIndexArtifacts() error = %v", err)
	}

	totalPostingFreq := 0
	for id := 1; id <= artifacts.Lexicon.Size(); id++ {
		postings, err := artifacts.Index.PostingsFor(id)
		if err != nil {
			t.Fatalf("PostingsFor(%d) error = %v", id, err)
		}
		for _, p := range postings {
			totalPostingFreq += p.Freq
		}
	}

	totalDocLength := 0
	for docID := 0; docID < artifacts.Lengths.Len(); docID++ {
		length, _ := artifacts.Lengths.LengthOf(docID)
		totalDocLength += length
	}

	if totalPostingFreq != totalDocLength {
		t.Errorf("token-count conservation violated: postings sum %d, doc-length sum %d", totalPostingFreq, totalDocLength)
	}
}

// TestRankBM25_OrderInvariantUnderTokenReorderAndDedup checks that BM25
// scoring is order-invariant with respect to query token order after
// deduplication (spec §8).
func TestRankBM25_OrderInvariantUnderTokenReorderAndDedup(t *testing.T) {
	lexicon, index, lens := buildSmallCorpus(t)

	a := RankBM25("cats dogs", lexicon, index, lens, DefaultConfig())
	b := RankBM25("dogs cats dogs", lexicon, index, lens, DefaultConfig())

	if len(a) != len(b) {
		t.Fatalf("RankBM25() returned different lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].DocID != b[i].DocID || !almostEqual(a[i].Score, b[i].Score) {
			t.Errorf("match %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// TestEvaluateTopic_PerfectRun checks the evaluator round-trip: a single
// relevant doc at rank 1 yields AP = NDCG@k = 1.0, while P@10 is 0.1
// because its denominator stays 10 for a one-result list (spec §8).
func TestEvaluateTopic_PerfectRun(t *testing.T) {
	judgments := map[string]int{"D1": 1}
	results := []RunResult{{TopicID: "401", Docno: "D1", Rank: 1, Score: 1.0}}

	m := EvaluateTopic(results, judgments)
	if !almostEqual(m.AP, 1.0) {
		t.Errorf("AP = %v, want 1.0", m.AP)
	}
	if !almostEqual(m.P10, 0.1) {
		t.Errorf("P10 = %v, want 0.1 (one relevant hit out of a fixed denominator of 10)", m.P10)
	}
	if !almostEqual(m.NDCG10, 1.0) {
		t.Errorf("NDCG10 = %v, want 1.0", m.NDCG10)
	}
	if !almostEqual(m.NDCG1000, 1.0) {
		t.Errorf("NDCG1000 = %v, want 1.0", m.NDCG1000)
	}
}
