package ctiscore

import (
	"bytes"
	"compress/gzip"
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func gzipCorpus(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return &buf
}

const indexerCorpus = `<DOC>
<DOCNO> LA010189-0001 </DOCNO>
<TEXT>Cats and dogs. Dogs bark.</TEXT>
</DOC>
`

func TestIndexer_IndexStreamAndFlush(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "idx")

	ix, err := NewIndexer(dest, false, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("NewIndexer() error = %v", err)
	}

	if err := ix.IndexStream(gzipCorpus(t, indexerCorpus)); err != nil {
		t.Fatalf("IndexStream() error = %v", err)
	}
	if err := ix.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if ix.DocumentCount() != 1 {
		t.Fatalf("DocumentCount() = %d, want 1", ix.DocumentCount())
	}

	artifacts, err := LoadIndexArtifacts(dest)
	if err != nil {
		t.Fatalf("LoadIndexArtifacts() error = %v", err)
	}

	wantTerms := []string{"cats", "and", "dogs", "bark"}
	for i, term := range wantTerms {
		id, ok := artifacts.Lexicon.Lookup(term)
		if !ok || id != i+1 {
			t.Errorf("Lookup(%q) = (%d, %v), want (%d, true)", term, id, ok, i+1)
		}
	}

	dogsID, _ := artifacts.Lexicon.Lookup("dogs")
	postings, err := artifacts.Index.PostingsFor(dogsID)
	if err != nil {
		t.Fatalf("PostingsFor(dogs) error = %v", err)
	}
	if len(postings) != 1 || postings[0].DocID != 0 || postings[0].Freq != 2 {
		t.Errorf("PostingsFor(dogs) = %v, want [{0 2}]", postings)
	}

	length, ok := artifacts.Lengths.LengthOf(0)
	if !ok || length != 5 {
		t.Errorf("LengthOf(0) = (%d, %v), want (5, true)", length, ok)
	}

	docno, ok := artifacts.Registry.DocnoFor(0)
	if !ok || docno != "LA010189-0001" {
		t.Errorf("DocnoFor(0) = (%q, %v), want (LA010189-0001, true)", docno, ok)
	}
}

func TestNewIndexer_RejectsExistingDestination(t *testing.T) {
	dest := t.TempDir()
	if _, err := NewIndexer(dest, false, zerolog.New(io.Discard)); err == nil {
		t.Error("NewIndexer() with pre-existing directory did not error")
	}
}
