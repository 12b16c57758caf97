// The indexer orchestrates the splitter, tokenizer, lexicon, inverted
// index, and document store into one ingest pass (spec §4.F). Grounded on
// Zeeeepa-blaze's index.go AddDocument flow (tokenize -> per-term frequency
// count -> per-term postings.Insert), generalized to also drive the
// document store and the docno/length sidecars this corpus's spec
// requires.
package ctiscore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Indexer drives one ingest run, writing results under root.
type Indexer struct {
	root    string
	stem    bool
	logger  zerolog.Logger
	lexicon *Lexicon
	index   *InvertedIndex
	store   *DocumentStore
	reg     *DocnoRegistry
	lens    *DocLengths
}

// NewIndexer prepares an ingest run rooted at root. root must not already
// exist (spec §4.F precondition); ErrOutputConflict is returned otherwise.
func NewIndexer(root string, stem bool, logger zerolog.Logger) (*Indexer, error) {
	if _, err := os.Stat(root); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrOutputConflict, root)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("indexer: stat %s: %w", root, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("indexer: create %s: %w", root, err)
	}

	return &Indexer{
		root:    root,
		stem:    stem,
		logger:  logger,
		lexicon: NewLexicon(),
		index:   NewInvertedIndex(),
		store:   NewDocumentStore(root),
		reg:     NewDocnoRegistry(),
		lens:    NewDocLengths(),
	}, nil
}

// IndexStream consumes a gzip-compressed SGML corpus and folds every
// document into the lexicon, inverted index, document store, and
// sidecars. Documents with no recognizable docno are skipped and logged,
// not fatal to the run.
func (ix *Indexer) IndexStream(r io.Reader) error {
	return SplitDocuments(r, func(raw RawDocument) error {
		text := raw.String()
		fields, ok := ExtractFields(text)
		if !ok {
			ix.logger.Warn().Msg("skipping document with unparseable docno")
			return nil
		}

		docID := ix.reg.Append(fields.Docno)
		parsed := ParsedDocument{
			Docno:       fields.Docno,
			InternalID:  docID,
			Date:        fields.Date,
			Headline:    fields.Headline,
			Text:        fields.Text,
			Graphic:     fields.Graphic,
			RawDocument: text,
		}

		tokens := Tokenize(parsed.SearchableContent(), ix.stem)
		ix.lens.Append(len(tokens))

		freq := make(map[string]int, len(tokens))
		order := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if _, seen := freq[tok]; !seen {
				order = append(order, tok)
			}
			freq[tok]++
		}
		for _, tok := range order {
			termID := ix.lexicon.IDOf(tok)
			if err := ix.index.Append(termID, docID, freq[tok]); err != nil {
				return fmt.Errorf("indexer: doc %s: %w", fields.Docno, err)
			}
		}

		if err := ix.store.Put(parsed); err != nil {
			return fmt.Errorf("indexer: doc %s: %w", fields.Docno, err)
		}

		ix.logger.Debug().
			Str("docno", fields.Docno).
			Int("docID", docID).
			Int("tokens", len(tokens)).
			Msg("indexed document")
		return nil
	})
}

// Flush writes lexicon.txt, inverted_index.json, index_registrar.txt, and
// doc-lengths.txt under root (spec §4.E end-of-ingest emission).
func (ix *Indexer) Flush() error {
	writers := []struct {
		name string
		emit func(f *os.File) error
	}{
		{"lexicon.txt", func(f *os.File) error { return ix.lexicon.Emit(f) }},
		{"inverted_index.json", func(f *os.File) error { return ix.index.Emit(f) }},
		{"index_registrar.txt", func(f *os.File) error { return ix.reg.Emit(f) }},
		{"doc-lengths.txt", func(f *os.File) error { return ix.lens.Emit(f) }},
	}
	for _, w := range writers {
		path := filepath.Join(ix.root, w.name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("indexer: flush %s: %w", w.name, err)
		}
		err = w.emit(f)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("indexer: flush %s: %w", w.name, err)
		}
		if closeErr != nil {
			return fmt.Errorf("indexer: flush %s: %w", w.name, closeErr)
		}
	}
	ix.logger.Info().
		Int("documents", ix.reg.Len()).
		Int("terms", ix.lexicon.Size()).
		Msg("ingest complete")
	return nil
}

// DocumentCount returns the number of documents ingested so far (N in the
// BM25 formula, spec §4.G).
func (ix *Indexer) DocumentCount() int { return ix.reg.Len() }
