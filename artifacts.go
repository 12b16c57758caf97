// Loading persisted index artifacts back from disk for retrieval and
// evaluation (spec §6). Grounded on the same load/flush split
// Zeeeepa-blaze's serialization.go draws between building an index and
// reading one back, though the on-disk shapes here are the spec's
// plain-text/JSON formats rather than that file's bespoke binary
// skip-list encoding.
package ctiscore

import (
	"fmt"
	"os"
	"path/filepath"
)

// IndexArtifacts bundles the four on-disk structures a retrieval or
// evaluation run needs (spec §6).
type IndexArtifacts struct {
	Lexicon  *Lexicon
	Index    *InvertedIndex
	Registry *DocnoRegistry
	Lengths  *DocLengths
	Store    *DocumentStore
}

// LoadIndexArtifacts reads lexicon.txt, inverted_index.json,
// index_registrar.txt, and doc-lengths.txt from dir. ErrMissingIndexArtifact
// wraps the name of whichever file is absent or unreadable.
func LoadIndexArtifacts(dir string) (*IndexArtifacts, error) {
	lexiconFile, err := os.Open(filepath.Join(dir, "lexicon.txt"))
	if err != nil {
		return nil, fmt.Errorf("%w: lexicon.txt: %v", ErrMissingIndexArtifact, err)
	}
	defer lexiconFile.Close()
	lexicon, err := LoadLexicon(lexiconFile)
	if err != nil {
		return nil, fmt.Errorf("%w: lexicon.txt: %v", ErrMissingIndexArtifact, err)
	}

	indexFile, err := os.Open(filepath.Join(dir, "inverted_index.json"))
	if err != nil {
		return nil, fmt.Errorf("%w: inverted_index.json: %v", ErrMissingIndexArtifact, err)
	}
	defer indexFile.Close()
	index, err := LoadInvertedIndex(indexFile)
	if err != nil {
		return nil, fmt.Errorf("%w: inverted_index.json: %v", ErrMissingIndexArtifact, err)
	}

	registryFile, err := os.Open(filepath.Join(dir, "index_registrar.txt"))
	if err != nil {
		return nil, fmt.Errorf("%w: index_registrar.txt: %v", ErrMissingIndexArtifact, err)
	}
	defer registryFile.Close()
	registry, err := LoadDocnoRegistry(registryFile)
	if err != nil {
		return nil, fmt.Errorf("%w: index_registrar.txt: %v", ErrMissingIndexArtifact, err)
	}

	lengthsFile, err := os.Open(filepath.Join(dir, "doc-lengths.txt"))
	if err != nil {
		return nil, fmt.Errorf("%w: doc-lengths.txt: %v", ErrMissingIndexArtifact, err)
	}
	defer lengthsFile.Close()
	lengths, err := LoadDocLengths(lengthsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: doc-lengths.txt: %v", ErrMissingIndexArtifact, err)
	}

	return &IndexArtifacts{
		Lexicon:  lexicon,
		Index:    index,
		Registry: registry,
		Lengths:  lengths,
		Store:    NewDocumentStore(dir),
	}, nil
}
