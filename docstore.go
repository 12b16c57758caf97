// The document store persists each parsed document under a
// date-partitioned path and maintains the two flat-file sidecars that tie
// DocId back to docno and document length (spec §4.E). There is no pack
// example of a filesystem-backed record store to ground this on; it is
// plain os/filepath/bufio usage, which is the stdlib-appropriate case
// (no ecosystem library serves "write a file per record under a
// date-partitioned directory tree" better than os and path/filepath).
package ctiscore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParsedDocument is one fully extracted document, ready to be written to
// the store and folded into the lexicon/index (spec §3).
type ParsedDocument struct {
	Docno       string
	InternalID  int
	Date        time.Time
	Headline    string
	Text        string
	Graphic     string
	RawDocument string
}

// SearchableContent is the concatenation order retrieval must reproduce
// for BM25 scoring to match ingest-time tokenization (spec §3): graphic,
// then text, then headline.
func (d ParsedDocument) SearchableContent() string {
	return d.Graphic + " " + d.Text + " " + d.Headline
}

func humanDate(date time.Time) string {
	return fmt.Sprintf("%s %d, %d", monthNames[date.Month()-1], date.Day(), date.Year())
}

// DocumentStore persists ParsedDocuments under root as
// {root}/{year}/{month}/{day}/{docno}.txt.
type DocumentStore struct {
	root string
}

// NewDocumentStore returns a store rooted at root. The caller is
// responsible for the destination-must-not-exist precondition (spec
// §4.F); the store itself will happily create root on first Put.
func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{root: root}
}

func (s *DocumentStore) pathFor(date time.Time) string {
	return filepath.Join(s.root,
		strconv.Itoa(date.Year()),
		strconv.Itoa(int(date.Month())),
		strconv.Itoa(date.Day()))
}

// Put writes doc's five logical lines to
// {root}/{year}/{month}/{day}/{docno}.txt (spec §4.E), creating parent
// directories as needed.
func (s *DocumentStore) Put(doc ParsedDocument) error {
	dir := s.pathFor(doc.Date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("docstore: put %s: %w", doc.Docno, err)
	}

	path := filepath.Join(dir, doc.Docno+".txt")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("docstore: put %s: %w", doc.Docno, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "docno: %s\n", doc.Docno)
	fmt.Fprintf(w, "internal id: %d\n", doc.InternalID)
	fmt.Fprintf(w, "date: %s\n", humanDate(doc.Date))
	fmt.Fprintf(w, "headline: %s\n", doc.Headline)
	fmt.Fprintf(w, "raw document:\n")
	fmt.Fprintln(w, doc.RawDocument)
	return w.Flush()
}

// StoredDocument is the parsed-back form Get returns.
type StoredDocument struct {
	Docno       string
	InternalID  int
	HumanDate   string
	Headline    string
	RawDocument string
}

// Get re-derives doc's path from its docno's encoded date and reads it
// back. ok is false if the docno's date can't be decoded or its file is
// absent (spec §7 NotFound).
func (s *DocumentStore) Get(docno string) (doc StoredDocument, ok bool) {
	date, dateOK := DateFromDocno(docno)
	if !dateOK {
		return StoredDocument{}, false
	}

	path := filepath.Join(s.pathFor(date), docno+".txt")
	f, err := os.Open(path)
	if err != nil {
		return StoredDocument{}, false
	}
	defer f.Close()

	return parseStoredDocument(f, docno)
}

func parseStoredDocument(r io.Reader, docno string) (StoredDocument, bool) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	doc := StoredDocument{Docno: docno}
	var rawLines []string
	inRaw := false
	for sc.Scan() {
		line := sc.Text()
		if inRaw {
			rawLines = append(rawLines, line)
			continue
		}
		switch {
		case strings.HasPrefix(line, "internal id: "):
			id, err := strconv.Atoi(strings.TrimPrefix(line, "internal id: "))
			if err != nil {
				return StoredDocument{}, false
			}
			doc.InternalID = id
		case strings.HasPrefix(line, "date: "):
			doc.HumanDate = strings.TrimPrefix(line, "date: ")
		case strings.HasPrefix(line, "headline: "):
			doc.Headline = strings.TrimPrefix(line, "headline: ")
		case line == "raw document:":
			inRaw = true
		}
	}
	if err := sc.Err(); err != nil {
		return StoredDocument{}, false
	}
	doc.RawDocument = strings.Join(rawLines, "\n")
	return doc, true
}

// DocnoRegistry is the total function DocId -> Docno (spec §3), persisted
// as one docno per line where line i (0-based) is the docno of DocId i.
type DocnoRegistry struct {
	docnos []string
}

// NewDocnoRegistry returns an empty registry.
func NewDocnoRegistry() *DocnoRegistry { return &DocnoRegistry{} }

// Append records the docno for the next DocId (len(docnos) before the
// call) and returns that DocId.
func (r *DocnoRegistry) Append(docno string) int {
	id := len(r.docnos)
	r.docnos = append(r.docnos, docno)
	return id
}

// DocnoFor returns the docno for docID, or "" with ok false if out of
// range.
func (r *DocnoRegistry) DocnoFor(docID int) (string, bool) {
	if docID < 0 || docID >= len(r.docnos) {
		return "", false
	}
	return r.docnos[docID], true
}

// Len returns the number of registered documents.
func (r *DocnoRegistry) Len() int { return len(r.docnos) }

// Emit writes index_registrar.txt (spec §6).
func (r *DocnoRegistry) Emit(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, docno := range r.docnos {
		if _, err := fmt.Fprintln(bw, docno); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadDocnoRegistry reads index_registrar.txt back.
func LoadDocnoRegistry(r io.Reader) (*DocnoRegistry, error) {
	reg := NewDocnoRegistry()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		reg.Append(sc.Text())
	}
	return reg, sc.Err()
}

// DocLengths is the total function DocId -> token count (spec §3),
// persisted as one integer per line where line i (0-based) is the length
// of DocId i.
type DocLengths struct {
	lengths []int
}

// NewDocLengths returns an empty length table.
func NewDocLengths() *DocLengths { return &DocLengths{} }

// Append records the token count for the next DocId.
func (d *DocLengths) Append(length int) {
	d.lengths = append(d.lengths, length)
}

// LengthOf returns the token count for docID, or 0 with ok false if out of
// range.
func (d *DocLengths) LengthOf(docID int) (int, bool) {
	if docID < 0 || docID >= len(d.lengths) {
		return 0, false
	}
	return d.lengths[docID], true
}

// Len returns the number of documents with a recorded length.
func (d *DocLengths) Len() int { return len(d.lengths) }

// Average returns the arithmetic mean doc length (avgdl, spec §4.G), 0 for
// an empty table.
func (d *DocLengths) Average() float64 {
	if len(d.lengths) == 0 {
		return 0
	}
	sum := 0
	for _, l := range d.lengths {
		sum += l
	}
	return float64(sum) / float64(len(d.lengths))
}

// Emit writes doc-lengths.txt (spec §6).
func (d *DocLengths) Emit(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, l := range d.lengths {
		if _, err := fmt.Fprintln(bw, l); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadDocLengths reads doc-lengths.txt back.
func LoadDocLengths(r io.Reader) (*DocLengths, error) {
	d := NewDocLengths()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, fmt.Errorf("doclengths: %w", err)
		}
		d.Append(n)
	}
	return d, sc.Err()
}
