// The SGML document splitter consumes a gzip-compressed TREC/LA-Times
// stream line by line and hands each complete <DOC>...</DOC> record to the
// field extractor. Streaming is mandatory (spec §5): the corpus is never
// materialized in memory as a whole.
//
// Grounded on reichan1998's eutils/edirect (index.go, cache.go), which
// streams gzip-compressed bioinformatics records the same way: a
// bufio.Scanner over a parallel gzip reader, accumulating lines into a
// per-record buffer until a delimiter is seen.
package ctiscore

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/klauspost/pgzip"
)

// RawDocument is one accumulated <DOC>...</DOC> record, still containing
// its SGML tags.
type RawDocument struct {
	Lines []string
}

// String joins the record's lines back into the raw document text stored
// verbatim in the document store (spec §4.E "raw document" body).
func (d RawDocument) String() string {
	return strings.Join(d.Lines, "\n")
}

// SplitDocuments streams r (a gzip-compressed SGML corpus) and invokes fn
// once per complete document, in stream order. It never buffers more than
// one in-progress document's lines at a time.
func SplitDocuments(r io.Reader, fn func(RawDocument) error) error {
	gz, err := pgzip.NewReader(r)
	if err != nil {
		return err
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var buf []string
	for scanner.Scan() {
		line := scanner.Text()
		buf = append(buf, line)
		if strings.Contains(line, "</DOC>") {
			if err := fn(RawDocument{Lines: buf}); err != nil {
				return err
			}
			buf = nil
		}
	}
	return scanner.Err()
}

// ExtractedFields holds the per-document values the indexer needs out of
// a raw SGML record, per spec §4.B.
type ExtractedFields struct {
	Docno    string
	Date     time.Time
	Headline string
	Text     string
	Graphic  string
}

// ExtractFields pulls DOCNO/HEADLINE/TEXT/GRAPHIC out of a raw document and
// parses the docno's embedded MMDDYY date. Returns false if the document
// has no recognizable docno or its date cannot be decoded; the indexer
// logs and skips such a document without assigning it a DocId.
func ExtractFields(raw string) (ExtractedFields, bool) {
	m := docnoFieldPattern.FindStringSubmatch(raw)
	if m == nil {
		return ExtractedFields{}, false
	}
	docno := m[1]

	date, ok := DateFromDocno(docno)
	if !ok {
		return ExtractedFields{}, false
	}

	return ExtractedFields{
		Docno:    docno,
		Date:     date,
		Headline: extractTag(headlineTagPattern, raw),
		Text:     extractTag(textTagPattern, raw),
		Graphic:  extractTag(graphicTagPattern, raw),
	}, true
}

// DateFromDocno decodes the MMDDYY date embedded in a docno of the form
// LA######-#### (spec §4.B), shared by the splitter and the document
// store's path re-derivation (spec §4.E).
func DateFromDocno(docno string) (time.Time, bool) {
	dm := docnoDatePattern.FindStringSubmatch(docno)
	if dm == nil {
		return time.Time{}, false
	}
	date, err := time.Parse("010206", dm[1])
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
