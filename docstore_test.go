package ctiscore

import (
	"bytes"
	"testing"
)

func TestDocumentStore_PutGet(t *testing.T) {
	root := t.TempDir()
	store := NewDocumentStore(root)

	date, ok := DateFromDocno("LA010189-0001")
	if !ok {
		t.Fatal("DateFromDocno() ok = false")
	}

	doc := ParsedDocument{
		Docno:       "LA010189-0001",
		InternalID:  0,
		Date:        date,
		Headline:    "Cats and Dogs",
		RawDocument: "<DOC>\n<DOCNO> LA010189-0001 </DOCNO>\n</DOC>",
	}
	if err := store.Put(doc); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok := store.Get(doc.Docno)
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if got.Docno != doc.Docno || got.Headline != doc.Headline {
		t.Errorf("Get() = %+v, want docno/headline matching %+v", got, doc)
	}
	if got.HumanDate != "January 1, 1989" {
		t.Errorf("HumanDate = %q, want %q", got.HumanDate, "January 1, 1989")
	}
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	root := t.TempDir()
	store := NewDocumentStore(root)
	if _, ok := store.Get("LA010189-9999"); ok {
		t.Error("Get() ok = true for nonexistent document, want false")
	}
}

func TestDocnoRegistry_EmitLoadRoundTrip(t *testing.T) {
	reg := NewDocnoRegistry()
	reg.Append("LA010189-0001")
	reg.Append("LA010189-0002")

	var buf bytes.Buffer
	if err := reg.Emit(&buf); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	loaded, err := LoadDocnoRegistry(&buf)
	if err != nil {
		t.Fatalf("LoadDocnoRegistry() error = %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", loaded.Len())
	}
	docno, ok := loaded.DocnoFor(1)
	if !ok || docno != "LA010189-0002" {
		t.Errorf("DocnoFor(1) = (%q, %v), want (LA010189-0002, true)", docno, ok)
	}
}

func TestDocLengths_Average(t *testing.T) {
	d := NewDocLengths()
	d.Append(4)
	d.Append(6)
	if avg := d.Average(); avg != 5 {
		t.Errorf("Average() = %v, want 5", avg)
	}
}

func TestDocLengths_Average_Empty(t *testing.T) {
	d := NewDocLengths()
	if avg := d.Average(); avg != 0 {
		t.Errorf("Average() = %v, want 0", avg)
	}
}

func TestDateFromDocno_InvalidDocno(t *testing.T) {
	if _, ok := DateFromDocno("not-a-docno"); ok {
		t.Error("DateFromDocno() ok = true for invalid docno, want false")
	}
}
