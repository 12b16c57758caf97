package ctiscore

import (
	"reflect"
	"testing"
)

func TestPostingList_AppendAscending(t *testing.T) {
	pl := NewPostingList()
	if err := pl.Append(0, 1); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := pl.Append(2, 3); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got := pl.Postings()
	want := []Posting{{DocID: 0, Freq: 1}, {DocID: 2, Freq: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Postings() = %v, want %v", got, want)
	}
}

func TestPostingList_AppendOutOfOrder(t *testing.T) {
	pl := NewPostingList()
	if err := pl.Append(5, 1); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := pl.Append(3, 1); err == nil {
		t.Error("Append() with non-ascending doc id did not error")
	}
}

func TestPostingList_FlatInterleaved(t *testing.T) {
	pl := NewPostingList()
	pl.Append(0, 1)
	pl.Append(2, 2)
	pl.Append(3, 1)

	got := pl.FlatInterleaved()
	want := []int{0, 1, 2, 2, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlatInterleaved() = %v, want %v", got, want)
	}
}

func TestPostingListFromFlat_RoundTrip(t *testing.T) {
	flat := []int{0, 1, 2, 2, 3, 1}
	pl, err := PostingListFromFlat(flat)
	if err != nil {
		t.Fatalf("PostingListFromFlat() error = %v", err)
	}
	if !reflect.DeepEqual(pl.FlatInterleaved(), flat) {
		t.Errorf("round trip mismatch: got %v, want %v", pl.FlatInterleaved(), flat)
	}
}

func TestPostingListFromFlat_RejectsNonAscending(t *testing.T) {
	_, err := PostingListFromFlat([]int{2, 1, 1, 1})
	if err == nil {
		t.Error("PostingListFromFlat() with non-ascending doc ids did not error")
	}
}
