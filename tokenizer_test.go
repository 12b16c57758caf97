package ctiscore

import (
	"reflect"
	"testing"
)

func TestTokenize_NoStem(t *testing.T) {
	got := Tokenize("Cats and dogs. Dogs bark.", false)
	want := []string{"cats", "and", "dogs", "dogs", "bark"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_Stem(t *testing.T) {
	got := Tokenize("running runners", true)
	want := []string{"run", "runner"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(stem=true) = %v, want %v", got, want)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	got := Tokenize("", false)
	if len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestTokenize_UnderscoreIsWordChar(t *testing.T) {
	got := Tokenize("foo_bar baz", false)
	want := []string{"foo_bar", "baz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_NonWordRunsCollapse(t *testing.T) {
	got := Tokenize("a,,,b   c---d", false)
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}
