package tokenizer

import (
	"reflect"
	"testing"

	"github.com/gcbaptista/go-questions/model"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple lowercase", "hello world", []string{"hello", "world"}},
		{"with punctuation", "Hello, World!", []string{"hello", "world"}},
		{"stopwords removed", "The cat sat on the mat.", []string{"cat", "sat", "mat"}},
		{"question", "What is the capital of France?", []string{"capital", "france"}},
		{"hyphens are stripped not split", "state-of-the-art", []string{"stateoftheart"}},
		{"apostrophe", "Don't stop", []string{"dont", "stop"}},
		{"leading/trailing spaces", "  multiple   spaces  ", []string{"multiple", "spaces"}},
		{"duplicates retained", "dog dog cat", []string{"dog", "dog", "cat"}},
		{"only stopwords", "the and of", []string{}},
		{"only symbols", "!@#$%^", []string{}},
		{"numbers", "Python 3.10 released in 2021", []string{"python", "310", "released", "2021"}},
		{"all caps word", "HELLO WORLD", []string{"hello", "world"}},
		{"newlines and tabs", "neural\tnetworks\nlearn", []string{"neural", "networks", "learn"}},
		{"accented", "Café CAFÉ", []string{"café", "café"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_Stemming(t *testing.T) {
	tok := New(Options{Stem: true})

	got := tok.Tokenize("The dogs were running")
	want := []string{"dog", "run"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize with stemming = %v, want %v", got, want)
	}

	plain := New(Options{}).Tokenize("The dogs were running")
	if !reflect.DeepEqual(plain, []string{"dogs", "running"}) {
		t.Errorf("Tokenize without stemming = %v, want [dogs running]", plain)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello, World!", "hello world"},
		{"ALL CAPS", "all caps"},
		{"école", "école"},
		{"(parenthetical) remark...", "parenthetical remark"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"Straße ÉCOLE",
		"é’cole",
		"a.́b",
		"Ünïcödé — with “quotes” and 'apostrophes'",
		"   spaced\t\tout\n\nlines  ",
		"12,345.67 $ 100%",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once %q, twice %q", input, once, twice)
		}
	}
}

func TestFunc(t *testing.T) {
	var called string
	f := Func(func(text string) []string {
		called = text
		return []string{"fixed"}
	})

	got := f.Tokenize("anything")
	if called != "anything" || !reflect.DeepEqual(got, []string{"fixed"}) {
		t.Errorf("Func.Tokenize did not delegate: called=%q got=%v", called, got)
	}
}

func TestQuerySet(t *testing.T) {
	got := New(Options{}).QuerySet("Who invented the telephone? The telephone!")
	want := model.Query{"invented": {}, "telephone": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuerySet = %v, want %v", got, want)
	}
}

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"the", "is", "wouldn't", "i"} {
		if !IsStopword(w) {
			t.Errorf("Expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"cat", "python", "dont"} {
		if IsStopword(w) {
			t.Errorf("Expected %q not to be a stopword", w)
		}
	}
}
