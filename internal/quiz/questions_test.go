package quiz

import (
	"errors"
	"strings"
	"testing"
)

func TestMakeQuestionIDFormat(t *testing.T) {
	id := MakeQuestionID(Question{Prompt: "2 & 2 = ?", Options: []string{"3", "4"}})
	if !strings.HasPrefix(id, "q_") || len(id) != 14 {
		t.Fatalf("unexpected question id format: %q", id)
	}
}

func TestMakeQuestionIDDiffersWhenOptionOrderDiffers(t *testing.T) {
	q1 := Question{Prompt: "Ordering matters", Options: []string{"One", "Two"}}
	q2 := Question{Prompt: "Ordering matters", Options: []string{"Two", "One"}}

	id1 := MakeQuestionID(q1)
	id2 := MakeQuestionID(q2)
	if id1 == id2 {
		t.Fatalf("expected different IDs for different option ordering, got %q", id1)
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		wantErr  bool
	}{
		{name: "valid", question: Question{Prompt: "P", Options: []string{"a", "b"}, CorrectIndex: 1}},
		{name: "empty prompt", question: Question{Prompt: " ", Options: []string{"a", "b"}}, wantErr: true},
		{name: "one option", question: Question{Prompt: "P", Options: []string{"a"}}, wantErr: true},
		{name: "negative correct", question: Question{Prompt: "P", Options: []string{"a", "b"}, CorrectIndex: -1}, wantErr: true},
		{name: "correct past end", question: Question{Prompt: "P", Options: []string{"a", "b"}, CorrectIndex: 2}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.question.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidQuestion) {
					t.Fatalf("Validate() = %v, want ErrInvalidQuestion", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim and uppercase", input: " a ", want: "A"},
		{name: "already uppercase", input: "B", want: "B"},
		{name: "empty", input: "", want: ""},
		{name: "multiple chars", input: "AB", want: ""},
		{name: "whitespace", input: "   ", want: ""},
		{name: "digit", input: "1", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeLetter(tc.input); got != tc.want {
				t.Fatalf("NormalizeLetter(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestLetterIndex(t *testing.T) {
	if got, ok := LetterIndex("c", 4); !ok || got != 2 {
		t.Fatalf("LetterIndex(c, 4) = (%d, %t), want (2, true)", got, ok)
	}
	if _, ok := LetterIndex("E", 4); ok {
		t.Fatalf("LetterIndex(E, 4) should be out of range")
	}
	if OptionLetter(3) != "D" || OptionLetter(-1) != "" {
		t.Fatalf("OptionLetter mapping wrong")
	}
}

func TestBankLookupReturnsIndependentCopies(t *testing.T) {
	bank := NewBank(
		Subject{Name: "DSA", Questions: dsaQuestions()},
		Subject{Name: "OS", Questions: nil},
	)

	first := bank.Lookup("DSA")
	first[0].Options[0] = "mutated"
	second := bank.Lookup("DSA")
	if second[0].Options[0] != "FIFO" {
		t.Fatalf("bank contents changed through a lookup result: %q", second[0].Options[0])
	}

	if got := bank.Lookup("missing"); got == nil || len(got) != 0 {
		t.Fatalf("unknown subject lookup = %#v, want empty non-nil slice", got)
	}

	subjects := bank.Subjects()
	if len(subjects) != 2 || subjects[0] != "DSA" || subjects[1] != "OS" {
		t.Fatalf("subjects = %v, want [DSA OS]", subjects)
	}
}
