package dataset

import "testing"

func TestBuiltinQuestionsAreValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, subject := range Builtin() {
		if len(subject.Questions) == 0 {
			t.Fatalf("subject %s has no questions", subject.Name)
		}
		for _, question := range subject.Questions {
			if err := question.Validate(); err != nil {
				t.Fatalf("%s/%s: %v", subject.Name, question.ID, err)
			}
			if seen[question.ID] {
				t.Fatalf("duplicate question id %s", question.ID)
			}
			seen[question.ID] = true
		}
	}
}

func TestNewBankSubjectOrder(t *testing.T) {
	got := NewBank().Subjects()
	want := []string{SubjectDSA, SubjectDBMS, SubjectOS, SubjectCloud}
	if len(got) != len(want) {
		t.Fatalf("subjects = %v, want %v", got, want)
	}
	for idx := range want {
		if got[idx] != want[idx] {
			t.Fatalf("subjects = %v, want %v", got, want)
		}
	}
}
