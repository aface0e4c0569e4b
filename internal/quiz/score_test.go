package quiz

import "testing"

func TestScoreCountsOnlyMatchingAnswers(t *testing.T) {
	questions := dsaQuestions()

	tests := []struct {
		name    string
		answers []Answer
		want    int
	}{
		{name: "no answers", answers: []Answer{}, want: 0},
		{name: "all unanswered", answers: []Answer{Unanswered, Unanswered, Unanswered}, want: 0},
		{name: "all correct", answers: []Answer{1, 0, 2}, want: 3},
		{name: "mixed", answers: []Answer{1, Unanswered, 0}, want: 1},
		{name: "all wrong", answers: []Answer{0, 1, 1}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := State{Questions: questions, Answers: tc.answers}
			got := Score(state)
			if got != tc.want {
				t.Fatalf("Score = %d, want %d", got, tc.want)
			}
			if got < 0 || got > len(questions) {
				t.Fatalf("score %d outside [0, %d]", got, len(questions))
			}
		})
	}
}

func TestReviewDescribesEachQuestion(t *testing.T) {
	questions := dsaQuestions()
	questions[0].Explanation = "Stacks pop the most recent push."
	state := State{Questions: questions, Answers: []Answer{1, 1, Unanswered}, Status: StatusFinished}

	items := Review(state)
	if len(items) != 3 {
		t.Fatalf("review items = %d, want 3", len(items))
	}

	first := items[0]
	if !first.Correct || first.YourAnswer != "LIFO" || first.CorrectAnswer != "LIFO" || first.Number != 1 {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if first.Explanation != "Stacks pop the most recent push." {
		t.Fatalf("explanation = %q", first.Explanation)
	}

	second := items[1]
	if second.Correct || second.YourAnswer != "O(n)" || second.CorrectAnswer != "O(log n)" {
		t.Fatalf("unexpected second item: %+v", second)
	}

	third := items[2]
	if third.Answered || third.Correct || third.YourAnswer != "Not answered" {
		t.Fatalf("unexpected third item: %+v", third)
	}
}

func TestReviewBeforeStartTreatsEverythingAsUnanswered(t *testing.T) {
	state := State{Questions: dsaQuestions(), Answers: []Answer{}}
	for _, item := range Review(state) {
		if item.Answered {
			t.Fatalf("item %d reported answered before start", item.Number)
		}
	}
}
