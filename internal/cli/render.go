package cli

import (
	"fmt"
	"strings"

	"subject-quiz/internal/quiz"
)

func (a *App) render(state quiz.State) {
	var b strings.Builder
	switch state.Status {
	case quiz.StatusIdle:
		renderIdle(&b, a.subjects)
	case quiz.StatusReady:
		renderReady(&b, state, a.controller.Budget())
	case quiz.StatusActive:
		renderActive(&b, state)
	case quiz.StatusFinished:
		renderFinished(&b, state)
	}
	a.printf("%s", b.String())
}

func renderIdle(b *strings.Builder, subjects SubjectLister) {
	b.WriteString("\nChoose a subject:\n")
	for _, subject := range subjects.Subjects() {
		fmt.Fprintf(b, "  %s\n", subject)
	}
}

func renderReady(b *strings.Builder, state quiz.State, budget int) {
	fmt.Fprintf(b, "\n%s: %d questions, %d seconds.\n", state.Subject, len(state.Questions), budget)
	if len(state.Questions) == 0 {
		b.WriteString("No questions for this subject. Pick another one.\n")
		return
	}
	b.WriteString("Type 'start' to begin.\n")
}

func renderActive(b *strings.Builder, state quiz.State) {
	question, ok := state.Current()
	if !ok {
		fmt.Fprintf(b, "\nNo questions for %s. Type 'finish' to end the run.\n", state.Subject)
		return
	}

	timer := fmt.Sprintf("%ds left", state.TimeLeft)
	if state.LowTime() {
		timer = "!! " + timer
	}
	fmt.Fprintf(b, "\nQ%d/%d  %s  [%s]\n", state.Index+1, len(state.Questions), state.Subject, timer)
	fmt.Fprintf(b, "%s\n\n", question.Prompt)

	selected := state.CurrentAnswer()
	for idx, option := range question.Options {
		marker := " "
		if selected.Answered() && int(selected) == idx {
			marker = ">"
		}
		fmt.Fprintf(b, "%s %s. %s\n", marker, quiz.OptionLetter(idx), option)
	}

	nav := "n next"
	if state.IsLast() {
		nav = "f finish"
	}
	fmt.Fprintf(b, "\nAnswered %d/%d. Letter to answer, %s, p prev.\n", state.AnsweredCount(), len(state.Questions), nav)
}

func renderFinished(b *strings.Builder, state quiz.State) {
	fmt.Fprintf(b, "\nScore: %d/%d\n", quiz.Score(state), len(state.Questions))
	for _, item := range quiz.Review(state) {
		verdict := "wrong"
		if item.Correct {
			verdict = "correct"
		}
		fmt.Fprintf(b, "\n%d. %s\n", item.Number, item.Question)
		if item.Answered {
			fmt.Fprintf(b, "   Your answer: %s (%s)\n", item.YourAnswer, verdict)
		} else {
			fmt.Fprintf(b, "   Your answer: %s\n", item.YourAnswer)
		}
		fmt.Fprintf(b, "   Correct answer: %s\n", item.CorrectAnswer)
		if item.Explanation != "" {
			fmt.Fprintf(b, "   %s\n", item.Explanation)
		}
	}
	b.WriteString("\nType 'restart' to try again or 'subjects' to pick another subject.\n")
}
