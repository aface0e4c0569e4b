package opentdb

import (
	"html"
	"math/rand"
	"strings"

	"subject-quiz/internal/quiz"
)

// Shuffler reorders n items through swap; rand.Shuffle satisfies it.
type Shuffler func(n int, swap func(i, j int))

// BuildQuestions converts OpenTDB payloads into quiz questions, unescaping
// HTML entities and shuffling the correct answer in among the distractors.
func BuildQuestions(raw []RawQuestion, shuffle Shuffler) []quiz.Question {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	questions := make([]quiz.Question, 0, len(raw))
	for _, item := range raw {
		question := buildQuestion(item, shuffle)
		question.ID = quiz.MakeQuestionID(question)
		questions = append(questions, question)
	}
	return questions
}

func buildQuestion(raw RawQuestion, shuffle Shuffler) quiz.Question {
	type choice struct {
		text      string
		isCorrect bool
	}

	choices := make([]choice, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		choices = append(choices, choice{
			text:      html.UnescapeString(incorrect),
			isCorrect: false,
		})
	}

	choices = append(choices, choice{
		text:      html.UnescapeString(raw.CorrectAnswer),
		isCorrect: true,
	})

	shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	options := make([]string, len(choices))
	correctIndex := -1
	for idx, candidate := range choices {
		options[idx] = candidate.text
		if candidate.isCorrect {
			correctIndex = idx
		}
	}

	return quiz.Question{
		Prompt:       html.UnescapeString(raw.Question),
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  explanation(raw),
	}
}

func explanation(raw RawQuestion) string {
	parts := make([]string, 0, 2)
	if category := html.UnescapeString(strings.TrimSpace(raw.Category)); category != "" {
		parts = append(parts, "Category: "+category)
	}
	if difficulty := strings.TrimSpace(raw.Difficulty); difficulty != "" {
		parts = append(parts, "Difficulty: "+difficulty)
	}
	return strings.Join(parts, " · ")
}
