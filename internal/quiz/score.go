package quiz

// Score counts answers that match their question's correct index.
func Score(state State) int {
	score := 0
	for idx, answer := range state.Answers {
		if idx >= len(state.Questions) {
			break
		}
		if answer.Answered() && int(answer) == state.Questions[idx].CorrectIndex {
			score++
		}
	}
	return score
}

type ReviewItem struct {
	Number        int    `json:"number"`
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	Answered      bool   `json:"answered"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

const notAnswered = "Not answered"

// Review lists every question of the run alongside the recorded answer.
func Review(state State) []ReviewItem {
	items := make([]ReviewItem, 0, len(state.Questions))
	for idx, question := range state.Questions {
		answer := Unanswered
		if idx < len(state.Answers) {
			answer = state.Answers[idx]
		}

		item := ReviewItem{
			Number:        idx + 1,
			QuestionID:    question.ID,
			Question:      question.Prompt,
			YourAnswer:    notAnswered,
			CorrectAnswer: question.CorrectOption(),
			Explanation:   question.Explanation,
		}
		if answer.Answered() {
			item.Answered = true
			item.YourAnswer = question.OptionText(int(answer))
			item.Correct = int(answer) == question.CorrectIndex
		}
		items = append(items, item)
	}
	return items
}
