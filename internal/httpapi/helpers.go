package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"subject-quiz/internal/quiz"
)

var (
	errSubjectRequired = errors.New("subject is required")
	errOptionRequired  = errors.New("option or letter is required")
	errInvalidLetter   = errors.New("letter must be a single letter A-Z")
)

func (a *API) toStateResponse(state quiz.State) stateResponse {
	finished := state.Status == quiz.StatusFinished
	response := stateResponse{
		SessionID:     a.sessionID,
		Status:        state.Status,
		Index:         state.Index,
		Budget:        a.controller.Budget(),
		TimeLeft:      state.TimeLeft,
		LowTime:       state.LowTime(),
		QuestionCount: len(state.Questions),
		AnsweredCount: state.AnsweredCount(),
		Answers:       state.Answers,
		Questions:     toQuestionResponses(state.Questions, finished),
	}
	if state.Subject != "" {
		subject := state.Subject
		response.Subject = &subject
	}
	if state.Status == quiz.StatusActive || finished {
		if idx := state.Index; idx >= 0 && idx < len(response.Questions) {
			current := response.Questions[idx]
			response.Current = &current
		}
	}
	if finished {
		score := quiz.Score(state)
		response.Score = &score
	}
	return response
}

func toQuestionResponses(questions []quiz.Question, revealAnswers bool) []questionResponse {
	response := make([]questionResponse, 0, len(questions))
	for idx, question := range questions {
		options := make([]optionResponse, 0, len(question.Options))
		for optionIdx, text := range question.Options {
			options = append(options, optionResponse{Letter: quiz.OptionLetter(optionIdx), Text: text})
		}

		item := questionResponse{
			Number:     idx + 1,
			QuestionID: question.ID,
			Question:   question.Prompt,
			Options:    options,
		}
		if revealAnswers {
			correct := question.CorrectIndex
			item.CorrectIndex = &correct
			item.Explanation = question.Explanation
		}
		response = append(response, item)
	}
	return response
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
