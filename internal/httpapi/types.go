package httpapi

import "subject-quiz/internal/quiz"

type healthResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
}

type subjectResponse struct {
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

type subjectsResponse struct {
	Subjects []subjectResponse `json:"subjects"`
}

type optionResponse struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// questionResponse omits the answer key until the run is finished.
type questionResponse struct {
	Number       int              `json:"number"`
	QuestionID   string           `json:"question_id"`
	Question     string           `json:"question"`
	Options      []optionResponse `json:"options"`
	CorrectIndex *int             `json:"correct_index,omitempty"`
	Explanation  string           `json:"explanation,omitempty"`
}

type stateResponse struct {
	SessionID     string             `json:"session_id"`
	Subject       *string            `json:"subject"`
	Status        quiz.Status        `json:"status"`
	Index         int                `json:"index"`
	Budget        int                `json:"budget"`
	TimeLeft      int                `json:"time_left"`
	LowTime       bool               `json:"low_time"`
	QuestionCount int                `json:"question_count"`
	AnsweredCount int                `json:"answered_count"`
	Answers       []quiz.Answer      `json:"answers"`
	Current       *questionResponse  `json:"current,omitempty"`
	Questions     []questionResponse `json:"questions"`
	Score         *int               `json:"score,omitempty"`
}

type actionRequest struct {
	Type    quiz.ActionType `json:"type"`
	Subject string          `json:"subject,omitempty"`
	Option  *int            `json:"option,omitempty"`
	Letter  string          `json:"letter,omitempty"`
}

type reviewResponse struct {
	SessionID string            `json:"session_id"`
	Subject   string            `json:"subject"`
	Score     int               `json:"score"`
	Total     int               `json:"total"`
	Items     []quiz.ReviewItem `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}
