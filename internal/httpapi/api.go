package httpapi

import (
	"github.com/google/uuid"

	"subject-quiz/internal/quiz"
)

// SubjectLister is the read side of a question bank the API exposes.
type SubjectLister interface {
	Subjects() []string
	QuestionCount(subject string) int
}

// API serves a single quiz session backed by one Controller.
type API struct {
	controller *quiz.Controller
	subjects   SubjectLister
	sessionID  string
}

func NewAPI(controller *quiz.Controller, subjects SubjectLister) *API {
	if subjects == nil {
		subjects = quiz.NewBank()
	}
	return &API{
		controller: controller,
		subjects:   subjects,
		sessionID:  uuid.NewString(),
	}
}

func (a *API) SessionID() string {
	return a.sessionID
}
