package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"subject-quiz/internal/config"
	"subject-quiz/internal/quiz"
)

func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", SessionID: a.sessionID})
}

func (a *API) HandleSubjects(w http.ResponseWriter, r *http.Request) {
	names := a.subjects.Subjects()
	response := subjectsResponse{Subjects: make([]subjectResponse, 0, len(names))}
	for _, name := range names {
		response.Subjects = append(response.Subjects, subjectResponse{
			Name:          name,
			QuestionCount: a.subjects.QuestionCount(name),
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (a *API) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.toStateResponse(a.controller.State()))
}

func (a *API) HandleActions(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request actionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	action, err := toAction(request)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	state := a.controller.Dispatch(action)
	config.WithContext(r.Context()).WithField("action", action.Type).
		WithField("status", state.Status).Info("action dispatched")
	writeJSON(w, http.StatusOK, a.toStateResponse(state))
}

func (a *API) HandleReview(w http.ResponseWriter, r *http.Request) {
	state := a.controller.State()
	if state.Status != quiz.StatusFinished {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "review is available once the quiz is finished"})
		return
	}

	writeJSON(w, http.StatusOK, reviewResponse{
		SessionID: a.sessionID,
		Subject:   state.Subject,
		Score:     quiz.Score(state),
		Total:     len(state.Questions),
		Items:     quiz.Review(state),
	})
}

// toAction validates a request body. Types the controller does not know pass
// through and leave the state unchanged. Ticks only come from the countdown,
// so a client-sent tick becomes an empty action.
func toAction(request actionRequest) (quiz.Action, error) {
	switch request.Type {
	case quiz.ActionChooseSubject:
		subject := strings.TrimSpace(request.Subject)
		if subject == "" {
			return quiz.Action{}, errSubjectRequired
		}
		return quiz.ChooseSubject(subject), nil
	case quiz.ActionSelect:
		if request.Option != nil {
			return quiz.Select(*request.Option), nil
		}
		if request.Letter == "" {
			return quiz.Action{}, errOptionRequired
		}
		if quiz.NormalizeLetter(request.Letter) == "" {
			return quiz.Action{}, errInvalidLetter
		}
		return quiz.SelectLetter(request.Letter), nil
	case quiz.ActionTick:
		return quiz.Action{}, nil
	default:
		return quiz.Action{Type: request.Type}, nil
	}
}
