package quiz

import (
	"slices"
	"strconv"
)

// DefaultBudget is the countdown, in seconds, allotted to each quiz run.
const DefaultBudget = 60

// LowTimeThreshold is the remaining time, in seconds, at which presentations
// start warning the user.
const LowTimeThreshold = 10

type Status string

const (
	StatusIdle     Status = "idle"
	StatusReady    Status = "ready"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Answer is a selected option index, or Unanswered.
type Answer int

const Unanswered Answer = -1

func (a Answer) Answered() bool {
	return a >= 0
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if !a.Answered() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(a))), nil
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Unanswered
		return nil
	}
	value, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*a = Answer(value)
	return nil
}

// State is the whole mutable aggregate of one quiz session. Subject is empty
// until a subject has been chosen.
type State struct {
	Subject   string     `json:"subject"`
	Questions []Question `json:"questions"`
	Status    Status     `json:"status"`
	Index     int        `json:"index"`
	Answers   []Answer   `json:"answers"`
	TimeLeft  int        `json:"time_left"`
}

func NewState(budget int) State {
	return State{
		Questions: []Question{},
		Status:    StatusIdle,
		Answers:   []Answer{},
		TimeLeft:  budget,
	}
}

// Current returns the question at Index, if there is one.
func (s State) Current() (Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Index], true
}

func (s State) CurrentAnswer() Answer {
	if s.Index < 0 || s.Index >= len(s.Answers) {
		return Unanswered
	}
	return s.Answers[s.Index]
}

func (s State) AnsweredCount() int {
	count := 0
	for _, answer := range s.Answers {
		if answer.Answered() {
			count++
		}
	}
	return count
}

// LowTime reports whether an active run is within LowTimeThreshold.
func (s State) LowTime() bool {
	return s.Status == StatusActive && s.TimeLeft <= LowTimeThreshold
}

func (s State) IsLast() bool {
	return s.Index >= len(s.Questions)-1
}

// Clone copies the answers so callers can hold the snapshot past the next
// dispatch. Questions are shared; they are never mutated after selection.
func (s State) Clone() State {
	s.Answers = slices.Clone(s.Answers)
	if s.Answers == nil {
		s.Answers = []Answer{}
	}
	return s
}
