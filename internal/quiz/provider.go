package quiz

import "slices"

// Provider resolves a subject name to its ordered questions. Unknown subjects
// resolve to an empty sequence. Implementations must be read-only.
type Provider interface {
	Lookup(subject string) []Question
}

type ProviderFunc func(subject string) []Question

func (f ProviderFunc) Lookup(subject string) []Question {
	return f(subject)
}

type Subject struct {
	Name      string
	Questions []Question
}

// Bank is an in-memory Provider whose contents are fixed at construction.
type Bank struct {
	order     []string
	questions map[string][]Question
}

func NewBank(subjects ...Subject) *Bank {
	bank := &Bank{
		order:     make([]string, 0, len(subjects)),
		questions: make(map[string][]Question, len(subjects)),
	}
	for _, subject := range subjects {
		if _, exists := bank.questions[subject.Name]; !exists {
			bank.order = append(bank.order, subject.Name)
		}
		bank.questions[subject.Name] = cloneQuestions(subject.Questions)
	}
	return bank
}

func (b *Bank) Lookup(subject string) []Question {
	questions, ok := b.questions[subject]
	if !ok {
		return []Question{}
	}
	return cloneQuestions(questions)
}

// Subjects lists subject names in the order they were added.
func (b *Bank) Subjects() []string {
	return slices.Clone(b.order)
}

func (b *Bank) QuestionCount(subject string) int {
	return len(b.questions[subject])
}

func cloneQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for idx, question := range questions {
		question.Options = slices.Clone(question.Options)
		out[idx] = question
	}
	return out
}
