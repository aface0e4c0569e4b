package quiz

// Reduce applies action to state and returns the next state. It never fails:
// actions whose preconditions do not hold, and unknown action types, return
// state unchanged. Select copies the answers before writing; every other path
// may return the input's answers slice as is, which is never written to.
func Reduce(state State, action Action, provider Provider, budget int) State {
	switch action.Type {
	case ActionChooseSubject:
		return readyState(action.Subject, provider, budget)

	case ActionStart:
		answers := make([]Answer, len(state.Questions))
		for idx := range answers {
			answers[idx] = Unanswered
		}
		state.Status = StatusActive
		state.Answers = answers
		state.Index = 0
		state.TimeLeft = budget
		return state

	case ActionSelect:
		if state.Status != StatusActive || state.Index >= len(state.Answers) {
			return state
		}
		question, ok := state.Current()
		if !ok {
			return state
		}
		option := action.Option
		if action.Letter != "" {
			if option, ok = LetterIndex(action.Letter, len(question.Options)); !ok {
				return state
			}
		}
		if option < 0 || option >= len(question.Options) {
			return state
		}
		state = state.Clone()
		state.Answers[state.Index] = Answer(option)
		return state

	case ActionNext:
		if state.Status != StatusActive {
			return state
		}
		state.Index = clampIndex(state.Index+1, len(state.Questions))
		return state

	case ActionPrev:
		if state.Status != StatusActive {
			return state
		}
		state.Index = clampIndex(state.Index-1, len(state.Questions))
		return state

	case ActionTick:
		if state.Status != StatusActive {
			return state
		}
		if state.TimeLeft <= 1 {
			state.TimeLeft = 0
			state.Status = StatusFinished
			return state
		}
		state.TimeLeft--
		return state

	case ActionFinish:
		if state.Status != StatusActive {
			return state
		}
		state.Status = StatusFinished
		return state

	case ActionRestart:
		if state.Subject == "" {
			return state
		}
		return readyState(state.Subject, provider, budget)

	default:
		return state
	}
}

func readyState(subject string, provider Provider, budget int) State {
	var questions []Question
	if provider != nil {
		questions = provider.Lookup(subject)
	}
	if questions == nil {
		questions = []Question{}
	}
	return State{
		Subject:   subject,
		Questions: questions,
		Status:    StatusReady,
		Index:     0,
		Answers:   []Answer{},
		TimeLeft:  budget,
	}
}

// clampIndex keeps index inside [0, count-1]; an empty sequence pins it at 0.
func clampIndex(index, count int) int {
	if index > count-1 {
		index = count - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
