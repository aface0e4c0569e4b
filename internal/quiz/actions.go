package quiz

type ActionType string

const (
	ActionChooseSubject ActionType = "chooseSubject"
	ActionStart         ActionType = "start"
	ActionSelect        ActionType = "select"
	ActionNext          ActionType = "next"
	ActionPrev          ActionType = "prev"
	ActionTick          ActionType = "tick"
	ActionFinish        ActionType = "finish"
	ActionRestart       ActionType = "restart"
)

// Action is a user or timer intent. Subject is read by chooseSubject; select
// reads Letter when set and Option otherwise. Other types ignore all three.
type Action struct {
	Type    ActionType `json:"type"`
	Subject string     `json:"subject,omitempty"`
	Option  int        `json:"option,omitempty"`
	Letter  string     `json:"letter,omitempty"`
}

func ChooseSubject(subject string) Action {
	return Action{Type: ActionChooseSubject, Subject: subject}
}

func Start() Action { return Action{Type: ActionStart} }

func Select(option int) Action {
	return Action{Type: ActionSelect, Option: option}
}

// SelectLetter picks an option by its letter, resolved against the question
// that is current when the action is applied.
func SelectLetter(letter string) Action {
	return Action{Type: ActionSelect, Letter: letter}
}

func Next() Action    { return Action{Type: ActionNext} }
func Prev() Action    { return Action{Type: ActionPrev} }
func Tick() Action    { return Action{Type: ActionTick} }
func Finish() Action  { return Action{Type: ActionFinish} }
func Restart() Action { return Action{Type: ActionRestart} }
