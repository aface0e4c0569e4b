package quiz

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const minOptions = 2

var ErrInvalidQuestion = errors.New("invalid question")

// Question is a single multiple-choice item. Questions are treated as
// read-only once handed out by a Provider.
type Question struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if len(q.Options) < minOptions {
		return fmt.Errorf("%w: %q has %d options, need at least %d", ErrInvalidQuestion, q.Prompt, len(q.Options), minOptions)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: %q correct index %d out of range", ErrInvalidQuestion, q.Prompt, q.CorrectIndex)
	}
	return nil
}

func (q Question) CorrectOption() string {
	return q.OptionText(q.CorrectIndex)
}

func (q Question) OptionText(index int) string {
	if index < 0 || index >= len(q.Options) {
		return ""
	}
	return q.Options[index]
}

func MakeQuestionID(question Question) string {
	var keyBuilder strings.Builder
	keyBuilder.WriteString(question.Prompt)
	for _, option := range question.Options {
		keyBuilder.WriteString("|")
		keyBuilder.WriteString(option)
	}

	hash := sha1.Sum([]byte(keyBuilder.String()))
	return "q_" + hex.EncodeToString(hash[:6])
}

// OptionLetter maps 0 -> "A", 1 -> "B" and so on.
func OptionLetter(index int) string {
	if index < 0 || index >= 26 {
		return ""
	}
	return string(rune('A' + index))
}

func NormalizeLetter(answer string) string {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return ""
	}
	return letter
}

// LetterIndex resolves an answer letter against optionCount options.
func LetterIndex(answer string, optionCount int) (int, bool) {
	letter := NormalizeLetter(answer)
	if letter == "" {
		return -1, false
	}
	index := int(letter[0] - 'A')
	if index >= optionCount {
		return -1, false
	}
	return index, true
}
