package sqlstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"subject-quiz/internal/quiz"
)

type questionRow struct {
	Subject       string `db:"subject"`
	Position      int    `db:"position"`
	QuestionID    string `db:"question_id"`
	Prompt        string `db:"prompt"`
	OptionsJSON   string `db:"options_json"`
	CorrectIndex  int    `db:"correct_index"`
	Explanation   string `db:"explanation"`
	CreatedAtUnix int64  `db:"created_at_unix"`
}

// ReplaceSubject swaps the whole question list of subject in one transaction.
// New subjects are appended to the end of the subject order.
func (s *Store) ReplaceSubject(ctx context.Context, subject string, questions []quiz.Question) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return errors.New("subject is required")
	}
	for idx, question := range questions {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("%s question %d: %w", subject, idx+1, err)
		}
	}

	now := time.Now().UTC().Unix()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var nextOrder int
	if err := tx.GetContext(ctx, &nextOrder, `SELECT COALESCE(MAX(display_order), -1) + 1 FROM subjects`); err != nil {
		return err
	}

	if _, err := tx.ExecContext(
		ctx,
		tx.Rebind(`INSERT INTO subjects (name, display_order, created_at_unix) VALUES (?, ?, ?) ON CONFLICT (name) DO NOTHING`),
		subject,
		nextOrder,
		now,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM questions WHERE subject = ?`), subject); err != nil {
		return err
	}

	for idx, question := range questions {
		if question.ID == "" {
			question.ID = quiz.MakeQuestionID(question)
		}

		optionsJSON, err := json.Marshal(question.Options)
		if err != nil {
			return err
		}

		row := questionRow{
			Subject:       subject,
			Position:      idx,
			QuestionID:    question.ID,
			Prompt:        question.Prompt,
			OptionsJSON:   string(optionsJSON),
			CorrectIndex:  question.CorrectIndex,
			Explanation:   question.Explanation,
			CreatedAtUnix: now,
		}
		if _, err := tx.NamedExecContext(
			ctx,
			`INSERT INTO questions (subject, position, question_id, prompt, options_json, correct_index, explanation, created_at_unix)
			 VALUES (:subject, :position, :question_id, :prompt, :options_json, :correct_index, :explanation, :created_at_unix)`,
			row,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Subjects lists subject names in display order.
func (s *Store) Subjects(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names, `SELECT name FROM subjects ORDER BY display_order, name`); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *Store) GetQuestions(ctx context.Context, subject string) ([]quiz.Question, error) {
	var rows []questionRow
	err := s.db.SelectContext(
		ctx,
		&rows,
		s.db.Rebind(`SELECT subject, position, question_id, prompt, options_json, correct_index, explanation, created_at_unix
		 FROM questions WHERE subject = ? ORDER BY position`),
		subject,
	)
	if err != nil {
		return nil, err
	}
	return rowsToQuestions(rows)
}

// LoadBank reads every subject into an in-memory bank. The bank is a
// snapshot: later writes to the store do not affect it.
func (s *Store) LoadBank(ctx context.Context) (*quiz.Bank, error) {
	names, err := s.Subjects(ctx)
	if err != nil {
		return nil, err
	}

	var rows []questionRow
	err = s.db.SelectContext(
		ctx,
		&rows,
		`SELECT subject, position, question_id, prompt, options_json, correct_index, explanation, created_at_unix
		 FROM questions ORDER BY subject, position`,
	)
	if err != nil {
		return nil, err
	}

	bySubject := make(map[string][]questionRow, len(names))
	for _, row := range rows {
		bySubject[row.Subject] = append(bySubject[row.Subject], row)
	}

	subjects := make([]quiz.Subject, 0, len(names))
	for _, name := range names {
		questions, err := rowsToQuestions(bySubject[name])
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, quiz.Subject{Name: name, Questions: questions})
	}
	return quiz.NewBank(subjects...), nil
}

func rowsToQuestions(rows []questionRow) ([]quiz.Question, error) {
	questions := make([]quiz.Question, 0, len(rows))
	for _, row := range rows {
		var options []string
		if err := json.Unmarshal([]byte(row.OptionsJSON), &options); err != nil {
			return nil, fmt.Errorf("decode options for %s: %w", row.QuestionID, err)
		}
		question := quiz.Question{
			ID:           row.QuestionID,
			Prompt:       row.Prompt,
			Options:      options,
			CorrectIndex: row.CorrectIndex,
			Explanation:  row.Explanation,
		}
		if err := question.Validate(); err != nil {
			return nil, fmt.Errorf("stored question %s: %w", row.QuestionID, err)
		}
		questions = append(questions, question)
	}
	return questions, nil
}
