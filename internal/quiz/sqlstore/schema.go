package sqlstore

import "context"

func (s *Store) initSchema(ctx context.Context) error {
	// Portable DDL: the same statements run on SQLite and Postgres.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS subjects (
			name TEXT PRIMARY KEY,
			display_order INTEGER NOT NULL,
			created_at_unix BIGINT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			subject TEXT NOT NULL,
			position INTEGER NOT NULL,
			question_id TEXT NOT NULL,
			prompt TEXT NOT NULL,
			options_json TEXT NOT NULL,
			correct_index INTEGER NOT NULL,
			explanation TEXT NOT NULL DEFAULT '',
			created_at_unix BIGINT NOT NULL,
			PRIMARY KEY (subject, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_subjects_display_order ON subjects(display_order);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_question_id ON questions(question_id);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
