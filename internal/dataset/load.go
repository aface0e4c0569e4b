package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"subject-quiz/internal/quiz"
	"subject-quiz/internal/quiz/sqlstore"
)

// Load returns the bank a session runs against. Without a DSN, or when the
// database holds no subjects yet, the built-in subjects are used.
func Load(ctx context.Context, driver, dsn string, log logrus.FieldLogger) (*quiz.Bank, error) {
	if strings.TrimSpace(dsn) == "" {
		log.Info("no question database configured, using built-in subjects")
		return NewBank(), nil
	}

	store, err := sqlstore.Open(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open question store: %w", err)
	}
	defer store.Close()

	bank, err := store.LoadBank(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	subjects := bank.Subjects()
	if len(subjects) == 0 {
		log.WithField("driver", store.Driver()).Warn("question database is empty, using built-in subjects")
		return NewBank(), nil
	}

	log.WithFields(logrus.Fields{
		"driver":   store.Driver(),
		"subjects": len(subjects),
	}).Info("question bank loaded")
	return bank, nil
}
