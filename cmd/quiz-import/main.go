package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"subject-quiz/internal/config"
	"subject-quiz/internal/dataset"
	"subject-quiz/internal/importer"
	"subject-quiz/internal/opentdb"
	"subject-quiz/internal/quiz"
	"subject-quiz/internal/quiz/sqlstore"
)

type options struct {
	file            string
	sheet           string
	startRow        int
	opentdbSubject  string
	opentdbAmount   int
	opentdbCategory int
	builtin         bool
	driver          string
	dsn             string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	var opts options
	flag.StringVar(&opts.file, "file", "", "path to an .xlsx, .csv or .json question file")
	flag.StringVar(&opts.sheet, "sheet", "", "sheet name for .xlsx files (default: first sheet)")
	flag.IntVar(&opts.startRow, "start-row", 2, "first data row for .xlsx and .csv files")
	flag.StringVar(&opts.opentdbSubject, "opentdb-subject", "", "subject name to store OpenTDB questions under")
	flag.IntVar(&opts.opentdbAmount, "opentdb-amount", 10, "number of OpenTDB questions to fetch")
	flag.IntVar(&opts.opentdbCategory, "opentdb-category", 0, "OpenTDB category id (0 for any)")
	flag.BoolVar(&opts.builtin, "builtin", false, "import the built-in subjects")
	flag.StringVar(&opts.driver, "driver", cfg.DBDriver, "database driver (sqlite3 or postgres)")
	flag.StringVar(&opts.dsn, "dsn", cfg.DBDSN, "database DSN (default quiz.db for sqlite3)")
	flag.Parse()

	log := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, log); err != nil {
		log.WithError(err).Error("import failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, log logrus.FieldLogger) error {
	subjects, err := collect(ctx, opts, log)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		return errors.New("nothing to import: pass -file, -opentdb-subject or -builtin")
	}

	store, err := sqlstore.Open(ctx, opts.driver, opts.dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, subject := range subjects {
		if err := store.ReplaceSubject(ctx, subject.Name, subject.Questions); err != nil {
			return fmt.Errorf("replace subject %q: %w", subject.Name, err)
		}
		log.WithFields(logrus.Fields{
			"subject":   subject.Name,
			"questions": len(subject.Questions),
		}).Info("subject imported")
	}
	return nil
}

func collect(ctx context.Context, opts options, log logrus.FieldLogger) ([]quiz.Subject, error) {
	var subjects []quiz.Subject

	if opts.builtin {
		subjects = append(subjects, dataset.Builtin()...)
	}

	if opts.file != "" {
		importConfig := importer.DefaultImportConfig()
		importConfig.FilePath = opts.file
		importConfig.SheetName = opts.sheet
		importConfig.StartRow = opts.startRow

		result, err := importer.Import(importConfig)
		if err != nil {
			return nil, err
		}
		for _, reason := range result.Errors {
			log.WithField("file", opts.file).Warn(reason)
		}
		log.WithFields(logrus.Fields{
			"file":      opts.file,
			"processed": result.TotalProcessed,
			"imported":  result.Imported,
			"skipped":   result.Skipped,
		}).Info("file parsed")
		subjects = append(subjects, result.Subjects...)
	}

	if opts.opentdbSubject != "" {
		client := opentdb.NewClient(&http.Client{Timeout: 10 * time.Second})
		raw, err := client.FetchQuestions(ctx, opts.opentdbAmount, opts.opentdbCategory)
		if err != nil {
			return nil, fmt.Errorf("fetch opentdb questions: %w", err)
		}
		subjects = append(subjects, quiz.Subject{
			Name:      opts.opentdbSubject,
			Questions: opentdb.BuildQuestions(raw, nil),
		})
	}

	return subjects, nil
}
