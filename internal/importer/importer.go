package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"subject-quiz/internal/quiz"
)

var ErrUnsupportedFormat = errors.New("unsupported import format")

// ImportConfig maps spreadsheet columns onto question fields. Options start at
// OptionsColumn and run right until the first empty cell.
type ImportConfig struct {
	FilePath          string
	SheetName         string
	SubjectColumn     string
	IDColumn          string
	PromptColumn      string
	CorrectColumn     string // answer letter, A for the first option
	ExplanationColumn string
	OptionsColumn     string
	StartRow          int // 1-based
}

func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName:         "Sheet1",
		SubjectColumn:     "A",
		IDColumn:          "B",
		PromptColumn:      "C",
		CorrectColumn:     "D",
		ExplanationColumn: "E",
		OptionsColumn:     "F",
		StartRow:          2,
	}
}

type ImportResult struct {
	Subjects       []quiz.Subject
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// Import reads questions from an .xlsx, .csv or .json file.
func Import(config ImportConfig) (*ImportResult, error) {
	switch ext := strings.ToLower(filepath.Ext(config.FilePath)); ext {
	case ".xlsx", ".xlsm":
		return importFromExcel(config)
	case ".csv":
		return importFromCSV(config)
	case ".json":
		return importFromJSON(config)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := config.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return importRows(rows, config)
}

func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return importRows(rows, config)
}

type jsonSubject struct {
	Name      string          `json:"name"`
	Questions []quiz.Question `json:"questions"`
}

func importFromJSON(config ImportConfig) (*ImportResult, error) {
	data, err := os.ReadFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}

	var payload []jsonSubject
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode JSON file: %w", err)
	}

	collector := newCollector()
	for _, subject := range payload {
		for idx, question := range subject.Questions {
			collector.result.TotalProcessed++
			collector.add(subject.Name, question, fmt.Sprintf("%s #%d", subject.Name, idx+1))
		}
	}
	return collector.finish(), nil
}

type columns struct {
	subject, id, prompt, correct, explanation, options int
}

func resolveColumns(config ImportConfig) (columns, error) {
	defaults := DefaultImportConfig()
	pick := func(value, fallback string) (int, error) {
		if strings.TrimSpace(value) == "" {
			value = fallback
		}
		number, err := excelize.ColumnNameToNumber(value)
		if err != nil {
			return 0, err
		}
		return number - 1, nil
	}

	var cols columns
	var err error
	if cols.subject, err = pick(config.SubjectColumn, defaults.SubjectColumn); err != nil {
		return cols, err
	}
	if cols.id, err = pick(config.IDColumn, defaults.IDColumn); err != nil {
		return cols, err
	}
	if cols.prompt, err = pick(config.PromptColumn, defaults.PromptColumn); err != nil {
		return cols, err
	}
	if cols.correct, err = pick(config.CorrectColumn, defaults.CorrectColumn); err != nil {
		return cols, err
	}
	if cols.explanation, err = pick(config.ExplanationColumn, defaults.ExplanationColumn); err != nil {
		return cols, err
	}
	if cols.options, err = pick(config.OptionsColumn, defaults.OptionsColumn); err != nil {
		return cols, err
	}
	return cols, nil
}

func importRows(rows [][]string, config ImportConfig) (*ImportResult, error) {
	cols, err := resolveColumns(config)
	if err != nil {
		return nil, fmt.Errorf("invalid column mapping: %w", err)
	}

	startRow := config.StartRow
	if startRow < 1 {
		startRow = 1
	}

	collector := newCollector()
	for rowIdx := startRow - 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if isBlank(row) {
			continue
		}
		collector.result.TotalProcessed++
		label := fmt.Sprintf("row %d", rowIdx+1)

		options := make([]string, 0, 4)
		for col := cols.options; col < len(row); col++ {
			option := strings.TrimSpace(row[col])
			if option == "" {
				break
			}
			options = append(options, option)
		}

		correctIndex, ok := quiz.LetterIndex(cell(row, cols.correct), len(options))
		if !ok {
			collector.skip(fmt.Sprintf("%s: invalid correct answer %q", label, cell(row, cols.correct)))
			continue
		}

		collector.add(cell(row, cols.subject), quiz.Question{
			ID:           cell(row, cols.id),
			Prompt:       cell(row, cols.prompt),
			Options:      options,
			CorrectIndex: correctIndex,
			Explanation:  cell(row, cols.explanation),
		}, label)
	}
	return collector.finish(), nil
}

// collector groups questions by subject in first-seen order.
type collector struct {
	order  []string
	groups map[string][]quiz.Question
	result *ImportResult
}

func newCollector() *collector {
	return &collector{
		groups: make(map[string][]quiz.Question),
		result: &ImportResult{},
	}
}

func (c *collector) add(subject string, question quiz.Question, label string) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		c.skip(label + ": missing subject")
		return
	}
	if err := question.Validate(); err != nil {
		c.skip(fmt.Sprintf("%s: %v", label, err))
		return
	}
	if question.ID == "" {
		question.ID = quiz.MakeQuestionID(question)
	}
	if _, ok := c.groups[subject]; !ok {
		c.order = append(c.order, subject)
	}
	c.groups[subject] = append(c.groups[subject], question)
	c.result.Imported++
}

func (c *collector) skip(reason string) {
	c.result.Skipped++
	c.result.Errors = append(c.result.Errors, reason)
}

func (c *collector) finish() *ImportResult {
	c.result.Subjects = make([]quiz.Subject, 0, len(c.order))
	for _, name := range c.order {
		c.result.Subjects = append(c.result.Subjects, quiz.Subject{Name: name, Questions: c.groups[name]})
	}
	return c.result
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
