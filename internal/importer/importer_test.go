package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var header = []string{"subject", "id", "question", "correct", "explanation", "option a", "option b", "option c"}

var sampleRows = [][]string{
	{"DSA", "dsa-1", "Stack order?", "B", "Pop returns the newest item.", "FIFO", "LIFO", "Random"},
	{"OS", "", "Unit of scheduling?", "a", "", "Thread", "File"},
	{"DSA", "dsa-2", "Queue order?", "A", "", "FIFO", "LIFO"},
	{"DSA", "dsa-3", "Bad answer letter", "D", "", "x", "y"},
	{"", "dsa-4", "No subject", "A", "", "x", "y"},
	{"OS", "os-9", "Only one option", "A", "", "x"},
}

func writeCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	path := filepath.Join(t.TempDir(), "questions.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func writeXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]string{header}, rows...)
	for idx, row := range all {
		cellName, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		values := make([]interface{}, len(row))
		for col, value := range row {
			values[col] = value
		}
		if err := f.SetSheetRow("Sheet1", cellName, &values); err != nil {
			t.Fatalf("set row %d: %v", idx+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), "questions.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	return path
}

func assertSampleResult(t *testing.T, result *ImportResult) {
	t.Helper()

	if result.TotalProcessed != 6 || result.Imported != 3 || result.Skipped != 3 {
		t.Fatalf("counts = processed %d imported %d skipped %d, want 6/3/3 (errors: %v)",
			result.TotalProcessed, result.Imported, result.Skipped, result.Errors)
	}
	if len(result.Errors) != 3 {
		t.Fatalf("errors = %v, want 3 entries", result.Errors)
	}
	if len(result.Subjects) != 2 || result.Subjects[0].Name != "DSA" || result.Subjects[1].Name != "OS" {
		t.Fatalf("subjects = %+v, want DSA then OS", result.Subjects)
	}

	dsa := result.Subjects[0].Questions
	if len(dsa) != 2 || dsa[0].ID != "dsa-1" || dsa[1].ID != "dsa-2" {
		t.Fatalf("unexpected DSA questions: %+v", dsa)
	}
	if dsa[0].CorrectIndex != 1 || len(dsa[0].Options) != 3 || dsa[0].Explanation != "Pop returns the newest item." {
		t.Fatalf("unexpected first DSA question: %+v", dsa[0])
	}

	os := result.Subjects[1].Questions
	if len(os) != 1 || os[0].CorrectIndex != 0 || !strings.HasPrefix(os[0].ID, "q_") {
		t.Fatalf("unexpected OS questions: %+v", os)
	}
}

func TestImportCSV(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = writeCSV(t, sampleRows)

	result, err := Import(config)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	assertSampleResult(t, result)
}

func TestImportExcel(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = writeXLSX(t, sampleRows)

	result, err := Import(config)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	assertSampleResult(t, result)
}

func TestImportJSON(t *testing.T) {
	content := `[
		{"name": "Cloud", "questions": [
			{"id": "c1", "question": "IaaS gives you?", "options": ["VMs", "Apps"], "correct_index": 0, "explanation": "Infra."},
			{"id": "c2", "question": "Broken", "options": ["only"], "correct_index": 0}
		]}
	]`
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write json: %v", err)
	}

	result, err := Import(ImportConfig{FilePath: path})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 1 {
		t.Fatalf("imported=%d skipped=%d, want 1/1", result.Imported, result.Skipped)
	}
	if result.Subjects[0].Name != "Cloud" || result.Subjects[0].Questions[0].Explanation != "Infra." {
		t.Fatalf("unexpected subjects: %+v", result.Subjects)
	}
}

func TestImportUnsupportedFormat(t *testing.T) {
	_, err := Import(ImportConfig{FilePath: "questions.txt"})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Import error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestImportRejectsBadColumnMapping(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = writeCSV(t, sampleRows)
	config.PromptColumn = "1"

	if _, err := Import(config); err == nil {
		t.Fatalf("expected error for invalid column name")
	}
}
