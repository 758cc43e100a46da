package excel

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/wordslearning/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath            string // Path to the Excel or CSV file
	ForeignColumn       string // Column with the foreign text
	NativeColumn        string // Column with the comma separated native forms
	TranscriptionColumn string // Column with the transcription
	PartOfSpeechColumn  string // Column with the part of speech
	FToNRemarkColumn    string // Column with the hint for foreign to native questions
	NToFRemarkColumn    string // Column with the hint for native to foreign questions
	SheetName           string // Name of the sheet to import
	StartRow            int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		ForeignColumn:       "A",
		NativeColumn:        "B",
		TranscriptionColumn: "C",
		PartOfSpeechColumn:  "D",
		FToNRemarkColumn:    "E",
		NToFRemarkColumn:    "F",
		SheetName:           "Sheet1",
		StartRow:            2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

var errSectionRow = errors.New("section header row")

// ImportWords reads words from an Excel or CSV file
func ImportWords(config ImportConfig, now time.Time) ([]models.Word, *ImportResult, error) {
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		file, err := os.Open(config.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer file.Close()

		return ParseCSV(file, config, now)
	}

	return importFromExcel(config, now)
}

// importFromExcel reads words from an Excel file
func importFromExcel(config ImportConfig, now time.Time) ([]models.Word, *ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %w", err)
	}

	words, result := parseRows(rows, config, now)
	return words, result, nil
}

// ParseCSV reads words from CSV data laid out like the Excel sheet
func ParseCSV(r io.Reader, config ImportConfig, now time.Time) ([]models.Word, *ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("error reading CSV: %w", err)
	}

	words, result := parseRows(rows, config, now)
	return words, result, nil
}

func parseRows(rows [][]string, config ImportConfig, now time.Time) ([]models.Word, *ImportResult) {
	result := &ImportResult{
		Errors: make([]string, 0),
	}
	words := make([]models.Word, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		word, err := processRow(row, config, now)
		if errors.Is(err, errSectionRow) {
			continue
		}

		result.TotalProcessed++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		if _, dup := seen[word.Foreign]; dup {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: duplicate word %q", i+1, word.Foreign))
			continue
		}

		seen[word.Foreign] = struct{}{}
		words = append(words, word)
	}

	return words, result
}

// processRow turns one row into a word. A row with a foreign text but no
// native forms is a section header (e.g. "Движение,,") and is skipped.
func processRow(row []string, config ImportConfig, now time.Time) (models.Word, error) {
	foreign := cleanWord(cell(row, config.ForeignColumn))
	nativeCell := cell(row, config.NativeColumn)

	if foreign == "" && strings.TrimSpace(nativeCell) == "" {
		return models.Word{}, errSectionRow
	}
	if foreign == "" {
		return models.Word{}, fmt.Errorf("word cannot be empty")
	}
	if strings.TrimSpace(nativeCell) == "" {
		return models.Word{}, errSectionRow
	}

	native := splitNative(nativeCell)
	if len(native) == 0 {
		return models.Word{}, fmt.Errorf("translation cannot be empty")
	}

	w := models.NewWord(foreign, native, strings.TrimSpace(cell(row, config.TranscriptionColumn)), now)
	if pos := cell(row, config.PartOfSpeechColumn); strings.TrimSpace(pos) != "" {
		w.PartOfSpeech = models.ParsePartOfSpeech(pos)
	}
	w.FToNRemark = strings.TrimSpace(cell(row, config.FToNRemarkColumn))
	w.NToFRemark = strings.TrimSpace(cell(row, config.NToFRemarkColumn))
	return w, nil
}

// MergeInto adds imported words missing from existing and counts them in
// result. Words already present keep their statistics.
func MergeInto(existing, imported []models.Word, result *ImportResult) []models.Word {
	known := make(map[string]struct{}, len(existing))
	for _, w := range existing {
		known[w.Foreign] = struct{}{}
	}

	merged := append([]models.Word(nil), existing...)
	for _, w := range imported {
		if _, ok := known[w.Foreign]; ok {
			result.Skipped++
			continue
		}
		known[w.Foreign] = struct{}{}
		merged = append(merged, w)
		result.Created++
	}
	return merged
}

func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
		return row[idx]
	}
	return ""
}

func splitNative(s string) []string {
	parts := strings.Split(s, ",")
	forms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			forms = append(forms, p)
		}
	}
	return forms
}

// cleanWord removes the bracketed forms from a foreign word: "go (went, gone)" becomes "go"
func cleanWord(word string) string {
	indexOpenParen := strings.Index(word, "(")
	if indexOpenParen > 0 {
		return strings.TrimSpace(word[:indexOpenParen])
	}
	return strings.TrimSpace(word)
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
