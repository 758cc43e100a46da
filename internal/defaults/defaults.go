// Package defaults provides the bootstrap vocabulary merged into every read
package defaults

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/example/wordslearning/internal/excel"
	"github.com/example/wordslearning/pkg/models"
)

//go:embed words.csv
var wordsCSV []byte

// Words returns the built-in vocabulary, or the one from path when set
func Words(path string, now time.Time) ([]models.Word, error) {
	config := excel.DefaultImportConfig()
	if path != "" {
		config.FilePath = path
		words, _, err := excel.ImportWords(config, now)
		if err != nil {
			return nil, fmt.Errorf("failed to load default words: %w", err)
		}
		return words, nil
	}

	words, _, err := excel.ParseCSV(bytes.NewReader(wordsCSV), config, now)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in words: %w", err)
	}
	return words, nil
}
