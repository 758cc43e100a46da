package quiz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/wordslearning/internal/spaced_repetition"
	"github.com/example/wordslearning/pkg/models"
)

// SortMode orders a statistics report
type SortMode string

const (
	SortAlpha   SortMode = "alpha"
	SortPercent SortMode = "percent"
	SortRating  SortMode = "rating"
)

// ParseSortMode maps user input to a sort mode, defaulting to alphabetical
func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return SortAlpha, nil
	case SortAlpha, SortPercent, SortRating:
		return m, nil
	default:
		return "", fmt.Errorf("unknown sort mode %q", s)
	}
}

// ReportRow is one word in a statistics report
type ReportRow struct {
	Foreign     string
	Native      string
	FToNPercent float64
	NToFPercent float64
	Rating      float64
}

// Report lists the words sorted alphabetically, by foreign to native
// mastery (least known first) or by rating for the direction (highest first)
func Report(words []models.Word, mode SortMode, direction models.Direction, now time.Time) []ReportRow {
	rows := make([]ReportRow, 0, len(words))
	for i := range words {
		w := &words[i]
		rows = append(rows, ReportRow{
			Foreign:     w.Foreign,
			Native:      w.NativeDescription(),
			FToNPercent: w.ForeignToNative.MasteryPercent,
			NToFPercent: w.NativeToForeign.MasteryPercent,
			Rating:      spaced_repetition.Rating(*w.Statistic(direction), now),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Foreign < rows[j].Foreign })
	switch mode {
	case SortPercent:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].FToNPercent < rows[j].FToNPercent })
	case SortRating:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Rating > rows[j].Rating })
	}
	return rows
}
