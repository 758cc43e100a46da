package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNonPositiveDelta is returned by MarkStudied when the delta cannot move mastery up.
var ErrNonPositiveDelta = errors.New("percent delta must be positive")

// MaxMasteryPercent is the upper bound of WordStatistic.MasteryPercent
const MaxMasteryPercent = 100

// WordStatistic tracks how well one translation direction of a word is known
type WordStatistic struct {
	MasteryPercent    float64   `json:"mastery_percent" db:"mastery_percent"`
	CorrectCount      int       `json:"correct_count" db:"correct_count"`
	IncorrectCount    int       `json:"incorrect_count" db:"incorrect_count"`
	LastAnswerCorrect bool      `json:"last_answer_correct" db:"last_answer_correct"`
	LastAnswerAt      time.Time `json:"last_answer_at" db:"last_answer_at"`
}

// NewWordStatistic returns a statistic for a word that has never been asked
func NewWordStatistic(now time.Time) WordStatistic {
	return WordStatistic{
		MasteryPercent:    0,
		LastAnswerCorrect: true,
		LastAnswerAt:      now,
	}
}

// TotalAnswers is the number of recorded answers
func (s *WordStatistic) TotalAnswers() int {
	return s.CorrectCount + s.IncorrectCount
}

// SuccessRate returns the share of correct answers in percent.
// Integer division is intentional: 2 of 3 correct gives 66, not 66.6.
func (s *WordStatistic) SuccessRate() float64 {
	total := s.TotalAnswers()
	if total == 0 {
		return 0
	}
	return float64(s.CorrectCount * 100 / total)
}

// Update records one answer and moves the mastery percent by percentDelta,
// keeping it inside [0, 100].
func (s *WordStatistic) Update(lastAnswerCorrect bool, percentDelta int, answeredAt time.Time) {
	s.LastAnswerCorrect = lastAnswerCorrect
	s.LastAnswerAt = answeredAt

	newPercent := s.MasteryPercent + float64(percentDelta)
	switch {
	case newPercent > 0 && newPercent <= MaxMasteryPercent:
		s.MasteryPercent = newPercent
	case newPercent > MaxMasteryPercent:
		s.MasteryPercent = MaxMasteryPercent
	default:
		s.MasteryPercent = 0
	}

	if lastAnswerCorrect {
		s.CorrectCount++
	} else {
		s.IncorrectCount++
	}
}

// MarkStudied pushes the mastery to 100 by replaying correct answers with the
// given delta. It returns the number of answers recorded.
func (s *WordStatistic) MarkStudied(percentDelta int, now time.Time) (int, error) {
	if percentDelta <= 0 {
		return 0, fmt.Errorf("mark studied with delta %d: %w", percentDelta, ErrNonPositiveDelta)
	}

	remaining := MaxMasteryPercent - int(math.Floor(s.MasteryPercent))
	if remaining < 0 {
		remaining = 0
	}
	iterations := remaining/percentDelta + 1
	for i := 0; i < iterations; i++ {
		s.Update(true, percentDelta, now)
	}
	return iterations, nil
}
